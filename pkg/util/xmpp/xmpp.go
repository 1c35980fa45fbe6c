// Copyright 2023 The converse Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package xmpputil

import (
	"strconv"
	"strings"

	"github.com/jackal-xmpp/stravaganza"
	"github.com/jackal-xmpp/stravaganza/jid"
)

const (
	mucNamespace     = "http://jabber.org/protocol/muc"
	mucUserNamespace = "http://jabber.org/protocol/muc#user"

	lastActivityNamespace = "jabber:iq:last"
)

// MUC user status codes (XEP-0045).
const (
	// MUCStatusSelfPresence marks a presence as referring to the receiving occupant itself.
	MUCStatusSelfPresence = 110

	// MUCStatusNewNick marks an unavailable presence as the old identity half of a nickname change.
	MUCStatusNewNick = 303
)

// ParseJID parses s into a JID without ever failing: when s is not a
// well-formed address the result degrades to a best-effort node/domain
// split, possibly empty. Callers must tolerate degenerate addresses.
func ParseJID(s string) *jid.JID {
	if j, err := jid.NewWithString(s, true); err == nil {
		return j
	}
	var node, domain, resource string

	rest := s
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		resource = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '@'); i >= 0 {
		node = rest[:i]
		domain = rest[i+1:]
	} else {
		domain = rest
	}
	j, _ := jid.New(node, domain, resource, true)
	return j
}

// MakePresence creates presence of type typ using fromJID and toJID addresses.
func MakePresence(fromJID, toJID *jid.JID, typ string, children []stravaganza.Element) *stravaganza.Presence {
	pr, _ := stravaganza.NewPresenceBuilder().
		WithAttribute(stravaganza.From, fromJID.String()).
		WithAttribute(stravaganza.To, toJID.String()).
		WithAttribute(stravaganza.Type, typ).
		WithChildren(children...).
		BuildPresence()
	return pr
}

// ShowElement returns the <show/> child matching state, or nil for plain availability.
func ShowElement(state stravaganza.ShowState) stravaganza.Element {
	if state == stravaganza.AvailableShowState {
		return nil
	}
	return stravaganza.NewBuilder("show").WithText(ShowStateName(state)).Build()
}

// ShowStateName returns the wire name of a presence show state.
func ShowStateName(state stravaganza.ShowState) string {
	switch state {
	case stravaganza.AwayShowState:
		return "away"
	case stravaganza.ChatShowState:
		return "chat"
	case stravaganza.DoNotDisturbShowState:
		return "dnd"
	case stravaganza.ExtendedAwaysShowState:
		return "xa"
	default:
		return "online"
	}
}

// StatusElement returns a <status/> child carrying status text, or nil when empty.
func StatusElement(status string) stravaganza.Element {
	if len(status) == 0 {
		return nil
	}
	return stravaganza.NewBuilder("status").WithText(status).Build()
}

// PriorityElement returns a <priority/> child, or nil for the zero default.
func PriorityElement(priority int8) stravaganza.Element {
	if priority == 0 {
		return nil
	}
	return stravaganza.NewBuilder("priority").
		WithText(strconv.Itoa(int(priority))).
		Build()
}

// IdleElement returns a last-activity child reporting idle seconds, or nil
// when the user is not idle.
func IdleElement(idleSecs int64) stravaganza.Element {
	if idleSecs <= 0 {
		return nil
	}
	return stravaganza.NewBuilder("query").
		WithAttribute(stravaganza.Namespace, lastActivityNamespace).
		WithAttribute("seconds", strconv.FormatInt(idleSecs, 10)).
		Build()
}

// IdleSeconds extracts the idle duration reported in pr, or zero.
func IdleSeconds(pr *stravaganza.Presence) int64 {
	q := pr.ChildNamespace("query", lastActivityNamespace)
	if q == nil {
		return 0
	}
	secs, err := strconv.ParseInt(q.Attribute("seconds"), 10, 64)
	if err != nil || secs < 0 {
		return 0
	}
	return secs
}

// IsMUCUserPresence tells whether pr carries a multi-user chat user extension.
func IsMUCUserPresence(pr *stravaganza.Presence) bool {
	return pr.ChildNamespace("x", mucUserNamespace) != nil
}

// MUCJoinElement returns the <x/> child announcing a room join request.
func MUCJoinElement() stravaganza.Element {
	return stravaganza.NewBuilder("x").
		WithAttribute(stravaganza.Namespace, mucNamespace).
		Build()
}

// HasMUCStatusCode tells whether pr multi-user chat extension carries code.
func HasMUCStatusCode(pr *stravaganza.Presence, code int) bool {
	x := pr.ChildNamespace("x", mucUserNamespace)
	if x == nil {
		return false
	}
	for _, st := range x.Children("status") {
		if c, err := strconv.Atoi(st.Attribute("code")); err == nil && c == code {
			return true
		}
	}
	return false
}

// MUCNewNick returns the new nickname announced by a nick change
// unavailable presence, or empty when pr is not one.
func MUCNewNick(pr *stravaganza.Presence) string {
	if !HasMUCStatusCode(pr, MUCStatusNewNick) {
		return ""
	}
	x := pr.ChildNamespace("x", mucUserNamespace)
	item := x.Child("item")
	if item == nil {
		return ""
	}
	return item.Attribute("nick")
}
