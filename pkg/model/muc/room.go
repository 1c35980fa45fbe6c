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

package mucmodel

import (
	"sort"

	"github.com/jackal-xmpp/stravaganza"
	"github.com/jackal-xmpp/stravaganza/jid"
)

// Occupant represents the last known presence of a room occupant.
type Occupant struct {
	Nick      string
	ShowState stravaganza.ShowState
	Status    string
	CapsKey   string
}

// Room holds the client-side state of a joined multi-user chat room: the
// occupant roster plus the transient state needed to pair the two stanzas
// a nickname change is observed as.
type Room struct {
	roomJID        *jid.JID
	nick           string
	rosterReceived bool

	selfNickChanging bool
	occupants        map[string]*Occupant
	nickChanges      map[string]string // new nick -> old nick
}

// NewRoom creates room state for a join initiated towards roomJID under nick.
func NewRoom(roomJID *jid.JID, nick string) *Room {
	return &Room{
		roomJID:     roomJID.ToBareJID(),
		nick:        nick,
		occupants:   make(map[string]*Occupant),
		nickChanges: make(map[string]string),
	}
}

// RoomJID returns the room bare JID.
func (r *Room) RoomJID() *jid.JID { return r.roomJID }

// Nick returns our current occupant nickname.
func (r *Room) Nick() string { return r.nick }

// OccupantJID returns our full occupant JID (room bare JID plus nickname).
func (r *Room) OccupantJID() *jid.JID {
	j, _ := jid.New(r.roomJID.Node(), r.roomJID.Domain(), r.nick, true)
	return j
}

// RosterReceived tells whether the initial occupant burst has completed.
func (r *Room) RosterReceived() bool { return r.rosterReceived }

// MarkRosterReceived flags the initial occupant burst as completed.
func (r *Room) MarkRosterReceived() { r.rosterReceived = true }

// Occupant returns the roster entry associated to nick, if present.
func (r *Room) Occupant(nick string) *Occupant {
	return r.occupants[nick]
}

// InRoster tells whether nick is a current roster entry.
func (r *Room) InRoster(nick string) bool {
	_, ok := r.occupants[nick]
	return ok
}

// SetOccupant inserts or overwrites o roster entry.
func (r *Room) SetOccupant(o *Occupant) {
	r.occupants[o.Nick] = o
}

// DeleteOccupant removes nick roster entry, telling whether it was present.
func (r *Room) DeleteOccupant(nick string) bool {
	_, ok := r.occupants[nick]
	delete(r.occupants, nick)
	return ok
}

// Occupants returns all roster entries sorted by nickname.
func (r *Room) Occupants() []*Occupant {
	ret := make([]*Occupant, 0, len(r.occupants))
	for _, o := range r.occupants {
		ret = append(ret, o)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Nick < ret[j].Nick })
	return ret
}

// SetPendingSelfNickChange flags a self-initiated nickname change as in
// flight, so that the upcoming unavailable stanza for the old identity is
// not mistaken for a departure.
func (r *Room) SetPendingSelfNickChange() { r.selfNickChanging = true }

// PendingSelfNickChange tells whether a self nickname change is in flight.
func (r *Room) PendingSelfNickChange() bool { return r.selfNickChanging }

// CompleteSelfNickChange adopts newNick as our occupant identity and clears
// the in-flight flag.
func (r *Room) CompleteSelfNickChange(newNick string) {
	r.nick = newNick
	r.selfNickChanging = false
}

// SetPendingNickChange records an in-flight occupant nickname change pairing
// oldNick to newNick. The old nickname leaves the roster at this point: it
// must never be both a roster key and the old side of a pending change.
func (r *Room) SetPendingNickChange(oldNick, newNick string) {
	delete(r.occupants, oldNick)
	r.nickChanges[newNick] = oldNick
}

// CompleteNickChange resolves a pending nickname change whose new side is
// newNick, returning the paired old nickname. ok is false when no change
// involving newNick is in flight.
func (r *Room) CompleteNickChange(newNick string) (oldNick string, ok bool) {
	oldNick, ok = r.nickChanges[newNick]
	if ok {
		delete(r.nickChanges, newNick)
	}
	return
}
