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

package presence

import (
	"context"
	"fmt"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza"
	"github.com/jackal-xmpp/stravaganza/jid"
	"github.com/ortuman/converse/pkg/caps"
	"github.com/ortuman/converse/pkg/muc"
	xmpputil "github.com/ortuman/converse/pkg/util/xmpp"
)

// PrioritiesConfig contains the presence priority announced for each show state.
type PrioritiesConfig struct {
	Online int8 `fig:"online" default:"0"`
	Chat   int8 `fig:"chat" default:"0"`
	Away   int8 `fig:"away" default:"0"`
	DND    int8 `fig:"dnd" default:"0"`
	XA     int8 `fig:"xa" default:"0"`
}

// ForShowState returns the priority configured for state.
func (c PrioritiesConfig) ForShowState(state stravaganza.ShowState) int8 {
	switch state {
	case stravaganza.ChatShowState:
		return c.Chat
	case stravaganza.AwayShowState:
		return c.Away
	case stravaganza.DoNotDisturbShowState:
		return c.DND
	case stravaganza.ExtendedAwaysShowState:
		return c.XA
	default:
		return c.Online
	}
}

// Broadcaster composes the account outbound presence and fans it out to the
// server and to every joined room.
type Broadcaster struct {
	sess       Session
	rooms      *muc.Rooms
	self       *caps.Self
	priorities PrioritiesConfig
	logger     kitlog.Logger

	lastShow   stravaganza.ShowState
	lastStatus string
}

// NewBroadcaster returns an initialized presence broadcaster.
func NewBroadcaster(
	sess Session,
	rooms *muc.Rooms,
	self *caps.Self,
	priorities PrioritiesConfig,
	logger kitlog.Logger,
) *Broadcaster {
	return &Broadcaster{
		sess:       sess,
		rooms:      rooms,
		self:       self,
		priorities: priorities,
		logger:     kitlog.With(logger, "module", "presence"),
	}
}

// UpdatePresence announces a new availability to the server and mirrors it
// to every joined room. idleSecs, when greater than zero, is attached as
// last user activity.
func (b *Broadcaster) UpdatePresence(ctx context.Context, show stravaganza.ShowState, status string, idleSecs int64) error {
	children := b.presenceChildren(show, status, idleSecs)

	// the broadcast copy carries no 'to': the server fans it out to subscribers
	pr := stravaganza.NewBuilder("presence").
		WithAttribute(stravaganza.From, b.sess.LocalJID().String()).
		WithChildren(children...).
		Build()
	if err := b.sess.Send(ctx, pr); err != nil {
		return err
	}
	for _, room := range b.rooms.JoinedRooms() {
		roomPr := xmpputil.MakePresence(b.sess.LocalJID(), room.OccupantJID(), stravaganza.AvailableType, children)
		if err := b.sess.Send(ctx, roomPr); err != nil {
			return err
		}
	}
	b.lastShow = show
	b.lastStatus = status

	level.Info(b.logger).Log("msg", "updated presence", "show", xmpputil.ShowStateName(show), "rooms", len(b.rooms.JoinedRooms()))
	return nil
}

// JoinRoom registers occupantJID room as joined and sends the room join
// presence. occupantJID resource holds the desired nickname.
func (b *Broadcaster) JoinRoom(ctx context.Context, occupantJID *jid.JID) error {
	room := b.rooms.Join(occupantJID, occupantJID.Resource())

	children := b.presenceChildren(b.lastShow, b.lastStatus, 0)
	children = append(children, xmpputil.MUCJoinElement())

	pr := xmpputil.MakePresence(b.sess.LocalJID(), room.OccupantJID(), stravaganza.AvailableType, children)

	level.Info(b.logger).Log("msg", "joining room", "room", room.RoomJID().String(), "nick", room.Nick())
	return b.sess.Send(ctx, pr)
}

// ChangeRoomNickname requests a nickname change on a joined room. The room
// state is not touched until the service confirms the rename.
func (b *Broadcaster) ChangeRoomNickname(ctx context.Context, roomJID *jid.JID, newNick string) error {
	room := b.rooms.Room(roomJID)
	if room == nil {
		return fmt.Errorf("room %s is not joined", roomJID.ToBareJID().String())
	}
	toJID, err := jid.New(roomJID.Node(), roomJID.Domain(), newNick, true)
	if err != nil {
		return err
	}
	pr := xmpputil.MakePresence(b.sess.LocalJID(), toJID, stravaganza.AvailableType, b.presenceChildren(b.lastShow, b.lastStatus, 0))
	return b.sess.Send(ctx, pr)
}

// LeaveRoom announces departure from a joined room. The room state is kept
// until the service confirms the leave.
func (b *Broadcaster) LeaveRoom(ctx context.Context, roomJID *jid.JID) error {
	room := b.rooms.Room(roomJID)
	if room == nil {
		return fmt.Errorf("room %s is not joined", roomJID.ToBareJID().String())
	}
	pr := xmpputil.MakePresence(b.sess.LocalJID(), room.OccupantJID(), stravaganza.UnavailableType, nil)
	return b.sess.Send(ctx, pr)
}

func (b *Broadcaster) presenceChildren(show stravaganza.ShowState, status string, idleSecs int64) []stravaganza.Element {
	var children []stravaganza.Element
	if el := xmpputil.ShowElement(show); el != nil {
		children = append(children, el)
	}
	if el := xmpputil.StatusElement(status); el != nil {
		children = append(children, el)
	}
	if el := xmpputil.PriorityElement(b.priorities.ForShowState(show)); el != nil {
		children = append(children, el)
	}
	if el := xmpputil.IdleElement(idleSecs); el != nil {
		children = append(children, el)
	}
	children = append(children, b.self.Element())
	return children
}
