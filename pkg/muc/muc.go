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

package muc

import (
	"context"
	"sort"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/sonar"
	"github.com/jackal-xmpp/stravaganza"
	"github.com/jackal-xmpp/stravaganza/jid"
	"github.com/ortuman/converse/pkg/event"
	mucmodel "github.com/ortuman/converse/pkg/model/muc"
	xmpputil "github.com/ortuman/converse/pkg/util/xmpp"
)

// Rooms keeps the per-session state of every joined group chat room and
// applies occupant presences to it. State is only mutated from the stanza
// dispatch flow, so no locking is performed.
type Rooms struct {
	resolver capsResolver
	sn       *sonar.Sonar
	logger   kitlog.Logger

	rooms map[string]*mucmodel.Room
}

// NewRooms returns an initialized room registry.
func NewRooms(resolver capsResolver, sn *sonar.Sonar, logger kitlog.Logger) *Rooms {
	return &Rooms{
		resolver: resolver,
		sn:       sn,
		logger:   kitlog.With(logger, "module", "muc"),
		rooms:    make(map[string]*mucmodel.Room),
	}
}

// Join registers roomJID as joined under nick and returns its state.
// Joining an already registered room resets its state.
func (r *Rooms) Join(roomJID *jid.JID, nick string) *mucmodel.Room {
	room := mucmodel.NewRoom(roomJID, nick)
	r.rooms[room.RoomJID().String()] = room
	return room
}

// Room returns the state of roomJID, or nil if not joined.
func (r *Rooms) Room(roomJID *jid.JID) *mucmodel.Room {
	return r.rooms[roomJID.ToBareJID().String()]
}

// JoinedRooms returns all joined rooms sorted by room JID.
func (r *Rooms) JoinedRooms() []*mucmodel.Room {
	ret := make([]*mucmodel.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		ret = append(ret, room)
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i].RoomJID().String() < ret[j].RoomJID().String()
	})
	return ret
}

// Clear drops all room states.
func (r *Rooms) Clear() {
	r.rooms = make(map[string]*mucmodel.Room)
}

// ProcessPresence applies a room occupant presence to the owning room state.
// Presences from rooms that were never joined are discarded.
func (r *Rooms) ProcessPresence(ctx context.Context, pr *stravaganza.Presence) error {
	if pr.Attribute(stravaganza.Type) == stravaganza.ErrorType {
		return nil
	}
	fromJID := pr.FromJID()

	room := r.rooms[fromJID.ToBareJID().String()]
	if room == nil {
		level.Debug(r.logger).Log("msg", "discarded presence from unknown room", "from", fromJID.String())
		return nil
	}
	if r.isSelfPresence(room, pr) {
		return r.processSelfPresence(ctx, room, pr)
	}
	return r.processOccupantPresence(ctx, room, pr)
}

func (r *Rooms) isSelfPresence(room *mucmodel.Room, pr *stravaganza.Presence) bool {
	if xmpputil.HasMUCStatusCode(pr, xmpputil.MUCStatusSelfPresence) {
		return true
	}
	return pr.FromJID().Resource() == room.Nick()
}

func (r *Rooms) processSelfPresence(ctx context.Context, room *mucmodel.Room, pr *stravaganza.Presence) error {
	roomJID := room.RoomJID().String()

	switch {
	case pr.IsUnavailable() && xmpputil.HasMUCStatusCode(pr, xmpputil.MUCStatusNewNick):
		// the room accepted our rename; the new nick arrives in a follow-up presence
		room.SetPendingSelfNickChange()
		return nil

	case pr.IsUnavailable():
		delete(r.rooms, roomJID)

		level.Info(r.logger).Log("msg", "left room", "room", roomJID)

		return r.postEvent(ctx, event.RoomLeft, &event.RoomEventInfo{
			RoomJID: roomJID,
			Nick:    room.Nick(),
		})

	case room.PendingSelfNickChange():
		newNick := pr.FromJID().Resource()
		room.CompleteSelfNickChange(newNick)

		level.Info(r.logger).Log("msg", "room nickname changed", "room", roomJID, "nick", newNick)

		return r.postEvent(ctx, event.RoomSelfNickChanged, &event.RoomEventInfo{
			RoomJID: roomJID,
			Nick:    newNick,
		})

	case !room.RosterReceived():
		// our own presence closes the initial roster burst
		room.MarkRosterReceived()

		return r.postEvent(ctx, event.RoomRosterComplete, &event.RoomEventInfo{
			RoomJID: roomJID,
			Nick:    room.Nick(),
		})
	}
	return nil
}

func (r *Rooms) processOccupantPresence(ctx context.Context, room *mucmodel.Room, pr *stravaganza.Presence) error {
	roomJID := room.RoomJID().String()
	nick := pr.FromJID().Resource()

	if pr.IsUnavailable() {
		if newNick := xmpputil.MUCNewNick(pr); len(newNick) > 0 {
			// first phase of an occupant rename; hold until the new nick shows up
			room.SetPendingNickChange(nick, newNick)
			return nil
		}
		if !room.DeleteOccupant(nick) {
			return nil
		}
		return r.postEvent(ctx, event.RoomMemberOffline, &event.RoomMemberEventInfo{
			RoomJID: roomJID,
			Nick:    nick,
			Status:  pr.Status(),
		})
	}
	capsKey, err := r.resolver.ResolveKey(ctx, pr)
	if err != nil {
		return err
	}
	occ := &mucmodel.Occupant{
		Nick:      nick,
		ShowState: pr.ShowState(),
		Status:    pr.Status(),
		CapsKey:   capsKey,
	}
	if !room.RosterReceived() {
		room.SetOccupant(occ) // roster burst members are collected silently
		return nil
	}
	if oldNick, ok := room.CompleteNickChange(nick); ok {
		room.SetOccupant(occ)
		return r.postEvent(ctx, event.RoomMemberNickChanged, &event.RoomMemberEventInfo{
			RoomJID:  roomJID,
			Occupant: occ,
			Nick:     nick,
			OldNick:  oldNick,
		})
	}
	if !room.InRoster(nick) {
		room.SetOccupant(occ)
		return r.postEvent(ctx, event.RoomMemberOnline, &event.RoomMemberEventInfo{
			RoomJID:  roomJID,
			Occupant: occ,
			Nick:     nick,
			Status:   pr.Status(),
		})
	}
	room.SetOccupant(occ)
	return r.postEvent(ctx, event.RoomMemberUpdated, &event.RoomMemberEventInfo{
		RoomJID:  roomJID,
		Occupant: occ,
		Nick:     nick,
		Status:   pr.Status(),
	})
}

func (r *Rooms) postEvent(ctx context.Context, eventName string, inf interface{}) error {
	return r.sn.Post(ctx, sonar.NewEventBuilder(eventName).
		WithInfo(inf).
		WithSender(r).
		Build(),
	)
}
