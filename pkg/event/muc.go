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

package event

import (
	mucmodel "github.com/ortuman/converse/pkg/model/muc"
)

const (
	// RoomLeft event is posted when our own departure from a room is confirmed.
	RoomLeft = "muc.room.left"

	// RoomRosterComplete event is posted once per join, when the initial occupant burst completes.
	RoomRosterComplete = "muc.room.roster_complete"

	// RoomSelfNickChanged event is posted when our own room nickname change completes.
	RoomSelfNickChanged = "muc.room.self_nick_changed"

	// RoomMemberOnline event is posted when a new occupant joins a room.
	RoomMemberOnline = "muc.room.member_online"

	// RoomMemberOffline event is posted when an occupant leaves a room.
	RoomMemberOffline = "muc.room.member_offline"

	// RoomMemberUpdated event is posted when an occupant updates its presence.
	RoomMemberUpdated = "muc.room.member_updated"

	// RoomMemberNickChanged event is posted when an occupant nickname change completes.
	RoomMemberNickChanged = "muc.room.member_nick_changed"
)

// RoomEventInfo contains all info associated to a room self-presence event.
type RoomEventInfo struct {
	// RoomJID is the room bare JID string.
	RoomJID string

	// Nick is our occupant nickname after the event, when meaningful.
	Nick string
}

// RoomMemberEventInfo contains all info associated to a room member presence event.
type RoomMemberEventInfo struct {
	// RoomJID is the room bare JID string.
	RoomJID string

	// Occupant holds the member roster entry after the event.
	// Nil on RoomMemberOffline events.
	Occupant *mucmodel.Occupant

	// Nick is the member nickname the event refers to.
	Nick string

	// OldNick is the vacated nickname on RoomMemberNickChanged events.
	OldNick string

	// Status is the free-text status carried by the presence, if any.
	Status string
}
