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

package session

import (
	"context"
	"sync/atomic"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/jackal-xmpp/runqueue/v2"
	"github.com/jackal-xmpp/stravaganza"
	"github.com/jackal-xmpp/stravaganza/jid"
	"github.com/ortuman/converse/pkg/caps"
	"github.com/ortuman/converse/pkg/muc"
	"github.com/ortuman/converse/pkg/presence"
)

// Service is the presence session front end. Every entry point is scheduled
// on the session run queue, so handlers never observe concurrent access.
type Service struct {
	resolver    *caps.Resolver
	handler     *presence.Handler
	broadcaster *presence.Broadcaster
	rooms       *muc.Rooms
	rq          *runqueue.RunQueue
	logger      kitlog.Logger

	stopped uint32
}

// New returns an initialized session service.
func New(
	resolver *caps.Resolver,
	handler *presence.Handler,
	broadcaster *presence.Broadcaster,
	rooms *muc.Rooms,
	logger kitlog.Logger,
) *Service {
	return &Service{
		resolver:    resolver,
		handler:     handler,
		broadcaster: broadcaster,
		rooms:       rooms,
		rq:          runqueue.New(uuid.New().String()),
		logger:      kitlog.With(logger, "module", "session"),
	}
}

// DispatchPresence routes an incoming presence either to the room state
// machine, when it originates from a joined room, or to the contact handler.
func (s *Service) DispatchPresence(pr *stravaganza.Presence) {
	s.rq.Run(func() {
		ctx := context.Background()

		var err error
		if s.rooms.Room(pr.FromJID()) != nil {
			err = s.rooms.ProcessPresence(ctx, pr)
		} else {
			err = s.handler.ProcessPresence(ctx, pr)
		}
		if err != nil {
			level.Warn(s.logger).Log("msg", "failed to process presence", "err", err)
		}
	})
}

// DispatchRoomPresence applies an incoming presence to the room state machine.
func (s *Service) DispatchRoomPresence(pr *stravaganza.Presence) {
	s.rq.Run(func() {
		if err := s.rooms.ProcessPresence(context.Background(), pr); err != nil {
			level.Warn(s.logger).Log("msg", "failed to process room presence", "err", err)
		}
	})
}

// DispatchIQ feeds a result IQ to the capabilities resolver. IQs that do not
// answer an in-flight service discovery query are discarded.
func (s *Service) DispatchIQ(iq *stravaganza.IQ) {
	s.rq.Run(func() {
		if err := s.resolver.ProcessResult(context.Background(), iq); err != nil {
			level.Warn(s.logger).Log("msg", "failed to process disco result", "err", err)
		}
	})
}

// UpdatePresence announces a new availability to the server and every joined room.
func (s *Service) UpdatePresence(show stravaganza.ShowState, status string, idleSecs int64) {
	s.rq.Run(func() {
		if err := s.broadcaster.UpdatePresence(context.Background(), show, status, idleSecs); err != nil {
			level.Warn(s.logger).Log("msg", "failed to update presence", "err", err)
		}
	})
}

// JoinRoom joins the room identified by occupantJID, whose resource carries
// the desired nickname.
func (s *Service) JoinRoom(occupantJID *jid.JID) {
	s.rq.Run(func() {
		if err := s.broadcaster.JoinRoom(context.Background(), occupantJID); err != nil {
			level.Warn(s.logger).Log("msg", "failed to join room", "err", err)
		}
	})
}

// ChangeRoomNickname requests a nickname change on a joined room.
func (s *Service) ChangeRoomNickname(roomJID *jid.JID, newNick string) {
	s.rq.Run(func() {
		if err := s.broadcaster.ChangeRoomNickname(context.Background(), roomJID, newNick); err != nil {
			level.Warn(s.logger).Log("msg", "failed to change room nickname", "err", err)
		}
	})
}

// LeaveRoom announces departure from a joined room.
func (s *Service) LeaveRoom(roomJID *jid.JID) {
	s.rq.Run(func() {
		if err := s.broadcaster.LeaveRoom(context.Background(), roomJID); err != nil {
			level.Warn(s.logger).Log("msg", "failed to leave room", "err", err)
		}
	})
}

// SendSubscription sends a subscription action presence addressed to contactJID.
func (s *Service) SendSubscription(contactJID *jid.JID, action presence.SubscriptionAction) {
	s.rq.Run(func() {
		if err := s.handler.SendSubscription(context.Background(), contactJID, action); err != nil {
			level.Warn(s.logger).Log("msg", "failed to send subscription", "err", err)
		}
	})
}

// PendingSubscriptions returns the bare JIDs with an unanswered subscription
// request, or nil once the service has been stopped.
func (s *Service) PendingSubscriptions() []string {
	if atomic.LoadUint32(&s.stopped) == 1 {
		// the drained queue would drop the closure and leave us waiting
		return nil
	}
	ch := make(chan []string, 1)
	s.rq.Run(func() {
		ch <- s.handler.PendingSubscriptions()
	})
	return <-ch
}

// Logout drops all per-session presence state.
func (s *Service) Logout() {
	s.rq.Run(func() {
		s.handler.ClearSubscriptions()
		s.rooms.Clear()
	})
}

// Stop drains the session run queue. Entry points invoked afterwards are
// discarded.
func (s *Service) Stop(_ context.Context) error {
	atomic.StoreUint32(&s.stopped, 1)

	ch := make(chan struct{})
	s.rq.Stop(func() { close(ch) })
	<-ch
	return nil
}
