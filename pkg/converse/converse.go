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

package converse

import (
	"context"
	"runtime"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/sonar"
	"github.com/jackal-xmpp/stravaganza"
	"github.com/jackal-xmpp/stravaganza/jid"
	"github.com/ortuman/converse/pkg/caps"
	"github.com/ortuman/converse/pkg/log"
	discomodel "github.com/ortuman/converse/pkg/model/disco"
	"github.com/ortuman/converse/pkg/muc"
	"github.com/ortuman/converse/pkg/presence"
	"github.com/ortuman/converse/pkg/session"
	"github.com/ortuman/converse/pkg/storage"
	"github.com/ortuman/converse/pkg/storage/repository"
	"github.com/ortuman/converse/pkg/version"
)

// Stream represents the connected stanza stream converse operates on.
type Stream interface {
	// Send writes stanza to the stream.
	Send(ctx context.Context, stanza stravaganza.Element) error

	// LocalJID returns the full JID the stream is bound to.
	LocalJID() *jid.JID
}

// Converse wires the presence protocol machinery on top of a connected stream.
type Converse struct {
	cfg    *Config
	logger kitlog.Logger

	sn  *sonar.Sonar
	rep repository.Repository

	resolver    *caps.Resolver
	handler     *presence.Handler
	broadcaster *presence.Broadcaster
	rooms       *muc.Rooms
	service     *session.Service
}

// New returns a new Converse instance operating on stream.
func New(cfg *Config, stream Stream) (*Converse, error) {
	logger := log.NewDefaultLogger(cfg.Logger.Level, cfg.Logger.Format)

	rep, err := storage.New(cfg.Storage, logger)
	if err != nil {
		return nil, err
	}
	sn := sonar.New()

	resolver := caps.NewResolver(rep, stream, logger)
	rooms := muc.NewRooms(resolver, sn, logger)
	handler := presence.NewHandler(stream, resolver, sn, logger)

	self := caps.NewSelf(cfg.Caps.Node, discomodel.Identity{
		Category: cfg.Caps.Category,
		Type:     cfg.Caps.Type,
		Name:     cfg.Caps.Name,
	}, cfg.Caps.Features)

	broadcaster := presence.NewBroadcaster(stream, rooms, self, cfg.Priorities, logger)

	return &Converse{
		cfg:         cfg,
		logger:      logger,
		sn:          sn,
		rep:         rep,
		resolver:    resolver,
		handler:     handler,
		broadcaster: broadcaster,
		rooms:       rooms,
		service:     session.New(resolver, handler, broadcaster, rooms, logger),
	}, nil
}

// Session returns the presence session front end.
func (c *Converse) Session() *session.Service { return c.service }

// Sonar returns the event bus presence events are posted on.
func (c *Converse) Sonar() *sonar.Sonar { return c.sn }

// SetSelfResourceTracker registers tr as the receiver of presences originated
// by other resources of the local account.
func (c *Converse) SetSelfResourceTracker(tr presence.SelfResourceTracker) {
	c.handler.SetSelfResourceTracker(tr)
}

// Start initializes the capabilities store.
func (c *Converse) Start(ctx context.Context) error {
	if err := c.rep.Start(ctx); err != nil {
		return err
	}
	level.Info(c.logger).Log("msg", "converse started",
		"version", version.Version,
		"go_ver", runtime.Version(),
	)
	return nil
}

// Stop drains the session queue and releases the capabilities store.
func (c *Converse) Stop(ctx context.Context) error {
	if err := c.service.Stop(ctx); err != nil {
		return err
	}
	if err := c.rep.Stop(ctx); err != nil {
		return err
	}
	level.Info(c.logger).Log("msg", "converse stopped")
	return nil
}
