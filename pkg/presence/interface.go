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

	"github.com/jackal-xmpp/stravaganza"
	"github.com/jackal-xmpp/stravaganza/jid"
	rostermodel "github.com/ortuman/converse/pkg/model/roster"
)

// Session represents the stanza stream over which presences are sent.
type Session interface {
	// Send writes stanza to the stream.
	Send(ctx context.Context, stanza stravaganza.Element) error

	// LocalJID returns the full JID the stream is bound to.
	LocalJID() *jid.JID
}

// SelfResourceTracker gets notified whenever a presence originated by
// another resource of the local account is received. Such presences are
// diverted here instead of being reported as contact activity.
type SelfResourceTracker interface {
	// BindResource registers an available resource of the local account.
	BindResource(ctx context.Context, res *rostermodel.Resource) error

	// UnbindResource unregisters a local account resource that went offline.
	UnbindResource(ctx context.Context, name, status string) error
}

// capsResolver defines presence capabilities resolver interface.
type capsResolver interface {
	ResolveKey(ctx context.Context, presence *stravaganza.Presence) (string, error)
}

//go:generate moq -out session.mock_test.go . sessionIface:sessionMock
type sessionIface interface {
	Session
}

//go:generate moq -out resolver.mock_test.go . capsResolverIface:capsResolverMock
type capsResolverIface interface {
	capsResolver
}
