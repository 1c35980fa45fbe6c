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

package caps

import (
	"context"

	"github.com/jackal-xmpp/stravaganza"
	"github.com/jackal-xmpp/stravaganza/jid"
	"github.com/ortuman/converse/pkg/storage/repository"
)

// Session represents the stream session consumed by the resolver.
type Session interface {
	// Send sends stanza over the session stream. Delivery is asynchronous;
	// completion is not awaited.
	Send(ctx context.Context, stanza stravaganza.Element) error

	// LocalJID returns the session bound full JID.
	LocalJID() *jid.JID
}

//go:generate moq -out session.mock_test.go . sessionIface:sessionMock
type sessionIface interface {
	Session
}

//go:generate moq -out repository.mock_test.go . capsRepository:repositoryMock
type capsRepository interface {
	repository.Capabilities
}
