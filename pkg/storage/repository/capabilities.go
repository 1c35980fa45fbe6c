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

package repository

import (
	"context"

	capsmodel "github.com/ortuman/converse/pkg/model/caps"
)

// Capabilities defines capability cache operations.
//
// Entries are addressed by an opaque cache key: the advertised node string
// for verifiable announcements, the sender full JID otherwise. Writes are
// idempotent; a stale discovery response upserting an already present key
// is harmless.
type Capabilities interface {
	// UpsertCapabilities upserts the capabilities associated to key.
	UpsertCapabilities(ctx context.Context, key string, caps *capsmodel.Capabilities) error

	// CapabilitiesExist tells whether key capabilities have already been cached.
	CapabilitiesExist(ctx context.Context, key string) (bool, error)

	// FetchCapabilities fetches the capabilities associated to key, or nil if none.
	FetchCapabilities(ctx context.Context, key string) (*capsmodel.Capabilities, error)
}
