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

package memory

import (
	"context"
	"sync"

	capsmodel "github.com/ortuman/converse/pkg/model/caps"
)

// Repository represents an in-memory repository implementation.
// Entries do not survive the session; it is the default backend when no
// on-disk cache is configured.
type Repository struct {
	mu   sync.RWMutex
	caps map[string]*capsmodel.Capabilities
}

// New creates and returns an initialized memory Repository instance.
func New() *Repository {
	return &Repository{
		caps: make(map[string]*capsmodel.Capabilities),
	}
}

// UpsertCapabilities satisfies repository.Capabilities interface.
func (r *Repository) UpsertCapabilities(_ context.Context, key string, caps *capsmodel.Capabilities) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.caps[key] = caps
	return nil
}

// CapabilitiesExist tells whether key capabilities have already been cached.
func (r *Repository) CapabilitiesExist(_ context.Context, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.caps[key]
	return ok, nil
}

// FetchCapabilities fetches the capabilities associated to key.
func (r *Repository) FetchCapabilities(_ context.Context, key string) (*capsmodel.Capabilities, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.caps[key], nil
}

// Start satisfies repository.Repository interface.
func (r *Repository) Start(_ context.Context) error { return nil }

// Stop satisfies repository.Repository interface.
func (r *Repository) Stop(_ context.Context) error { return nil }
