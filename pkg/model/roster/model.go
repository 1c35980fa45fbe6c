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

package rostermodel

import (
	"time"

	"github.com/jackal-xmpp/stravaganza"
)

// Resource represents the last known presence of a single contact resource.
// It is built once per available presence stanza and handed over to the
// roster consumer; this package never retains it.
type Resource struct {
	Name         string
	ShowState    stravaganza.ShowState
	Status       string
	Priority     int8
	CapsKey      string
	LastActivity time.Time
}

// IsIdle tells whether the resource reported an idle duration.
func (r *Resource) IsIdle() bool {
	return !r.LastActivity.IsZero()
}
