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
	"crypto/sha1"

	"github.com/jackal-xmpp/stravaganza"
	discomodel "github.com/ortuman/converse/pkg/model/disco"
)

// Self holds the client's own entity capabilities announcement: the node
// URL plus the verification string derived from the client identity and
// supported features. Identity and features are fixed at construction, so
// the announcement element is computed once.
type Self struct {
	node string
	ver  string
	elem stravaganza.Element
}

// NewSelf creates the client's own announcement given its node URL,
// disco identity and supported feature set.
func NewSelf(node string, identity discomodel.Identity, features []discomodel.Feature) *Self {
	ver := computeVer([]discomodel.Identity{identity}, features, sha1.New)
	return &Self{
		node: node,
		ver:  ver,
		elem: stravaganza.NewBuilder("c").
			WithAttribute(stravaganza.Namespace, capabilitiesFeature).
			WithAttribute("hash", "sha-1").
			WithAttribute("node", node).
			WithAttribute("ver", ver).
			Build(),
	}
}

// Node returns the announced node URL.
func (s *Self) Node() string { return s.node }

// Ver returns the announced verification string.
func (s *Self) Ver() string { return s.ver }

// Element returns the <c/> announcement to attach to outgoing presences.
func (s *Self) Element() stravaganza.Element { return s.elem }
