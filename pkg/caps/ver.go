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
	"encoding/base64"
	"fmt"
	"hash"
	"sort"
	"strings"

	"github.com/jackal-xmpp/stravaganza"
	capsmodel "github.com/ortuman/converse/pkg/model/caps"
	discomodel "github.com/ortuman/converse/pkg/model/disco"
)

// computeVer derives an entity capabilities verification string
// (https://xmpp.org/extensions/xep-0115.html#ver-proc) from a disco#info
// identity and feature set.
func computeVer(identities []discomodel.Identity, features []discomodel.Feature, hFn func() hash.Hash) string {
	var sb strings.Builder

	sort.Slice(identities, func(i, j int) bool {
		if identities[i].Category != identities[j].Category {
			return identities[i].Category < identities[j].Category
		}
		if identities[i].Type != identities[j].Type {
			return identities[i].Type < identities[j].Type
		}
		return identities[i].Lang < identities[j].Lang
	})
	for _, identity := range identities {
		sb.WriteString(fmt.Sprintf("%s/%s/%s/%s<", identity.Category, identity.Type, identity.Lang, identity.Name))
	}
	sort.Slice(features, func(i, j int) bool {
		return features[i] < features[j]
	})
	for _, f := range features {
		sb.WriteString(fmt.Sprintf("%s<", f))
	}
	h := hFn()
	_, _ = h.Write([]byte(sb.String()))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func discoInfoEntities(dq stravaganza.Element) ([]discomodel.Identity, []discomodel.Feature) {
	var identities []discomodel.Identity
	var features []discomodel.Feature

	for _, idnEl := range dq.Children("identity") {
		identities = append(identities, discomodel.Identity{
			Category: idnEl.Attribute("category"),
			Name:     idnEl.Attribute("name"),
			Type:     idnEl.Attribute("type"),
			Lang:     idnEl.Attribute(stravaganza.Language),
		})
	}
	for _, featureEl := range dq.Children("feature") {
		features = append(features, featureEl.Attribute("var"))
	}
	return identities, features
}

func capsFromEntities(ci capsInfo, features []discomodel.Feature) *capsmodel.Capabilities {
	return &capsmodel.Capabilities{
		Node:     ci.node,
		Ver:      ci.ver,
		Features: features,
	}
}
