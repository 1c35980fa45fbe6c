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
	"crypto/sha1"
	"hash"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza"
	"github.com/ortuman/converse/pkg/storage/repository"
)

const (
	capabilitiesFeature = "http://jabber.org/protocol/caps"

	discoInfoNamespace = "http://jabber.org/protocol/disco#info"
)

// Verifiable entity capabilities hashes. Announcements using any other
// algorithm, or none at all, fall back to per-entity caching: an
// unverified hash must not be trusted to imply identical feature sets
// across entities.
var hashFn = map[string]func() hash.Hash{
	"sha-1": sha1.New,
}

type capsInfo struct {
	key  string
	node string
	ver  string
	hash string
}

// Resolver derives capability cache keys from inbound presence
// announcements (XEP-0115), issuing a disco#info query whenever the key is
// not yet cached, and feeds query responses back into the cache.
type Resolver struct {
	rep    repository.Capabilities
	sess   Session
	logger kitlog.Logger

	reqs map[string]capsInfo
}

// NewResolver creates and initializes a new Resolver instance.
func NewResolver(rep repository.Capabilities, sess Session, logger kitlog.Logger) *Resolver {
	return &Resolver{
		rep:    rep,
		sess:   sess,
		logger: kitlog.With(logger, "module", "caps"),
		reqs:   make(map[string]capsInfo),
	}
}

// ResolveKey computes the capability cache key announced by pr, issuing at
// most one disco#info query when the key is not yet cached. The empty
// string is returned when pr carries no announcement. The key is returned
// whether or not a query was issued, so that the caller can tag the
// resource record before discovery completes.
func (r *Resolver) ResolveKey(ctx context.Context, pr *stravaganza.Presence) (string, error) {
	c := pr.ChildNamespace("c", capabilitiesFeature)
	if c == nil {
		return "", nil
	}
	hashType := c.Attribute("hash")
	node := announcedNode(c)
	from := pr.FromJID().String()

	if _, supported := hashFn[hashType]; supported {
		// verifiable hash: any two entities advertising the same node
		// string share one cache entry
		key := node
		if len(node) == 0 {
			return "", nil
		}
		if err := r.queryIfUncached(ctx, "disco", from, node, key, hashType, c); err != nil {
			return key, err
		}
		return key, nil
	}
	// unknown or legacy announcement: cache per entity
	key := from
	if len(node) > 0 {
		if err := r.queryIfUncached(ctx, "disco_"+from, from, node, key, hashType, c); err != nil {
			return key, err
		}
	}
	return key, nil
}

// ProcessResult feeds a disco#info result back into the capability cache.
// Results not matching an outstanding query, or verifiable announcements
// whose computed verification string mismatches the advertised one, are
// discarded.
func (r *Resolver) ProcessResult(ctx context.Context, iq *stravaganza.IQ) error {
	dq := iq.ChildNamespace("query", discoInfoNamespace)
	if dq == nil || !iq.IsResult() {
		return nil
	}
	reqID := iq.Attribute(stravaganza.ID)

	ci, ok := r.reqs[reqID]
	if !ok {
		return nil
	}
	delete(r.reqs, reqID)

	identities, features := discoInfoEntities(dq)

	if hFn, supported := hashFn[ci.hash]; supported {
		if ver := computeVer(identities, features, hFn); ver != ci.ver {
			level.Warn(r.logger).Log("msg", "verification string mismatch", "node", ci.node, "got", ver, "expected", ci.ver)
			return nil
		}
	}
	if err := r.rep.UpsertCapabilities(ctx, ci.key, capsFromEntities(ci, features)); err != nil {
		return err
	}
	level.Debug(r.logger).Log("msg", "capabilities cached", "key", ci.key)
	return nil
}

func (r *Resolver) queryIfUncached(ctx context.Context, queryID, from, node, key, hashType string, c stravaganza.Element) error {
	cached, err := r.rep.CapabilitiesExist(ctx, key)
	if err != nil {
		return err
	}
	if cached {
		level.Debug(r.logger).Log("msg", "capabilities already cached", "key", key)
		return nil
	}
	r.reqs[queryID] = capsInfo{
		key:  key,
		node: c.Attribute("node"),
		ver:  c.Attribute("ver"),
		hash: hashType,
	}
	discoIQ, _ := stravaganza.NewIQBuilder().
		WithAttribute(stravaganza.ID, queryID).
		WithAttribute(stravaganza.From, r.sess.LocalJID().String()).
		WithAttribute(stravaganza.To, from).
		WithAttribute(stravaganza.Type, stravaganza.GetType).
		WithChild(
			stravaganza.NewBuilder("query").
				WithAttribute(stravaganza.Namespace, discoInfoNamespace).
				WithAttribute("node", node).
				Build(),
		).
		BuildIQ()

	level.Debug(r.logger).Log("msg", "capabilities not cached, requesting disco info", "key", key)
	return r.sess.Send(ctx, discoIQ)
}

// announcedNode returns the node string advertised by a <c/> element:
// the node#ver pair when a verification string is present.
func announcedNode(c stravaganza.Element) string {
	node := c.Attribute("node")
	if len(node) == 0 {
		return ""
	}
	if ver := c.Attribute("ver"); len(ver) > 0 {
		return node + "#" + ver
	}
	return node
}
