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
	"sort"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/sonar"
	"github.com/jackal-xmpp/stravaganza"
	"github.com/jackal-xmpp/stravaganza/jid"
	"github.com/ortuman/converse/pkg/event"
	rostermodel "github.com/ortuman/converse/pkg/model/roster"
	xmpputil "github.com/ortuman/converse/pkg/util/xmpp"
)

// SubscriptionAction represents a subscription decision to be sent to a contact.
type SubscriptionAction int

const (
	// Subscribe requests a subscription to the contact presence.
	Subscribe SubscriptionAction = iota

	// Subscribed approves the contact pending subscription request.
	Subscribed

	// Unsubscribed denies or revokes the contact subscription.
	Unsubscribed
)

func (a SubscriptionAction) presenceType() string {
	switch a {
	case Subscribe:
		return stravaganza.SubscribeType
	case Subscribed:
		return stravaganza.SubscribedType
	default:
		return stravaganza.UnsubscribedType
	}
}

type noopSelfResourceTracker struct{}

func (noopSelfResourceTracker) BindResource(_ context.Context, _ *rostermodel.Resource) error {
	return nil
}

func (noopSelfResourceTracker) UnbindResource(_ context.Context, _, _ string) error {
	return nil
}

// Handler processes incoming contact presences and keeps track of pending
// subscription requests. Its state is only mutated from the stanza dispatch
// flow, so no locking is performed.
type Handler struct {
	sess        Session
	resolver    capsResolver
	selfTracker SelfResourceTracker
	sn          *sonar.Sonar
	logger      kitlog.Logger

	pendingSubs map[string]struct{}
}

// NewHandler returns an initialized contact presence handler.
func NewHandler(
	sess Session,
	resolver capsResolver,
	sn *sonar.Sonar,
	logger kitlog.Logger,
) *Handler {
	return &Handler{
		sess:        sess,
		resolver:    resolver,
		selfTracker: noopSelfResourceTracker{},
		sn:          sn,
		logger:      kitlog.With(logger, "module", "presence"),
		pendingSubs: make(map[string]struct{}),
	}
}

// SetSelfResourceTracker registers tr as the receiver of presences originated
// by other resources of the local account.
func (h *Handler) SetSelfResourceTracker(tr SelfResourceTracker) {
	h.selfTracker = tr
}

// ProcessPresence applies pr to the handler state.
func (h *Handler) ProcessPresence(ctx context.Context, pr *stravaganza.Presence) error {
	switch pr.Attribute(stravaganza.Type) {
	case stravaganza.SubscribeType:
		return h.processSubscribe(ctx, pr)
	case stravaganza.SubscribedType:
		return h.processSubscribed(ctx, pr)
	case stravaganza.UnsubscribedType:
		return h.processUnsubscribed(ctx, pr)
	case stravaganza.UnsubscribeType:
		return h.processUnsubscribe(pr)
	case stravaganza.UnavailableType:
		return h.processUnavailable(ctx, pr)
	case stravaganza.AvailableType:
		return h.processAvailable(ctx, pr)
	}
	return nil
}

// SendSubscription sends a subscription action presence addressed to contactJID.
// Any pending request from that contact is settled.
func (h *Handler) SendSubscription(ctx context.Context, contactJID *jid.JID, action SubscriptionAction) error {
	bareJID := contactJID.ToBareJID()
	delete(h.pendingSubs, bareJID.String())

	pr := xmpputil.MakePresence(h.sess.LocalJID(), bareJID, action.presenceType(), nil)
	return h.sess.Send(ctx, pr)
}

// PendingSubscriptions returns the bare JIDs with an unanswered subscription request.
func (h *Handler) PendingSubscriptions() []string {
	ret := make([]string, 0, len(h.pendingSubs))
	for bareJID := range h.pendingSubs {
		ret = append(ret, bareJID)
	}
	sort.Strings(ret)
	return ret
}

// ClearSubscriptions drops all pending subscription requests.
func (h *Handler) ClearSubscriptions() {
	h.pendingSubs = make(map[string]struct{})
}

func (h *Handler) processSubscribe(ctx context.Context, pr *stravaganza.Presence) error {
	bareJID := pr.FromJID().ToBareJID().String()

	// a repeated request simply overwrites the previous one
	h.pendingSubs[bareJID] = struct{}{}

	level.Info(h.logger).Log("msg", "subscription requested", "jid", bareJID)

	return h.postEvent(ctx, event.SubscriptionRequested, &event.SubscriptionEventInfo{
		BareJID: bareJID,
	})
}

func (h *Handler) processSubscribed(ctx context.Context, pr *stravaganza.Presence) error {
	bareJID := pr.FromJID().ToBareJID().String()
	delete(h.pendingSubs, bareJID)

	level.Info(h.logger).Log("msg", "subscription approved", "jid", bareJID)

	return h.postEvent(ctx, event.SubscriptionApproved, &event.SubscriptionEventInfo{
		BareJID: bareJID,
	})
}

func (h *Handler) processUnsubscribed(ctx context.Context, pr *stravaganza.Presence) error {
	bareJID := pr.FromJID().ToBareJID().String()
	delete(h.pendingSubs, bareJID)

	level.Info(h.logger).Log("msg", "subscription revoked", "jid", bareJID)

	return h.postEvent(ctx, event.SubscriptionRevoked, &event.SubscriptionEventInfo{
		BareJID: bareJID,
	})
}

func (h *Handler) processUnsubscribe(pr *stravaganza.Presence) error {
	// requester withdrew its own request
	delete(h.pendingSubs, pr.FromJID().ToBareJID().String())
	return nil
}

func (h *Handler) processAvailable(ctx context.Context, pr *stravaganza.Presence) error {
	if xmpputil.IsMUCUserPresence(pr) {
		return nil // room presences follow a different flow
	}
	fromJID := pr.FromJID()

	capsKey, err := h.resolver.ResolveKey(ctx, pr)
	if err != nil {
		return err
	}
	var lastActivity time.Time
	if secs := xmpputil.IdleSeconds(pr); secs > 0 {
		lastActivity = time.Now().Add(-time.Duration(secs) * time.Second)
	}
	res := &rostermodel.Resource{
		Name:         fromJID.Resource(),
		ShowState:    pr.ShowState(),
		Status:       pr.Status(),
		Priority:     pr.Priority(),
		CapsKey:      capsKey,
		LastActivity: lastActivity,
	}
	if fromJID.MatchesWithOptions(h.sess.LocalJID(), jid.MatchesBare) {
		return h.selfTracker.BindResource(ctx, res)
	}
	return h.postEvent(ctx, event.ContactOnline, &event.ContactEventInfo{
		BareJID:      fromJID.ToBareJID().String(),
		ResourceName: fromJID.Resource(),
		Resource:     res,
		Status:       pr.Status(),
	})
}

func (h *Handler) processUnavailable(ctx context.Context, pr *stravaganza.Presence) error {
	if xmpputil.IsMUCUserPresence(pr) {
		return nil
	}
	fromJID := pr.FromJID()

	if fromJID.MatchesWithOptions(h.sess.LocalJID(), jid.MatchesBare) {
		return h.selfTracker.UnbindResource(ctx, fromJID.Resource(), pr.Status())
	}
	return h.postEvent(ctx, event.ContactOffline, &event.ContactEventInfo{
		BareJID:      fromJID.ToBareJID().String(),
		ResourceName: fromJID.Resource(),
		Status:       pr.Status(),
	})
}

func (h *Handler) postEvent(ctx context.Context, eventName string, inf interface{}) error {
	return h.sn.Post(ctx, sonar.NewEventBuilder(eventName).
		WithInfo(inf).
		WithSender(h).
		Build(),
	)
}
