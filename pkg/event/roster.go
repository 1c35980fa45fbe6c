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

package event

import (
	rostermodel "github.com/ortuman/converse/pkg/model/roster"
)

const (
	// ContactOnline event is posted when an available presence is received from a contact resource.
	ContactOnline = "roster.contact.online"

	// ContactOffline event is posted when an unavailable presence is received from a contact resource.
	ContactOffline = "roster.contact.offline"

	// SubscriptionRequested event is posted when an inbound subscription request is received.
	SubscriptionRequested = "roster.subscription.requested"

	// SubscriptionApproved event is posted when a contact approves our subscription request.
	SubscriptionApproved = "roster.subscription.approved"

	// SubscriptionRevoked event is posted when a contact denies or revokes a subscription.
	SubscriptionRevoked = "roster.subscription.revoked"
)

// ContactEventInfo contains all info associated to a contact presence event.
type ContactEventInfo struct {
	// BareJID is the contact bare JID string.
	BareJID string

	// Resource holds the presence reported by the contact resource.
	// Nil on ContactOffline events.
	Resource *rostermodel.Resource

	// ResourceName is the contact resource identifier.
	ResourceName string

	// Status is the free-text status carried by the presence, if any.
	Status string
}

// SubscriptionEventInfo contains all info associated to a subscription event.
type SubscriptionEventInfo struct {
	// BareJID is the requesting or answering contact bare JID string.
	BareJID string
}
