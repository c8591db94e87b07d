package leads

import (
	"github.com/beaconhouse/beacon/internal/domain"
	"github.com/beaconhouse/beacon/internal/pubsub"
)

// LeadRequested is published once for every accepted contact request.
var LeadRequested = pubsub.NewEvent[domain.Lead]("leads.requested", "A visitor asked for an evaluation through the contact form")
