package app

import (
	"github.com/beaconhouse/beacon/internal/actions"
	"github.com/beaconhouse/beacon/internal/domain"
	"github.com/beaconhouse/beacon/internal/leads"
	"github.com/beaconhouse/beacon/internal/module"
	"github.com/beaconhouse/beacon/internal/pubsub"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the server to wire up the modules.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Sender     domain.EmailSender
	Wrap       actions.PageWrapper
}

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		// Add new application modules here.
		leads.New(leads.Dependencies{
			Publisher:  deps.Publisher,
			Subscriber: deps.Subscriber,
			Sender:     deps.Sender,
			Wrap:       deps.Wrap,
		}),
	}
}
