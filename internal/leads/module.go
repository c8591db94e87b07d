package leads

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/beaconhouse/beacon/internal/actions"
	"github.com/beaconhouse/beacon/internal/domain"
	"github.com/beaconhouse/beacon/internal/middleware"
	"github.com/beaconhouse/beacon/internal/module"
	"github.com/beaconhouse/beacon/internal/pubsub"
	"github.com/beaconhouse/beacon/internal/registry"
	"github.com/labstack/echo/v4"
)

// Dependencies holds all the services that the module requires.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Sender     domain.EmailSender
	Wrap       actions.PageWrapper
}

// LeadsModule wires the contact form, the lead service and the inbox notifier.
type LeadsModule struct {
	module.BaseModule
	deps    Dependencies
	service *Service
	cancel  context.CancelFunc
}

// New creates a new instance of the module.
func New(deps Dependencies) *LeadsModule {
	return &LeadsModule{
		deps:    deps,
		service: NewService(deps.Publisher),
	}
}

// Name returns the module's unique identifier.
func (m *LeadsModule) Name() string {
	return "leads"
}

// Register makes the lead service available to other modules.
func (m *LeadsModule) Register(reg *registry.Registry) error {
	registry.Set(reg, ServiceKey, m.service)
	return nil
}

// Boot subscribes the notifier and mounts the contact routes.
func (m *LeadsModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting LeadsModule")

	subCtx, cancel := context.WithCancel(ctx)
	notifier := NewNotifier(m.deps.Sender, reg.Config().GetAdmissionsInbox(), reg.Config().GetAppBaseURL())
	if err := pubsub.Subscribe(subCtx, m.deps.Subscriber, LeadRequested, notifier.Handle); err != nil {
		cancel()
		return fmt.Errorf("subscribe %s: %w", LeadRequested.Name(), err)
	}
	m.cancel = cancel

	handler := NewHandler(m.service, m.deps.Wrap)
	g.GET(FormPath, handler.ContactGet)
	g.POST(FormPath, handler.ContactPost, middleware.RateLimiter())
	return nil
}

// Shutdown stops the notifier subscription.
func (m *LeadsModule) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}
