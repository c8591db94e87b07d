package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/beaconhouse/beacon/internal/actions"
	"github.com/beaconhouse/beacon/internal/handlers"
	"github.com/beaconhouse/beacon/internal/page"
)

// RegisterRoutes mounts the core routes and boots every module.
func (s *Server) RegisterRoutes() error {
	homeHandler := handlers.NewHomeHandler(s.landing)

	s.E.GET("/", homeHandler.HomeGet)
	s.E.GET("/health", handlers.HealthGet)
	actions.NewHandler(s.Actions, page.Wrap).Register(s.E)

	return s.bootModules()
}

// bootModules runs the register phase of every module, then the boot phase.
// Module subscriptions live until Shutdown.
func (s *Server) bootModules() error {
	for _, m := range s.modules {
		if err := m.Register(s.Registry); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	root := s.E.Group("")
	for _, m := range s.modules {
		if err := m.Boot(ctx, root, s.Registry); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		slog.Info("Module booted", "module", m.Name())
	}
	return nil
}
