package main

import (
	"log/slog"
	"os"

	"github.com/beaconhouse/beacon/internal/config"
	"github.com/beaconhouse/beacon/internal/logging"
	"github.com/beaconhouse/beacon/internal/server"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		// slog is not configured yet; the default handler writes to stderr.
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.New() // Initialize the structured logger

	// Create a new server instance.
	s, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	// Register all application routes and boot the modules.
	if err := s.RegisterRoutes(); err != nil {
		slog.Error("Failed to register routes", "error", err)
		os.Exit(1)
	}

	// Start the server.
	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
