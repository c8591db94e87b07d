package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/beaconhouse/beacon/internal/actions"
	"github.com/beaconhouse/beacon/internal/app"
	"github.com/beaconhouse/beacon/internal/config"
	"github.com/beaconhouse/beacon/internal/content"
	"github.com/beaconhouse/beacon/internal/domain"
	"github.com/beaconhouse/beacon/internal/email"
	"github.com/beaconhouse/beacon/internal/handlers"
	appmiddleware "github.com/beaconhouse/beacon/internal/middleware"
	"github.com/beaconhouse/beacon/internal/module"
	"github.com/beaconhouse/beacon/internal/page"
	"github.com/beaconhouse/beacon/internal/pubsub"
	"github.com/beaconhouse/beacon/internal/registry"
	"github.com/beaconhouse/beacon/internal/rendering"
	"github.com/beaconhouse/beacon/web"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Emailer  domain.EmailSender
	Bus      *pubsub.WatermillBridge
	Actions  *actions.Registry
	Registry *registry.Registry

	landing         *page.Landing
	modules         []module.Module
	cancel          context.CancelFunc
	shutdownTracing func(context.Context) error
}

// Option customizes a Server before its modules are created.
type Option func(*options)

type options struct {
	sender    domain.EmailSender
	catalog   *content.Catalog
	callbacks *page.Callbacks
}

// WithEmailSender replaces the sender chosen from the configuration.
func WithEmailSender(sender domain.EmailSender) Option {
	return func(o *options) { o.sender = sender }
}

// WithCatalog replaces the benefits catalog chosen from the configuration.
func WithCatalog(catalog *content.Catalog) Option {
	return func(o *options) { o.catalog = catalog }
}

// WithCallbacks replaces the landing page's default callbacks.
func WithCallbacks(cb page.Callbacks) Option {
	return func(o *options) { o.callbacks = &cb }
}

// New creates a new Server instance. Routes are mounted by RegisterRoutes.
func New(cfg config.Provider, opts ...Option) (*Server, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	emailer := o.sender
	if emailer == nil {
		var err error
		if emailer, err = email.NewEmailService(cfg); err != nil {
			return nil, fmt.Errorf("initialize email service: %w", err)
		}
	}

	catalog := o.catalog
	if catalog == nil {
		var err error
		if catalog, err = loadCatalog(cfg); err != nil {
			return nil, err
		}
	}

	callbacks := page.DefaultCallbacks(cfg)
	if o.callbacks != nil {
		callbacks = *o.callbacks
	}

	actionRegistry := actions.NewRegistry()
	landing, err := page.NewLanding(actionRegistry, catalog, callbacks)
	if err != nil {
		return nil, fmt.Errorf("assemble landing page: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(appmiddleware.Logger)

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	tracer, shutdownTracing, err := pubsub.SetupOTel(context.Background(), pubsub.TracingConfig{
		Enabled:     cfg.GetTracingEnabled(),
		ServiceName: cfg.GetTracingServiceName(),
		ZipkinURL:   cfg.GetZipkinURL(),
	})
	if err != nil {
		return nil, fmt.Errorf("set up tracing: %w", err)
	}
	bus := pubsub.NewWatermillBridgeWithTracer(tracer)

	return &Server{
		E:        e,
		Cfg:      cfg,
		Emailer:  emailer,
		Bus:      bus,
		Actions:  actionRegistry,
		Registry: registry.New(cfg),
		landing:  landing,

		shutdownTracing: shutdownTracing,
		modules: app.NewModules(app.Dependencies{
			Publisher:  bus,
			Subscriber: bus,
			Sender:     emailer,
			Wrap:       page.Wrap,
		}),
	}, nil
}

func loadCatalog(cfg config.Provider) (*content.Catalog, error) {
	if path := cfg.GetContentFile(); path != "" {
		slog.Info("Loading benefits catalog", "path", path)
		return content.Load(path)
	}
	return content.Default()
}
