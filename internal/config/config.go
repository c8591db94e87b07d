package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultSessionSecret is the cookie signing key used when SESSION_SECRET is
// unset. It is public, so it is only accepted in development.
const DefaultSessionSecret = "beacon-development-session-secret"

// Provider exposes the configuration values the application reads at startup.
type Provider interface {
	GetAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetContentFile() string
	GetApproachURL() string
	GetSchedulingURL() string
	GetEmailProvider() string
	GetEmailAPIKey() string
	GetEmailSender() string
	GetAdmissionsInbox() string
	GetTracingEnabled() bool
	GetTracingServiceName() string
	GetZipkinURL() string
}

// Config holds all configuration for the application.
type Config struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	Addr            string `env:"APP_ADDR" envDefault:":8080"`
	AppBaseURL      string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`
	SessionSecret   string `env:"SESSION_SECRET"`
	ContentFile     string `env:"CONTENT_FILE"`
	ApproachURL     string `env:"APPROACH_URL" envDefault:"/#contact"`
	SchedulingURL   string `env:"SCHEDULING_URL"`
	EmailProvider   string `env:"EMAIL_PROVIDER" envDefault:"log"`
	EmailAPIKey     string `env:"EMAIL_API_KEY"`
	EmailSender     string `env:"EMAIL_SENDER"`
	AdmissionsInbox string `env:"ADMISSIONS_INBOX" envDefault:"admissions@beaconhouse.example"`

	TracingEnabled     bool   `env:"TRACING_ENABLED" envDefault:"false"`
	TracingServiceName string `env:"TRACING_SERVICE_NAME" envDefault:"beacon"`
	ZipkinURL          string `env:"TRACING_ZIPKIN_URL" envDefault:"http://localhost:9411/api/v2/spans"`
}

// New loads configuration from a .env file, if one exists, and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return Parse()
}

// Parse reads the configuration from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.EmailProvider == "resend" && cfg.EmailAPIKey == "" {
		return nil, fmt.Errorf("email provider is 'resend' but EMAIL_API_KEY is not set")
	}
	if cfg.SessionSecret == "" || cfg.SessionSecret == DefaultSessionSecret {
		if cfg.Env != "development" {
			return nil, fmt.Errorf("SESSION_SECRET must be set when APP_ENV is %q", cfg.Env)
		}
		cfg.SessionSecret = DefaultSessionSecret
	}
	return cfg, nil
}

func (c *Config) GetAddr() string               { return c.Addr }
func (c *Config) GetAppBaseURL() string         { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string      { return c.SessionSecret }
func (c *Config) GetContentFile() string        { return c.ContentFile }
func (c *Config) GetApproachURL() string        { return c.ApproachURL }
func (c *Config) GetSchedulingURL() string      { return c.SchedulingURL }
func (c *Config) GetEmailProvider() string      { return c.EmailProvider }
func (c *Config) GetEmailAPIKey() string        { return c.EmailAPIKey }
func (c *Config) GetEmailSender() string        { return c.EmailSender }
func (c *Config) GetAdmissionsInbox() string    { return c.AdmissionsInbox }
func (c *Config) GetTracingEnabled() bool       { return c.TracingEnabled }
func (c *Config) GetTracingServiceName() string { return c.TracingServiceName }
func (c *Config) GetZipkinURL() string          { return c.ZipkinURL }
