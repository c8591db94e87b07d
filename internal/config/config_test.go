package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.GetAddr())
	assert.Equal(t, "/#contact", cfg.GetApproachURL())
	assert.Equal(t, "log", cfg.GetEmailProvider())
	assert.Empty(t, cfg.GetSchedulingURL())
	assert.Equal(t, DefaultSessionSecret, cfg.GetSessionSecret())
	assert.False(t, cfg.GetTracingEnabled())
	assert.Equal(t, "beacon", cfg.GetTracingServiceName())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9000")
	t.Setenv("SCHEDULING_URL", "https://cal.example.com/beacon")
	t.Setenv("ADMISSIONS_INBOX", "team@example.com")
	t.Setenv("TRACING_ENABLED", "true")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.GetAddr())
	assert.Equal(t, "https://cal.example.com/beacon", cfg.GetSchedulingURL())
	assert.Equal(t, "team@example.com", cfg.GetAdmissionsInbox())
	assert.True(t, cfg.GetTracingEnabled())
}

func TestParseResendRequiresKey(t *testing.T) {
	t.Setenv("EMAIL_PROVIDER", "resend")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EMAIL_API_KEY")
}

func TestParseSessionSecret(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		secret  string
		want    string
		wantErr bool
	}{
		{name: "development default", env: "development", want: DefaultSessionSecret},
		{name: "production without secret", env: "production", wantErr: true},
		{name: "production with public default", env: "production", secret: DefaultSessionSecret, wantErr: true},
		{name: "production with secret", env: "production", secret: "s3cret-from-vault", want: "s3cret-from-vault"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", tt.env)
			t.Setenv("SESSION_SECRET", tt.secret)

			cfg, err := Parse()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "SESSION_SECRET")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.GetSessionSecret())
		})
	}
}
