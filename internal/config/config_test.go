package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENV", "PORT", "MAX_BODY_BYTES", "ALLOWED_ORIGINS", "TRUSTED_PROXIES", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"LOG_LEVEL", "LOG_FILE", "LOG_REQUESTS", "OTEL_EXPORTER_OTLP_ENDPOINT",
		"EMAIL_USER", "EMAIL_PASS", "SMTP_HOST", "SMTP_PORT", "SMTP_TIMEOUT", "SMTP_INSECURE_SKIP_VERIFY",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParseDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "./logs/api.log", cfg.LogFile)
	assert.True(t, cfg.LogRequests)
	assert.Equal(t, float64(1), cfg.RateLimitRPS)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.Host)
	assert.Equal(t, 465, cfg.Mail.Port)
	assert.Equal(t, 15*time.Second, cfg.Mail.Timeout)
	assert.False(t, cfg.Mail.HasCredential())
	assert.False(t, cfg.Mail.HasAccount())
}

func TestParseOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "8081")
	t.Setenv("ALLOWED_ORIGINS", "https://me.dev, https://www.me.dev")
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("EMAIL_USER", "me@example.com")
	t.Setenv("EMAIL_PASS", "app-password")
	t.Setenv("SMTP_TIMEOUT", "3s")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, []string{"https://me.dev", "https://www.me.dev"}, cfg.AllowedOrigins)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/app/logs/api.log", cfg.LogFile)
	assert.True(t, cfg.Mail.HasCredential())
	assert.Equal(t, 3*time.Second, cfg.Mail.Timeout)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port out of range", "PORT", "70000"},
		{"port not a number", "PORT", "http"},
		{"unknown log level", "LOG_LEVEL", "chatty"},
		{"malformed sender", "EMAIL_USER", "not-an-address"},
		{"origin with path", "ALLOWED_ORIGINS", "https://me.dev/contact"},
		{"origin without scheme", "ALLOWED_ORIGINS", "me.dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=6001\nEMAIL_USER=from-file@example.com\n"), 0o600))
	t.Setenv("EMAIL_USER", "from-env@example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 6001, cfg.Port)
	assert.Equal(t, "from-env@example.com", cfg.Mail.User)
}
