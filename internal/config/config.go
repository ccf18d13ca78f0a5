package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"portfolio/internal/validation"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment  string `env:"ENV" envDefault:"development"`
	Port         int    `env:"PORT" envDefault:"5000" validate:"min=1,max=65535"`
	MaxBodyBytes int64  `env:"MAX_BODY_BYTES" envDefault:"65536" validate:"gt=0"`

	// CORS Configuration
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," validate:"dive,origin"`

	// Reverse proxies whose forwarding headers are trusted for client IPs
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Rate limiting for the contact endpoint, RPS <= 0 disables it
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"1"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"5" validate:"min=0"`

	// Logging Configuration
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFile     string `env:"LOG_FILE"`
	LogRequests bool   `env:"LOG_REQUESTS" envDefault:"true"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	Mail MailConfig
}

// MailConfig describes the outbound SMTP relay
type MailConfig struct {
	User               string        `env:"EMAIL_USER" validate:"omitempty,email"`
	Password           string        `env:"EMAIL_PASS"`
	Host               string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com" validate:"required,hostname_rfc1123|ip"`
	Port               int           `env:"SMTP_PORT" envDefault:"465" validate:"min=1,max=65535"`
	Timeout            time.Duration `env:"SMTP_TIMEOUT" envDefault:"15s" validate:"gt=0"`
	InsecureSkipVerify bool          `env:"SMTP_INSECURE_SKIP_VERIFY" envDefault:"false"`
}

// HasCredential reports whether a sender credential was supplied
func (m MailConfig) HasCredential() bool {
	return m.Password != ""
}

// HasAccount reports whether a sender account was supplied. It is also the
// recipient, so the relay is unusable without it.
func (m MailConfig) HasAccount() bool {
	return m.User != ""
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// godotenv.Load never overrides variables that are already set
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	return Parse()
}

// Parse builds a Config from the current environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.AllowedOrigins = trimList(cfg.AllowedOrigins)
	cfg.TrustedProxies = trimList(cfg.TrustedProxies)

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.IsProduction() {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	if err := validation.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %s", validation.Summary(err))
	}

	return cfg, nil
}

// trimList drops blank entries left by stray separators
func trimList(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
