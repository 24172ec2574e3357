package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	accountshttp "github.com/aussiebroadwan/dotes/internal/accounts/http"
	"github.com/aussiebroadwan/dotes/pkg/httpx"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	SecretKey      string `env:"SECRET_KEY"`                                 // Required outside dev: HS256 signing secret (min 16 bytes)
	Issuer         string `env:"AUTH_ISSUER" envDefault:"dotes-accounts"`    // Optional: issuer claim stamped on and required of tokens
	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"sqlite"`        // sqlite or postgres
	DatabaseURL    string `env:"DATABASE_URL" envDefault:"accounts.db"`      // sqlite file path or postgres DSN
	PepperFile     string `env:"AUTH_PEPPER_FILE" envDefault:"pepper"`       // Pepper for password hashing, generated on first start
	Env            string `env:"ENV" envDefault:"dev"`                       // Environment (dev, staging, prod)
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`                // debug, info, warn, error
	LogFormat      string `env:"LOG_FORMAT" envDefault:"json"`               // json, text
	Port           int    `env:"PORT" envDefault:"8080"`                     // HTTP server port
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`          // Serve /metrics

	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"` // Graceful shutdown timeout

	// Rate limit overrides. Unset fields keep the built-in profile; a
	// negative request count disables the profile.
	StrictLimit   RateLimitOverride `envPrefix:"RATELIMIT_STRICT_"`
	ModerateLimit RateLimitOverride `envPrefix:"RATELIMIT_MODERATE_"`
	LenientLimit  RateLimitOverride `envPrefix:"RATELIMIT_LENIENT_"`
}

type RateLimitOverride struct {
	Requests  int `env:"REQUESTS"`
	WindowSec int `env:"WINDOW_SEC"`
	Burst     int `env:"BURST"`
}

// apply returns def with every set field of o applied.
func (o RateLimitOverride) apply(def httpx.RateLimitConfig) httpx.RateLimitConfig {
	if o.Requests != 0 {
		def.RequestsPerWindow = o.Requests
	}
	if o.WindowSec > 0 {
		def.Window = time.Duration(o.WindowSec) * time.Second
	}
	if o.Burst > 0 {
		def.Burst = o.Burst
	}
	return def
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that cannot be defaulted.
func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("config: unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}

	if c.DatabaseURL == "" {
		return errors.New("config: DATABASE_URL is required")
	}
	if c.SecretKey == "" && !c.IsDev() {
		return errors.New("config: SECRET_KEY is required outside ENV=dev")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid PORT %d", c.Port)
	}
	return nil
}

func (c Config) IsDev() bool { return c.Env == "dev" }

// RateLimits returns the router profiles with the env overrides applied.
func (c Config) RateLimits() accountshttp.RateLimits {
	def := accountshttp.DefaultRateLimits()
	return accountshttp.RateLimits{
		Strict:   c.StrictLimit.apply(def.Strict),
		Moderate: c.ModerateLimit.apply(def.Moderate),
		Lenient:  c.LenientLimit.apply(def.Lenient),
	}
}
