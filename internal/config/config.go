package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr           string        `env:"HTTP_ADDR" envDefault:":8080"`
	DatabaseURL        string        `env:"DATABASE_URL"`
	RunMigrations      bool          `env:"RUN_MIGRATIONS" envDefault:"true"`
	DefaultLocale      string        `env:"DEFAULT_LOCALE" envDefault:"en"`
	SeedSampleData     bool          `env:"SEED_SAMPLE_DATA" envDefault:"false"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	GinMode            string        `env:"GIN_MODE" envDefault:"release"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	BcryptCost         int           `env:"BCRYPT_COST" envDefault:"10"`
	EventSweepInterval time.Duration `env:"EVENT_SWEEP_INTERVAL" envDefault:"10m"`
}

// UsesDatabase reports whether the PostgreSQL store is configured.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies the configuration rules and normalizes values in place.
func (c *Config) validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("config: HTTP_ADDR cannot be empty")
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: GIN_MODE must be debug, release or test (got %q)", c.GinMode)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: SHUTDOWN_TIMEOUT must be positive")
	}

	// Zero turns the event sweep off.
	if c.EventSweepInterval < 0 {
		return fmt.Errorf("config: EVENT_SWEEP_INTERVAL cannot be negative")
	}

	origins := c.CORSAllowedOrigins[:0]
	for _, o := range c.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = append(origins, "*")
	}
	c.CORSAllowedOrigins = origins

	c.DatabaseURL = strings.TrimSpace(c.DatabaseURL)
	if c.DatabaseURL == "" {
		// In-memory store.
		return nil
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	return nil
}
