package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	BackendSanity   = "sanity"
	BackendPostgres = "postgres"
)

type Config struct {
	// Server
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	PublicDir   string `env:"PUBLIC_DIR" envDefault:"public"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Content source
	ContentBackend string        `env:"CONTENT_BACKEND" envDefault:"sanity"`
	ContentTimeout time.Duration `env:"CONTENT_TIMEOUT" envDefault:"30s"`

	// Sanity
	SanityProjectID  string `env:"SANITY_PROJECT_ID"`
	SanityDataset    string `env:"SANITY_DATASET" envDefault:"production"`
	SanityAPIVersion string `env:"SANITY_API_VERSION" envDefault:"2024-01-01"`
	SanityToken      string `env:"SANITY_TOKEN"`
	SanityUseCDN     bool   `env:"SANITY_USE_CDN" envDefault:"true"`
	SanityBaseURL    string `env:"SANITY_BASE_URL"`

	// Database mirror
	DatabaseURL string `env:"DATABASE_URL"`

	// Cache
	LeagueCacheTTL       time.Duration `env:"LEAGUE_CACHE_TTL" envDefault:"1h"`
	AnnouncementCacheTTL time.Duration `env:"ANNOUNCEMENT_CACHE_TTL" envDefault:"5m"`

	// Revalidation webhook
	RevalidateSecret string `env:"REVALIDATE_SECRET"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	c.ContentBackend = strings.ToLower(strings.TrimSpace(c.ContentBackend))

	switch c.ContentBackend {
	case BackendSanity:
		if c.SanityProjectID == "" && c.SanityBaseURL == "" {
			return fmt.Errorf("SANITY_PROJECT_ID environment variable is required")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required")
		}
	default:
		return fmt.Errorf("unknown CONTENT_BACKEND %q", c.ContentBackend)
	}

	if c.LeagueCacheTTL <= 0 {
		return fmt.Errorf("LEAGUE_CACHE_TTL must be positive")
	}
	if c.AnnouncementCacheTTL <= 0 {
		return fmt.Errorf("ANNOUNCEMENT_CACHE_TTL must be positive")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
