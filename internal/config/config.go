package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"elaris/internal/domain"
	"elaris/internal/infrastructure/storage"
)

type Config struct {
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	// LocalesDir overrides the embedded dictionaries when set.
	LocalesDir      string `env:"LOCALES_DIR"`
	PreferenceStore string `env:"PREFERENCE_STORE" envDefault:"file"`
	PreferencePath  string `env:"PREFERENCE_PATH" envDefault:"data/preferences.json"`
	StorageKey      string `env:"LANGUAGE_STORAGE_KEY" envDefault:"elaris-lang"`
	DatabaseURL     string `env:"DATABASE_URL"`
	SiteURL         string `env:"SITE_URL" envDefault:"https://elarisdigitalsolutions.com"`
	WarnMissing     bool   `env:"I18N_WARN_MISSING" envDefault:"false"`

	// Fallback is DefaultLanguage once validated.
	Fallback domain.Language `env:"-"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the environment already provides the variables.
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	lang, err := domain.ParseLanguage(c.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("config: DEFAULT_LANGUAGE must be one of %v: %w", domain.SupportedLanguages(), err)
	}
	c.Fallback = lang

	c.PreferenceStore = strings.ToLower(strings.TrimSpace(c.PreferenceStore))
	if !slices.Contains(storage.Backends(), c.PreferenceStore) {
		return fmt.Errorf("config: PREFERENCE_STORE must be one of %v, got %q", storage.Backends(), c.PreferenceStore)
	}

	switch c.PreferenceStore {
	case storage.BackendFile, storage.BackendPebble:
		if strings.TrimSpace(c.PreferencePath) == "" {
			return fmt.Errorf("config: PREFERENCE_PATH is required for the %s store", c.PreferenceStore)
		}
	case storage.BackendPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			// Local default when DATABASE_URL is not provided.
			c.DatabaseURL = "postgres://localhost:5432/elaris?sslmode=disable"
		}
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
		}
	}

	if strings.TrimSpace(c.StorageKey) == "" {
		return fmt.Errorf("config: LANGUAGE_STORAGE_KEY cannot be empty")
	}

	site, err := url.Parse(c.SiteURL)
	if err != nil || site.Scheme == "" || site.Host == "" {
		return fmt.Errorf("config: invalid SITE_URL (%q)", c.SiteURL)
	}
	c.SiteURL = strings.TrimRight(c.SiteURL, "/")

	return nil
}
