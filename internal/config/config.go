package config

import (
	"fmt"
	"time"

	"github.com/andyle182810/olamaps/validator"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Application
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"true"`

	// Ola Maps
	APIKey    string        `env:"OLA_MAPS_API_KEY"    validate:"required"`
	Version   string        `env:"OLA_MAPS_VERSION"    envDefault:"v1"          validate:"apiversion"`
	BaseURL   string        `env:"OLA_MAPS_BASE_URL"   validate:"omitempty,url"`
	Timeout   time.Duration `env:"OLA_MAPS_TIMEOUT"    envDefault:"30s"         validate:"gt=0"`
	UserAgent string        `env:"OLA_MAPS_USER_AGENT" envDefault:"olamaps-cli"`

	// OAuth client credentials, optional
	ClientID     string `env:"OLA_MAPS_CLIENT_ID"`
	ClientSecret string `env:"OLA_MAPS_CLIENT_SECRET" validate:"required_with=ClientID"`
	TokenURL     string `env:"OLA_MAPS_TOKEN_URL"     validate:"omitempty,url"`
}

func New() (*Config, error) {
	return parse(env.Options{}) //nolint:exhaustruct
}

// Load reads the configuration from environ instead of the process environment.
func Load(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ}) //nolint:exhaustruct
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config

	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.Default().Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
