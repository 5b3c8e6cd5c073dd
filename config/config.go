package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: OAuth provider and access-tier configuration
//   - http.go: local control API configuration
//   - tweaks.go: tweak command execution configuration
//   - observability.go: metrics configuration
type AppConfig struct {
	// IsDev controls development mode behavior (verbose logging, etc.)
	IsDev bool `env:"DEV" envDefault:"false"`

	// Auth holds the OAuth provider and access-tier configuration.
	Auth AuthConfig `envPrefix:"AUTH_"`

	// HTTP holds the local control API configuration.
	HTTP HTTPConfig

	// Tweaks holds tweak command execution configuration.
	Tweaks TweakConfig `envPrefix:"TWEAK_"`

	// Observability holds metrics configuration.
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Auth.Sanitize()
	c.Tweaks.Sanitize()
	c.Observability.Sanitize()

	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
