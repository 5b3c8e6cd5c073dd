package config

import "time"

// TweakConfig contains tweak command execution configuration.
type TweakConfig struct {
	// CommandTimeout bounds each individual shell command spawned for a
	// tweak. Commands are registry edits and service toggles; anything
	// running longer than this is stuck.
	CommandTimeout time.Duration `env:"COMMAND_TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails to tweak configuration values.
func (t *TweakConfig) Sanitize() {
	if t.CommandTimeout <= 0 {
		t.CommandTimeout = 30 * time.Second
	}
}
