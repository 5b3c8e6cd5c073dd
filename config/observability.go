package config

// StatsDConfig contains StatsD metrics emission configuration.
// Metrics are disabled unless an address is configured.
type StatsDConfig struct {
	Addr   string `env:"ADDR"`
	Prefix string `env:"PREFIX" envDefault:"tweakd"`
}

// ObservabilityConfig groups observability-related configuration.
type ObservabilityConfig struct {
	StatsD StatsDConfig `envPrefix:"STATSD_"`
}

// Sanitize applies guardrails to observability configuration values.
func (o *ObservabilityConfig) Sanitize() {
	if o.StatsD.Prefix == "" {
		o.StatsD.Prefix = "tweakd"
	}
}
