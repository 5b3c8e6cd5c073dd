package config

// HTTPConfig contains the local control API configuration.
type HTTPConfig struct {
	// Addr is the address to bind the control API to. The API is meant for
	// same-machine consumers (the interactive surface and tweakctl), so the
	// default stays on loopback.
	Addr string `env:"HTTP_ADDR" envDefault:"127.0.0.1:8686"`
}
