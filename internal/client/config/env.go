package config

import "github.com/caarlos0/env/v11"

// parseEnv panics on a malformed value such as GOPHPASS_TIMEOUT=soon.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
