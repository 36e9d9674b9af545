package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays Config with the variables named in its env tags.
// Unset variables leave the current value untouched. A malformed value
// (e.g. SMTP_PORT=abc) panics, like a broken JSON file does.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
