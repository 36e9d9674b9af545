package config

import "time"

type Config struct {
	ServerEndpointAddr string        `env:"GOPHPASS_SERVER"`
	RequestTimeout     time.Duration `env:"GOPHPASS_TIMEOUT"`
}

const (
	defaultServerEndpointAddr = "127.0.0.1:50051"
	defaultRequestTimeout     = 5 * time.Second
)

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = defaultServerEndpointAddr
	c.RequestTimeout = defaultRequestTimeout
}

func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
