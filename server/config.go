package server

import (
	"time"

	"github.com/joeshaw/envdecode"
)

// Config holds the server's environment-driven settings
type Config struct {
	Addr string `env:"MADIAO_ADDR,default=:8000"`

	// Websocket connections are long-lived, so only the header read and
	// idle periods are bounded.
	ReadHeaderTimeout time.Duration `env:"MADIAO_READ_HEADER_TIMEOUT,default=10s"`
	IdleTimeout       time.Duration `env:"MADIAO_IDLE_TIMEOUT,default=5m"`
}

// ConfigFromEnv reads the server config from the environment
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
