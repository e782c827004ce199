package config

import "time"

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	cfg := defaultConfig()
	cfg.Status.Timeout = 50 * time.Millisecond
	cfg.Log = LogConfig{Level: "OFF"}
	return cfg
}
