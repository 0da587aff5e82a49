// Package config loads the server configuration from a TOML file. Every
// knob has a default so the server runs with no file at all; cmd/server
// flags override whatever the file says.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// ServerConfig holds the deployable knobs of the scoreboard server.
type ServerConfig struct {
	TCPAddr            string `toml:"tcp_addr"`
	HTTPAddr           string `toml:"http_addr"`
	LogLevel           string `toml:"log_level"`
	ReadTimeoutSeconds int    `toml:"read_timeout_seconds"`
	PushIntervalMillis int    `toml:"push_interval_millis"`
}

// Default returns the configuration used when no file is given.
func Default() ServerConfig {
	return ServerConfig{
		TCPAddr:            ":8888",
		HTTPAddr:           ":8080",
		LogLevel:           "info",
		ReadTimeoutSeconds: 300,
		PushIntervalMillis: 1000,
	}
}

// Load reads a TOML config file on top of the defaults.
func Load(path string) (ServerConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return ServerConfig{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot run with.
func Validate(cfg ServerConfig) error {
	if cfg.TCPAddr == "" {
		return fmt.Errorf("config missing tcp_addr")
	}
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("config missing http_addr")
	}
	if cfg.ReadTimeoutSeconds < 0 {
		return fmt.Errorf("config read_timeout_seconds must not be negative")
	}
	if cfg.PushIntervalMillis <= 0 {
		return fmt.Errorf("config push_interval_millis must be positive")
	}
	return nil
}

// ReadTimeout returns the session idle timeout as a duration.
func (c ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// PushInterval returns the WebSocket push cadence as a duration.
func (c ServerConfig) PushInterval() time.Duration {
	return time.Duration(c.PushIntervalMillis) * time.Millisecond
}
