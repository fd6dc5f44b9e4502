package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds settings for the SSH front-end.
type ServerConfig struct {
	Host        string        `yaml:"host"`
	Port        string        `yaml:"port"`
	HostKeyPath string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// DefaultServerConfig returns the settings used when no config file or
// environment overrides are present.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:        "::",
		Port:        "2222",
		HostKeyPath: ".stardrift/host_key",
		IdleTimeout: 30 * time.Minute,
	}
}

// LoadServer loads server settings. Search order: the explicit path (an
// error if unreadable), then SSH_* environment variables, on top of
// defaults.
func LoadServer(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.Host = GetEnv("SSH_HOST", cfg.Host)
	cfg.Port = GetEnv("SSH_PORT", cfg.Port)
	cfg.HostKeyPath = GetEnv("SSH_HOST_KEY", cfg.HostKeyPath)

	return cfg, nil
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
