package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "recall.yaml"

type Config struct {
	Project  string         `yaml:"project"`
	Database DatabaseConfig `yaml:"database"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type DefaultsConfig struct {
	RunLimit    int `yaml:"run_limit"`
	SearchLimit int `yaml:"search_limit"`
}

// Default is the configuration used when no recall.yaml exists: a
// memory.db next to the working directory and the original tool's
// query limits.
func Default() *Config {
	return &Config{
		Project:  "recall",
		Database: DatabaseConfig{DSN: "sqlite://./memory.db"},
		Defaults: DefaultsConfig{RunLimit: 10, SearchLimit: 20},
	}
}

// Load reads the config file at path. A missing file is not an error —
// the defaults apply, so the CLI works without any setup.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if !strings.HasPrefix(cfg.Database.DSN, "sqlite://") {
		return fmt.Errorf("database dsn must use the sqlite:// scheme")
	}
	if cfg.Defaults.RunLimit <= 0 {
		return fmt.Errorf("defaults.run_limit must be positive")
	}
	if cfg.Defaults.SearchLimit <= 0 {
		return fmt.Errorf("defaults.search_limit must be positive")
	}
	return nil
}
