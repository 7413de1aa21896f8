package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string   // release declaration .hcl file or directory
	WorldPaths []string // extra world declaration files or directories

	Release    string // "name" or "name:version"; empty resolves all
	OutputPath string // descriptor destination; empty writes to stdout

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
