// Package config loads and saves the solver's YAML configuration file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the solver defaults that a CLI invocation overlays with
// explicit flags.
type Config struct {
	N            int    `yaml:"n"`
	OutputWidth  int    `yaml:"output_width"`
	OutputHeight int    `yaml:"output_height"`
	Seed         *int64 `yaml:"seed,omitempty"`
	Heuristic    string `yaml:"heuristic"` // "first" or "entropy"
	LogLevel     string `yaml:"loglevel"`
	LogFile      string `yaml:"logfile"`
}

// Defaults returns a Config populated with all default values.
func Defaults() *Config {
	return &Config{
		N:            2,
		OutputWidth:  32,
		OutputHeight: 32,
		Heuristic:    "first",
		LogLevel:     "info",
		LogFile:      "",
	}
}

// Load reads a Config from path, falling back to Defaults() for any field
// not present in the file. If the file cannot be read, including when it
// does not exist, Load returns Defaults() together with the read error. An
// empty file yields Defaults() and no error; malformed YAML yields a nil
// Config and the parse error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating or truncating the file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
