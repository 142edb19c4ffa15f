package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds tool defaults. CLI flags take precedence; the defaults file
// is optional and fills in whatever the flags leave unset.
type Config struct {
	Namespace string `yaml:"namespace"` // target network namespace
	DNS       string `yaml:"dns"`       // "push" or comma-separated IPv4 list
	OpenVPN   string `yaml:"openvpn"`   // openvpn binary name or path
	LogLevel  string `yaml:"log_level"`
}

// Defaults returns a Config with built-in default values.
func Defaults() Config {
	return Config{
		Namespace: "protected",
		DNS:       "push",
		OpenVPN:   "openvpn",
		LogLevel:  "info",
	}
}

// Load reads the defaults file. A missing file is not an error: built-in
// defaults are returned. Values present in the file overlay the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
