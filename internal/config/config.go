// Package config holds the application settings record. A single default
// value exists for the process; every accessor returns a fresh copy.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppConfig is the application settings record.
type AppConfig struct {
	AppName string `json:"appName" yaml:"appName"`
	Version string `json:"version" yaml:"version"`
	Debug   bool   `json:"debug" yaml:"debug"`
	APIURL  string `json:"apiUrl" yaml:"apiUrl"`
	// Timeout is in milliseconds.
	Timeout int `json:"timeout" yaml:"timeout"`
}

// Overrides is a partial AppConfig. Nil fields keep their default value.
type Overrides struct {
	AppName *string `json:"appName,omitempty" yaml:"appName,omitempty"`
	Version *string `json:"version,omitempty" yaml:"version,omitempty"`
	Debug   *bool   `json:"debug,omitempty" yaml:"debug,omitempty"`
	APIURL  *string `json:"apiUrl,omitempty" yaml:"apiUrl,omitempty"`
	Timeout *int    `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

var defaultConfig = AppConfig{
	AppName: "TypeScript Modules Demo",
	Version: "1.0.0",
	Debug:   true,
	APIURL:  "https://api.example.com",
	Timeout: 5000,
}

// Default returns the process-wide default settings.
func Default() AppConfig {
	return defaultConfig
}

// Get returns a copy of the current settings, which are always the defaults.
func Get() AppConfig {
	return defaultConfig
}

// Update returns the defaults with every non-nil field of o applied.
func Update(o Overrides) AppConfig {
	return o.Apply(defaultConfig)
}

// Apply returns base with every non-nil field of o applied.
func (o Overrides) Apply(base AppConfig) AppConfig {
	if o.AppName != nil {
		base.AppName = *o.AppName
	}
	if o.Version != nil {
		base.Version = *o.Version
	}
	if o.Debug != nil {
		base.Debug = *o.Debug
	}
	if o.APIURL != nil {
		base.APIURL = *o.APIURL
	}
	if o.Timeout != nil {
		base.Timeout = *o.Timeout
	}
	return base
}

// Load attempts to read utilkit.yml or utilkit.yaml from the given directory
// and applies it as overrides on top of the defaults. Returns the defaults
// (not an error) if no config file exists.
func Load(dir string) (AppConfig, error) {
	for _, name := range []string{"utilkit.yml", "utilkit.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var o Overrides
		if err := yaml.Unmarshal(data, &o); err != nil {
			return AppConfig{}, fmt.Errorf("parse %s: %w", path, err)
		}
		return Update(o), nil
	}
	return Get(), nil
}

// JSON renders cfg as two-space indented JSON.
func JSON(cfg AppConfig) (string, error) {
	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return string(out), nil
}

// Ptr returns a pointer to v, for building Overrides literals.
func Ptr[T any](v T) *T {
	return &v
}
