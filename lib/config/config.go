// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the htc client.
//
// Configuration is loaded from a single yaml file specified by:
//   - HTC_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. This keeps the
// client's target deployment deterministic and auditable: pointing a
// staff laptop at production by accident should be impossible without
// an explicit file edit.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the htc client configuration.
type Config struct {
	// API configures the service-center backend.
	API APIConfig `yaml:"api"`

	// Identity configures the external identity provider.
	Identity IdentityConfig `yaml:"identity"`

	// DefaultService is the service preselected in the visit form.
	// When the catalog has no service with this name, the first
	// catalog entry is used instead.
	DefaultService string `yaml:"default_service"`
}

// APIConfig configures the backend connection.
type APIConfig struct {
	// BaseURL is the backend root; the public and auth namespaces
	// hang off it as /public and /auth.
	BaseURL string `yaml:"base_url"`

	// Key authenticates public-namespace requests.
	Key string `yaml:"key"`
}

// IdentityConfig configures the identity provider connection.
type IdentityConfig struct {
	// Endpoint is the provider's base URL.
	Endpoint string `yaml:"endpoint"`
}

// Default returns the default configuration. These exist so every
// field has a sensible zero value, not as a fallback; the config file
// is required.
func Default() *Config {
	return &Config{
		DefaultService: "Courtyard",
	}
}

// Load reads configuration from the file named by flagPath, or by
// HTC_CONFIG when flagPath is empty. Returns an error when neither is
// set: there is no discovery.
func Load(flagPath string) (*Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv("HTC_CONFIG")
	}
	if path == "" {
		return nil, errors.New("no configuration specified: set HTC_CONFIG or pass --config")
	}
	return LoadFile(path)
}

// LoadFile reads configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks that required fields are present.
func (config *Config) Validate() error {
	if config.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if config.API.Key == "" {
		return errors.New("api.key is required")
	}
	if config.Identity.Endpoint == "" {
		return errors.New("identity.endpoint is required")
	}
	if config.DefaultService == "" {
		return errors.New("default_service must not be empty")
	}
	return nil
}
