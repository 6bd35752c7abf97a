// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/swiftuml/pkg/types"
)

// LoadFile reads and parses a YAML configuration file.
func LoadFile(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML data into a Configuration and validates it. Empty
// input yields the default configuration.
func Parse(data []byte) (*Configuration, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Marshal serializes a Configuration to YAML.
func Marshal(cfg *Configuration) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func validate(cfg *Configuration) error {
	for _, s := range cfg.Elements.HavingAccessLevel {
		if _, ok := types.ParseAccessLevel(s); !ok {
			return fmt.Errorf("unknown access level %q", s)
		}
	}
	for _, p := range cfg.Elements.Exclude {
		if p == "" {
			return fmt.Errorf("empty element exclude pattern")
		}
	}
	for _, p := range cfg.InheritanceExclude() {
		if p == "" {
			return fmt.Errorf("empty inheritance exclude pattern")
		}
	}
	return nil
}
