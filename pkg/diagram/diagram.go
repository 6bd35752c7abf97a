// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package diagram is the public entry point of swiftuml: it turns a
// decoded Swift type tree into a PlantUML class diagram.
package diagram

import (
	"errors"
	"fmt"

	"github.com/petar-djukic/swiftuml/internal/config"
	"github.com/petar-djukic/swiftuml/internal/script"
	"github.com/petar-djukic/swiftuml/internal/sourcekitten"
	"github.com/petar-djukic/swiftuml/pkg/types"
)

// Error types for the diagram API.
var (
	ErrNoElements    = errors.New("no elements to render")
	ErrInvalidConfig = config.ErrInvalidConfig
	ErrDecode        = sourcekitten.ErrDecode
)

// Diagnostics counts the places where generation degraded instead of
// failing.
type Diagnostics struct {
	UnnamedElements int // Elements rendered under the placeholder name
	UnnamedParents  int // Parents rendered under the placeholder name
	InvalidKinds    int // Registrations with an unknown relationship kind
	ExcludedLinks   int // Parent links dropped by exclude patterns
}

// Result holds the generated diagram and the identities behind it.
type Result struct {
	Script      string                    // Complete PlantUML document
	Connections []string                  // Connection statements in emission order
	Names       []string                  // Node identifier per rendered element, in walk order
	Total       int                       // Elements seen, before filtering
	Counts      map[types.ElementKind]int // Elements seen per kind
	Extensions  map[string]int            // Extensions seen per extended type name
	Diagnostics Diagnostics
}

// Generate renders elements with cfg. A nil cfg uses the defaults.
func Generate(elements []types.Element, cfg *config.Configuration) (*Result, error) {
	if len(elements) == 0 {
		return nil, ErrNoElements
	}

	s := script.Build(elements, cfg)
	return &Result{
		Script:      s.Text,
		Connections: s.Connections,
		Names:       s.Names(),
		Total:       s.Total,
		Counts:      s.Counts,
		Extensions:  s.Extensions,
		Diagnostics: Diagnostics(s.Diagnostics),
	}, nil
}

// GenerateFile decodes a SourceKitten structure file and renders it. An
// empty configPath uses the defaults.
func GenerateFile(structurePath, configPath string) (*Result, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	elements, err := sourcekitten.DecodeFile(structurePath)
	if err != nil {
		return nil, err
	}

	result, err := Generate(elements, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", structurePath, err)
	}
	return result, nil
}
