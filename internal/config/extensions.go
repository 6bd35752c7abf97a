// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ExtensionVisualization decides how extensions appear in the diagram.
type ExtensionVisualization string

const (
	ExtensionsAll    ExtensionVisualization = "all"    // Own node per extension, linked to its type
	ExtensionsMerged ExtensionVisualization = "merged" // Folded into the node of the extended type
	ExtensionsNone   ExtensionVisualization = "none"   // Left out
)

// UnmarshalYAML accepts a visualization name or a boolean, where true
// means all and false means none.
func (e *ExtensionVisualization) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: showExtensions must be a boolean or one of all, merged, none", value.Line)
	}
	v, err := ParseExtensionVisualization(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*e = v
	return nil
}

// ParseExtensionVisualization maps a name or boolean literal to an
// ExtensionVisualization. The empty string stays unset.
func ParseExtensionVisualization(s string) (ExtensionVisualization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "all", "true":
		return ExtensionsAll, nil
	case "merged":
		return ExtensionsMerged, nil
	case "none", "false":
		return ExtensionsNone, nil
	}
	return "", fmt.Errorf("unknown extension visualization %q", s)
}
