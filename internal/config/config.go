// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config holds the diagram generation policy: which elements are
// rendered, and how each relationship kind is labeled and styled. A
// Configuration is built once per run and only read afterwards.
package config

import (
	"errors"
	"strings"

	"github.com/petar-djukic/swiftuml/pkg/types"
)

// ErrInvalidConfig is returned when a configuration document is malformed
// or names unknown values.
var ErrInvalidConfig = errors.New("invalid config")

// Configuration is the complete policy for one diagram generation run.
type Configuration struct {
	Elements          ElementOptions      `yaml:"elements"`
	Relationships     RelationshipOptions `yaml:"relationships"`
	Texts             Texts               `yaml:"texts"`
	Theme             string              `yaml:"theme"`
	SkinparamCommands []string            `yaml:"skinparamCommands"`
	Includes          []string            `yaml:"includes"`
}

// ElementOptions decides which elements take part in the diagram.
type ElementOptions struct {
	HavingAccessLevel []string               `yaml:"havingAccessLevel"` // Allowed access levels (default: all)
	ShowExtensions    ExtensionVisualization `yaml:"showExtensions"`    // How extensions are drawn (default all)
	ShowNestedTypes   *bool                  `yaml:"showNestedTypes"`   // Render types declared inside other types (default true)
	Exclude           []string               `yaml:"exclude"`           // Wildcard name patterns to leave out
}

// RelationshipOptions carries per-kind label and style settings.
type RelationshipOptions struct {
	Inheritance *Relationship `yaml:"inheritance"`
	Realize     *Relationship `yaml:"realize"`
	Dependency  *Relationship `yaml:"dependency"`
	Generic     *Relationship `yaml:"generic"`
}

// Relationship is the label and style for one relationship kind. Exclude
// is only consulted for inheritance.
type Relationship struct {
	Label   string   `yaml:"label"`
	Style   *Style   `yaml:"style"`
	Exclude []string `yaml:"exclude"`
}

// Style is a PlantUML arrow style.
type Style struct {
	LineStyle string `yaml:"lineStyle"` // e.g. bold, dashed, dotted
	LineColor string `yaml:"lineColor"`
	TextColor string `yaml:"textColor"`
}

// Texts are optional document-level captions.
type Texts struct {
	Title  string `yaml:"title"`
	Header string `yaml:"header"`
	Footer string `yaml:"footer"`
}

// Default returns a configuration with no labels, no styles and no
// exclusions, rendering every element.
func Default() *Configuration {
	return &Configuration{}
}

// PlantUML renders the style as an inline arrow directive such as
// "#line:red;line.bold;text:red". Unset parts are left out; an empty
// style renders as "".
func (s *Style) PlantUML() string {
	if s == nil {
		return ""
	}
	var parts []string
	if s.LineColor != "" {
		parts = append(parts, "line:"+s.LineColor)
	}
	if s.LineStyle != "" {
		parts = append(parts, "line."+s.LineStyle)
	}
	if s.TextColor != "" {
		parts = append(parts, "text:"+s.TextColor)
	}
	if len(parts) == 0 {
		return ""
	}
	return "#" + strings.Join(parts, ";")
}

// InheritanceExclude returns the wildcard patterns of parents that never
// get an inheritance or conformance connection.
func (c *Configuration) InheritanceExclude() []string {
	if c == nil || c.Relationships.Inheritance == nil {
		return nil
	}
	return c.Relationships.Inheritance.Exclude
}

// Extensions returns how extensions are drawn, ExtensionsAll when unset.
func (c *Configuration) Extensions() ExtensionVisualization {
	if c == nil || c.Elements.ShowExtensions == "" {
		return ExtensionsAll
	}
	return c.Elements.ShowExtensions
}

// NestedTypesShown reports whether nested type declarations are walked.
func (c *Configuration) NestedTypesShown() bool {
	if c == nil || c.Elements.ShowNestedTypes == nil {
		return true
	}
	return *c.Elements.ShowNestedTypes
}

// AccessLevels returns the access levels an element must have to be
// rendered. An empty list means every level.
func (c *Configuration) AccessLevels() []types.AccessLevel {
	if c == nil || len(c.Elements.HavingAccessLevel) == 0 {
		return []types.AccessLevel{
			types.AccessOpen,
			types.AccessPublic,
			types.AccessInternal,
			types.AccessFilePrivate,
			types.AccessPrivate,
		}
	}
	levels := make([]types.AccessLevel, 0, len(c.Elements.HavingAccessLevel))
	for _, s := range c.Elements.HavingAccessLevel {
		if level, ok := types.ParseAccessLevel(s); ok {
			levels = append(levels, level)
		}
	}
	return levels
}
