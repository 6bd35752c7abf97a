// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package filter decides which elements take part in a diagram.
package filter

import (
	"github.com/petar-djukic/swiftuml/internal/config"
	"github.com/petar-djukic/swiftuml/internal/pattern"
	"github.com/petar-djukic/swiftuml/pkg/types"
)

// Filter is a yes/no predicate over elements built from the element
// options of a configuration.
type Filter struct {
	levels     map[types.AccessLevel]bool
	exclude    []string
	extensions bool
}

// New returns a Filter for cfg. A nil cfg allows everything.
func New(cfg *config.Configuration) *Filter {
	f := &Filter{
		levels:     make(map[types.AccessLevel]bool),
		extensions: cfg.Extensions() != config.ExtensionsNone,
	}
	for _, level := range cfg.AccessLevels() {
		f.levels[level] = true
	}
	if cfg != nil {
		f.exclude = cfg.Elements.Exclude
	}
	return f
}

// Allow reports whether el is rendered. Unnamed elements are allowed so
// the walk can still place them.
func (f *Filter) Allow(el types.Element) bool {
	if el.Kind == types.KindExtension && !f.extensions {
		return false
	}
	if !f.levels[el.Access] {
		return false
	}
	if el.HasName() && pattern.MatchAny(f.exclude, el.BaseName()) {
		return false
	}
	return true
}
