// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package relation

import (
	"strings"

	"github.com/petar-djukic/swiftuml/internal/config"
	"github.com/petar-djukic/swiftuml/internal/pattern"
)

// Builder renders connection statements. Primary connections come from
// declared parents; split connections tie an extension alias back to the
// type it extends.
type Builder struct {
	cfg     *config.Configuration
	names   *Registry
	primary []string
	splits  []string
}

// NewBuilder returns a Builder that resolves parent kinds through names.
func NewBuilder(cfg *config.Configuration, names *Registry) *Builder {
	return &Builder{cfg: cfg, names: names}
}

// Link records "<parent> <arrow> <child>[ <style>][ : <label>]". The kind
// comes from the parent's registration; a parent without one is adopted
// as Inherits, except the placeholder. Parents whose full name matches an
// inheritance exclude pattern are skipped and Link reports false.
func (b *Builder) Link(child, parent, parentFullName string) bool {
	if parentFullName != "" && pattern.MatchAny(b.cfg.InheritanceExclude(), parentFullName) {
		return false
	}

	kind := Inherits
	if parent != Placeholder {
		kind = b.names.Adopt(parent, Inherits)
	}
	b.primary = append(b.primary, render(parent, kind.Arrow(), child, style(b.cfg, kind), label(b.cfg, kind)))
	return true
}

// Split records the connection from a canonical name to one of its
// extension aliases. Without a configured dependency label the literal
// name of kind is used.
func (b *Builder) Split(base, alias string, kind Kind) {
	lbl := label(b.cfg, ExtensionDependency)
	if lbl == "" {
		lbl = kind.String()
	}
	b.splits = append(b.splits, render(base, ExtensionDependency.Arrow(), alias, style(b.cfg, ExtensionDependency), lbl))
}

// Primary returns the parent connections in discovery order.
func (b *Builder) Primary() []string {
	out := make([]string, len(b.primary))
	copy(out, b.primary)
	return out
}

// Splits returns the extension split connections in discovery order.
func (b *Builder) Splits() []string {
	out := make([]string, len(b.splits))
	copy(out, b.splits)
	return out
}

func render(from, arrow, to, style, label string) string {
	var sb strings.Builder
	sb.WriteString(from)
	sb.WriteByte(' ')
	sb.WriteString(arrow)
	sb.WriteByte(' ')
	sb.WriteString(to)
	if style != "" {
		sb.WriteByte(' ')
		sb.WriteString(style)
	}
	if label != "" {
		sb.WriteString(" : ")
		sb.WriteString(label)
	}
	return sb.String()
}
