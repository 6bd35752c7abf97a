// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package relation

import (
	"github.com/petar-djukic/swiftuml/internal/config"
	"github.com/petar-djukic/swiftuml/pkg/types"
)

// Diagnostics counts the places where a run degraded or skipped work
// instead of failing.
type Diagnostics struct {
	UnnamedElements int // Elements resolved to Placeholder
	UnnamedParents  int // Parents linked as Placeholder
	InvalidKinds    int // Registrations with an out-of-range Kind, stored as Generic
	ExcludedLinks   int // Links dropped by inheritance exclude patterns
}

// Context is the per-run state shared by name resolution and link
// building. It is not safe for concurrent use.
type Context struct {
	names *Registry
	links *Builder
	diag  Diagnostics
}

// NewContext returns a fresh Context. A nil cfg behaves like
// config.Default().
func NewContext(cfg *config.Configuration) *Context {
	if cfg == nil {
		cfg = config.Default()
	}
	names := NewRegistry()
	return &Context{
		names: names,
		links: NewBuilder(cfg, names),
	}
}

// ResolveName returns the diagram identity for el. An unseen name is
// registered as canonical under kind. A repeated name gets a new alias,
// and when el is an extension a split connection from the canonical node
// to the alias is recorded.
func (c *Context) ResolveName(el types.Element, kind Kind) string {
	if !el.HasName() {
		c.diag.UnnamedElements++
		return Placeholder
	}
	if !kind.Valid() {
		c.diag.InvalidKinds++
		kind = Generic
	}

	base := el.BaseName()
	display, collided := c.names.Register(base, kind)
	if collided && el.Kind == types.KindExtension {
		c.links.Split(base, display, kind)
	}
	return display
}

// AddLink records the connection from parent to child. childName is the
// display name the child was resolved to.
func (c *Context) AddLink(childName string, parent types.Element) {
	if childName == "" {
		childName = Placeholder
	}
	target := Placeholder
	if parent.HasName() {
		target = parent.BaseName()
	} else {
		c.diag.UnnamedParents++
	}
	if !c.links.Link(childName, target, parent.Name) {
		c.diag.ExcludedLinks++
	}
}

// KindOf returns the kind name was first registered under.
func (c *Context) KindOf(name string) (Kind, bool) {
	return c.names.KindOf(name)
}

// Connections returns every rendered connection: parent connections in
// discovery order followed by extension split connections.
func (c *Context) Connections() []string {
	return append(c.links.Primary(), c.links.Splits()...)
}

// PrimaryConnections returns only the parent connections.
func (c *Context) PrimaryConnections() []string {
	return c.links.Primary()
}

// SplitConnections returns only the extension split connections.
func (c *Context) SplitConnections() []string {
	return c.links.Splits()
}

// Diagnostics returns the degradation counters accumulated so far.
func (c *Context) Diagnostics() Diagnostics {
	return c.diag
}
