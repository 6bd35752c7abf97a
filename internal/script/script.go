// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package script walks an element tree and assembles the PlantUML class
// diagram text: style preamble, node declarations, connections.
package script

import (
	"github.com/petar-djukic/swiftuml/internal/config"
	"github.com/petar-djukic/swiftuml/internal/element"
	"github.com/petar-djukic/swiftuml/internal/filter"
	"github.com/petar-djukic/swiftuml/internal/relation"
	"github.com/petar-djukic/swiftuml/pkg/types"
)

// Node is one element that made it into the diagram.
type Node struct {
	Element types.Element // Element as decoded
	Name    string        // Diagram identifier, canonical or alias
	Alias   bool          // Name differs from the element's base name
	Depth   int           // Nesting depth, 0 for top-level declarations
}

// Script is the outcome of one diagram generation run.
type Script struct {
	Text        string
	Nodes       []Node
	Connections []string
	Total       int                       // Elements seen, before filtering
	Counts      map[types.ElementKind]int // Elements seen per kind, before filtering
	Extensions  map[string]int            // Extensions seen per extended type name
	Diagnostics relation.Diagnostics
}

// entry is an allowed element during the walk. Folded entries are merged
// extensions whose parents attach to the node of the extended type.
type entry struct {
	el     types.Element
	depth  int
	name   string
	folded bool
	done   bool
}

// Build walks elements and renders the diagram. All names are resolved
// before any link is added, so a protocol declared after its conformers
// still classifies their connections as conformance.
func Build(elements []types.Element, cfg *config.Configuration) *Script {
	if cfg == nil {
		cfg = config.Default()
	}
	idx := element.Build(elements, cfg.NestedTypesShown())
	allow := filter.New(cfg)
	ctx := relation.NewContext(cfg)
	merge := cfg.Extensions() == config.ExtensionsMerged

	var entries []*entry
	for i, el := range idx.All() {
		if !allow.Allow(el) {
			continue
		}
		e := &entry{el: el, depth: idx.Depth(i)}
		if !(merge && el.Kind == types.KindExtension && el.HasName()) {
			e.name = ctx.ResolveName(el, relation.KindFor(el.Kind))
			e.done = true
		}
		entries = append(entries, e)
	}

	// Merged extensions fold into an already declared type. An extension
	// of a type that is not declared becomes that type's node.
	for _, e := range entries {
		if e.done {
			continue
		}
		base := e.el.BaseName()
		if _, ok := ctx.KindOf(base); ok {
			e.name = base
			e.folded = true
			continue
		}
		e.name = ctx.ResolveName(e.el, relation.KindFor(e.el.Kind))
	}

	var nodes []Node
	for _, e := range entries {
		for _, parent := range e.el.Parents {
			ctx.AddLink(e.name, parent)
		}
		if e.folded {
			continue
		}
		nodes = append(nodes, Node{
			Element: e.el,
			Name:    e.name,
			Alias:   e.el.HasName() && e.name != e.el.BaseName(),
			Depth:   e.depth,
		})
	}

	connections := ctx.Connections()
	return &Script{
		Text:        render(cfg, nodes, connections),
		Nodes:       nodes,
		Connections: connections,
		Total:       idx.Len(),
		Counts:      idx.CountByKind(),
		Extensions:  extensionCounts(idx),
		Diagnostics: ctx.Diagnostics(),
	}
}

func extensionCounts(idx *element.Index) map[string]int {
	counts := make(map[string]int)
	for _, ext := range idx.ByKind(types.KindExtension) {
		if !ext.HasName() {
			continue
		}
		base := ext.BaseName()
		if _, ok := counts[base]; !ok {
			counts[base] = len(idx.ExtensionsOf(base))
		}
	}
	return counts
}

// Names returns the diagram identifier of every node in walk order.
func (s *Script) Names() []string {
	names := make([]string, len(s.Nodes))
	for i, n := range s.Nodes {
		names[i] = n.Name
	}
	return names
}
