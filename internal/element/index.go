// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package element flattens a parsed element tree and indexes it by name
// and kind.
package element

import (
	"github.com/petar-djukic/swiftuml/pkg/types"
)

// Index holds every element of a tree in pre-order, nested declarations
// directly after their enclosing element.
type Index struct {
	elements []types.Element
	depth    []int
	byName   map[string][]int
	byKind   map[types.ElementKind][]int
}

// Build flattens roots into an Index. When nested is false only the roots
// themselves are indexed.
func Build(roots []types.Element, nested bool) *Index {
	idx := &Index{
		byName: make(map[string][]int),
		byKind: make(map[types.ElementKind][]int),
	}
	for _, root := range roots {
		idx.add(root, 0, nested)
	}
	return idx
}

func (idx *Index) add(el types.Element, depth int, nested bool) {
	i := len(idx.elements)
	idx.elements = append(idx.elements, el)
	idx.depth = append(idx.depth, depth)
	if el.HasName() {
		base := el.BaseName()
		idx.byName[base] = append(idx.byName[base], i)
	}
	idx.byKind[el.Kind] = append(idx.byKind[el.Kind], i)

	if !nested {
		return
	}
	for _, child := range el.Children {
		idx.add(child, depth+1, nested)
	}
}

// All returns every indexed element in pre-order.
func (idx *Index) All() []types.Element {
	result := make([]types.Element, len(idx.elements))
	copy(result, idx.elements)
	return result
}

// Depth returns the nesting depth of the i-th element, 0 for roots.
func (idx *Index) Depth(i int) int {
	return idx.depth[i]
}

// ByKind returns all elements of the given kind.
func (idx *Index) ByKind(kind types.ElementKind) []types.Element {
	return idx.lookup(idx.byKind[kind])
}

// ExtensionsOf returns the extensions declared for name.
func (idx *Index) ExtensionsOf(name string) []types.Element {
	var result []types.Element
	for _, i := range idx.byName[name] {
		if idx.elements[i].Kind == types.KindExtension {
			result = append(result, idx.elements[i])
		}
	}
	return result
}

// CountByKind returns the number of elements per kind.
func (idx *Index) CountByKind() map[types.ElementKind]int {
	counts := make(map[types.ElementKind]int, len(idx.byKind))
	for kind, positions := range idx.byKind {
		counts[kind] = len(positions)
	}
	return counts
}

// Len returns the total number of indexed elements.
func (idx *Index) Len() int {
	return len(idx.elements)
}

func (idx *Index) lookup(indices []int) []types.Element {
	if len(indices) == 0 {
		return nil
	}
	result := make([]types.Element, len(indices))
	for i, pos := range indices {
		result[i] = idx.elements[pos]
	}
	return result
}
