// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sourcekitten decodes the JSON emitted by `sourcekitten structure`
// into the element tree the diagram generator walks. Only type
// declarations are kept; members, expressions and statements are dropped.
package sourcekitten

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/petar-djukic/swiftuml/pkg/types"
)

// ErrDecode is returned when the input is not a structure document.
var ErrDecode = errors.New("failed to decode structure")

const (
	declPrefix   = "source.lang.swift.decl."
	accessPrefix = "source.lang.swift.accessibility."
)

// node mirrors one entry of a SourceKitten structure document.
type node struct {
	Name           string `json:"key.name"`
	Kind           string `json:"key.kind"`
	Accessibility  string `json:"key.accessibility"`
	InheritedTypes []struct {
		Name string `json:"key.name"`
	} `json:"key.inheritedtypes"`
	Substructure []node `json:"key.substructure"`
}

// DecodeFile reads a structure document from path.
func DecodeFile(path string) ([]types.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening structure file %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads one of three shapes: a single structure document, an array
// of documents, or an object mapping file paths to documents (as produced
// for a whole module). Files of a path map are visited in sorted path
// order.
func Decode(r io.Reader) ([]types.Element, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}

	docs, err := documents(data)
	if err != nil {
		return nil, err
	}

	var elements []types.Element
	for _, doc := range docs {
		elements = append(elements, convertAll(doc.Substructure)...)
	}
	return elements, nil
}

func documents(data []byte) ([]node, error) {
	if data[0] == '[' {
		var docs []node
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		return docs, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if _, ok := raw["key.substructure"]; ok || isDocument(raw) {
		var doc node
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		return []node{doc}, nil
	}

	paths := make([]string, 0, len(raw))
	for p := range raw {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	docs := make([]node, 0, len(paths))
	for _, p := range paths {
		var doc node
		if err := json.Unmarshal(raw[p], &doc); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, p, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// isDocument reports whether the object carries any SourceKitten key.
func isDocument(raw map[string]json.RawMessage) bool {
	for k := range raw {
		if strings.HasPrefix(k, "key.") {
			return true
		}
	}
	return len(raw) == 0
}

func convertAll(nodes []node) []types.Element {
	var elements []types.Element
	for _, n := range nodes {
		if el, ok := convert(n); ok {
			elements = append(elements, el)
		}
	}
	return elements
}

func convert(n node) (types.Element, bool) {
	kind, ok := elementKind(n.Kind)
	if !ok {
		return types.Element{}, false
	}

	el := types.Element{
		Name:     n.Name,
		Kind:     kind,
		Access:   accessLevel(n.Accessibility),
		Children: convertAll(n.Substructure),
	}
	for _, it := range n.InheritedTypes {
		el.Parents = append(el.Parents, types.Element{Name: it.Name, Kind: types.KindOther})
	}
	return el, true
}

// elementKind maps a SourceKitten kind to an ElementKind, reporting false
// for anything that is not a type declaration.
func elementKind(kind string) (types.ElementKind, bool) {
	if !strings.HasPrefix(kind, declPrefix) {
		return types.KindOther, false
	}
	decl := strings.TrimPrefix(kind, declPrefix)
	switch {
	case decl == "class":
		return types.KindClass, true
	case decl == "struct":
		return types.KindStruct, true
	case decl == "protocol":
		return types.KindProtocol, true
	case decl == "enum":
		return types.KindEnum, true
	case decl == "actor":
		return types.KindActor, true
	case decl == "extension" || strings.HasPrefix(decl, "extension."):
		return types.KindExtension, true
	}
	return types.KindOther, false
}

func accessLevel(s string) types.AccessLevel {
	level, _ := types.ParseAccessLevel(strings.TrimPrefix(s, accessPrefix))
	return level
}
