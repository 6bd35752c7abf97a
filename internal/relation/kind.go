// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package relation assigns diagram identities to elements and renders the
// connections between them. One Context lives for exactly one diagram
// generation run.
package relation

import (
	"github.com/petar-djukic/swiftuml/internal/config"
	"github.com/petar-djukic/swiftuml/pkg/types"
)

// Kind is the relationship a name was first registered under. It decides
// the arrow glyph, label and style of every connection into that name.
type Kind int

const (
	Inherits            Kind = iota // Class or struct inheritance
	ConformsTo                      // Protocol conformance
	ExtensionDependency             // Extension of an existing type
	Generic                         // Anything else
)

// errorMarker is rendered in place of an arrow for an out-of-range Kind.
const errorMarker = "--ERROR--"

// String returns the literal name of the kind, used as the fallback label
// of extension split connections.
func (k Kind) String() string {
	switch k {
	case Inherits:
		return "inherits"
	case ConformsTo:
		return "conforms to"
	case ExtensionDependency:
		return "ext"
	case Generic:
		return "generic"
	default:
		return errorMarker
	}
}

// Arrow returns the PlantUML glyph for the kind.
func (k Kind) Arrow() string {
	switch k {
	case Inherits:
		return "<|--"
	case ConformsTo:
		return "<|.."
	case ExtensionDependency:
		return "<.."
	case Generic:
		return "--"
	default:
		return errorMarker
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= Inherits && k <= Generic
}

// KindFor returns the kind an element is registered under when it is
// declared in source.
func KindFor(kind types.ElementKind) Kind {
	switch kind {
	case types.KindClass, types.KindStruct, types.KindActor:
		return Inherits
	case types.KindProtocol:
		return ConformsTo
	case types.KindExtension:
		return ExtensionDependency
	default:
		return Generic
	}
}

// options returns the configured label and style for k, nil when unset.
func options(cfg *config.Configuration, k Kind) *config.Relationship {
	if cfg == nil {
		return nil
	}
	switch k {
	case Inherits:
		return cfg.Relationships.Inheritance
	case ConformsTo:
		return cfg.Relationships.Realize
	case ExtensionDependency:
		return cfg.Relationships.Dependency
	case Generic:
		return cfg.Relationships.Generic
	default:
		return nil
	}
}

// label returns the configured label for k, or "".
func label(cfg *config.Configuration, k Kind) string {
	if opt := options(cfg, k); opt != nil {
		return opt.Label
	}
	return ""
}

// style returns the configured PlantUML style fragment for k, or "".
func style(cfg *config.Configuration, k Kind) string {
	if opt := options(cfg, k); opt != nil {
		return opt.Style.PlantUML()
	}
	return ""
}
