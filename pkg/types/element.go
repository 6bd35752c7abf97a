// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across swiftuml packages.
package types

import "strings"

// ElementKind identifies the category of a declared type.
type ElementKind int

const (
	KindOther     ElementKind = iota // Anything not listed below
	KindClass                        // class declaration
	KindStruct                       // struct declaration
	KindProtocol                     // protocol declaration
	KindExtension                    // extension of an existing type
	KindEnum                         // enum declaration
	KindActor                        // actor declaration
)

// String returns the Swift keyword for the element kind.
func (k ElementKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindStruct:
		return "struct"
	case KindProtocol:
		return "protocol"
	case KindExtension:
		return "extension"
	case KindEnum:
		return "enum"
	case KindActor:
		return "actor"
	default:
		return "other"
	}
}

// AccessLevel is the declared visibility of an element.
type AccessLevel int

const (
	AccessInternal AccessLevel = iota // Swift default when nothing is declared
	AccessOpen
	AccessPublic
	AccessFilePrivate
	AccessPrivate
)

// String returns the Swift keyword for the access level.
func (a AccessLevel) String() string {
	switch a {
	case AccessOpen:
		return "open"
	case AccessPublic:
		return "public"
	case AccessFilePrivate:
		return "fileprivate"
	case AccessPrivate:
		return "private"
	default:
		return "internal"
	}
}

// ParseAccessLevel maps a Swift keyword to an AccessLevel. Unknown
// keywords report false.
func ParseAccessLevel(s string) (AccessLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "open":
		return AccessOpen, true
	case "public":
		return AccessPublic, true
	case "internal":
		return AccessInternal, true
	case "fileprivate":
		return AccessFilePrivate, true
	case "private":
		return AccessPrivate, true
	}
	return AccessInternal, false
}

// Element is one declared type from the parsed source tree. Parents holds
// the declared supertypes and conformances; only their Name and Kind are
// meaningful.
type Element struct {
	Name     string      // Declared name, empty for anonymous or malformed entries
	Kind     ElementKind // Declaration kind
	Access   AccessLevel // Declared access level
	Parents  []Element   // Inherited types and conformances, in declaration order
	Children []Element   // Nested declarations
}

// HasName reports whether the element carries a usable name.
func (e Element) HasName() bool {
	return strings.TrimSpace(e.Name) != ""
}

// BaseName returns the element name with any generic argument clause
// removed, e.g. "Array<Int>" becomes "Array".
func (e Element) BaseName() string {
	return StripGenerics(e.Name)
}

// StripGenerics removes every angle-bracketed section, including nested
// ones, from name.
func StripGenerics(name string) string {
	if !strings.ContainsRune(name, '<') {
		return strings.TrimSpace(name)
	}
	var b strings.Builder
	depth := 0
	for _, r := range name {
		switch {
		case r == '<':
			depth++
		case r == '>' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
