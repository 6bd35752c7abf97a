// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package relation

import "strconv"

// Placeholder is the identity handed out for elements without a name. It
// is never registered.
const Placeholder = "___"

// Registry tracks which names already own a diagram node and mints
// suffixed aliases for repeated names. The suffix counter is shared by all
// names and only ever grows, so no alias is handed out twice in a run.
type Registry struct {
	kinds   map[string]Kind // canonical name -> kind it was registered under
	counter int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]Kind)}
}

// Register returns the display name for base. The first call for a base
// name registers it as canonical under kind and returns it unchanged;
// every later call returns a fresh alias and reports collided.
func (r *Registry) Register(base string, kind Kind) (display string, collided bool) {
	if _, ok := r.kinds[base]; !ok {
		r.kinds[base] = kind
		return base, false
	}
	display = base + strconv.Itoa(r.counter)
	r.counter++
	return display, true
}

// Adopt registers base under kind if it is unseen and returns the kind
// the name ends up with. It never mints an alias.
func (r *Registry) Adopt(base string, kind Kind) Kind {
	if existing, ok := r.kinds[base]; ok {
		return existing
	}
	r.kinds[base] = kind
	return kind
}

// KindOf returns the kind a canonical name was registered under.
func (r *Registry) KindOf(name string) (Kind, bool) {
	k, ok := r.kinds[name]
	return k, ok
}

// Registered reports whether name is canonical.
func (r *Registry) Registered(name string) bool {
	_, ok := r.kinds[name]
	return ok
}

// Len returns the number of canonical names.
func (r *Registry) Len() int {
	return len(r.kinds)
}
