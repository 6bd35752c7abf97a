// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pattern matches element names against wildcard patterns where
// '*' stands for any run of characters, including none. A pattern must
// cover the whole name; use "*Test*" to match a substring.
package pattern

// Match reports whether name matches pattern. Comparison is
// case-sensitive.
func Match(pattern, name string) bool {
	p, n := 0, 0
	star, mark := -1, 0

	for n < len(name) {
		switch {
		case p < len(pattern) && pattern[p] == '*':
			star = p
			mark = n
			p++
		case p < len(pattern) && pattern[p] == name[n]:
			p++
			n++
		case star >= 0:
			// Let the last star absorb one more character.
			p = star + 1
			mark++
			n = mark
		default:
			return false
		}
	}

	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}

// MatchAny reports whether name matches at least one of patterns.
func MatchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if Match(p, name) {
			return true
		}
	}
	return false
}
