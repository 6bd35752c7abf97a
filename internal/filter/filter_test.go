// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package filter

import (
	"testing"

	"github.com/petar-djukic/swiftuml/internal/config"
	"github.com/petar-djukic/swiftuml/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestFilter_Allow(t *testing.T) {
	cfg := &config.Configuration{
		Elements: config.ElementOptions{
			HavingAccessLevel: []string{"public", "open"},
			ShowExtensions:    config.ExtensionsNone,
			Exclude:           []string{"*Test*", "Mock*"},
		},
	}
	f := New(cfg)

	tests := []struct {
		name string
		el   types.Element
		want bool
	}{
		{name: "public struct", el: types.Element{Name: "Dog", Kind: types.KindStruct, Access: types.AccessPublic}, want: true},
		{name: "open class", el: types.Element{Name: "Base", Kind: types.KindClass, Access: types.AccessOpen}, want: true},
		{name: "internal filtered", el: types.Element{Name: "Dog", Kind: types.KindStruct, Access: types.AccessInternal}, want: false},
		{name: "excluded substring", el: types.Element{Name: "DogTests", Kind: types.KindClass, Access: types.AccessPublic}, want: false},
		{name: "excluded prefix", el: types.Element{Name: "MockStore", Kind: types.KindClass, Access: types.AccessPublic}, want: false},
		{name: "generic name matched on base", el: types.Element{Name: "MockBox<T>", Kind: types.KindStruct, Access: types.AccessPublic}, want: false},
		{name: "extension hidden", el: types.Element{Name: "Dog", Kind: types.KindExtension, Access: types.AccessPublic}, want: false},
		{name: "unnamed allowed", el: types.Element{Kind: types.KindClass, Access: types.AccessPublic}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Allow(tt.el))
		})
	}
}

func TestFilter_DefaultAllowsEverything(t *testing.T) {
	for _, f := range []*Filter{New(nil), New(config.Default())} {
		assert.True(t, f.Allow(types.Element{Name: "A", Kind: types.KindExtension, Access: types.AccessPrivate}))
		assert.True(t, f.Allow(types.Element{Name: "B", Kind: types.KindEnum, Access: types.AccessFilePrivate}))
	}
}
