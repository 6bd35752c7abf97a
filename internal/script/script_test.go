// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package script

import (
	"strings"
	"testing"

	"github.com/petar-djukic/swiftuml/internal/config"
	"github.com/petar-djukic/swiftuml/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func animals() []types.Element {
	return []types.Element{
		{Name: "Animal", Kind: types.KindStruct},
		{Name: "Dog", Kind: types.KindStruct, Parents: []types.Element{{Name: "Animal"}}},
		{Name: "Dog", Kind: types.KindExtension},
	}
}

func TestBuild_EndToEnd(t *testing.T) {
	s := Build(animals(), nil)

	assert.Equal(t, []string{"Animal", "Dog", "Dog0"}, s.Names())
	assert.Equal(t, []string{"Animal <|-- Dog", "Dog <.. Dog0 : ext"}, s.Connections)
	assert.True(t, s.Nodes[2].Alias)
	assert.False(t, s.Nodes[1].Alias)

	assert.Contains(t, s.Text, `class "Dog" as Dog0 << (X, Orchid) extension >>`)
	assert.Contains(t, s.Text, `class "Animal" as Animal << (S, SkyBlue) struct >>`)
	assert.True(t, strings.HasPrefix(s.Text, "@startuml\n"))
	assert.True(t, strings.HasSuffix(s.Text, "@enduml\n"))
}

func TestBuild_ProtocolDeclaredAfterConformer(t *testing.T) {
	elements := []types.Element{
		{Name: "User", Kind: types.KindStruct, Parents: []types.Element{{Name: "Serializable"}}},
		{Name: "Admin", Kind: types.KindClass, Parents: []types.Element{{Name: "Serializable"}}},
		{Name: "Serializable", Kind: types.KindProtocol},
	}

	s := Build(elements, nil)

	assert.Equal(t, []string{"Serializable <|.. User", "Serializable <|.. Admin"}, s.Connections)
	assert.Equal(t, []string{"User", "Admin", "Serializable"}, s.Names())
}

func TestBuild_ConnectionsAfterDeclarations(t *testing.T) {
	s := Build(animals(), nil)

	lines := strings.Split(strings.TrimSpace(s.Text), "\n")
	lastDecl, firstConn := -1, -1
	for i, line := range lines {
		if strings.HasPrefix(line, "class ") {
			lastDecl = i
		}
		if strings.Contains(line, "<|--") && firstConn < 0 {
			firstConn = i
		}
	}
	require.NotEqual(t, -1, firstConn)
	assert.Less(t, lastDecl, firstConn)
}

func TestBuild_FilteredElementsAreNotNodes(t *testing.T) {
	cfg := &config.Configuration{
		Elements: config.ElementOptions{
			ShowExtensions: config.ExtensionsNone,
			Exclude:        []string{"*Mock*"},
		},
	}
	elements := append(animals(), types.Element{Name: "MockDog", Kind: types.KindClass})

	s := Build(elements, cfg)

	assert.Equal(t, []string{"Animal", "Dog"}, s.Names())
	assert.Equal(t, []string{"Animal <|-- Dog"}, s.Connections)
	assert.Equal(t, 1, s.Counts[types.KindExtension], "counts include filtered elements")
	assert.Equal(t, map[string]int{"Dog": 1}, s.Extensions)
	assert.Equal(t, 4, s.Total)
	assert.NotContains(t, s.Text, "MockDog")
}

func TestBuild_NestedTypes(t *testing.T) {
	elements := []types.Element{
		{
			Name: "Outer",
			Kind: types.KindClass,
			Children: []types.Element{
				{Name: "Inner", Kind: types.KindEnum, Parents: []types.Element{{Name: "String"}}},
			},
		},
	}

	s := Build(elements, nil)
	assert.Equal(t, []string{"Outer", "Inner"}, s.Names())
	assert.Equal(t, 1, s.Nodes[1].Depth)
	assert.Equal(t, []string{"String <|-- Inner"}, s.Connections)

	hide := false
	s = Build(elements, &config.Configuration{Elements: config.ElementOptions{ShowNestedTypes: &hide}})
	assert.Equal(t, []string{"Outer"}, s.Names())
	assert.Empty(t, s.Connections)
}

func TestBuild_ExcludedParents(t *testing.T) {
	cfg := &config.Configuration{
		Relationships: config.RelationshipOptions{
			Inheritance: &config.Relationship{Exclude: []string{"Codable", "Equatable"}},
		},
	}
	elements := []types.Element{
		{Name: "Model", Kind: types.KindStruct, Parents: []types.Element{{Name: "Codable"}, {Name: "Base"}, {Name: "Equatable"}}},
	}

	s := Build(elements, cfg)

	assert.Equal(t, []string{"Base <|-- Model"}, s.Connections)
	assert.Equal(t, 2, s.Diagnostics.ExcludedLinks)
}

func TestBuild_UnnamedElement(t *testing.T) {
	elements := []types.Element{{Kind: types.KindClass, Parents: []types.Element{{Name: "Base"}}}}

	s := Build(elements, nil)

	assert.Equal(t, []string{"___"}, s.Names())
	assert.Equal(t, []string{"Base <|-- ___"}, s.Connections)
	assert.Contains(t, s.Text, `class "___" as ___`)
	assert.Equal(t, 1, s.Diagnostics.UnnamedElements)
}

func TestRender_StyleAndTexts(t *testing.T) {
	cfg := &config.Configuration{
		Theme:             "minty",
		SkinparamCommands: []string{"skinparam shadowing false"},
		Includes:          []string{"https://example.org/styles.puml"},
		Texts:             config.Texts{Title: "Zoo", Header: "generated", Footer: "v1"},
	}

	s := Build(animals(), cfg)

	for _, want := range []string{
		"!theme minty\n",
		"skinparam shadowing false\n",
		"!include https://example.org/styles.puml\n",
		"title Zoo\n",
		"header generated\n",
		"footer v1\n@enduml\n",
	} {
		assert.Contains(t, s.Text, want)
	}
}

func TestDeclaration_OtherKindHasNoStereotype(t *testing.T) {
	line := declaration(Node{Element: types.Element{Name: "Alias", Kind: types.KindOther}, Name: "Alias"})
	assert.Equal(t, `class "Alias" as Alias`, line)
}

func TestBuild_ExtensionVisualization(t *testing.T) {
	elements := []types.Element{
		{Name: "Animal", Kind: types.KindStruct},
		{Name: "Dog", Kind: types.KindStruct, Parents: []types.Element{{Name: "Animal"}}},
		{Name: "Dog", Kind: types.KindExtension, Parents: []types.Element{{Name: "Codable"}}},
		{Name: "String", Kind: types.KindExtension},
		{Name: "String", Kind: types.KindExtension, Parents: []types.Element{{Name: "Identifiable"}}},
	}

	tests := []struct {
		name      string
		mode      config.ExtensionVisualization
		wantNames []string
		wantConns []string
	}{
		{
			name:      "unset",
			mode:      "",
			wantNames: []string{"Animal", "Dog", "Dog0", "String", "String1"},
			wantConns: []string{
				"Animal <|-- Dog",
				"Codable <|-- Dog0",
				"Identifiable <|-- String1",
				"Dog <.. Dog0 : ext",
				"String <.. String1 : ext",
			},
		},
		{
			name:      "all",
			mode:      config.ExtensionsAll,
			wantNames: []string{"Animal", "Dog", "Dog0", "String", "String1"},
			wantConns: []string{
				"Animal <|-- Dog",
				"Codable <|-- Dog0",
				"Identifiable <|-- String1",
				"Dog <.. Dog0 : ext",
				"String <.. String1 : ext",
			},
		},
		{
			name:      "merged",
			mode:      config.ExtensionsMerged,
			wantNames: []string{"Animal", "Dog", "String"},
			wantConns: []string{
				"Animal <|-- Dog",
				"Codable <|-- Dog",
				"Identifiable <|-- String",
			},
		},
		{
			name:      "none",
			mode:      config.ExtensionsNone,
			wantNames: []string{"Animal", "Dog"},
			wantConns: []string{"Animal <|-- Dog"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Configuration{Elements: config.ElementOptions{ShowExtensions: tt.mode}}
			s := Build(elements, cfg)

			assert.Equal(t, tt.wantNames, s.Names())
			assert.Equal(t, tt.wantConns, s.Connections)
			assert.Equal(t, map[string]int{"Dog": 1, "String": 2}, s.Extensions)
		})
	}
}

func TestBuild_PlaceholderDeclaredOnce(t *testing.T) {
	elements := []types.Element{
		{Kind: types.KindClass},
		{Kind: types.KindStruct},
		{Name: "Named", Kind: types.KindClass},
	}

	s := Build(elements, nil)

	assert.Equal(t, []string{"___", "___", "Named"}, s.Names())
	assert.Equal(t, 1, strings.Count(s.Text, "as ___"))
	assert.Equal(t, 2, s.Diagnostics.UnnamedElements)
}
