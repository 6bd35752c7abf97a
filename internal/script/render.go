// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package script

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/swiftuml/internal/config"
	"github.com/petar-djukic/swiftuml/internal/relation"
	"github.com/petar-djukic/swiftuml/pkg/types"
)

const (
	scriptStart = "@startuml"
	scriptEnd   = "@enduml"
)

// stereotypes are the spot letters and colors of each node kind.
var stereotypes = map[types.ElementKind]string{
	types.KindClass:     "<< (C, DarkSeaGreen) >>",
	types.KindStruct:    "<< (S, SkyBlue) struct >>",
	types.KindProtocol:  "<< (P, GoldenRod) protocol >>",
	types.KindExtension: "<< (X, Orchid) extension >>",
	types.KindEnum:      "<< (E, LightSteelBlue) enum >>",
	types.KindActor:     "<< (A, HotPink) actor >>",
}

func render(cfg *config.Configuration, nodes []Node, connections []string) string {
	var buf strings.Builder
	buf.WriteString(scriptStart + "\n")
	writeStyle(&buf, cfg)
	writeTexts(&buf, cfg.Texts)

	placeholderDeclared := false
	for _, n := range nodes {
		if n.Name == relation.Placeholder {
			if placeholderDeclared {
				continue
			}
			placeholderDeclared = true
		}
		buf.WriteString(declaration(n) + "\n")
	}
	for _, c := range connections {
		buf.WriteString(c + "\n")
	}

	if cfg.Texts.Footer != "" {
		buf.WriteString("footer " + cfg.Texts.Footer + "\n")
	}
	buf.WriteString(scriptEnd + "\n")
	return buf.String()
}

func writeStyle(buf *strings.Builder, cfg *config.Configuration) {
	buf.WriteString("' STYLE START\n")
	buf.WriteString("hide empty members\n")
	if cfg.Theme != "" {
		buf.WriteString("!theme " + cfg.Theme + "\n")
	}
	for _, cmd := range cfg.SkinparamCommands {
		buf.WriteString(cmd + "\n")
	}
	for _, inc := range cfg.Includes {
		buf.WriteString("!include " + inc + "\n")
	}
	buf.WriteString("' STYLE END\n")
}

func writeTexts(buf *strings.Builder, texts config.Texts) {
	if texts.Title != "" {
		buf.WriteString("title " + texts.Title + "\n")
	}
	if texts.Header != "" {
		buf.WriteString("header " + texts.Header + "\n")
	}
}

// declaration renders the node line, e.g.
// `class "Dog" as Dog0 << (X, Orchid) extension >>`.
func declaration(n Node) string {
	label := relation.Placeholder
	if n.Element.HasName() {
		label = n.Element.BaseName()
	}
	line := fmt.Sprintf("class %q as %s", label, n.Name)
	if st, ok := stereotypes[n.Element.Kind]; ok {
		line += " " + st
	}
	return line
}
