// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/swiftuml/internal/sourcekitten"
	"github.com/petar-djukic/swiftuml/pkg/diagram"
	"github.com/petar-djukic/swiftuml/pkg/types"
)

var errMissingStructure = errors.New("structure file is required (--structure or SWIFTUML_STRUCTURE)")

// newClassDiagramCmd creates the "classdiagram" command.
func newClassDiagramCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "classdiagram",
		Aliases: []string{"cd"},
		Short:   "Generate a class diagram",
		Long:    "Classdiagram decodes a SourceKitten structure document and writes the PlantUML script to stdout or a file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassDiagram(cmd, v)
		},
	}

	cmd.Flags().StringP("structure", "s", "", "SourceKitten structure JSON file, - for stdin")
	cmd.Flags().StringP("output", "o", "", "Write the script to this file instead of stdout")
	cmd.Flags().Bool("dump", false, "Dump the decoded element tree to stderr")

	v.BindPFlag("structure", cmd.Flags().Lookup("structure"))
	v.BindPFlag("output", cmd.Flags().Lookup("output"))
	v.BindPFlag("dump", cmd.Flags().Lookup("dump"))

	return cmd
}

// runClassDiagram executes the classdiagram command.
func runClassDiagram(cmd *cobra.Command, v *viper.Viper) error {
	logger := newLogger(cmd.ErrOrStderr(), v.GetBool("verbose"))
	structurePath := v.GetString("structure")
	if structurePath == "" {
		return errMissingStructure
	}

	cfg, err := loadConfig(logger, v)
	if err != nil {
		return err
	}

	elements, err := decodeStructure(cmd.InOrStdin(), structurePath)
	if err != nil {
		return err
	}
	logger.Debug("decoded structure", "path", structurePath, "elements", len(elements))

	if v.GetBool("dump") {
		spew.Fdump(cmd.ErrOrStderr(), elements)
	}

	result, err := diagram.Generate(elements, cfg)
	if err != nil {
		return fmt.Errorf("generating diagram: %w", err)
	}
	logSummary(logger, result)

	return writeScript(cmd.OutOrStdout(), v.GetString("output"), result.Script)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func decodeStructure(stdin io.Reader, path string) ([]types.Element, error) {
	if path == "-" {
		return sourcekitten.Decode(stdin)
	}
	return sourcekitten.DecodeFile(path)
}

func logSummary(logger *slog.Logger, result *diagram.Result) {
	logger.Debug("elements", "total", result.Total)
	for kind, n := range result.Counts {
		logger.Debug("elements", "kind", kind.String(), "count", n)
	}

	extended := make([]string, 0, len(result.Extensions))
	for name := range result.Extensions {
		extended = append(extended, name)
	}
	sort.Strings(extended)
	for _, name := range extended {
		logger.Debug("extensions", "type", name, "count", result.Extensions[name])
	}
	logger.Debug("diagram generated", "nodes", len(result.Names), "connections", len(result.Connections))

	d := result.Diagnostics
	if d.UnnamedElements > 0 || d.UnnamedParents > 0 || d.InvalidKinds > 0 {
		logger.Warn("diagram contains placeholder identities",
			"unnamedElements", d.UnnamedElements,
			"unnamedParents", d.UnnamedParents,
			"invalidKinds", d.InvalidKinds)
	}
	if d.ExcludedLinks > 0 {
		logger.Debug("links excluded by pattern", "count", d.ExcludedLinks)
	}
}

func writeScript(stdout io.Writer, path, text string) error {
	if path == "" {
		_, err := io.WriteString(stdout, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing script %s: %w", path, err)
	}
	return nil
}
