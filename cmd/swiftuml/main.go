// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command swiftuml renders PlantUML class diagrams from SourceKitten
// structure output.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Each tree owns its viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()
	rootCmd := &cobra.Command{
		Use:          "swiftuml",
		Short:        "PlantUML class diagrams for Swift code",
		Long:         "swiftuml reads the structure of Swift sources and writes a PlantUML class diagram of their types and relationships.",
		SilenceUsage: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().String("config", "", "Configuration file (default .swiftuml.yaml when present)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log debug details to stderr")

	v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Env vars: SWIFTUML_CONFIG, SWIFTUML_STRUCTURE, SWIFTUML_OUTPUT, etc.
	v.SetEnvPrefix("SWIFTUML")
	v.AutomaticEnv()

	// Config file, used when --config is not given.
	v.SetConfigName(".swiftuml")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	rootCmd.AddCommand(newClassDiagramCmd(v))
	rootCmd.AddCommand(newConfigCmd(v))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print swiftuml version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "swiftuml %s\n", version)
		},
	}
}
