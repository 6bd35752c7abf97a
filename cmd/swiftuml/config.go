// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/swiftuml/internal/config"
)

// newConfigCmd creates the "config" command.
func newConfigCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long:  "Config prints the configuration classdiagram would use, after file discovery and defaults, as YAML.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), v.GetBool("verbose"))
			cfg, err := loadConfig(logger, v)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// loadConfig reads the --config file, or the .swiftuml.yaml viper finds
// in the working directory. No file means the default configuration.
func loadConfig(logger *slog.Logger, v *viper.Viper) (*config.Configuration, error) {
	path := v.GetString("config")
	if path == "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				logger.Debug("using default configuration")
				return config.Default(), nil
			}
			return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
		}
		path = v.ConfigFileUsed()
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded configuration", "path", path)
	return cfg, nil
}
