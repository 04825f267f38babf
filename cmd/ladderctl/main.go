// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// ladderctl is the offline dictionary builder for the word-ladder
// engine. It ingests a raw word list, builds one letter-substitution
// graph per word length, and publishes the resulting artifacts for
// ladderd to serve.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config is the builder configuration, loadable from YAML and
// overridable by flags.
type Config struct {
	// WordList is the path to the raw newline-delimited word list.
	WordList string `yaml:"wordlist" validate:"required"`

	// DBPath is the artifact store directory.
	DBPath string `yaml:"db_path" validate:"required"`

	// Concurrency bounds parallel per-length builds. 0 means the
	// builder default.
	Concurrency int `yaml:"concurrency" validate:"gte=0,lte=16"`
}

var (
	config     Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "ladderctl",
	Short: "Build and inspect word-ladder dictionary artifacts",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setupLogging()

		if configPath == "" {
			return
		}
		yamlFile, err := os.ReadFile(configPath)
		if err != nil {
			log.Fatalf("Error reading %s: %v", configPath, err)
		}
		if err := yaml.Unmarshal(yamlFile, &config); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		slog.Info("configuration loaded", "path", configPath)
	}
}

// setupLogging picks a human format on a terminal and JSON when the
// output is piped into tooling.
func setupLogging() {
	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) {
		handler = slog.NewTextHandler(os.Stderr, nil)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}
	slog.SetDefault(slog.New(handler))
}

// validateConfig checks the merged file + flag configuration.
func validateConfig() error {
	return validator.New().Struct(&config)
}
