// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/LadderGraph/services/ladder/builder"
	"github.com/AleutianAI/LadderGraph/services/ladder/dict"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build dictionary artifacts from a raw word list",
	Long: `Reads a newline-delimited word list, builds one adjacency graph and
component partition per word length, and publishes each as an
artifact. Publishing is atomic per length; a failed length leaves no
partial artifact behind.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&config.WordList, "wordlist", "/usr/share/dict/words", "raw word list path")
	buildCmd.Flags().StringVar(&config.DBPath, "db", "./data/ladder", "artifact store directory")
	buildCmd.Flags().IntVar(&config.Concurrency, "concurrency", 0, "parallel length builds (0 = default)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	if err := validateConfig(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	byLength, stats, err := builder.ReadWordList(config.WordList)
	if err != nil {
		return err
	}
	slog.Info("word list ingested",
		"path", config.WordList,
		"lines", stats.LinesRead,
		"accepted", stats.Accepted,
		"skipped", stats.Skipped,
		"duplicates", stats.Duplicates)

	store, err := dict.OpenWithPath(config.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := builder.Run(cmd.Context(), store, byLength, slog.Default(), config.Concurrency)
	if err != nil {
		return err
	}

	for _, l := range summary.Lengths {
		fmt.Printf("length %2d: %6d words, %7d edges, %5d components (%s)\n",
			l.Length, l.Words, l.Edges, l.Components, l.Duration.Round(time.Millisecond))
	}
	return nil
}
