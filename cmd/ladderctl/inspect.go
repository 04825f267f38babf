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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/LadderGraph/services/ladder/dict"
)

var inspectLength int

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print summary statistics for stored artifacts",
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&config.DBPath, "db", "./data/ladder", "artifact store directory")
	inspectCmd.Flags().IntVar(&inspectLength, "length", 0, "word length to inspect (0 = all)")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	store, err := dict.OpenWithPath(config.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()

	lengths := []int{inspectLength}
	if inspectLength == 0 {
		lengths, err = store.Lengths(ctx)
		if err != nil {
			return err
		}
		if len(lengths) == 0 {
			fmt.Println("no artifacts stored")
			return nil
		}
	}

	for _, length := range lengths {
		artifact, err := store.Load(ctx, length)
		if errors.Is(err, dict.ErrNotFound) {
			return fmt.Errorf("no artifact for length %d", length)
		}
		if err != nil {
			return err
		}

		largest := 0
		for _, members := range artifact.Groups {
			if len(members) > largest {
				largest = len(members)
			}
		}
		fmt.Printf("length %2d: %6d words, %7d edges, %5d components, largest %6d\n",
			length, len(artifact.Words), artifact.Graph.EdgeCount(),
			artifact.Components(), largest)
	}
	return nil
}
