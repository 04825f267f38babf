// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package builder

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/LadderGraph/services/ladder/dict"
	"github.com/AleutianAI/LadderGraph/services/ladder/graph"
)

// DefaultConcurrency bounds how many word lengths build in parallel.
// Lengths are fully isolated, so the limit is purely a memory cap.
const DefaultConcurrency = 4

// LengthSummary reports one length's build.
type LengthSummary struct {
	Length     int
	Words      int
	Edges      int
	Components int
	Duration   time.Duration
}

// Summary reports a whole build run, ordered by length.
type Summary struct {
	Lengths []LengthSummary
}

// Run builds and publishes one artifact per word length.
//
// Description:
//
//	Each length's pipeline is adjacency build, component partition,
//	artifact assembly, and a single-transaction save; a failure
//	publishes nothing for that length. Lengths build concurrently
//	under an errgroup; the first failure cancels the rest and fails
//	the run (already-published artifacts for other lengths remain
//	valid, complete artifacts).
//
// Inputs:
//
//	ctx - Cancels the run.
//	store - Destination for finished artifacts.
//	byLength - Sorted distinct words per length, as produced by
//	           ReadWordList.
//	logger - Receives per-length progress. Must not be nil.
//	concurrency - Parallel length builds; <= 0 means DefaultConcurrency.
//
// Outputs:
//
//	Summary - Per-length counts, sorted by length.
//	error - The first build or publish failure.
func Run(ctx context.Context, store *dict.Store, byLength map[int][]string, logger *slog.Logger, concurrency int) (Summary, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	lengths := make([]int, 0, len(byLength))
	for length := range byLength {
		lengths = append(lengths, length)
	}
	sort.Ints(lengths)

	var mu sync.Mutex
	summary := Summary{}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for _, length := range lengths {
		length := length
		words := byLength[length]
		group.Go(func() error {
			result, err := buildLength(ctx, store, length, words)
			if err != nil {
				return fmt.Errorf("build length %d: %w", length, err)
			}

			logger.Info("published dictionary artifact",
				"length", length,
				"words", result.Words,
				"edges", result.Edges,
				"components", result.Components,
				"duration", result.Duration)

			mu.Lock()
			summary.Lengths = append(summary.Lengths, result)
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Summary{}, err
	}

	sort.Slice(summary.Lengths, func(i, j int) bool {
		return summary.Lengths[i].Length < summary.Lengths[j].Length
	})
	return summary, nil
}

// buildLength runs the single-length pipeline.
func buildLength(ctx context.Context, store *dict.Store, length int, words []string) (LengthSummary, error) {
	start := time.Now()

	// Ingest already normalized; skip re-normalization.
	adjacency, stats, err := graph.NewBuilder(graph.WithoutNormalization()).Build(ctx, words)
	if err != nil {
		return LengthSummary{}, err
	}

	partition := graph.PartitionComponents(adjacency)
	artifact := dict.NewArtifact(length, words, adjacency, partition)

	if err := store.Save(ctx, artifact); err != nil {
		return LengthSummary{}, err
	}

	return LengthSummary{
		Length:     length,
		Words:      stats.Words,
		Edges:      stats.Edges,
		Components: partition.Size(),
		Duration:   time.Since(start),
	}, nil
}
