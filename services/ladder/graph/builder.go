// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package graph

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// cancelCheckInterval is how many words are processed between context
// cancellation checks during the neighbor derivation loop.
const cancelCheckInterval = 512

// BuilderOptions configures an adjacency Builder.
type BuilderOptions struct {
	// Normalize uppercases and trims input words before building.
	// Disable only when the caller has already normalized.
	Normalize bool
}

// BuilderOption is a functional option for NewBuilder.
type BuilderOption func(*BuilderOptions)

// WithoutNormalization skips per-word normalization. The caller must
// guarantee the input is already uppercase A-Z.
func WithoutNormalization() BuilderOption {
	return func(o *BuilderOptions) {
		o.Normalize = false
	}
}

// BuildStats reports what a Build call produced.
type BuildStats struct {
	// Words is the number of distinct vertices after deduplication.
	Words int

	// Edges is the number of undirected adjacency edges.
	Edges int

	// Patterns is the number of wildcard buckets in the transient index.
	Patterns int

	// Duration is the wall time of the build.
	Duration time.Duration
}

// Builder derives the adjacency mapping for one word length.
//
// The builder is the offline half of the engine: it runs once per
// word length and its output is persisted, so build cost is paid at
// publish time, never at query time.
type Builder struct {
	options BuilderOptions
}

// NewBuilder creates a Builder with the given options.
func NewBuilder(opts ...BuilderOption) *Builder {
	options := BuilderOptions{Normalize: true}
	for _, opt := range opts {
		opt(&options)
	}
	return &Builder{options: options}
}

// Build produces the adjacency mapping for words.
//
// Description:
//
//	Builds the transient pattern index, then derives each word's
//	neighbor set as the union of its wildcard buckets minus itself.
//	Bucket co-membership is equivalent to the one-letter-substitution
//	relation, so no pairwise comparison is performed; total work is
//	near-linear in words x length rather than quadratic in words.
//
//	There is no partial result: Build returns either the complete
//	mapping or an error.
//
// Inputs:
//
//	ctx - Cancels long builds. Checked every cancelCheckInterval words.
//	words - Word list of one common length. Duplicates are collapsed.
//
// Outputs:
//
//	Adjacency - Symmetric, irreflexive mapping with sorted neighbor lists.
//	BuildStats - Vertex/edge/bucket counts and duration.
//	error - ErrMixedLengths, ErrInvalidWord, or ErrBuildCancelled.
func (b *Builder) Build(ctx context.Context, words []string) (Adjacency, BuildStats, error) {
	start := time.Now()

	vertices, err := b.normalize(words)
	if err != nil {
		return nil, BuildStats{}, err
	}

	index := BuildPatternIndex(vertices)

	adjacency := make(Adjacency, len(vertices))
	for i, word := range vertices {
		if i%cancelCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return nil, BuildStats{}, ErrBuildCancelled
			default:
			}
		}

		// Union the word's buckets, excluding the word itself.
		seen := make(map[string]struct{})
		for pos := 0; pos < len(word); pos++ {
			for _, candidate := range index[PatternAt(word, pos)] {
				if candidate != word {
					seen[candidate] = struct{}{}
				}
			}
		}

		neighbors := make([]string, 0, len(seen))
		for neighbor := range seen {
			neighbors = append(neighbors, neighbor)
		}
		// Pinned enumeration order: shortest-path tie-breaking is
		// reproducible only if neighbor order is stable.
		sort.Strings(neighbors)
		adjacency[word] = neighbors
	}

	stats := BuildStats{
		Words:    len(vertices),
		Edges:    adjacency.EdgeCount(),
		Patterns: len(index),
		Duration: time.Since(start),
	}
	return adjacency, stats, nil
}

// normalize validates the input, uppercases it if configured, drops
// duplicates, and returns the vertices in sorted order.
func (b *Builder) normalize(words []string) ([]string, error) {
	seen := make(map[string]struct{}, len(words))
	vertices := make([]string, 0, len(words))

	length := -1
	for _, raw := range words {
		word := raw
		if b.options.Normalize {
			word = Normalize(raw)
		}
		if !IsValidWord(word) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, raw)
		}
		if length == -1 {
			length = len(word)
		} else if len(word) != length {
			return nil, fmt.Errorf("%w: %q has length %d, expected %d",
				ErrMixedLengths, word, len(word), length)
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		vertices = append(vertices, word)
	}

	sort.Strings(vertices)
	return vertices, nil
}
