// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package resolver

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/AleutianAI/LadderGraph/services/ladder/dict"
	"github.com/AleutianAI/LadderGraph/services/ladder/graph"
)

// Resolver answers "what is a shortest ladder from start to end?"
// against artifacts loaded through a dict.Cache.
//
// Thread Safety: Resolver is safe for concurrent use; its only state
// is the cache (concurrent-safe) and atomic counters.
type Resolver struct {
	cache *dict.Cache

	// Stats
	requests       int64
	invalid        int64
	notConnected   int64
	noPath         int64
	resolved       int64
	searchesRun    int64
	identityHits   int64
}

// Stats is a point-in-time snapshot of resolver counters.
//
// SearchesRun counts actual breadth-first traversals; a query stopped
// by the component pre-check does not increment it, which is how the
// fast-path behavior is observable.
type Stats struct {
	Requests     int64
	Invalid      int64
	NotConnected int64
	NoPath       int64
	Resolved     int64
	SearchesRun  int64
	IdentityHits int64
}

// New creates a Resolver over the given artifact cache.
func New(cache *dict.Cache) *Resolver {
	return &Resolver{cache: cache}
}

// Resolve returns a minimal ladder from start to end, both inclusive.
//
// Description:
//
//	Validation runs in a fixed order: equal lengths, supported length
//	range, artifact present, both words in the dictionary. Then the
//	identity case short-circuits, the component pre-check rejects
//	disconnected pairs without any traversal, and finally
//	breadth-first search produces the path. If any ladder exists the
//	returned one has the minimum possible number of words; ties are
//	broken by the artifact's lexicographic neighbor order.
//
// Inputs:
//
//	ctx - Bounds the artifact load on a cache miss. The search itself
//	      runs to completion once the artifact is resident.
//	start, end - Case-insensitive; normalized before any comparison.
//
// Outputs:
//
//	[]string - The ladder, length >= 1.
//	error - An invalid-input sentinel (see IsInvalidInput),
//	        ErrNotConnected, ErrNoPath, or a wrapped storage error.
func (r *Resolver) Resolve(ctx context.Context, start, end string) ([]string, error) {
	atomic.AddInt64(&r.requests, 1)

	start = graph.Normalize(start)
	end = graph.Normalize(end)

	if len(start) != len(end) {
		atomic.AddInt64(&r.invalid, 1)
		recordOutcome(ctx, outcomeInvalid)
		return nil, fmt.Errorf("%w: %q has length %d, %q has length %d",
			ErrLengthMismatch, start, len(start), end, len(end))
	}

	length := len(start)
	if length < graph.MinWordLength || length > graph.MaxWordLength {
		atomic.AddInt64(&r.invalid, 1)
		recordOutcome(ctx, outcomeInvalid)
		return nil, fmt.Errorf("%w: %d (supported %d-%d)",
			ErrLengthOutOfRange, length, graph.MinWordLength, graph.MaxWordLength)
	}

	artifact, err := r.cache.Get(ctx, length)
	if errors.Is(err, dict.ErrNotFound) {
		atomic.AddInt64(&r.invalid, 1)
		recordOutcome(ctx, outcomeInvalid)
		return nil, fmt.Errorf("%w: length %d", ErrNoDictionary, length)
	}
	if err != nil {
		// Infrastructure failure: not an input problem, propagate as-is
		// so callers can distinguish it from ErrNoDictionary.
		recordOutcome(ctx, outcomeError)
		return nil, fmt.Errorf("load dictionary for length %d: %w", length, err)
	}

	for _, word := range []string{start, end} {
		if !artifact.Contains(word) {
			atomic.AddInt64(&r.invalid, 1)
			recordOutcome(ctx, outcomeInvalid)
			return nil, fmt.Errorf("%w: %q", ErrWordNotFound, word)
		}
	}

	if start == end {
		atomic.AddInt64(&r.identityHits, 1)
		atomic.AddInt64(&r.resolved, 1)
		recordOutcome(ctx, outcomeResolved)
		return []string{start}, nil
	}

	// Required fast path: disconnected pairs must fail before any
	// traversal is attempted.
	if !artifact.SameComponent(start, end) {
		atomic.AddInt64(&r.notConnected, 1)
		recordOutcome(ctx, outcomeNotConnected)
		return nil, fmt.Errorf("%w: %q and %q", ErrNotConnected, start, end)
	}

	atomic.AddInt64(&r.searchesRun, 1)
	recordSearch(ctx)
	path, ok := graph.ShortestPath(artifact.Graph, start, end)
	if !ok {
		atomic.AddInt64(&r.noPath, 1)
		recordOutcome(ctx, outcomeNoPath)
		return nil, fmt.Errorf("%w: %q to %q", ErrNoPath, start, end)
	}

	atomic.AddInt64(&r.resolved, 1)
	recordOutcome(ctx, outcomeResolved)
	return path, nil
}

// Stats returns a snapshot of the resolver counters.
func (r *Resolver) Stats() Stats {
	return Stats{
		Requests:     atomic.LoadInt64(&r.requests),
		Invalid:      atomic.LoadInt64(&r.invalid),
		NotConnected: atomic.LoadInt64(&r.notConnected),
		NoPath:       atomic.LoadInt64(&r.noPath),
		Resolved:     atomic.LoadInt64(&r.resolved),
		SearchesRun:  atomic.LoadInt64(&r.searchesRun),
		IdentityHits: atomic.LoadInt64(&r.identityHits),
	}
}
