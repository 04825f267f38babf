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
	"reflect"
	"sort"
	"testing"

	"github.com/AleutianAI/LadderGraph/services/ladder/dict"
	"github.com/AleutianAI/LadderGraph/services/ladder/graph"
)

// newTestResolver builds a resolver over an in-memory artifact for
// the 4-letter fixture. JAZZ sits in a component disjoint from the
// CORE..PORT chain.
func newTestResolver(t *testing.T) *Resolver {
	t.Helper()

	words := []string{"CORE", "CORK", "FORK", "FORT", "FOOT", "PORT", "JAZZ"}
	adjacency, _, err := graph.NewBuilder().Build(context.Background(), words)
	if err != nil {
		t.Fatalf("build fixture: %v", err)
	}
	partition := graph.PartitionComponents(adjacency)

	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	artifact := dict.NewArtifact(4, sorted, adjacency, partition)

	load := func(ctx context.Context, length int) (*dict.Artifact, error) {
		if length != 4 {
			return nil, dict.ErrNotFound
		}
		return artifact, nil
	}
	return New(dict.NewCache(load))
}

func TestResolver_Resolve(t *testing.T) {
	r := newTestResolver(t)
	ctx := context.Background()

	t.Run("adjacent words", func(t *testing.T) {
		path, err := r.Resolve(ctx, "CORE", "CORK")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(path, []string{"CORE", "CORK"}) {
			t.Errorf("path = %v, want [CORE CORK]", path)
		}
	})

	t.Run("multi-hop path is minimal and valid", func(t *testing.T) {
		path, err := r.Resolve(ctx, "CORE", "FOOT")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(path) != 5 {
			t.Errorf("path length = %d, want 5 (%v)", len(path), path)
		}
		if path[0] != "CORE" || path[len(path)-1] != "FOOT" {
			t.Errorf("path %v does not run CORE..FOOT", path)
		}
		for i := 1; i < len(path); i++ {
			if !graph.DiffersByOne(path[i-1], path[i]) {
				t.Errorf("non-adjacent pair %s, %s in %v", path[i-1], path[i], path)
			}
		}
	})

	t.Run("identity", func(t *testing.T) {
		path, err := r.Resolve(ctx, "CORE", "CORE")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(path, []string{"CORE"}) {
			t.Errorf("path = %v, want [CORE]", path)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		path, err := r.Resolve(ctx, "core", "cork")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(path, []string{"CORE", "CORK"}) {
			t.Errorf("path = %v, want [CORE CORK]", path)
		}
	})
}

func TestResolver_InvalidInput(t *testing.T) {
	r := newTestResolver(t)
	ctx := context.Background()

	t.Run("length mismatch", func(t *testing.T) {
		_, err := r.Resolve(ctx, "CAT", "DOGS")
		if !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("expected ErrLengthMismatch, got %v", err)
		}
		if !IsInvalidInput(err) {
			t.Error("expected IsInvalidInput to report true")
		}
	})

	t.Run("length out of range", func(t *testing.T) {
		_, err := r.Resolve(ctx, "A", "B")
		if !errors.Is(err, ErrLengthOutOfRange) {
			t.Errorf("expected ErrLengthOutOfRange, got %v", err)
		}
	})

	t.Run("no dictionary for length", func(t *testing.T) {
		_, err := r.Resolve(ctx, "HOUSE", "MOUSE")
		if !errors.Is(err, ErrNoDictionary) {
			t.Errorf("expected ErrNoDictionary, got %v", err)
		}
	})

	t.Run("word not in dictionary", func(t *testing.T) {
		_, err := r.Resolve(ctx, "CORE", "ABCD")
		if !errors.Is(err, ErrWordNotFound) {
			t.Errorf("expected ErrWordNotFound, got %v", err)
		}
	})

	t.Run("identity outside dictionary is still invalid", func(t *testing.T) {
		_, err := r.Resolve(ctx, "ABCD", "ABCD")
		if !errors.Is(err, ErrWordNotFound) {
			t.Errorf("expected ErrWordNotFound, got %v", err)
		}
	})
}

func TestResolver_NotConnectedSkipsSearch(t *testing.T) {
	r := newTestResolver(t)
	ctx := context.Background()

	// Warm the cache and run one real search first.
	if _, err := r.Resolve(ctx, "CORE", "FOOT"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := r.Stats()

	_, err := r.Resolve(ctx, "CORE", "JAZZ")
	if !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
	if IsInvalidInput(err) {
		t.Error("not-connected must not classify as invalid input")
	}

	after := r.Stats()
	if after.SearchesRun != before.SearchesRun {
		t.Errorf("disconnected query ran a search: %d -> %d",
			before.SearchesRun, after.SearchesRun)
	}
	if after.NotConnected != before.NotConnected+1 {
		t.Errorf("NotConnected counter = %d, want %d",
			after.NotConnected, before.NotConnected+1)
	}
}

func TestResolver_Stats(t *testing.T) {
	r := newTestResolver(t)
	ctx := context.Background()

	r.Resolve(ctx, "CORE", "CORK") // resolved, search
	r.Resolve(ctx, "CORE", "CORE") // resolved, identity
	r.Resolve(ctx, "CAT", "DOGS")  // invalid
	r.Resolve(ctx, "JAZZ", "CORE") // not connected

	stats := r.Stats()
	if stats.Requests != 4 {
		t.Errorf("Requests = %d, want 4", stats.Requests)
	}
	if stats.Resolved != 2 {
		t.Errorf("Resolved = %d, want 2", stats.Resolved)
	}
	if stats.Invalid != 1 {
		t.Errorf("Invalid = %d, want 1", stats.Invalid)
	}
	if stats.NotConnected != 1 {
		t.Errorf("NotConnected = %d, want 1", stats.NotConnected)
	}
	if stats.SearchesRun != 1 {
		t.Errorf("SearchesRun = %d, want 1", stats.SearchesRun)
	}
	if stats.IdentityHits != 1 {
		t.Errorf("IdentityHits = %d, want 1", stats.IdentityHits)
	}
}
