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
	"errors"
	"reflect"
	"sort"
	"testing"
)

// fixtureWords is the shared 4-letter fixture. JAZZ is isolated from
// the CORE..PORT chain.
var fixtureWords = []string{"CORE", "CORK", "FORK", "FORT", "FOOT", "PORT", "JAZZ"}

// buildFixture builds the fixture adjacency or fails the test.
func buildFixture(t *testing.T) Adjacency {
	t.Helper()
	adjacency, _, err := NewBuilder().Build(context.Background(), fixtureWords)
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	return adjacency
}

func TestBuilder_Build_Fixture(t *testing.T) {
	adjacency, stats, err := NewBuilder().Build(context.Background(), fixtureWords)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Adjacency{
		"CORE": {"CORK"},
		"CORK": {"CORE", "FORK"},
		"FORK": {"CORK", "FORT"},
		"FORT": {"FOOT", "FORK", "PORT"},
		"FOOT": {"FORT"},
		"PORT": {"FORT"},
		"JAZZ": {},
	}
	if !reflect.DeepEqual(adjacency, want) {
		t.Errorf("adjacency mismatch:\ngot  %v\nwant %v", adjacency, want)
	}

	if stats.Words != 7 {
		t.Errorf("expected Words=7, got %d", stats.Words)
	}
	if stats.Edges != 5 {
		t.Errorf("expected Edges=5, got %d", stats.Edges)
	}
}

func TestBuilder_Build_Properties(t *testing.T) {
	adjacency := buildFixture(t)

	t.Run("symmetry", func(t *testing.T) {
		for word, neighbors := range adjacency {
			for _, neighbor := range neighbors {
				back := adjacency[neighbor]
				idx := sort.SearchStrings(back, word)
				if idx >= len(back) || back[idx] != word {
					t.Errorf("%s -> %s has no reverse edge", word, neighbor)
				}
			}
		}
	})

	t.Run("irreflexive", func(t *testing.T) {
		for word, neighbors := range adjacency {
			for _, neighbor := range neighbors {
				if neighbor == word {
					t.Errorf("%s is its own neighbor", word)
				}
			}
		}
	})

	t.Run("adjacency iff one-letter difference", func(t *testing.T) {
		for _, a := range fixtureWords {
			for _, b := range fixtureWords {
				if a == b {
					continue
				}
				adjacent := false
				for _, neighbor := range adjacency[a] {
					if neighbor == b {
						adjacent = true
						break
					}
				}
				if adjacent != DiffersByOne(a, b) {
					t.Errorf("adjacency(%s, %s) = %v, DiffersByOne = %v",
						a, b, adjacent, DiffersByOne(a, b))
				}
			}
		}
	})

	t.Run("neighbor lists are sorted", func(t *testing.T) {
		for word, neighbors := range adjacency {
			if !sort.StringsAreSorted(neighbors) {
				t.Errorf("neighbors of %s are not sorted: %v", word, neighbors)
			}
		}
	})
}

func TestBuilder_Build_Normalization(t *testing.T) {
	adjacency, stats, err := NewBuilder().Build(context.Background(),
		[]string{"core", "Cork", "CORE"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Words != 2 {
		t.Errorf("expected duplicates collapsed to 2 words, got %d", stats.Words)
	}
	if !adjacency.Contains("CORE") || !adjacency.Contains("CORK") {
		t.Errorf("expected normalized uppercase vertices, got %v", adjacency)
	}
}

func TestBuilder_Build_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("mixed lengths", func(t *testing.T) {
		_, _, err := NewBuilder().Build(ctx, []string{"CAT", "DOGS"})
		if !errors.Is(err, ErrMixedLengths) {
			t.Errorf("expected ErrMixedLengths, got %v", err)
		}
	})

	t.Run("non-letter characters", func(t *testing.T) {
		_, _, err := NewBuilder().Build(ctx, []string{"CA-T"})
		if !errors.Is(err, ErrInvalidWord) {
			t.Errorf("expected ErrInvalidWord, got %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, _, err := NewBuilder().Build(cancelled, fixtureWords)
		if !errors.Is(err, ErrBuildCancelled) {
			t.Errorf("expected ErrBuildCancelled, got %v", err)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		adjacency, stats, err := NewBuilder().Build(ctx, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(adjacency) != 0 || stats.Words != 0 {
			t.Errorf("expected empty graph, got %v", adjacency)
		}
	})
}
