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

import "strings"

// Supported word length bounds. Lengths outside this range are not
// built offline and are rejected online.
const (
	// MinWordLength is the shortest supported word length.
	MinWordLength = 2

	// MaxWordLength is the longest supported word length.
	MaxWordLength = 15
)

// Wildcard is the placeholder used for the masked position of a
// pattern. It is outside A-Z so it can never collide with a letter.
const Wildcard = '_'

// Adjacency maps each word to its neighbors under the one-letter
// substitution relation. Neighbor slices are sorted lexicographically
// so that enumeration order (and therefore shortest-path tie-breaking)
// is reproducible across processes.
//
// The mapping is symmetric and irreflexive by construction.
type Adjacency map[string][]string

// Neighbors returns the sorted neighbor list for word, or nil if the
// word is not a vertex.
func (a Adjacency) Neighbors(word string) []string {
	return a[word]
}

// Contains reports whether word is a vertex of the graph.
func (a Adjacency) Contains(word string) bool {
	_, ok := a[word]
	return ok
}

// EdgeCount returns the number of undirected edges.
func (a Adjacency) EdgeCount() int {
	total := 0
	for _, neighbors := range a {
		total += len(neighbors)
	}
	return total / 2
}

// Normalize uppercases a word. Equality in this package is
// case-insensitive; every boundary normalizes before comparing.
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// IsValidWord reports whether a normalized word consists only of the
// letters A-Z and falls within the supported length bounds.
func IsValidWord(word string) bool {
	if len(word) < MinWordLength || len(word) > MaxWordLength {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return false
		}
	}
	return true
}

// DiffersByOne reports whether two words of equal length differ in
// exactly one position. Used by tests as the independent definition of
// adjacency; the builder never calls it (it derives adjacency from the
// pattern index instead).
func DiffersByOne(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	diffs := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diffs++
			if diffs > 1 {
				return false
			}
		}
	}
	return diffs == 1
}
