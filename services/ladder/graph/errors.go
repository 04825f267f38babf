// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package graph builds and searches letter-substitution word graphs.
//
// Words of one fixed length form the vertices; two words are adjacent
// iff they differ in exactly one position. The package provides the
// three offline building blocks (pattern index, adjacency builder,
// component partitioner) and the online shortest-path search.
//
// # Lifecycle
//
// A typical per-length build:
//  1. Normalize the word list (Normalize, IsValidWord)
//  2. Build the adjacency mapping with NewBuilder().Build()
//  3. Partition it with PartitionComponents()
//  4. Persist both through the dict package
//
// # Thread Safety
//
// An Adjacency and a Partition are plain data and immutable once
// built. They can be read from any number of goroutines. Builders are
// single-use and not safe for concurrent Build calls.
package graph

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrMixedLengths is returned when the input word list contains
	// words of more than one length. Each graph covers exactly one
	// word length.
	ErrMixedLengths = errors.New("word list contains mixed lengths")

	// ErrInvalidWord is returned when a word contains characters
	// outside A-Z after normalization.
	ErrInvalidWord = errors.New("word contains non-letter characters")

	// ErrBuildCancelled is returned when a build is cancelled via context.
	ErrBuildCancelled = errors.New("graph build cancelled")
)
