// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package builder runs the offline dictionary build: word-list ingest,
// per-length graph construction, and atomic artifact publish.
package builder

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/AleutianAI/LadderGraph/services/ladder/graph"
)

// IngestStats summarizes a word-list ingest.
type IngestStats struct {
	// LinesRead is the number of lines in the source file.
	LinesRead int

	// Skipped counts lines rejected by the ingest rules (non-letter
	// characters or length outside the supported bounds).
	Skipped int

	// Duplicates counts words dropped as repeats after normalization.
	Duplicates int

	// Accepted counts distinct words kept across all lengths.
	Accepted int
}

// ReadWordList ingests a raw newline-delimited word list and buckets
// it by word length.
//
// Description:
//
//	Each line is normalized to uppercase. Lines containing anything
//	other than letters A-Z, or whose length falls outside the
//	supported 2-15 range, are skipped rather than failing the build;
//	raw lists like /usr/share/dict/words are full of possessives and
//	proper-noun noise. Duplicates after normalization are collapsed.
//	A missing or unreadable file is a build-time fatal error.
//
// Outputs:
//
//	map[int][]string - Sorted distinct words per length.
//	IngestStats - Ingest counters for logging.
//	error - Non-nil if the file cannot be read.
func ReadWordList(path string) (map[int][]string, IngestStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, IngestStats{}, fmt.Errorf("open word list %s: %w", path, err)
	}
	defer f.Close()

	stats := IngestStats{}
	seen := make(map[string]struct{})
	byLength := make(map[int][]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		stats.LinesRead++

		word := graph.Normalize(scanner.Text())
		if !graph.IsValidWord(word) {
			stats.Skipped++
			continue
		}
		if _, dup := seen[word]; dup {
			stats.Duplicates++
			continue
		}
		seen[word] = struct{}{}
		byLength[len(word)] = append(byLength[len(word)], word)
		stats.Accepted++
	}
	if err := scanner.Err(); err != nil {
		return nil, IngestStats{}, fmt.Errorf("read word list %s: %w", path, err)
	}

	for _, words := range byLength {
		sort.Strings(words)
	}
	return byLength, stats, nil
}
