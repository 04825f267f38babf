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

// PatternAt returns the wildcard pattern for word with position i
// masked out, e.g. PatternAt("CORE", 3) == "COR_".
func PatternAt(word string, i int) string {
	b := []byte(word)
	b[i] = Wildcard
	return string(b)
}

// BuildPatternIndex groups same-length words into wildcard buckets,
// one bucket per masked letter position. Two words land in the same
// bucket iff they agree at every position except the masked one, which
// is exactly the one-letter-substitution relation (or identity).
//
// The index is a transient construction aid for the adjacency builder;
// it is never persisted.
//
// Inputs:
//
//	words - Words of one common length. The caller guarantees the
//	        length invariant; BuildPatternIndex does not re-validate.
//
// Outputs:
//
//	map[string][]string - Pattern to bucket members, in input order.
func BuildPatternIndex(words []string) map[string][]string {
	if len(words) == 0 {
		return map[string][]string{}
	}

	// Each word contributes len(word) entries.
	index := make(map[string][]string, len(words)*len(words[0]))
	for _, word := range words {
		for i := 0; i < len(word); i++ {
			pattern := PatternAt(word, i)
			index[pattern] = append(index[pattern], word)
		}
	}
	return index
}
