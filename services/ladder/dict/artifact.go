// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package dict

import (
	"encoding/json"
	"fmt"

	"github.com/AleutianAI/LadderGraph/services/ladder/graph"
)

// ArtifactVersion is the current artifact schema version. Bump when
// the JSON shape changes; Validate rejects anything else.
const ArtifactVersion = 1

// Artifact is the persisted, immutable per-length bundle of word
// list, adjacency mapping, and component partition.
//
// The JSON field names (words, graph, groups) are a stable contract
// with the offline builder and any external consumer; the resolver
// depends on them structurally.
type Artifact struct {
	// Version is the schema version. Must equal ArtifactVersion.
	Version int `json:"version"`

	// Length is the word length this artifact covers.
	Length int `json:"length"`

	// Words is the sorted full word list.
	Words []string `json:"words"`

	// Graph maps each word to its sorted neighbor list.
	Graph graph.Adjacency `json:"graph"`

	// Groups maps component id to the component's sorted members.
	Groups map[int][]string `json:"groups"`

	// Derived at load time, never serialized.
	wordSet   map[string]struct{}
	partition *graph.Partition
}

// NewArtifact assembles an artifact from a finished build. The inputs
// are trusted to be the output of graph.Builder and
// graph.PartitionComponents for the same word set.
func NewArtifact(length int, words []string, adjacency graph.Adjacency, partition *graph.Partition) *Artifact {
	a := &Artifact{
		Version: ArtifactVersion,
		Length:  length,
		Words:   words,
		Graph:   adjacency,
		Groups:  partition.Groups,
	}
	a.index()
	return a
}

// Validate fail-fast checks the artifact shape after decoding.
//
// Description:
//
//	Verifies the schema version, the length bounds, and that words,
//	graph, and groups describe the same word set. On success the
//	derived lookup indexes are (re)built. A validation failure means
//	the stored artifact is unusable, not that the request was bad.
//
// Outputs:
//
//	error - nil, or ErrInvalidArtifact wrapped with the first
//	        mismatch found.
func (a *Artifact) Validate() error {
	if a.Version != ArtifactVersion {
		return fmt.Errorf("%w: version %d, want %d", ErrInvalidArtifact, a.Version, ArtifactVersion)
	}
	if a.Length < graph.MinWordLength || a.Length > graph.MaxWordLength {
		return fmt.Errorf("%w: length %d out of range", ErrInvalidArtifact, a.Length)
	}
	if a.Graph == nil || a.Groups == nil {
		return fmt.Errorf("%w: missing graph or groups", ErrInvalidArtifact)
	}
	if len(a.Graph) != len(a.Words) {
		return fmt.Errorf("%w: %d words but %d graph vertices",
			ErrInvalidArtifact, len(a.Words), len(a.Graph))
	}

	grouped := 0
	for _, members := range a.Groups {
		grouped += len(members)
	}
	if grouped != len(a.Words) {
		return fmt.Errorf("%w: %d words but %d partition members",
			ErrInvalidArtifact, len(a.Words), grouped)
	}

	for _, word := range a.Words {
		if len(word) != a.Length {
			return fmt.Errorf("%w: word %q does not have length %d",
				ErrInvalidArtifact, word, a.Length)
		}
		if _, ok := a.Graph[word]; !ok {
			return fmt.Errorf("%w: word %q missing from graph", ErrInvalidArtifact, word)
		}
	}

	a.index()
	for _, word := range a.Words {
		if _, ok := a.partition.ComponentOf(word); !ok {
			return fmt.Errorf("%w: word %q missing from partition", ErrInvalidArtifact, word)
		}
	}
	return nil
}

// index rebuilds the derived lookups from the serialized fields.
func (a *Artifact) index() {
	a.wordSet = make(map[string]struct{}, len(a.Words))
	for _, word := range a.Words {
		a.wordSet[word] = struct{}{}
	}
	a.partition = graph.NewPartition(a.Groups)
}

// Contains reports whether word is in the artifact's dictionary.
func (a *Artifact) Contains(word string) bool {
	_, ok := a.wordSet[word]
	return ok
}

// ComponentOf returns the connected-component id for word.
func (a *Artifact) ComponentOf(word string) (int, bool) {
	return a.partition.ComponentOf(word)
}

// SameComponent reports whether two words are mutually reachable.
func (a *Artifact) SameComponent(x, y string) bool {
	return a.partition.SameComponent(x, y)
}

// Components returns the number of connected components.
func (a *Artifact) Components() int {
	return a.partition.Size()
}

// Encode serializes the artifact for storage.
func (a *Artifact) Encode() ([]byte, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode artifact for length %d: %w", a.Length, err)
	}
	return data, nil
}

// DecodeArtifact deserializes and validates a stored artifact.
func DecodeArtifact(data []byte) (*Artifact, error) {
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}
