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

import "sort"

// Partition assigns every word of a graph to exactly one connected
// component. Two words share a component id iff a ladder exists
// between them, which is what makes the resolver's O(1) reachability
// pre-check possible.
type Partition struct {
	// Groups maps component id to the component's members, sorted.
	// Ids are dense, starting at 0.
	Groups map[int][]string

	byWord map[string]int
}

// ComponentOf returns the component id for word and whether the word
// belongs to the partition.
func (p *Partition) ComponentOf(word string) (int, bool) {
	id, ok := p.byWord[word]
	return id, ok
}

// SameComponent reports whether both words exist and share a component.
func (p *Partition) SameComponent(a, b string) bool {
	idA, okA := p.byWord[a]
	idB, okB := p.byWord[b]
	return okA && okB && idA == idB
}

// Size returns the number of components.
func (p *Partition) Size() int {
	return len(p.Groups)
}

// NewPartition reconstructs a Partition from persisted groups, e.g.
// when a dictionary artifact is loaded. The groups are trusted to be
// a valid partition; the dict package validates before calling.
func NewPartition(groups map[int][]string) *Partition {
	byWord := make(map[string]int)
	for id, members := range groups {
		for _, word := range members {
			byWord[word] = id
		}
	}
	return &Partition{Groups: groups, byWord: byWord}
}

// PartitionComponents labels the connected components of adjacency
// with breadth-first traversal.
//
// Words are seeded in sorted order, so component ids are assigned in
// ascending order of each component's lexicographically smallest
// member and the result is deterministic for a given graph. Running
// time is linear in the number of (word, neighbor) pairs.
func PartitionComponents(adjacency Adjacency) *Partition {
	words := make([]string, 0, len(adjacency))
	for word := range adjacency {
		words = append(words, word)
	}
	sort.Strings(words)

	byWord := make(map[string]int, len(words))
	groups := make(map[int][]string)
	next := 0

	for _, seed := range words {
		if _, visited := byWord[seed]; visited {
			continue
		}

		id := next
		next++

		queue := []string{seed}
		byWord[seed] = id
		members := []string{}

		for len(queue) > 0 {
			word := queue[0]
			queue = queue[1:]
			members = append(members, word)

			for _, neighbor := range adjacency[word] {
				if _, visited := byWord[neighbor]; !visited {
					byWord[neighbor] = id
					queue = append(queue, neighbor)
				}
			}
		}

		sort.Strings(members)
		groups[id] = members
	}

	return &Partition{Groups: groups, byWord: byWord}
}
