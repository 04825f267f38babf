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

// ShortestPath runs unweighted breadth-first search from start to end
// over the adjacency mapping and returns a minimal ladder, start and
// end inclusive.
//
// The search uses an explicit FIFO queue and a predecessor map and
// stops as soon as end is dequeued; the path is rebuilt by walking
// predecessors back to start and reversing. Among equal-length paths
// the first found under the stored (lexicographic) neighbor order
// wins, so the result is deterministic for a given artifact.
//
// Returns (nil, false) when end is unreachable or either word is not
// a vertex. Callers that have a component partition should pre-check
// reachability instead of relying on this exhaustion path.
func ShortestPath(adjacency Adjacency, start, end string) ([]string, bool) {
	if !adjacency.Contains(start) || !adjacency.Contains(end) {
		return nil, false
	}
	if start == end {
		return []string{start}, true
	}

	predecessor := make(map[string]string, len(adjacency))
	visited := make(map[string]struct{}, len(adjacency))
	visited[start] = struct{}{}

	queue := []string{start}
	for len(queue) > 0 {
		word := queue[0]
		queue = queue[1:]

		if word == end {
			return rebuildPath(predecessor, start, end), true
		}

		for _, neighbor := range adjacency[word] {
			if _, seen := visited[neighbor]; seen {
				continue
			}
			visited[neighbor] = struct{}{}
			predecessor[neighbor] = word
			queue = append(queue, neighbor)
		}
	}

	return nil, false
}

// rebuildPath walks predecessor links from end back to start and
// reverses the result in place.
func rebuildPath(predecessor map[string]string, start, end string) []string {
	path := []string{end}
	for word := end; word != start; {
		word = predecessor[word]
		path = append(path, word)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
