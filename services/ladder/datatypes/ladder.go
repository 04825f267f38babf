// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package datatypes holds the wire types of the ladder query API.
package datatypes

// Failure codes returned in ResolveResponse.Code. These are the
// stable machine-readable halves of the human-readable messages.
const (
	CodeBadInput     = "bad-input"
	CodeNotConnected = "not-connected"
	CodeNoPathFound  = "no-path-found"
	CodeInternal     = "internal"
)

// ResolveRequest asks for a shortest ladder between two words.
type ResolveRequest struct {
	StartWord string `json:"startWord" binding:"required"`
	EndWord   string `json:"endWord" binding:"required"`
}

// ResolveResponse carries either a ladder or a structured failure.
type ResolveResponse struct {
	Success bool     `json:"success"`
	Path    []string `json:"path,omitempty"`
	Length  int      `json:"length,omitempty"`
	Code    string   `json:"code,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// LengthsResponse lists word lengths with a published dictionary.
type LengthsResponse struct {
	Success bool  `json:"success"`
	Lengths []int `json:"lengths"`
}

// HealthResponse reports service liveness and store reachability.
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}
