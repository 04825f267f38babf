// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package dict persists and caches per-length dictionary artifacts.
//
// An Artifact bundles one word length's word list, adjacency mapping,
// and component partition. Artifacts are produced by the offline
// builder, stored in BadgerDB, and read-only afterwards; the resolver
// loads them lazily through a process-wide Cache that never evicts
// (the length domain is bounded at 2-15).
//
// "No artifact for this length" (ErrNotFound) is an expected outcome
// and is kept distinct from storage failures so callers can tell
// "unsupported length" from "retry later".
package dict

import "errors"

// Sentinel errors for artifact storage.
var (
	// ErrNotFound is returned when no artifact exists for the
	// requested word length. Distinct from infrastructure errors.
	ErrNotFound = errors.New("no dictionary artifact for this length")

	// ErrInvalidArtifact is returned when a stored artifact fails
	// shape validation on load. Fatal, not recoverable: it means the
	// store holds a corrupt or incompatible artifact.
	ErrInvalidArtifact = errors.New("invalid dictionary artifact")
)
