// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package resolver answers shortest-ladder queries over persisted
// dictionary artifacts.
//
// All query-time failures are returned as values built on the
// sentinels below; they are expected, frequent outcomes (most
// user-chosen word pairs are invalid or disconnected) and are never
// logged as severe. Infrastructure failures from the artifact store
// pass through wrapped and are the only non-sentinel errors Resolve
// can return.
package resolver

import "errors"

// Invalid-input sentinels. Each maps to the bad-input failure code at
// the query interface.
var (
	// ErrLengthMismatch is returned when start and end words have
	// different lengths.
	ErrLengthMismatch = errors.New("start and end words have different lengths")

	// ErrLengthOutOfRange is returned when the word length is outside
	// the supported 2-15 range.
	ErrLengthOutOfRange = errors.New("word length out of supported range")

	// ErrNoDictionary is returned when no artifact exists for the
	// word length.
	ErrNoDictionary = errors.New("no dictionary for this word length")

	// ErrWordNotFound is returned when either word is absent from the
	// dictionary.
	ErrWordNotFound = errors.New("word not in dictionary")
)

// Not-found sentinels.
var (
	// ErrNotConnected is returned when the component pre-check proves
	// no ladder can exist. No traversal is performed.
	ErrNotConnected = errors.New("words are not connected")

	// ErrNoPath is returned when the search exhausts without reaching
	// the end word. Unreachable when the partition is consistent with
	// the graph; kept so an inconsistent artifact degrades to a clean
	// failure instead of a wrong answer.
	ErrNoPath = errors.New("no path found")
)

// IsInvalidInput reports whether err is one of the bad-input
// sentinels, as opposed to not-connected/no-path or an infrastructure
// failure.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrLengthMismatch) ||
		errors.Is(err, ErrLengthOutOfRange) ||
		errors.Is(err, ErrNoDictionary) ||
		errors.Is(err, ErrWordNotFound)
}
