// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package resolver

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level meter for resolver operations.
var meter = otel.Meter("laddergraph.resolver")

// Outcome labels for the resolve counter.
const (
	outcomeResolved     = "resolved"
	outcomeInvalid      = "invalid"
	outcomeNotConnected = "not_connected"
	outcomeNoPath       = "no_path"
	outcomeError        = "error"
)

var (
	resolveTotal metric.Int64Counter
	searchTotal  metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the counters. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		resolveTotal, err = meter.Int64Counter(
			"resolve_requests_total",
			metric.WithDescription("Total resolve requests by outcome"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchTotal, err = meter.Int64Counter(
			"resolve_searches_total",
			metric.WithDescription("Total breadth-first searches actually run"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func recordOutcome(ctx context.Context, outcome string) {
	if initMetrics() != nil {
		return
	}
	resolveTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func recordSearch(ctx context.Context) {
	if initMetrics() != nil {
		return
	}
	searchTotal.Add(ctx, 1)
}
