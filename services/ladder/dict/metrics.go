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
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Package-level meter for dictionary cache operations.
var meter = otel.Meter("laddergraph.dict")

// Metrics for artifact cache operations.
var (
	cacheHits   metric.Int64Counter
	cacheMisses metric.Int64Counter
	cacheLoads  metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the counters. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		cacheHits, err = meter.Int64Counter(
			"dict_cache_hits_total",
			metric.WithDescription("Total number of artifact cache hits"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		cacheMisses, err = meter.Int64Counter(
			"dict_cache_misses_total",
			metric.WithDescription("Total number of artifact cache misses"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		cacheLoads, err = meter.Int64Counter(
			"dict_cache_loads_total",
			metric.WithDescription("Total number of artifact loads from storage"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func recordCacheHit(ctx context.Context) {
	if initMetrics() != nil {
		return
	}
	cacheHits.Add(ctx, 1)
}

func recordCacheMiss(ctx context.Context) {
	if initMetrics() != nil {
		return
	}
	cacheMisses.Add(ctx, 1)
}

func recordCacheLoad(ctx context.Context) {
	if initMetrics() != nil {
		return
	}
	cacheLoads.Add(ctx, 1)
}
