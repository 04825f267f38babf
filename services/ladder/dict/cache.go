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
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// LoadFunc loads the artifact for a word length from backing storage.
// Store.Load satisfies this signature.
type LoadFunc func(ctx context.Context, length int) (*Artifact, error)

// Cache is the process-wide, per-length artifact cache.
//
// Artifacts are immutable, so the cache grows monotonically and never
// evicts: the word-length domain is bounded (2-15), which caps the
// footprint. Population is deduplicated with singleflight so at most
// one load per length runs even under concurrent first access; load
// errors are not cached, so a transient storage failure is retried on
// the next request.
//
// Thread Safety:
//
//	Cache is safe for concurrent use. Reads take an RWMutex read
//	lock; population goes through singleflight.
type Cache struct {
	mu      sync.RWMutex
	entries map[int]*Artifact
	flight  singleflight.Group
	load    LoadFunc

	// Stats
	hits   int64
	misses int64
	loads  int64
}

// CacheStats is a point-in-time snapshot of cache counters.
type CacheStats struct {
	Hits   int64
	Misses int64
	Loads  int64
}

// NewCache creates a Cache that populates misses through load.
func NewCache(load LoadFunc) *Cache {
	return &Cache{
		entries: make(map[int]*Artifact),
		load:    load,
	}
}

// Get returns the artifact for length, loading and caching it on
// first access. Error semantics are those of the LoadFunc: ErrNotFound
// for an unsupported length, anything else is an infrastructure
// failure.
func (c *Cache) Get(ctx context.Context, length int) (*Artifact, error) {
	c.mu.RLock()
	artifact, ok := c.entries[length]
	c.mu.RUnlock()
	if ok {
		atomic.AddInt64(&c.hits, 1)
		recordCacheHit(ctx)
		return artifact, nil
	}

	atomic.AddInt64(&c.misses, 1)
	recordCacheMiss(ctx)

	value, err, _ := c.flight.Do(strconv.Itoa(length), func() (interface{}, error) {
		// Re-check under the flight: a concurrent caller may have
		// populated the entry while we waited.
		c.mu.RLock()
		cached, ok := c.entries[length]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		atomic.AddInt64(&c.loads, 1)
		recordCacheLoad(ctx)

		loaded, err := c.load(ctx, length)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[length] = loaded
		c.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*Artifact), nil
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:   atomic.LoadInt64(&c.hits),
		Misses: atomic.LoadInt64(&c.misses),
		Loads:  atomic.LoadInt64(&c.loads),
	}
}

// Len returns the number of resident artifacts.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
