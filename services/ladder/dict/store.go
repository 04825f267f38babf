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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// keyPrefix namespaces artifact keys inside the database. The version
// is part of the prefix so incompatible artifacts are invisible to a
// newer binary rather than failing validation one by one.
var keyPrefix = fmt.Sprintf("dict:v%d:", ArtifactVersion)

// artifactKey returns the storage key for a word length.
func artifactKey(length int) []byte {
	return []byte(keyPrefix + strconv.Itoa(length))
}

// Config holds configuration for a dictionary Store.
type Config struct {
	// Path is the directory for BadgerDB files.
	// Required unless InMemory is true.
	Path string

	// InMemory enables in-memory mode (no disk persistence).
	// Useful for testing.
	InMemory bool

	// SyncWrites enables synchronous writes for durability.
	// The builder publishes rarely, so the default is true.
	SyncWrites bool

	// Logger receives BadgerDB's internal log output. If nil,
	// BadgerDB logging is disabled.
	Logger *slog.Logger
}

// DefaultConfig returns production defaults for a store at path.
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig returns configuration for tests.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Store persists dictionary artifacts in BadgerDB, one record per
// word length.
//
// Thread Safety: Store is safe for concurrent use; BadgerDB handles
// transaction isolation internally.
type Store struct {
	db *badger.DB
}

// Open creates and opens a Store with the given configuration.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("path is required for persistent store")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, fmt.Errorf("create store directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites)

	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open dictionary store: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenWithPath opens a persistent store with production defaults.
func OpenWithPath(path string) (*Store, error) {
	return Open(DefaultConfig(path))
}

// OpenInMemory opens an in-memory store for testing.
func OpenInMemory() (*Store, error) {
	return Open(InMemoryConfig())
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save publishes an artifact in a single transaction.
//
// Badger transactions are atomic, so a failed build never leaves a
// partial artifact visible to readers.
func (s *Store) Save(ctx context.Context, a *Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return err
	}
	data, err := a.Encode()
	if err != nil {
		return err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(artifactKey(a.Length), data)
	})
	if err != nil {
		return fmt.Errorf("save artifact for length %d: %w", a.Length, err)
	}
	return nil
}

// Load reads and validates the artifact for a word length.
//
// Outputs:
//
//	*Artifact - The validated artifact.
//	error - ErrNotFound when no artifact exists for the length,
//	        ErrInvalidArtifact when the stored shape is corrupt, or a
//	        wrapped storage error for infrastructure failures.
func (s *Store) Load(ctx context.Context, length int) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(artifactKey(length))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read artifact for length %d: %w", length, err)
	}

	return DecodeArtifact(data)
}

// Lengths lists the word lengths that have a stored artifact, sorted.
func (s *Store) Lengths(ctx context.Context) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var lengths []int
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().Key())
			length, err := strconv.Atoi(strings.TrimPrefix(key, keyPrefix))
			if err != nil {
				continue
			}
			lengths = append(lengths, length)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list artifact lengths: %w", err)
	}

	sort.Ints(lengths)
	return lengths, nil
}
