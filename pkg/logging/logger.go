// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package logging provides structured logging for LadderGraph
// components.
//
// Built on the standard library slog package. Default output is
// stderr (Unix CLI convention); an optional log directory adds a JSON
// file named {service}_{date}.log alongside it.
//
// # Basic Usage
//
//	logger, err := logging.New(logging.Config{Service: "ladderd"})
//	defer logger.Close()
//	logger.Info("artifact loaded", "length", 4)
//
// # Thread Safety
//
// Logger is safe for concurrent use; slog handlers serialize writes.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Config controls logger construction.
type Config struct {
	// Level is the minimum level emitted. Defaults to Info.
	Level slog.Level

	// Service names the component; used in the log file name and
	// attached to every record.
	Service string

	// LogDir, when set, enables file logging in that directory.
	// The directory is created if missing.
	LogDir string

	// JSON selects the JSON handler for stderr output. File output
	// is always JSON.
	JSON bool
}

// Logger wraps slog.Logger with ownership of the optional log file.
type Logger struct {
	*slog.Logger
	file *os.File
}

// New constructs a Logger from cfg.
func New(cfg Config) (*Logger, error) {
	writer := io.Writer(os.Stderr)

	var file *os.File
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, 0750); err != nil {
			return nil, fmt.Errorf("create log directory %s: %w", cfg.LogDir, err)
		}
		name := fmt.Sprintf("%s_%s.log", cfg.Service, time.Now().Format("2006-01-02"))
		f, err := os.OpenFile(filepath.Join(cfg.LogDir, name),
			os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		file = f
		writer = io.MultiWriter(os.Stderr, f)
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}
	var handler slog.Handler
	if cfg.JSON || file != nil {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	logger := slog.New(handler)
	if cfg.Service != "" {
		logger = logger.With("service", cfg.Service)
	}
	return &Logger{Logger: logger, file: file}, nil
}

// Default returns a text logger to stderr at Info level.
func Default() *Logger {
	logger, _ := New(Config{})
	return logger
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
