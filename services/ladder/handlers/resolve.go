// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package handlers contains the gin handlers of the ladder query API.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"

	"github.com/AleutianAI/LadderGraph/services/ladder/datatypes"
	"github.com/AleutianAI/LadderGraph/services/ladder/middleware"
	"github.com/AleutianAI/LadderGraph/services/ladder/resolver"
)

var ladderTracer = otel.Tracer("laddergraph.handlers")

// HandleResolve answers POST /v1/ladder/resolve.
//
// Invalid input and disconnected pairs are expected, frequent
// outcomes; they are logged at Debug and returned as structured
// failures, never as generic errors.
func HandleResolve(res *resolver.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := ladderTracer.Start(c.Request.Context(), "ladder.resolve")
		defer span.End()

		var req datatypes.ResolveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, datatypes.ResolveResponse{
				Success: false,
				Code:    datatypes.CodeBadInput,
				Error:   "startWord and endWord are required",
			})
			return
		}

		path, err := res.Resolve(ctx, req.StartWord, req.EndWord)
		if err != nil {
			status, code := classify(err)
			if status == http.StatusServiceUnavailable {
				slog.Error("resolve failed on storage",
					"error", err,
					"request_id", middleware.GetRequestID(c))
			} else {
				slog.Debug("resolve rejected",
					"start", req.StartWord,
					"end", req.EndWord,
					"code", code,
					"error", err)
			}
			c.JSON(status, datatypes.ResolveResponse{
				Success: false,
				Code:    code,
				Error:   err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, datatypes.ResolveResponse{
			Success: true,
			Path:    path,
			Length:  len(path),
		})
	}
}

// classify maps resolver errors onto HTTP status and failure code.
func classify(err error) (int, string) {
	switch {
	case resolver.IsInvalidInput(err):
		return http.StatusBadRequest, datatypes.CodeBadInput
	case errors.Is(err, resolver.ErrNotConnected):
		return http.StatusNotFound, datatypes.CodeNotConnected
	case errors.Is(err, resolver.ErrNoPath):
		return http.StatusNotFound, datatypes.CodeNoPathFound
	default:
		// Storage trouble: retryable by the caller, unlike bad-input.
		return http.StatusServiceUnavailable, datatypes.CodeInternal
	}
}
