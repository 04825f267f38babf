// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/LadderGraph/services/ladder/datatypes"
	"github.com/AleutianAI/LadderGraph/services/ladder/dict"
)

// HandleLengths answers GET /v1/ladder/lengths with the word lengths
// that have a published dictionary, so puzzle generation can pick a
// length without probing.
func HandleLengths(store *dict.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		lengths, err := store.Lengths(c.Request.Context())
		if err != nil {
			slog.Error("list lengths failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, datatypes.ResolveResponse{
				Success: false,
				Code:    datatypes.CodeInternal,
				Error:   "store unavailable",
			})
			return
		}
		if lengths == nil {
			lengths = []int{}
		}
		c.JSON(http.StatusOK, datatypes.LengthsResponse{
			Success: true,
			Lengths: lengths,
		})
	}
}

// HealthCheck answers GET /health. Store reachability is reported but
// does not fail liveness; the process can still serve cached lengths.
func HealthCheck(store *dict.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeStatus := "ok"
		if _, err := store.Lengths(c.Request.Context()); err != nil {
			storeStatus = "unavailable"
		}
		c.JSON(http.StatusOK, datatypes.HealthResponse{
			Status: "ok",
			Store:  storeStatus,
		})
	}
}
