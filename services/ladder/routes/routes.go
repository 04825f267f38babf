// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package routes wires the ladder API onto a gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/LadderGraph/services/ladder/dict"
	"github.com/AleutianAI/LadderGraph/services/ladder/handlers"
	"github.com/AleutianAI/LadderGraph/services/ladder/resolver"
)

// SetupRoutes registers the query API on router.
func SetupRoutes(router *gin.Engine, res *resolver.Resolver, store *dict.Store) {
	router.GET("/health", handlers.HealthCheck(store))

	// API version 1 group
	v1 := router.Group("/v1")
	{
		ladder := v1.Group("/ladder")
		{
			ladder.POST("/resolve", handlers.HandleResolve(res))
			ladder.GET("/lengths", handlers.HandleLengths(store))
		}
	}
}
