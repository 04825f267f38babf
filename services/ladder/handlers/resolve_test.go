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
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/LadderGraph/services/ladder/datatypes"
	"github.com/AleutianAI/LadderGraph/services/ladder/dict"
	"github.com/AleutianAI/LadderGraph/services/ladder/graph"
	"github.com/AleutianAI/LadderGraph/services/ladder/resolver"
)

// newTestRouter stands up the resolve/lengths handlers over an
// in-memory store seeded with the 4-letter fixture.
func newTestRouter(t *testing.T) (*gin.Engine, *dict.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := dict.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	words := []string{"CORE", "CORK", "FORK", "FORT", "FOOT", "PORT", "JAZZ"}
	adjacency, _, err := graph.NewBuilder().Build(context.Background(), words)
	require.NoError(t, err)
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	artifact := dict.NewArtifact(4, sorted, adjacency, graph.PartitionComponents(adjacency))
	require.NoError(t, store.Save(context.Background(), artifact))

	res := resolver.New(dict.NewCache(store.Load))

	router := gin.New()
	router.GET("/health", HealthCheck(store))
	router.POST("/v1/ladder/resolve", HandleResolve(res))
	router.GET("/v1/ladder/lengths", HandleLengths(store))
	return router, store
}

// postResolve performs a resolve request and decodes the response.
func postResolve(t *testing.T, router *gin.Engine, body any) (int, datatypes.ResolveResponse) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/ladder/resolve", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp datatypes.ResolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestHandleResolve_Success(t *testing.T) {
	router, _ := newTestRouter(t)

	code, resp := postResolve(t, router, datatypes.ResolveRequest{
		StartWord: "CORE",
		EndWord:   "FOOT",
	})

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"CORE", "CORK", "FORK", "FORT", "FOOT"}, resp.Path)
	assert.Equal(t, 5, resp.Length)
}

func TestHandleResolve_Failures(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("missing fields", func(t *testing.T) {
		code, resp := postResolve(t, router, map[string]string{"startWord": "CORE"})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.False(t, resp.Success)
		assert.Equal(t, datatypes.CodeBadInput, resp.Code)
	})

	t.Run("length mismatch", func(t *testing.T) {
		code, resp := postResolve(t, router, datatypes.ResolveRequest{
			StartWord: "CAT",
			EndWord:   "DOGS",
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, datatypes.CodeBadInput, resp.Code)
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("word not in dictionary", func(t *testing.T) {
		code, resp := postResolve(t, router, datatypes.ResolveRequest{
			StartWord: "CORE",
			EndWord:   "ABCD",
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, datatypes.CodeBadInput, resp.Code)
	})

	t.Run("not connected", func(t *testing.T) {
		code, resp := postResolve(t, router, datatypes.ResolveRequest{
			StartWord: "CORE",
			EndWord:   "JAZZ",
		})
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, datatypes.CodeNotConnected, resp.Code)
	})

	t.Run("no dictionary for length", func(t *testing.T) {
		code, resp := postResolve(t, router, datatypes.ResolveRequest{
			StartWord: "HOUSE",
			EndWord:   "MOUSE",
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, datatypes.CodeBadInput, resp.Code)
	})
}

func TestHandleLengths(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ladder/lengths", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp datatypes.LengthsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, []int{4}, resp.Lengths)
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp datatypes.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "ok", resp.Store)
}
