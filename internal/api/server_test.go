// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookshelf/internal/api"
	"github.com/taibuivan/bookshelf/internal/core/book"
	"github.com/taibuivan/bookshelf/internal/platform/config"
)

func newTestServer(t *testing.T, checkCatalog func(context.Context) error) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	service := book.NewService(book.NewMemoryRepository(), logger)

	if checkCatalog == nil {
		checkCatalog = func(ctx context.Context) error {
			_, err := service.CountBooks(ctx)
			return err
		}
	}

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{CheckCatalog: checkCatalog}, logger)
	server := api.NewServer(ctx, cfg, logger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Book:      book.NewHandler(service),
	})
	return server.Handler()
}

/*
TestServer_Probes checks the liveness and readiness endpoints.
*/
func TestServer_Probes(t *testing.T) {
	handler := newTestServer(t, nil)

	for _, path := range []string{"/health", "/ready"} {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, recorder.Code, path)
		assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"), path)
	}
}

/*
TestServer_ReadinessDegraded reports 503 when the catalog check fails.
*/
func TestServer_ReadinessDegraded(t *testing.T) {
	handler := newTestServer(t, func(context.Context) error { return errors.New("catalog offline") })

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"state":"degraded"`)
}

/*
TestServer_BooksRoundTrip creates and lists a book through the full middleware chain.
*/
func TestServer_BooksRoundTrip(t *testing.T) {
	handler := newTestServer(t, nil)

	create := httptest.NewRequest(http.MethodPost, "/books",
		strings.NewReader(`{"name":"Buku A","pageCount":100,"readPage":100,"publisher":"P"}`))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, create)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	assert.Contains(t, recorder.Body.String(), `"bookId"`)

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/books?finished=true", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"name":"Buku A"`)
	assert.NotContains(t, recorder.Body.String(), `"pageCount"`)
}
