package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"youth_balance/internal/platform/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter(checks map[string]Check) *gin.Engine {
	h := NewHealthHandler(checks, logger.Discard())
	r := gin.New()
	r.GET("/healthz", h.Health)
	r.HEAD("/healthz", h.Health)
	r.OPTIONS("/healthz", h.Health)
	return r
}

func TestHealth(t *testing.T) {
	t.Parallel()

	ok := func(ctx context.Context) error { return nil }
	down := func(ctx context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		method     string
		checks     map[string]Check
		wantStatus int
		wantBody   string
	}{
		{"GET healthy", http.MethodGet, map[string]Check{"database": ok}, http.StatusOK, `{"status":"ok"}`},
		{"GET without checks", http.MethodGet, nil, http.StatusOK, `{"status":"ok"}`},
		{"GET database down", http.MethodGet, map[string]Check{"database": down, "redis": ok}, http.StatusServiceUnavailable,
			`{"status":"unavailable","checks":{"database":"unavailable"}}`},
		{"HEAD skips checks", http.MethodHead, map[string]Check{"database": down}, http.StatusOK, ""},
		{"OPTIONS", http.MethodOptions, map[string]Check{"database": down}, http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			setupRouter(tt.checks).ServeHTTP(w, httptest.NewRequest(tt.method, "/healthz", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			if tt.wantBody == "" {
				assert.Empty(t, w.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
