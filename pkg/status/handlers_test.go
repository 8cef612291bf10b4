// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/version"
)

type pingerFunc func(context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestAPI_Ready(t *testing.T) {
	up := pingerFunc(func(context.Context) error { return nil })
	down := pingerFunc(func(context.Context) error { return errors.New("connection refused") })

	testCases := []struct {
		name           string
		dependencies   map[string]PingerInterface
		expectedCode   int
		expectedChecks map[string]string
	}{
		{
			name:           "all dependencies available",
			dependencies:   map[string]PingerInterface{"database": up, "cache": up},
			expectedCode:   http.StatusOK,
			expectedChecks: map[string]string{"database": "ok", "cache": "ok"},
		},
		{
			name:           "one dependency down",
			dependencies:   map[string]PingerInterface{"database": down, "cache": up},
			expectedCode:   http.StatusServiceUnavailable,
			expectedChecks: map[string]string{"database": "unavailable", "cache": "ok"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux := chi.NewMux()
			NewAPI(tc.dependencies, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/ready", nil))

			if w.Code != tc.expectedCode {
				t.Fatalf("expected status %d, got %d", tc.expectedCode, w.Code)
			}

			var body struct {
				Data Status `json:"data"`
			}
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Data.Version != version.Version {
				t.Fatalf("expected version %q, got %q", version.Version, body.Data.Version)
			}
			for name, expected := range tc.expectedChecks {
				if body.Data.Checks[name] != expected {
					t.Fatalf("expected check %s to be %q, got %q", name, expected, body.Data.Checks[name])
				}
			}
		})
	}
}

func TestAPI_Alive(t *testing.T) {
	mux := chi.NewMux()
	NewAPI(nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/status", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}
