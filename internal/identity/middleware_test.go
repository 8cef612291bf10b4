// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/pkg/authentication"
)

func TestMiddleware_HTTPMiddleware(t *testing.T) {
	testCases := []struct {
		name           string
		header         string
		requestHeader  string
		value          string
		expectedStatus int
		expectedUser   string
	}{
		{name: "default header", requestHeader: DefaultHeaderName, value: "alice", expectedStatus: http.StatusOK, expectedUser: "alice"},
		{name: "custom header", header: "X-User-Id", requestHeader: "X-User-Id", value: " bob ", expectedStatus: http.StatusOK, expectedUser: "bob"},
		{name: "missing header", requestHeader: "X-Other", value: "alice", expectedStatus: http.StatusUnauthorized},
		{name: "blank identity", requestHeader: DefaultHeaderName, value: "  ", expectedStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMiddleware(tc.header, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			var seen string
			handler := m.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = authentication.GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/t1/permissions/me", nil)
			req.Header.Set(tc.requestHeader, tc.value)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, w.Code)
			}
			if seen != tc.expectedUser {
				t.Fatalf("expected user %q, got %q", tc.expectedUser, seen)
			}
		})
	}
}
