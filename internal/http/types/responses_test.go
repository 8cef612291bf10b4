// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/canonical/tenant-access/internal/types"
)

func TestNewErrorResponse(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorResponse
	}{
		{
			name:     "not found",
			err:      fmt.Errorf("group g1: %w", types.ErrGroupNotFound),
			expected: ErrorResponse{Status: http.StatusNotFound, Message: "group g1: group not found"},
		},
		{
			name:     "conflict",
			err:      fmt.Errorf("group name taken: %w", types.ErrConflict),
			expected: ErrorResponse{Status: http.StatusConflict, Message: "group name taken: conflict"},
		},
		{
			name: "validation keeps invalid items",
			err:  &types.ValidationError{Valid: []string{"view"}, Invalid: []string{"bogus"}},
			expected: ErrorResponse{
				Status:  http.StatusBadRequest,
				Message: "invalid permissions: bogus",
				Invalid: []string{"bogus"},
			},
		},
		{
			name:     "store unavailable",
			err:      fmt.Errorf("read failed: %w", types.ErrStoreUnavailable),
			expected: ErrorResponse{Status: http.StatusServiceUnavailable, Message: "store unavailable, retry later"},
		},
		{
			name:     "unknown error is hidden",
			err:      errors.New("pq: relation does not exist"),
			expected: ErrorResponse{Status: http.StatusInternalServerError, Message: "Internal Server Error"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := NewErrorResponse(test.err)

			if !reflect.DeepEqual(result, test.expected) {
				t.Errorf("expected result: %v, got: %v", test.expected, result)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, types.ErrTenantNotFound)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}

	var body ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if body.Status != http.StatusNotFound || body.Message != "tenant not found" {
		t.Errorf("unexpected body %+v", body)
	}
}
