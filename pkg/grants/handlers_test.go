// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package grants

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/canonical/tenant-access/internal/http/types"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/types"
	"github.com/canonical/tenant-access/pkg/authentication"
	"github.com/canonical/tenant-access/pkg/permissions"
)

func newTestRouter(ctrl *gomock.Controller, service ServiceInterface) chi.Router {
	mockAuthz := NewMockAuthorizerInterface(ctrl)
	mockAuthz.EXPECT().Require(permissions.PermissionAssignApps).Return(func(next http.Handler) http.Handler {
		return next
	})

	mux := chi.NewRouter()
	mux.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(authentication.WithUserID(r.Context(), "admin")))
		})
	})

	NewAPI(service, mockAuthz, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(mux)

	return mux
}

func TestAPI_AssignGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expiresAt := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().AssignGroupPermission(gomock.Any(), "tenant-1", "group-1", "crm", []string{"view"}, "admin", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _ string, _ []string, _ string, e *time.Time) (*types.AppPermission, error) {
			if e == nil || !e.Equal(expiresAt) {
				t.Errorf("expected expiry %v, got %v", expiresAt, e)
			}
			return &types.AppPermission{AppID: "crm", Permissions: []string{"view"}, ExpiresAt: e}, nil
		})

	body := `{"permissions":["view"],"expires_at":"2026-06-01T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v0/tenants/tenant-1/groups/group-1/apps/crm", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	newTestRouter(ctrl, mockService).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAPI_AssignDirectInvalidPermissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().AssignDirectPermission(gomock.Any(), "tenant-1", "u1", "crm", []string{"view", "fly"}, "admin", nil).
		Return(nil, &types.ValidationError{Valid: []string{"view"}, Invalid: []string{"fly"}})

	req := httptest.NewRequest(http.MethodPut, "/api/v0/tenants/tenant-1/users/u1/apps/crm", bytes.NewBufferString(`{"permissions":["view","fly"]}`))
	w := httptest.NewRecorder()

	newTestRouter(ctrl, mockService).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var resp httptypes.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !reflect.DeepEqual(resp.Invalid, []string{"fly"}) {
		t.Errorf("expected invalid [fly], got %v", resp.Invalid)
	}
}

func TestAPI_RevokeDirect(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "revoked", expectedStatus: http.StatusOK},
		{name: "no such grant", err: types.ErrGrantNotFound, expectedStatus: http.StatusNotFound},
		{name: "store down", err: types.ErrStoreUnavailable, expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockService.EXPECT().RevokeDirectPermission(gomock.Any(), "tenant-1", "u1", "crm").Return(tc.err)

			req := httptest.NewRequest(http.MethodDelete, "/api/v0/tenants/tenant-1/users/u1/apps/crm", nil)
			w := httptest.NewRecorder()

			newTestRouter(ctrl, mockService).ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, w.Code)
			}
		})
	}
}
