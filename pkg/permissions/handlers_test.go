// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/canonical/tenant-access/internal/http/types"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/types"
	"github.com/canonical/tenant-access/pkg/authentication"
)

func withUser(userID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID != "" {
				r = r.WithContext(authentication.WithUserID(r.Context(), userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func newTestRouter(service ServiceInterface, userID string) chi.Router {
	mux := chi.NewRouter()
	mux.Use(withUser(userID))

	NewAPI(service, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(mux)

	return mux
}

func TestAPI_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)

	perms := types.EffectivePermissions{}
	perms.Add("crm", "view", "edit")

	mockService.EXPECT().Resolve(gomock.Any(), "user-1", "tenant-1").Return(perms)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/tenant-1/permissions/me", nil)
	w := httptest.NewRecorder()

	newTestRouter(mockService, "user-1").ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body struct {
		Data map[string][]string `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	expected := map[string][]string{"crm": {"edit", "view"}}
	if !reflect.DeepEqual(body.Data, expected) {
		t.Errorf("expected %v, got %v", expected, body.Data)
	}
}

func TestAPI_MeUnauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/tenant-1/permissions/me", nil)
	w := httptest.NewRecorder()

	newTestRouter(NewMockServiceInterface(ctrl), "").ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

func TestAPI_MyApps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().AccessibleApps(gomock.Any(), "user-1", "tenant-1").Return([]string{"analytics", "crm"})

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/tenant-1/permissions/me/apps", nil)
	w := httptest.NewRecorder()

	newTestRouter(mockService, "user-1").ServeHTTP(w, req)

	var body struct {
		Data []string `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !reflect.DeepEqual(body.Data, []string{"analytics", "crm"}) {
		t.Errorf("unexpected apps %v", body.Data)
	}
}

func TestAPI_Check(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedResult *CheckResponse
	}{
		{
			name: "mode defaults to all",
			body: `{"app_id":"crm","permissions":["view","edit"]}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().HasAllPermissions(gomock.Any(), "user-1", "tenant-1", "crm", []string{"view", "edit"}).Return(true)
			},
			expectedStatus: http.StatusOK,
			expectedResult: &CheckResponse{AppID: "crm", Permissions: []string{"view", "edit"}, Mode: "all", Allowed: true},
		},
		{
			name: "any mode",
			body: `{"app_id":"crm","permissions":["delete"],"mode":"any"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().HasAnyPermission(gomock.Any(), "user-1", "tenant-1", "crm", []string{"delete"}).Return(false)
			},
			expectedStatus: http.StatusOK,
			expectedResult: &CheckResponse{AppID: "crm", Permissions: []string{"delete"}, Mode: "any", Allowed: false},
		},
		{
			name:           "empty permission list is rejected",
			body:           `{"app_id":"crm","permissions":[]}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown mode is rejected",
			body:           `{"app_id":"crm","permissions":["view"],"mode":"most"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{"app_id":`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tc.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/tenant-1/permissions/check", bytes.NewBufferString(tc.body))
			w := httptest.NewRecorder()

			newTestRouter(mockService, "user-1").ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}

			if tc.expectedResult == nil {
				var errResp httptypes.ErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&errResp); err != nil {
					t.Fatalf("failed to decode error response: %v", err)
				}
				if errResp.Status != tc.expectedStatus {
					t.Errorf("expected status %d in body, got %d", tc.expectedStatus, errResp.Status)
				}
				return
			}

			var body struct {
				Data CheckResponse `json:"data"`
			}
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if !reflect.DeepEqual(body.Data, *tc.expectedResult) {
				t.Errorf("expected %+v, got %+v", *tc.expectedResult, body.Data)
			}
		})
	}
}
