// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-access/internal/tracing"
)

func TestMiddleware_Require(t *testing.T) {
	testCases := []struct {
		name           string
		userID         string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedStatus int
		expectedCalled bool
	}{
		{
			name:   "caller holds the permission",
			userID: "user-1",
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				s.EXPECT().HasPermission(gomock.Any(), "user-1", "tenant-1", SystemAppID, PermissionManageGroups).Return(true)
			},
			expectedStatus: http.StatusOK,
			expectedCalled: true,
		},
		{
			name:   "caller lacks the permission",
			userID: "user-1",
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface, sec *MockSecurityLoggerInterface) {
				s.EXPECT().HasPermission(gomock.Any(), "user-1", "tenant-1", SystemAppID, PermissionManageGroups).Return(false)
				l.EXPECT().Security().Return(sec)
				sec.EXPECT().AuthzFailure("user-1", "tenant:tenant-1:"+PermissionManageGroups)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "unauthenticated caller",
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			tc.setupMocks(mockService, mockLogger, mockSecurity)

			called := false
			mux := chi.NewRouter()
			mux.Use(withUser(tc.userID))
			mux.With(NewMiddleware(mockService, tracing.NewNoopTracer(), mockLogger).Require(PermissionManageGroups)).
				Post("/api/v0/tenants/{tenant}/groups", func(w http.ResponseWriter, r *http.Request) {
					called = true
					w.WriteHeader(http.StatusOK)
				})

			req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/tenant-1/groups", nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, w.Code)
			}
			if called != tc.expectedCalled {
				t.Errorf("expected handler called %v, got %v", tc.expectedCalled, called)
			}
		})
	}
}
