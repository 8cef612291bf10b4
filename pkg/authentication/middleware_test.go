// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_verifier.go -source=./interfaces.go

func TestMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name               string
		authHeader         string
		setupMocks         func(*MockTokenVerifierInterface)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:               "missing token",
			setupMocks:         func(*MockTokenVerifierInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
			expectedBody:       "{\"status\":401,\"message\":\"missing authorization header\"}\n",
		},
		{
			name:               "token without bearer scheme",
			authHeader:         "Basic YWxpY2U6c2VjcmV0",
			setupMocks:         func(*MockTokenVerifierInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "empty bearer token",
			authHeader:         "Bearer   ",
			setupMocks:         func(*MockTokenVerifierInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "verification fails",
			authHeader: "Bearer expired-token",
			setupMocks: func(v *MockTokenVerifierInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "expired-token").Return(nil, fmt.Errorf("oidc: token is expired"))
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedBody:       "{\"status\":401,\"message\":\"invalid token\"}\n",
		},
		{
			name:       "token without user",
			authHeader: "Bearer service-token",
			setupMocks: func(v *MockTokenVerifierInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "service-token").Return(&Principal{}, nil)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedBody:       "{\"status\":401,\"message\":\"token does not identify a user\"}\n",
		},
		{
			name:       "valid token",
			authHeader: "Bearer valid-token",
			setupMocks: func(v *MockTokenVerifierInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").
					Return(&Principal{UserID: "user-123", Email: "alice@example.com"}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       "success",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockVerifier := NewMockTokenVerifierInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.Authenticate").Return(ctx, trace.SpanFromContext(ctx))
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
			tt.setupMocks(mockVerifier)

			middleware := NewMiddleware(mockVerifier, mockTracer, mockMonitor, mockLogger)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				p, ok := PrincipalFromContext(r.Context())
				if !ok || p.UserID != "user-123" || p.Email != "alice@example.com" {
					t.Errorf("expected alice in the request context, got %+v", p)
				}
				if userID, _ := GetUserID(r.Context()); userID != "user-123" {
					t.Errorf("expected user-123, got %q", userID)
				}
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("success"))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/t1/permissions/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			middleware.Authenticate()(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}

			if tt.expectedBody != "" && rr.Body.String() != tt.expectedBody {
				t.Errorf("expected body %q, got %q", tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestGetUserID(t *testing.T) {
	if _, ok := GetUserID(context.Background()); ok {
		t.Fatal("expected an anonymous context")
	}

	if _, ok := GetUserID(WithUserID(context.Background(), "")); ok {
		t.Fatal("expected an empty user id to count as anonymous")
	}

	ctx := WithUserID(context.Background(), "bob")
	if id, ok := GetUserID(ctx); !ok || id != "bob" {
		t.Fatalf("expected bob, got %q", id)
	}

	if p, _ := PrincipalFromContext(ctx); p.Email != "" || len(p.Scopes) != 0 {
		t.Fatalf("expected a bare principal, got %+v", p)
	}
}
