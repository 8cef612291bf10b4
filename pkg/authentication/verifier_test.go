// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"testing"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.uber.org/mock/gomock"
)

func TestPrincipalFromClaims(t *testing.T) {
	tests := []struct {
		name          string
		claims        map[string]any
		userClaim     string
		requiredScope string
		expected      *Principal
		expectErr     bool
	}{
		{
			name:      "subject and email",
			claims:    map[string]any{"sub": "u1", "email": "u1@example.com"},
			userClaim: "sub",
			expected:  &Principal{UserID: "u1", Email: "u1@example.com"},
		},
		{
			name:      "custom user claim",
			claims:    map[string]any{"sub": "client-1", "identity_id": "u2"},
			userClaim: "identity_id",
			expected:  &Principal{UserID: "u2"},
		},
		{
			name:      "missing user claim",
			claims:    map[string]any{"sub": "client-1"},
			userClaim: "identity_id",
			expectErr: true,
		},
		{
			name:      "non string user claim",
			claims:    map[string]any{"sub": float64(42)},
			userClaim: "sub",
			expectErr: true,
		},
		{
			name:          "required scope in scope claim",
			claims:        map[string]any{"sub": "u1", "scope": "openid tenant-access"},
			userClaim:     "sub",
			requiredScope: "tenant-access",
			expected:      &Principal{UserID: "u1", Scopes: []string{"openid", "tenant-access"}},
		},
		{
			name:          "required scope in scp claim",
			claims:        map[string]any{"sub": "u1", "scp": []any{"tenant-access"}},
			userClaim:     "sub",
			requiredScope: "tenant-access",
			expected:      &Principal{UserID: "u1", Scopes: []string{"tenant-access"}},
		},
		{
			name:          "required scope missing",
			claims:        map[string]any{"sub": "u1", "scope": "openid"},
			userClaim:     "sub",
			requiredScope: "tenant-access",
			expectErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := principalFromClaims(tt.claims, tt.userClaim, tt.requiredScope)

			if tt.expectErr {
				if err == nil {
					t.Fatalf("expected an error, got %+v", p)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if p.UserID != tt.expected.UserID || p.Email != tt.expected.Email || len(p.Scopes) != len(tt.expected.Scopes) {
				t.Fatalf("expected %+v, got %+v", tt.expected, p)
			}
			for i := range p.Scopes {
				if p.Scopes[i] != tt.expected.Scopes[i] {
					t.Fatalf("expected scopes %v, got %v", tt.expected.Scopes, p.Scopes)
				}
			}
		})
	}
}

func TestNewJWTVerifier(t *testing.T) {
	tests := []struct {
		name          string
		cfg           Config
		skipAudience  bool
		expectedClaim string
	}{
		{name: "no audience", cfg: Config{Issuer: "https://idp"}, skipAudience: true, expectedClaim: "sub"},
		{name: "audience and user claim", cfg: Config{Issuer: "https://idp", Audience: "tenant-access", UserClaim: "identity_id"}, expectedClaim: "identity_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			provider := NewMockProviderInterface(ctrl)
			provider.EXPECT().Verifier(gomock.Any()).DoAndReturn(
				func(c *oidc.Config) *oidc.IDTokenVerifier {
					if c.SkipClientIDCheck != tt.skipAudience || c.ClientID != tt.cfg.Audience {
						t.Errorf("unexpected verifier config %+v", c)
					}
					if c.SkipIssuerCheck {
						t.Error("expected the issuer to be checked")
					}
					return nil
				},
			)

			v := NewJWTVerifier(provider, tt.cfg, NewMockTracingInterface(ctrl), NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))

			if v.userClaim != tt.expectedClaim {
				t.Fatalf("expected user claim %q, got %q", tt.expectedClaim, v.userClaim)
			}
		})
	}
}
