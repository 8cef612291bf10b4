// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"slices"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	// UserID is the identity provider id tenant memberships are keyed by.
	UserID string
	Email  string
	Scopes []string
}

func (p *Principal) HasScope(scope string) bool {
	return slices.Contains(p.Scopes, scope)
}

type contextKey struct{}

var principalContextKey = contextKey{}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// PrincipalFromContext returns the caller stored by the authentication middleware.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(*Principal)
	return p, ok && p != nil
}

// WithUserID stores a caller known only by its user id, as established by a trusted proxy header.
func WithUserID(ctx context.Context, userID string) context.Context {
	return WithPrincipal(ctx, &Principal{UserID: userID})
}

// GetUserID returns the user id of the caller, false when the request is anonymous.
func GetUserID(ctx context.Context) (string, bool) {
	p, ok := PrincipalFromContext(ctx)
	if !ok || p.UserID == "" {
		return "", false
	}

	return p.UserID, true
}
