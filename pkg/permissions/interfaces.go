// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"context"

	"github.com/canonical/tenant-access/internal/types"
)

type ServiceInterface interface {
	Resolve(ctx context.Context, userID, tenantID string) types.EffectivePermissions
	ResolveDetailed(ctx context.Context, userID, tenantID string) (types.EffectivePermissions, error)
	HasPermission(ctx context.Context, userID, tenantID, appID, permission string) bool
	HasAnyPermission(ctx context.Context, userID, tenantID, appID string, permissions []string) bool
	HasAllPermissions(ctx context.Context, userID, tenantID, appID string, permissions []string) bool
	AccessibleApps(ctx context.Context, userID, tenantID string) []string
	InvalidateUser(ctx context.Context, userID, tenantID string) error
	InvalidateUsers(ctx context.Context, keys []types.UserTenant) error
}

type StorageInterface interface {
	ListDirectPermissions(ctx context.Context, tenantID, userID string) ([]*types.AppPermission, error)
	ListGroupPermissionsForUser(ctx context.Context, tenantID, userID string) ([]*types.AppPermission, error)
}
