// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package grants

import (
	"context"
	"net/http"
	"time"

	"github.com/canonical/tenant-access/internal/types"
)

type ServiceInterface interface {
	AssignGroupPermission(ctx context.Context, tenantID, groupID, appID string, permissions []string, grantedBy string, expiresAt *time.Time) (*types.AppPermission, error)
	AssignDirectPermission(ctx context.Context, tenantID, userID, appID string, permissions []string, grantedBy string, expiresAt *time.Time) (*types.AppPermission, error)
	RevokeGroupPermission(ctx context.Context, tenantID, groupID, appID string) error
	RevokeDirectPermission(ctx context.Context, tenantID, userID, appID string) error
	ListDirectPermissions(ctx context.Context, tenantID, userID string) ([]*types.AppPermission, error)
}

type StorageInterface interface {
	GetGroup(ctx context.Context, id string) (*types.Group, error)
	ListGroupMembers(ctx context.Context, groupID string) ([]string, error)
	UpsertGroupPermission(ctx context.Context, groupID string, p *types.AppPermission) (*types.AppPermission, error)
	DeleteGroupPermission(ctx context.Context, groupID, appID string) error

	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	ListDirectPermissions(ctx context.Context, tenantID, userID string) ([]*types.AppPermission, error)
	UpsertDirectPermission(ctx context.Context, membershipID string, p *types.AppPermission) (*types.AppPermission, error)
	DeleteDirectPermission(ctx context.Context, membershipID, appID string) error

	GetTenantEntitlement(ctx context.Context, tenantID, appID string) (*types.Entitlement, error)
}

// SchedulerInterface creates the expiry reminders of a grant.
type SchedulerInterface interface {
	Schedule(ctx context.Context, tenantID string, grant *types.AppPermission, recipients []string) (int, error)
}

// TxInterface runs fn in a single store transaction.
type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

// InvalidatorInterface drops cached effective permissions.
type InvalidatorInterface interface {
	InvalidateUsers(ctx context.Context, keys []types.UserTenant) error
}

// AuthorizerInterface guards routes behind a system permission of the caller in the tenant.
type AuthorizerInterface interface {
	Require(permission string) func(http.Handler) http.Handler
}
