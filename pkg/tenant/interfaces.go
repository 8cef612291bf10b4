// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"net/http"

	"github.com/canonical/tenant-access/internal/db"
	"github.com/canonical/tenant-access/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, name, slug string, plan types.Plan, owner *types.User) (*types.Tenant, error)
	GetTenant(ctx context.Context, ref string) (*types.Tenant, error)
	GetTenantForMember(ctx context.Context, tenantID, userID string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenantStatus(ctx context.Context, tenantID string, status types.TenantStatus, actor string) error
	ChangePlan(ctx context.Context, tenantID string, plan types.Plan, actor string) (*types.Tenant, error)
	AddMember(ctx context.Context, tenantID string, user *types.User, role types.Role, actor string) (*types.Membership, error)
	ListMembers(ctx context.Context, tenantID string) ([]*types.Membership, error)
	SetEntitlement(ctx context.Context, e *types.Entitlement, actor string) error
	ListEntitlements(ctx context.Context, tenantID string) ([]*types.Entitlement, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenantStatus(ctx context.Context, id string, status types.TenantStatus) error
	UpdateTenantPlan(ctx context.Context, id string, plan types.Plan) error

	UpsertUser(ctx context.Context, u *types.User) (*types.User, error)
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	AddMembership(ctx context.Context, tenantID, userID string, role types.Role) (*types.Membership, error)
	ListMemberships(ctx context.Context, tenantID string) ([]*types.Membership, error)
	UpsertDirectPermission(ctx context.Context, membershipID string, p *types.AppPermission) (*types.AppPermission, error)

	ListTenantEntitlements(ctx context.Context, tenantID string) ([]*types.Entitlement, error)
	UpsertTenantEntitlement(ctx context.Context, e *types.Entitlement) error
}

// TxInterface runs fn in a single store transaction.
type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

// InvalidatorInterface drops cached effective permissions.
type InvalidatorInterface interface {
	InvalidateUsers(ctx context.Context, keys []types.UserTenant) error
}

// ProvisionerInterface creates the dedicated database of a tenant.
type ProvisionerInterface interface {
	EnsureDatabase(ctx context.Context, database string) (db.DBClientInterface, error)
}

// AuthorizerInterface guards routes behind a system permission of the caller in the tenant.
type AuthorizerInterface interface {
	Require(permission string) func(http.Handler) http.Handler
}
