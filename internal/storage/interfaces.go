// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/tenant-access/internal/types"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenantStatus(ctx context.Context, id string, status types.TenantStatus) error
	UpdateTenantPlan(ctx context.Context, id string, plan types.Plan) error
	SetTenantDataPlane(ctx context.Context, id string, dp types.DataPlane) error
	ListTenantEntitlements(ctx context.Context, tenantID string) ([]*types.Entitlement, error)
	GetTenantEntitlement(ctx context.Context, tenantID, appID string) (*types.Entitlement, error)

	UpsertTenantEntitlement(ctx context.Context, e *types.Entitlement) error

	GetUserByID(ctx context.Context, id string) (*types.User, error)
	UpsertUser(ctx context.Context, u *types.User) (*types.User, error)
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	AddMembership(ctx context.Context, tenantID, userID string, role types.Role) (*types.Membership, error)
	ListMemberships(ctx context.Context, tenantID string) ([]*types.Membership, error)
	ListActiveMemberIDs(ctx context.Context, tenantID string, userIDs []string) ([]string, error)

	ListDirectPermissions(ctx context.Context, tenantID, userID string) ([]*types.AppPermission, error)
	UpsertDirectPermission(ctx context.Context, membershipID string, p *types.AppPermission) (*types.AppPermission, error)
	DeleteDirectPermission(ctx context.Context, membershipID, appID string) error
	DeleteExpiredDirectPermissions(ctx context.Context, now time.Time, limit uint64) ([]*types.ExpiredGrant, error)

	CreateGroup(ctx context.Context, g *types.Group) (*types.Group, error)
	GetGroup(ctx context.Context, id string) (*types.Group, error)
	GroupNameExists(ctx context.Context, tenantID, name string) (bool, error)
	ListGroups(ctx context.Context, tenantID string) ([]*types.Group, error)
	ListUserGroups(ctx context.Context, tenantID, userID string) ([]*types.Group, error)
	UpdateGroup(ctx context.Context, id string, name, description *string, modifiedBy string) error
	DeleteGroup(ctx context.Context, id string) error
	AddGroupMembers(ctx context.Context, groupID string, userIDs []string, modifiedBy string) error
	RemoveGroupMembers(ctx context.Context, groupID string, userIDs []string, modifiedBy string) error
	ListGroupMembers(ctx context.Context, groupID string) ([]string, error)
	ListMembersOfGroups(ctx context.Context, groupIDs []string) ([]types.UserTenant, error)

	ListGroupPermissionsForUser(ctx context.Context, tenantID, userID string) ([]*types.AppPermission, error)
	UpsertGroupPermission(ctx context.Context, groupID string, p *types.AppPermission) (*types.AppPermission, error)
	DeleteGroupPermission(ctx context.Context, groupID, appID string) error
	DeleteExpiredGroupPermissions(ctx context.Context, now time.Time, limit uint64) ([]*types.ExpiredGrant, error)

	CreateNotifications(ctx context.Context, notifications []*types.ExpirationNotification) error
	ClaimDueNotifications(ctx context.Context, now time.Time, lease time.Duration, limit uint64) ([]*types.ExpirationNotification, error)
	MarkNotificationSent(ctx context.Context, id, email, appName string, sentAt time.Time) error
	MarkNotificationFailed(ctx context.Context, id, lastError string, final bool) error
	ListNotifications(ctx context.Context, tenantID, recipientID string) ([]*types.ExpirationNotification, error)

	CreateMigration(ctx context.Context, tenantID, targetDatabase string) (*types.Migration, error)
	GetLatestMigration(ctx context.Context, tenantID string) (*types.Migration, error)
	UpdateMigrationStatus(ctx context.Context, id string, status types.MigrationStatus, lastError string) error
	SaveMigrationStep(ctx context.Context, step *types.MigrationStep) error
	ListMigrationSteps(ctx context.Context, migrationID string) ([]*types.MigrationStep, error)
}
