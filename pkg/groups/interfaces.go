// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package groups

import (
	"context"
	"net/http"

	"github.com/canonical/tenant-access/internal/types"
)

type ServiceInterface interface {
	CreateGroup(ctx context.Context, tenantID, name, description string, members []string, createdBy string) (*types.Group, error)
	GetGroup(ctx context.Context, tenantID, groupID string) (*types.Group, error)
	ListGroups(ctx context.Context, tenantID string) ([]*types.Group, error)
	ListUserGroups(ctx context.Context, tenantID, userID string) ([]*types.Group, error)
	UpdateGroup(ctx context.Context, tenantID, groupID string, name, description *string, modifiedBy string) (*types.Group, error)
	DeleteGroup(ctx context.Context, tenantID, groupID string) error
	AddMembers(ctx context.Context, tenantID, groupID string, userIDs []string, modifiedBy string) (*types.Group, error)
	RemoveMembers(ctx context.Context, tenantID, groupID string, userIDs []string, modifiedBy string) (*types.Group, error)
}

type StorageInterface interface {
	CreateGroup(ctx context.Context, g *types.Group) (*types.Group, error)
	GetGroup(ctx context.Context, id string) (*types.Group, error)
	GroupNameExists(ctx context.Context, tenantID, name string) (bool, error)
	ListGroups(ctx context.Context, tenantID string) ([]*types.Group, error)
	ListUserGroups(ctx context.Context, tenantID, userID string) ([]*types.Group, error)
	UpdateGroup(ctx context.Context, id string, name, description *string, modifiedBy string) error
	DeleteGroup(ctx context.Context, id string) error
	AddGroupMembers(ctx context.Context, groupID string, userIDs []string, modifiedBy string) error
	RemoveGroupMembers(ctx context.Context, groupID string, userIDs []string, modifiedBy string) error
	ListActiveMemberIDs(ctx context.Context, tenantID string, userIDs []string) ([]string, error)
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
