// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sweeper

import (
	"context"
	"time"

	"github.com/canonical/tenant-access/internal/types"
)

type SweeperInterface interface {
	Sweep(ctx context.Context) (*SweepResult, error)
}

type StorageInterface interface {
	DeleteExpiredGroupPermissions(ctx context.Context, now time.Time, limit uint64) ([]*types.ExpiredGrant, error)
	DeleteExpiredDirectPermissions(ctx context.Context, now time.Time, limit uint64) ([]*types.ExpiredGrant, error)
	ListMembersOfGroups(ctx context.Context, groupIDs []string) ([]types.UserTenant, error)
}

// InvalidatorInterface drops cached effective permissions.
type InvalidatorInterface interface {
	InvalidateUsers(ctx context.Context, keys []types.UserTenant) error
}
