// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"time"

	"github.com/canonical/tenant-access/internal/types"
)

type SchedulerInterface interface {
	Schedule(ctx context.Context, tenantID string, grant *types.AppPermission, recipients []string) (int, error)
}

type DispatcherInterface interface {
	DispatchDue(ctx context.Context, now time.Time) (*DispatchResult, error)
}

type SenderInterface interface {
	Send(ctx context.Context, msg *Message) error
}

type StorageInterface interface {
	CreateNotifications(ctx context.Context, notifications []*types.ExpirationNotification) error
	ClaimDueNotifications(ctx context.Context, now time.Time, lease time.Duration, limit uint64) ([]*types.ExpirationNotification, error)
	MarkNotificationSent(ctx context.Context, id, email, appName string, sentAt time.Time) error
	MarkNotificationFailed(ctx context.Context, id, lastError string, final bool) error
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetTenantEntitlement(ctx context.Context, tenantID, appID string) (*types.Entitlement, error)
}
