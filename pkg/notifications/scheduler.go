// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/types"
)

// LeadTimes are the days before expiry at which a reminder is sent.
var LeadTimes = []int{30, 14, 7, 1}

const day = 24 * time.Hour

type Scheduler struct {
	storage StorageInterface
	now     func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Schedule creates one pending reminder per recipient for every lead time still ahead of now.
// Grants without an expiry schedule nothing. Earlier reminders of a replaced grant are left in place.
func (s *Scheduler) Schedule(ctx context.Context, tenantID string, grant *types.AppPermission, recipients []string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "notifications.Scheduler.Schedule")
	defer span.End()

	if grant.ExpiresAt == nil || len(recipients) == 0 {
		return 0, nil
	}

	now := s.now()
	expiresAt := grant.ExpiresAt.UTC()

	var batch []*types.ExpirationNotification

	for _, lead := range LeadTimes {
		scheduledFor := expiresAt.Add(-time.Duration(lead) * day)
		if !scheduledFor.After(now) {
			continue
		}

		for _, recipient := range recipients {
			batch = append(batch, &types.ExpirationNotification{
				Type:        types.NotificationTypePermissionExpiring,
				RecipientID: recipient,
				TenantID:    tenantID,
				Details: types.NotificationDetails{
					AppID:               grant.AppID,
					ExpiresAt:           expiresAt,
					DaysUntilExpiration: lead,
					PermissionSource:    grant.Source,
					SourceID:            grant.SourceID,
				},
				Status:       types.NotificationPending,
				ScheduledFor: scheduledFor,
			})
		}
	}

	if len(batch) == 0 {
		return 0, nil
	}

	if err := s.storage.CreateNotifications(ctx, batch); err != nil {
		return 0, fmt.Errorf("failed to schedule expiration notifications: %w", err)
	}

	s.logger.Debugf("scheduled %d expiration notifications for app %s in tenant %s", len(batch), grant.AppID, tenantID)

	return len(batch), nil
}

func NewScheduler(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Scheduler {
	return &Scheduler{
		storage: storage,
		now:     time.Now,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
