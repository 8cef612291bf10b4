// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/types"
)

const (
	defaultBatchSize   uint64 = 100
	defaultMaxAttempts        = 5

	// claimLease bounds how long a claimed batch is held by one dispatcher, a crashed
	// dispatcher's batch is picked up again once it runs out
	claimLease = 15 * time.Minute
)

type DispatchResult struct {
	Claimed  int `json:"claimed"`
	Sent     int `json:"sent"`
	Retrying int `json:"retrying"`
	Failed   int `json:"failed"`
}

// Dispatcher delivers the pending reminders that are due.
type Dispatcher struct {
	storage     StorageInterface
	sender      SenderInterface
	batchSize   uint64
	maxAttempts int

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// DispatchDue claims up to one batch of due reminders and delivers them.
// Claimed reminders are leased, so concurrent dispatchers never pick up the same one.
// A reminder whose delivery fails goes back to pending until it runs out of attempts.
func (d *Dispatcher) DispatchDue(ctx context.Context, now time.Time) (*DispatchResult, error) {
	ctx, span := d.tracer.Start(ctx, "notifications.Dispatcher.DispatchDue")
	defer span.End()

	claimed, err := d.storage.ClaimDueNotifications(ctx, now, claimLease, d.batchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to claim due notifications: %w", err)
	}

	result := &DispatchResult{Claimed: len(claimed)}
	var errs []error

	for _, n := range claimed {
		if err := d.dispatch(ctx, n, now, result); err != nil {
			errs = append(errs, err)
		}
	}

	if result.Claimed > 0 {
		d.logger.Infof("dispatched expiration notifications: %d sent, %d retrying, %d failed", result.Sent, result.Retrying, result.Failed)
	}

	return result, errors.Join(errs...)
}

func (d *Dispatcher) dispatch(ctx context.Context, n *types.ExpirationNotification, now time.Time, result *DispatchResult) error {
	if !n.Details.ExpiresAt.After(now) {
		return d.fail(ctx, n, "grant expired before delivery", true, result)
	}

	user, err := d.storage.GetUserByID(ctx, n.RecipientID)
	if errors.Is(err, types.ErrNotFound) {
		return d.fail(ctx, n, "recipient not found", true, result)
	}
	if err != nil {
		return d.fail(ctx, n, err.Error(), n.Attempts >= d.maxAttempts, result)
	}

	appName := n.Details.AppID
	e, err := d.storage.GetTenantEntitlement(ctx, n.TenantID, n.Details.AppID)
	switch {
	case err == nil && e.AppName != "":
		appName = e.AppName
	case err != nil && !errors.Is(err, types.ErrNotFound):
		d.logger.Warnf("falling back to app id for notification %s: %v", n.ID, err)
	}

	msg, err := render(user.Email, appName, n)
	if err != nil {
		return d.fail(ctx, n, err.Error(), true, result)
	}

	if err := d.sender.Send(ctx, msg); err != nil {
		return d.fail(ctx, n, err.Error(), n.Attempts >= d.maxAttempts, result)
	}

	if err := d.storage.MarkNotificationSent(ctx, n.ID, user.Email, appName, now); err != nil {
		return fmt.Errorf("failed to mark notification %s sent: %w", n.ID, err)
	}

	result.Sent++
	d.count(types.NotificationSent)

	return nil
}

func (d *Dispatcher) fail(ctx context.Context, n *types.ExpirationNotification, reason string, final bool, result *DispatchResult) error {
	if err := d.storage.MarkNotificationFailed(ctx, n.ID, reason, final); err != nil {
		return fmt.Errorf("failed to mark notification %s failed: %w", n.ID, err)
	}

	if !final {
		result.Retrying++
		d.logger.Warnf("notification %s attempt %d failed: %s", n.ID, n.Attempts, reason)
		return nil
	}

	result.Failed++
	d.count(types.NotificationFailed)
	d.logger.Errorf("notification %s to %s failed permanently: %s", n.ID, n.RecipientID, reason)

	return nil
}

func (d *Dispatcher) count(status types.NotificationStatus) {
	if err := d.monitor.IncNotification(map[string]string{"status": string(status)}); err != nil {
		d.logger.Debugf("failed to record notification metric: %v", err)
	}
}

func NewDispatcher(
	storage StorageInterface,
	sender SenderInterface,
	batchSize uint64,
	maxAttempts int,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Dispatcher {
	if batchSize == 0 {
		batchSize = defaultBatchSize
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	return &Dispatcher{
		storage:     storage,
		sender:      sender,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}
