// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/tenant-access/internal/types"
)

var notificationColumns = []string{
	"id", "type", "recipient_id", "recipient_email", "tenant_id", "app_id", "app_name",
	"expires_at", "days_until_expiration", "permission_source", "source_id",
	"status", "scheduled_for", "attempts", "last_error", "created_at", "sent_at",
}

func scanNotification(row scanner) (*types.ExpirationNotification, error) {
	var (
		n      types.ExpirationNotification
		sentAt sql.NullTime
	)

	err := row.Scan(
		&n.ID, &n.Type, &n.RecipientID, &n.RecipientEmail, &n.TenantID, &n.Details.AppID, &n.AppName,
		&n.Details.ExpiresAt, &n.Details.DaysUntilExpiration, &n.Details.PermissionSource, &n.Details.SourceID,
		&n.Status, &n.ScheduledFor, &n.Attempts, &n.LastError, &n.CreatedAt, &sentAt,
	)
	if err != nil {
		return nil, err
	}

	if sentAt.Valid {
		t := sentAt.Time
		n.SentAt = &t
	}

	return &n, nil
}

// CreateNotifications persists a batch of pending notifications in one statement.
func (s *Storage) CreateNotifications(ctx context.Context, notifications []*types.ExpirationNotification) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateNotifications")
	defer span.End()

	if len(notifications) == 0 {
		return nil
	}

	insert := s.db.Statement(ctx).
		Insert("permission_notifications").
		Columns(
			"id", "type", "recipient_id", "tenant_id", "app_id",
			"expires_at", "days_until_expiration", "permission_source", "source_id",
			"status", "scheduled_for",
		)

	for _, n := range notifications {
		if n.ID == "" {
			id, err := newID()
			if err != nil {
				return fmt.Errorf("failed to generate notification ID: %w", err)
			}
			n.ID = id
		}
		if n.Status == "" {
			n.Status = types.NotificationPending
		}

		insert = insert.Values(
			n.ID, n.Type, n.RecipientID, n.TenantID, n.Details.AppID,
			n.Details.ExpiresAt, n.Details.DaysUntilExpiration, n.Details.PermissionSource, n.Details.SourceID,
			n.Status, n.ScheduledFor,
		)
	}

	if _, err := insert.ExecContext(ctx); err != nil {
		return wrapError(err, "failed to insert notifications")
	}

	return nil
}

// ClaimDueNotifications leases up to limit due notifications to the caller until now+lease and
// bumps their attempt counter. Due means pending and scheduled at or before now, or sending
// with a lease that ran out. Rows locked by a concurrent claim are skipped and claimed rows
// stay out of reach of other dispatchers until released or the lease ends.
func (s *Storage) ClaimDueNotifications(ctx context.Context, now time.Time, lease time.Duration, limit uint64) ([]*types.ExpirationNotification, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ClaimDueNotifications")
	defer span.End()

	returning := make([]string, 0, len(notificationColumns))
	for _, c := range notificationColumns {
		returning = append(returning, "permission_notifications."+c)
	}

	rows, err := s.db.Statement(ctx).
		Update("permission_notifications").
		Set("status", types.NotificationSending).
		Set("claimed_until", now.Add(lease)).
		Set("attempts", sq.Expr("attempts + 1")).
		Where(sq.Expr(
			"id IN (SELECT id FROM permission_notifications WHERE (status = ? AND scheduled_for <= ?) OR (status = ? AND claimed_until <= ?) ORDER BY scheduled_for LIMIT ? FOR UPDATE SKIP LOCKED)",
			types.NotificationPending, now, types.NotificationSending, now, limit,
		)).
		Suffix("RETURNING " + joinColumns(returning)).
		QueryContext(ctx)
	if err != nil {
		return nil, wrapError(err, "failed to claim notifications")
	}
	defer rows.Close()

	var out []*types.ExpirationNotification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		out = append(out, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return out, nil
}

// MarkNotificationSent records the resolved recipient and app name alongside the delivery time.
func (s *Storage) MarkNotificationSent(ctx context.Context, id, email, appName string, sentAt time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkNotificationSent")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("permission_notifications").
		Set("status", types.NotificationSent).
		Set("recipient_email", email).
		Set("app_name", appName).
		Set("sent_at", sentAt).
		Set("last_error", "").
		Set("claimed_until", nil).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to mark notification sent")
	}

	return expectAffected(res, "notification")
}

// MarkNotificationFailed stores the delivery error and releases the claim, the notification goes
// back to pending for a retry unless final is set.
func (s *Storage) MarkNotificationFailed(ctx context.Context, id, lastError string, final bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkNotificationFailed")
	defer span.End()

	status := types.NotificationPending
	if final {
		status = types.NotificationFailed
	}

	res, err := s.db.Statement(ctx).
		Update("permission_notifications").
		Set("status", status).
		Set("last_error", lastError).
		Set("claimed_until", nil).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to mark notification failed")
	}

	return expectAffected(res, "notification")
}

func (s *Storage) ListNotifications(ctx context.Context, tenantID, recipientID string) ([]*types.ExpirationNotification, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListNotifications")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(notificationColumns...).
		From("permission_notifications").
		Where(sq.Eq{"tenant_id": tenantID, "recipient_id": recipientID}).
		OrderBy("scheduled_for").
		QueryContext(ctx)
	if err != nil {
		return nil, wrapError(err, "failed to list notifications")
	}
	defer rows.Close()

	out := []*types.ExpirationNotification{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		out = append(out, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return out, nil
}
