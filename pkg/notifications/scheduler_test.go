// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package notifications -destination ./mock_notifications.go -source=./interfaces.go

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestScheduler_Schedule(t *testing.T) {
	testCases := []struct {
		name          string
		expiresIn     *time.Duration
		recipients    []string
		expectedLeads []int
	}{
		{
			name:          "all lead times ahead",
			expiresIn:     durationPtr(60 * day),
			recipients:    []string{"u1"},
			expectedLeads: []int{30, 14, 7, 1},
		},
		{
			name:          "only lead times still in the future",
			expiresIn:     durationPtr(10 * day),
			recipients:    []string{"u1", "u2"},
			expectedLeads: []int{7, 7, 1, 1},
		},
		{
			name:          "lead time landing exactly on now is skipped",
			expiresIn:     durationPtr(7 * day),
			recipients:    []string{"u1"},
			expectedLeads: []int{1},
		},
		{
			name:       "expiring within a day",
			expiresIn:  durationPtr(12 * time.Hour),
			recipients: []string{"u1"},
		},
		{
			name:       "no expiry",
			recipients: []string{"u1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)

			grant := &types.AppPermission{AppID: "crm", Source: types.SourceGroup, SourceID: "group-1"}
			if tc.expiresIn != nil {
				expiresAt := testNow.Add(*tc.expiresIn)
				grant.ExpiresAt = &expiresAt
			}

			if len(tc.expectedLeads) > 0 {
				mockStorage.EXPECT().CreateNotifications(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, batch []*types.ExpirationNotification) error {
						if len(batch) != len(tc.expectedLeads) {
							t.Fatalf("expected %d notifications, got %d", len(tc.expectedLeads), len(batch))
						}
						for i, n := range batch {
							if n.Details.DaysUntilExpiration != tc.expectedLeads[i] {
								t.Errorf("notification %d: expected lead %d, got %d", i, tc.expectedLeads[i], n.Details.DaysUntilExpiration)
							}
							expected := grant.ExpiresAt.Add(-time.Duration(n.Details.DaysUntilExpiration) * day)
							if !n.ScheduledFor.Equal(expected) {
								t.Errorf("notification %d: expected schedule %v, got %v", i, expected, n.ScheduledFor)
							}
							if n.Status != types.NotificationPending || n.TenantID != "tenant-1" {
								t.Errorf("notification %d: unexpected %+v", i, n)
							}
							if n.Details.PermissionSource != types.SourceGroup || n.Details.SourceID != "group-1" {
								t.Errorf("notification %d: unexpected source %+v", i, n.Details)
							}
						}
						return nil
					},
				)
			}

			s := NewScheduler(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
			s.now = func() time.Time { return testNow }

			n, err := s.Schedule(context.Background(), "tenant-1", grant, tc.recipients)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n != len(tc.expectedLeads) {
				t.Errorf("expected %d scheduled, got %d", len(tc.expectedLeads), n)
			}
		})
	}
}

func TestScheduler_ScheduleStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().CreateNotifications(gomock.Any(), gomock.Any()).Return(types.ErrStoreUnavailable)

	s := NewScheduler(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	s.now = func() time.Time { return testNow }

	expiresAt := testNow.Add(40 * day)
	_, err := s.Schedule(context.Background(), "tenant-1", &types.AppPermission{AppID: "crm", ExpiresAt: &expiresAt}, []string{"u1"})

	if !errors.Is(err, types.ErrStoreUnavailable) {
		t.Errorf("expected store unavailable, got %v", err)
	}
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}
