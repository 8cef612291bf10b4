// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sweeper

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package sweeper -destination ./mock_sweeper.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package sweeper -destination ./mock_notifications.go -source=../notifications/interfaces.go -exclude_interfaces SchedulerInterface,SenderInterface,StorageInterface
//go:generate mockgen -build_flags=--mod=mod -package sweeper -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go

var sweepTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestSweeper(s StorageInterface, inv InvalidatorInterface, batchSize uint64) *Sweeper {
	sw := NewSweeper(s, inv, batchSize, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	sw.now = func() time.Time { return sweepTime }
	return sw
}

func groupGrant(groupID, tenantID string) *types.ExpiredGrant {
	return &types.ExpiredGrant{Source: types.SourceGroup, SourceID: groupID, AppID: "crm", TenantID: tenantID}
}

func directGrant(userID, tenantID string) *types.ExpiredGrant {
	return &types.ExpiredGrant{Source: types.SourceDirect, SourceID: userID, AppID: "crm", TenantID: tenantID, UserID: userID}
}

func sortedKeys(keys []types.UserTenant) []types.UserTenant {
	out := append([]types.UserTenant(nil), keys...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].TenantID != out[j].TenantID {
			return out[i].TenantID < out[j].TenantID
		}
		return out[i].UserID < out[j].UserID
	})
	return out
}

func TestSweeper_SweepInvalidatesAffectedUsersOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewMockStorageInterface(ctrl)
	inv := NewMockInvalidatorInterface(ctrl)

	members := []types.UserTenant{
		{UserID: "alice", TenantID: "tenant-1"},
		{UserID: "bob", TenantID: "tenant-1"},
	}

	s.EXPECT().DeleteExpiredGroupPermissions(gomock.Any(), sweepTime, uint64(10)).
		Return([]*types.ExpiredGrant{groupGrant("group-1", "tenant-1")}, nil)
	s.EXPECT().ListMembersOfGroups(gomock.Any(), []string{"group-1"}).Return(members, nil)
	s.EXPECT().DeleteExpiredDirectPermissions(gomock.Any(), sweepTime, uint64(10)).
		Return([]*types.ExpiredGrant{directGrant("carol", "tenant-2")}, nil)

	var invalidated []types.UserTenant
	inv.EXPECT().InvalidateUsers(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, keys []types.UserTenant) error {
			invalidated = append(invalidated, keys...)
			return nil
		},
	).Times(2)

	result, err := newTestSweeper(s, inv, 10).Sweep(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := SweepResult{GroupGrantsRemoved: 1, DirectGrantsRemoved: 1, UsersInvalidated: 3}
	if *result != expected {
		t.Fatalf("expected %+v, got %+v", expected, *result)
	}

	got := sortedKeys(invalidated)
	want := []types.UserTenant{
		{UserID: "alice", TenantID: "tenant-1"},
		{UserID: "bob", TenantID: "tenant-1"},
		{UserID: "carol", TenantID: "tenant-2"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v invalidated, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v invalidated, got %v", want, got)
		}
	}
}

func TestSweeper_SweepBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewMockStorageInterface(ctrl)
	inv := NewMockInvalidatorInterface(ctrl)

	gomock.InOrder(
		s.EXPECT().DeleteExpiredDirectPermissions(gomock.Any(), sweepTime, uint64(2)).
			Return([]*types.ExpiredGrant{directGrant("u1", "t1"), directGrant("u2", "t1")}, nil),
		s.EXPECT().DeleteExpiredDirectPermissions(gomock.Any(), sweepTime, uint64(2)).
			Return([]*types.ExpiredGrant{directGrant("u3", "t1"), directGrant("u3", "t2")}, nil),
		s.EXPECT().DeleteExpiredDirectPermissions(gomock.Any(), sweepTime, uint64(2)).
			Return([]*types.ExpiredGrant{directGrant("u4", "t1")}, nil),
	)
	s.EXPECT().DeleteExpiredGroupPermissions(gomock.Any(), sweepTime, uint64(2)).Return(nil, nil)
	inv.EXPECT().InvalidateUsers(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	result, err := newTestSweeper(s, inv, 2).Sweep(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DirectGrantsRemoved != 5 {
		t.Fatalf("expected 5 direct grants removed, got %d", result.DirectGrantsRemoved)
	}
	if result.GroupGrantsRemoved != 0 {
		t.Fatalf("expected no group grants removed, got %d", result.GroupGrantsRemoved)
	}
	if result.UsersInvalidated != 5 {
		t.Fatalf("expected 5 users invalidated, got %d", result.UsersInvalidated)
	}
}

func TestSweeper_SweepNothingExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewMockStorageInterface(ctrl)
	inv := NewMockInvalidatorInterface(ctrl)

	s.EXPECT().DeleteExpiredGroupPermissions(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	s.EXPECT().DeleteExpiredDirectPermissions(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	inv.EXPECT().InvalidateUsers(gomock.Any(), gomock.Any()).Times(0)

	result, err := newTestSweeper(s, inv, 0).Sweep(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if *result != (SweepResult{}) {
		t.Fatalf("expected an empty result, got %+v", *result)
	}
}

func TestSweeper_SweepFailures(t *testing.T) {
	storeErr := errors.New("connection refused")

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface, *MockInvalidatorInterface)
		expected   SweepResult
		expectErr  bool
	}{
		{
			name: "group deletion fails",
			setupMocks: func(s *MockStorageInterface, _ *MockInvalidatorInterface) {
				s.EXPECT().DeleteExpiredGroupPermissions(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storeErr)
			},
			expectErr: true,
		},
		{
			name: "member listing fails after the group batch was removed",
			setupMocks: func(s *MockStorageInterface, _ *MockInvalidatorInterface) {
				s.EXPECT().DeleteExpiredGroupPermissions(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]*types.ExpiredGrant{groupGrant("group-1", "t1")}, nil)
				s.EXPECT().ListMembersOfGroups(gomock.Any(), []string{"group-1"}).Return(nil, storeErr)
			},
			expected:  SweepResult{GroupGrantsRemoved: 1},
			expectErr: true,
		},
		{
			name: "direct deletion fails after groups were swept",
			setupMocks: func(s *MockStorageInterface, inv *MockInvalidatorInterface) {
				s.EXPECT().DeleteExpiredGroupPermissions(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]*types.ExpiredGrant{groupGrant("group-1", "t1")}, nil)
				s.EXPECT().ListMembersOfGroups(gomock.Any(), gomock.Any()).
					Return([]types.UserTenant{{UserID: "u1", TenantID: "t1"}}, nil)
				inv.EXPECT().InvalidateUsers(gomock.Any(), gomock.Any()).Return(nil)
				s.EXPECT().DeleteExpiredDirectPermissions(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storeErr)
			},
			expected:  SweepResult{GroupGrantsRemoved: 1, UsersInvalidated: 1},
			expectErr: true,
		},
		{
			name: "invalidation failure does not fail the sweep",
			setupMocks: func(s *MockStorageInterface, inv *MockInvalidatorInterface) {
				s.EXPECT().DeleteExpiredGroupPermissions(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				s.EXPECT().DeleteExpiredDirectPermissions(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]*types.ExpiredGrant{directGrant("u1", "t1")}, nil)
				inv.EXPECT().InvalidateUsers(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
			expected: SweepResult{DirectGrantsRemoved: 1, UsersInvalidated: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := NewMockStorageInterface(ctrl)
			inv := NewMockInvalidatorInterface(ctrl)
			tc.setupMocks(s, inv)

			result, err := newTestSweeper(s, inv, 10).Sweep(context.Background())

			if tc.expectErr && !errors.Is(err, storeErr) {
				t.Fatalf("expected store error, got %v", err)
			}
			if !tc.expectErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result == nil || *result != tc.expected {
				t.Fatalf("expected %+v, got %+v", tc.expected, result)
			}
		})
	}
}

func TestSweeper_SweepRecordsMetric(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewMockStorageInterface(ctrl)
	inv := NewMockInvalidatorInterface(ctrl)
	monitor := NewMockMonitorInterface(ctrl)

	s.EXPECT().DeleteExpiredGroupPermissions(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	s.EXPECT().DeleteExpiredDirectPermissions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*types.ExpiredGrant{directGrant("u1", "t1"), directGrant("u2", "t1")}, nil)
	inv.EXPECT().InvalidateUsers(gomock.Any(), gomock.Any()).Return(nil)
	monitor.EXPECT().AddSweptGrants(map[string]string{"source": "direct"}, float64(2)).Return(nil)

	sw := NewSweeper(s, inv, 10, tracing.NewNoopTracer(), monitor, logging.NewNoopLogger())

	if _, err := sw.Sweep(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
