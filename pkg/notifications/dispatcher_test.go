// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/storage"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/types"
)

func dueNotification(id string, attempts int) *types.ExpirationNotification {
	return &types.ExpirationNotification{
		ID:          id,
		Type:        types.NotificationTypePermissionExpiring,
		RecipientID: "u1",
		TenantID:    "tenant-1",
		Details: types.NotificationDetails{
			AppID:               "crm",
			ExpiresAt:           testNow.Add(7 * day),
			DaysUntilExpiration: 7,
			PermissionSource:    types.SourceDirect,
		},
		Status:       types.NotificationPending,
		ScheduledFor: testNow,
		Attempts:     attempts,
	}
}

func TestDispatcher_DispatchDue(t *testing.T) {
	testCases := []struct {
		name       string
		claimed    []*types.ExpirationNotification
		setupMocks func(*MockStorageInterface, *MockSenderInterface)
		expected   DispatchResult
	}{
		{
			name:    "delivers and marks sent",
			claimed: []*types.ExpirationNotification{dueNotification("n1", 1)},
			setupMocks: func(s *MockStorageInterface, sender *MockSenderInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "u1").Return(&types.User{ID: "u1", Email: "jane@example.com"}, nil)
				s.EXPECT().GetTenantEntitlement(gomock.Any(), "tenant-1", "crm").Return(&types.Entitlement{AppName: "Acme CRM"}, nil)
				sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg *Message) error {
					if msg.To != "jane@example.com" {
						t.Errorf("unexpected recipient %s", msg.To)
					}
					if msg.Subject != "Your Acme CRM access expires in 7 days" {
						t.Errorf("unexpected subject %q", msg.Subject)
					}
					if !strings.Contains(msg.Text, "granted to you directly") {
						t.Errorf("unexpected body %q", msg.Text)
					}
					return nil
				})
				s.EXPECT().MarkNotificationSent(gomock.Any(), "n1", "jane@example.com", "Acme CRM", testNow).Return(nil)
			},
			expected: DispatchResult{Claimed: 1, Sent: 1},
		},
		{
			name:    "falls back to the app id without an entitlement",
			claimed: []*types.ExpirationNotification{dueNotification("n1", 1)},
			setupMocks: func(s *MockStorageInterface, sender *MockSenderInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "u1").Return(&types.User{ID: "u1", Email: "jane@example.com"}, nil)
				s.EXPECT().GetTenantEntitlement(gomock.Any(), "tenant-1", "crm").Return(nil, storage.ErrNotFound)
				sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
				s.EXPECT().MarkNotificationSent(gomock.Any(), "n1", "jane@example.com", "crm", testNow).Return(nil)
			},
			expected: DispatchResult{Claimed: 1, Sent: 1},
		},
		{
			name:    "send failure is retried",
			claimed: []*types.ExpirationNotification{dueNotification("n1", 2)},
			setupMocks: func(s *MockStorageInterface, sender *MockSenderInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "u1").Return(&types.User{ID: "u1", Email: "jane@example.com"}, nil)
				s.EXPECT().GetTenantEntitlement(gomock.Any(), "tenant-1", "crm").Return(&types.Entitlement{AppName: "Acme CRM"}, nil)
				sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
				s.EXPECT().MarkNotificationFailed(gomock.Any(), "n1", "connection refused", false).Return(nil)
			},
			expected: DispatchResult{Claimed: 1, Retrying: 1},
		},
		{
			name:    "send failure on the last attempt is final",
			claimed: []*types.ExpirationNotification{dueNotification("n1", 3)},
			setupMocks: func(s *MockStorageInterface, sender *MockSenderInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "u1").Return(&types.User{ID: "u1", Email: "jane@example.com"}, nil)
				s.EXPECT().GetTenantEntitlement(gomock.Any(), "tenant-1", "crm").Return(&types.Entitlement{AppName: "Acme CRM"}, nil)
				sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
				s.EXPECT().MarkNotificationFailed(gomock.Any(), "n1", "connection refused", true).Return(nil)
			},
			expected: DispatchResult{Claimed: 1, Failed: 1},
		},
		{
			name:    "unknown recipient fails permanently",
			claimed: []*types.ExpirationNotification{dueNotification("n1", 1)},
			setupMocks: func(s *MockStorageInterface, _ *MockSenderInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "u1").Return(nil, storage.ErrNotFound)
				s.EXPECT().MarkNotificationFailed(gomock.Any(), "n1", "recipient not found", true).Return(nil)
			},
			expected: DispatchResult{Claimed: 1, Failed: 1},
		},
		{
			name: "reminder for an already expired grant is dropped",
			claimed: func() []*types.ExpirationNotification {
				n := dueNotification("n1", 1)
				n.Details.ExpiresAt = testNow
				return []*types.ExpirationNotification{n}
			}(),
			setupMocks: func(s *MockStorageInterface, _ *MockSenderInterface) {
				s.EXPECT().MarkNotificationFailed(gomock.Any(), "n1", "grant expired before delivery", true).Return(nil)
			},
			expected: DispatchResult{Claimed: 1, Failed: 1},
		},
		{
			name:       "nothing due",
			setupMocks: func(*MockStorageInterface, *MockSenderInterface) {},
			expected:   DispatchResult{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockSender := NewMockSenderInterface(ctrl)

			mockStorage.EXPECT().ClaimDueNotifications(gomock.Any(), testNow, claimLease, uint64(50)).Return(tc.claimed, nil)
			tc.setupMocks(mockStorage, mockSender)

			d := NewDispatcher(mockStorage, mockSender, 50, 3, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			result, err := d.DispatchDue(context.Background(), testNow)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *result != tc.expected {
				t.Errorf("expected %+v, got %+v", tc.expected, *result)
			}
		})
	}
}

func TestDispatcher_ClaimError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ClaimDueNotifications(gomock.Any(), testNow, claimLease, defaultBatchSize).Return(nil, storage.ErrUnavailable)

	d := NewDispatcher(mockStorage, NewMockSenderInterface(ctrl), 0, 0, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	if _, err := d.DispatchDue(context.Background(), testNow); !errors.Is(err, types.ErrStoreUnavailable) {
		t.Errorf("expected store unavailable, got %v", err)
	}
}

func TestRenderSingularDay(t *testing.T) {
	n := dueNotification("n1", 0)
	n.Details.DaysUntilExpiration = 1
	n.Details.PermissionSource = types.SourceGroup

	msg, err := render("jane@example.com", "Analytics", n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msg.Subject != "Your Analytics access expires in 1 day" {
		t.Errorf("unexpected subject %q", msg.Subject)
	}
	if !strings.Contains(msg.Text, "through one of your groups") {
		t.Errorf("unexpected body %q", msg.Text)
	}
}
