// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"slices"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/storage"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/types"
	"github.com/canonical/tenant-access/pkg/permissions"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tenant.go -source=./interfaces.go

type serviceMocks struct {
	storage     *MockStorageInterface
	provisioner *MockProvisionerInterface
	invalidator *MockInvalidatorInterface
}

func newTestService(t *testing.T, ctrl *gomock.Controller) (*Service, *serviceMocks) {
	t.Helper()

	m := &serviceMocks{
		storage:     NewMockStorageInterface(ctrl),
		provisioner: NewMockProvisionerInterface(ctrl),
		invalidator: NewMockInvalidatorInterface(ctrl),
	}

	tx := NewMockTxInterface(ctrl)
	tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	s := NewService(m.storage, tx, m.provisioner, m.invalidator, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	return s, m
}

func createdTenant(id, slug string, plan types.Plan) *types.Tenant {
	return &types.Tenant{ID: id, Slug: slug, Name: "Acme", Plan: plan, Status: types.TenantStatusActive, DataPlane: types.DataPlaneFor(plan, slug)}
}

func TestService_CreateTenant(t *testing.T) {
	alice := &types.User{ID: "alice", Email: "alice@example.com"}
	storeErr := errors.New("connection reset")

	testCases := []struct {
		name        string
		slug        string
		plan        types.Plan
		owner       *types.User
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:  "shared tenant with an owner holding every system permission",
			slug:  "acme",
			plan:  types.PlanFree,
			owner: alice,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTenantBySlug(gomock.Any(), "acme").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(createdTenant("t1", "acme", types.PlanFree), nil)
				m.storage.EXPECT().UpsertUser(gomock.Any(), alice).Return(alice, nil)
				m.storage.EXPECT().AddMembership(gomock.Any(), "t1", "alice", types.RoleOwner).
					Return(&types.Membership{ID: "m1", TenantID: "t1", UserID: "alice", Role: types.RoleOwner}, nil)
				m.storage.EXPECT().UpsertDirectPermission(gomock.Any(), "m1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, p *types.AppPermission) (*types.AppPermission, error) {
						if p.AppID != permissions.SystemAppID {
							t.Errorf("expected the system app, got %s", p.AppID)
						}
						if !slices.Equal(p.Permissions, permissions.SystemPermissions) {
							t.Errorf("expected every system permission, got %v", p.Permissions)
						}
						if p.ExpiresAt != nil {
							t.Error("owner permissions must not expire")
						}
						return p, nil
					},
				)
				m.invalidator.EXPECT().InvalidateUsers(gomock.Any(), []types.UserTenant{{UserID: "alice", TenantID: "t1"}}).Return(nil)
			},
		},
		{
			name: "dedicated tenant is provisioned first",
			slug: "acme-corp",
			plan: types.PlanProfessional,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTenantBySlug(gomock.Any(), "acme-corp").Return(nil, storage.ErrNotFound)
				gomock.InOrder(
					m.provisioner.EXPECT().EnsureDatabase(gomock.Any(), "tenant_acme_corp").Return(nil, nil),
					m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(createdTenant("t2", "acme-corp", types.PlanProfessional), nil),
				)
			},
		},
		{
			name:        "invalid slug",
			slug:        "Acme Corp",
			plan:        types.PlanFree,
			setupMocks:  func(*serviceMocks) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "unknown plan",
			slug:        "acme",
			plan:        types.Plan("gold"),
			setupMocks:  func(*serviceMocks) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "owner without email",
			slug:        "acme",
			plan:        types.PlanFree,
			owner:       &types.User{ID: "alice"},
			setupMocks:  func(*serviceMocks) {},
			expectedErr: types.ErrValidation,
		},
		{
			name: "slug taken",
			slug: "acme",
			plan: types.PlanFree,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTenantBySlug(gomock.Any(), "acme").Return(createdTenant("t1", "acme", types.PlanFree), nil)
			},
			expectedErr: types.ErrConflict,
		},
		{
			name: "slug taken concurrently",
			slug: "acme",
			plan: types.PlanFree,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTenantBySlug(gomock.Any(), "acme").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: types.ErrConflict,
		},
		{
			name: "provisioning failure creates nothing",
			slug: "acme-corp",
			plan: types.PlanEnterprise,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTenantBySlug(gomock.Any(), "acme-corp").Return(nil, storage.ErrNotFound)
				m.provisioner.EXPECT().EnsureDatabase(gomock.Any(), "tenant_acme_corp").Return(nil, storeErr)
			},
			expectedErr: storeErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(t, ctrl)
			tc.setupMocks(m)

			created, err := s.CreateTenant(context.Background(), "Acme", tc.slug, tc.plan, tc.owner)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created.Slug != tc.slug {
				t.Fatalf("expected slug %s, got %s", tc.slug, created.Slug)
			}
		})
	}
}

func TestService_GetTenantFallsBackToSlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(t, ctrl)

	m.storage.EXPECT().GetTenantByID(gomock.Any(), "acme").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().GetTenantBySlug(gomock.Any(), "acme").Return(createdTenant("t1", "acme", types.PlanFree), nil)

	got, err := s.GetTenant(context.Background(), "acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "t1" {
		t.Fatalf("expected tenant t1, got %s", got.ID)
	}

	m.storage.EXPECT().GetTenantByID(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().GetTenantBySlug(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)

	if _, err := s.GetTenant(context.Background(), "ghost"); !errors.Is(err, types.ErrTenantNotFound) {
		t.Fatalf("expected tenant not found, got %v", err)
	}
}

func TestService_GetTenantForMember(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "member",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(createdTenant("t1", "acme", types.PlanFree), nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "t1", "alice").Return(&types.Membership{ID: "m1"}, nil)
			},
		},
		{
			name: "outsiders cannot tell the tenant exists",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(createdTenant("t1", "acme", types.PlanFree), nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "t1", "alice").Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrTenantNotFound,
		},
		{
			name: "store unavailable",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(nil, storage.ErrUnavailable)
			},
			expectedErr: types.ErrStoreUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(t, ctrl)
			tc.setupMocks(m)

			_, err := s.GetTenantForMember(context.Background(), "t1", "alice")

			if tc.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_ChangePlan(t *testing.T) {
	dedicated := createdTenant("t1", "acme", types.PlanProfessional)

	testCases := []struct {
		name         string
		current      *types.Tenant
		plan         types.Plan
		expectUpdate bool
		expectedErr  error
	}{
		{name: "upgrade keeps the shared data plane until migrated", current: createdTenant("t1", "acme", types.PlanStarter), plan: types.PlanProfessional, expectUpdate: true},
		{name: "same plan is a no-op", current: createdTenant("t1", "acme", types.PlanStarter), plan: types.PlanStarter},
		{name: "dedicated tenants move between dedicated plans", current: dedicated, plan: types.PlanEnterprise, expectUpdate: true},
		{name: "dedicated tenants cannot downgrade", current: dedicated, plan: types.PlanFree, expectedErr: types.ErrValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(t, ctrl)

			current := *tc.current
			m.storage.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(&current, nil)
			if tc.expectUpdate {
				m.storage.EXPECT().UpdateTenantPlan(gomock.Any(), "t1", tc.plan).Return(nil)
			}

			got, err := s.ChangePlan(context.Background(), "t1", tc.plan, "operator")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Plan != tc.plan {
				t.Fatalf("expected plan %s, got %s", tc.plan, got.Plan)
			}
			if got.DataPlane != tc.current.DataPlane {
				t.Fatalf("expected the data plane to stay %+v, got %+v", tc.current.DataPlane, got.DataPlane)
			}
		})
	}
}

func TestService_AddMember(t *testing.T) {
	bob := &types.User{ID: "bob", Email: "bob@example.com"}

	testCases := []struct {
		name        string
		role        types.Role
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "defaults to member without system permissions",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(createdTenant("t1", "acme", types.PlanFree), nil)
				m.storage.EXPECT().UpsertUser(gomock.Any(), bob).Return(bob, nil)
				m.storage.EXPECT().AddMembership(gomock.Any(), "t1", "bob", types.RoleMember).
					Return(&types.Membership{ID: "m2", TenantID: "t1", UserID: "bob", Role: types.RoleMember}, nil)
			},
		},
		{
			name:        "unknown role",
			role:        types.Role("superuser"),
			setupMocks:  func(*serviceMocks) {},
			expectedErr: types.ErrValidation,
		},
		{
			name: "unknown tenant",
			role: types.RoleViewer,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrTenantNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(t, ctrl)
			tc.setupMocks(m)

			_, err := s.AddMember(context.Background(), "t1", bob, tc.role, "admin")

			if tc.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_UpdateTenantStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(t, ctrl)

	if err := s.UpdateTenantStatus(context.Background(), "t1", types.TenantStatus("deleted"), "operator"); !errors.Is(err, types.ErrValidation) {
		t.Fatalf("expected a validation error, got %v", err)
	}

	m.storage.EXPECT().UpdateTenantStatus(gomock.Any(), "ghost", types.TenantStatusSuspended).Return(storage.ErrNotFound)

	if err := s.UpdateTenantStatus(context.Background(), "ghost", types.TenantStatusSuspended, "operator"); !errors.Is(err, types.ErrTenantNotFound) {
		t.Fatalf("expected tenant not found, got %v", err)
	}
}

func TestService_SetEntitlement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(t, ctrl)

	err := s.SetEntitlement(context.Background(), &types.Entitlement{TenantID: "t1", AppID: permissions.SystemAppID}, "operator")
	if !errors.Is(err, types.ErrValidation) {
		t.Fatalf("expected a validation error, got %v", err)
	}

	e := &types.Entitlement{TenantID: "t1", AppID: " crm ", AppName: "CRM"}
	m.storage.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(createdTenant("t1", "acme", types.PlanFree), nil)
	m.storage.EXPECT().UpsertTenantEntitlement(gomock.Any(), e).Return(nil)

	if err := s.SetEntitlement(context.Background(), e, "operator"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.AppID != "crm" {
		t.Fatalf("expected the app id to be trimmed, got %q", e.AppID)
	}
}
