// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dataplane

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-access/internal/db"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/storage"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package dataplane -destination ./mock_dataplane.go -source=./interfaces.go

func testClient(database string) *db.DBClient {
	return db.NewDBClientFromDB(nil, database, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestRouter_GetTenantDatabase(t *testing.T) {
	shared := testClient("business")
	acme := testClient("tenant_acme")

	testCases := []struct {
		name       string
		tenant     *types.Tenant
		lookupErr  error
		setupPools func(*MockPoolsInterface)
		expectType types.DataPlaneType
		expectDB   string
		migrated   bool
		expectErr  error
	}{
		{
			name:   "free plan uses the shared database",
			tenant: &types.Tenant{ID: "t1", Slug: "small", Plan: types.PlanFree, DataPlane: types.DataPlane{Type: types.DataPlaneShared}},
			setupPools: func(p *MockPoolsInterface) {
				p.EXPECT().Shared().Return(shared)
			},
			expectType: types.DataPlaneShared,
			expectDB:   "business",
			migrated:   true,
		},
		{
			name:   "starter plan uses the shared database",
			tenant: &types.Tenant{ID: "t2", Slug: "medium", Plan: types.PlanStarter, DataPlane: types.DataPlane{Type: types.DataPlaneShared}},
			setupPools: func(p *MockPoolsInterface) {
				p.EXPECT().Shared().Return(shared)
			},
			expectType: types.DataPlaneShared,
			expectDB:   "business",
			migrated:   true,
		},
		{
			name: "professional plan uses its own database",
			tenant: &types.Tenant{
				ID: "t3", Slug: "acme", Plan: types.PlanProfessional,
				DataPlane: types.DataPlane{Type: types.DataPlaneDedicated, Database: "tenant_acme"},
			},
			setupPools: func(p *MockPoolsInterface) {
				p.EXPECT().Dedicated(gomock.Any(), "tenant_acme").Return(acme, nil)
			},
			expectType: types.DataPlaneDedicated,
			expectDB:   "tenant_acme",
			migrated:   true,
		},
		{
			name:   "upgraded tenant not yet migrated routes by plan",
			tenant: &types.Tenant{ID: "t4", Slug: "acme", Plan: types.PlanEnterprise, DataPlane: types.DataPlane{Type: types.DataPlaneShared}},
			setupPools: func(p *MockPoolsInterface) {
				p.EXPECT().Dedicated(gomock.Any(), "tenant_acme").Return(acme, nil)
			},
			expectType: types.DataPlaneDedicated,
			expectDB:   "tenant_acme",
			migrated:   false,
		},
		{
			name:       "missing tenant",
			lookupErr:  fmt.Errorf("failed to get tenant: %w", storage.ErrNotFound),
			setupPools: func(*MockPoolsInterface) {},
			expectErr:  types.ErrTenantNotFound,
		},
		{
			name:       "store unavailable",
			lookupErr:  fmt.Errorf("failed to get tenant: %w", storage.ErrUnavailable),
			setupPools: func(*MockPoolsInterface) {},
			expectErr:  types.ErrStoreUnavailable,
		},
		{
			name:   "dedicated database unreachable",
			tenant: &types.Tenant{ID: "t5", Slug: "gone", Plan: types.PlanCustom},
			setupPools: func(p *MockPoolsInterface) {
				p.EXPECT().Dedicated(gomock.Any(), "tenant_gone").Return(nil, storage.ErrUnavailable)
			},
			expectErr: types.ErrStoreUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := NewMockStorageInterface(ctrl)
			pools := NewMockPoolsInterface(ctrl)

			s.EXPECT().GetTenantByID(gomock.Any(), gomock.Any()).Return(tc.tenant, tc.lookupErr)
			tc.setupPools(pools)

			r := NewRouter(s, pools, BusinessStores(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()),
				tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			h, err := r.GetTenantDatabase(context.Background(), "tenant")

			if tc.expectErr != nil {
				if !errors.Is(err, tc.expectErr) {
					t.Fatalf("expected %v, got %v", tc.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if h.Type != tc.expectType || h.Database != tc.expectDB {
				t.Errorf("expected %s/%s, got %s/%s", tc.expectType, tc.expectDB, h.Type, h.Database)
			}
			if h.Client.Database() != tc.expectDB {
				t.Errorf("expected a client for %s, got %s", tc.expectDB, h.Client.Database())
			}
			if h.Migrated() != tc.migrated {
				t.Errorf("expected migrated=%v, got %v", tc.migrated, h.Migrated())
			}
		})
	}
}

func TestRouter_DedicatedAndSharedAreDistinct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewMockStorageInterface(ctrl)
	pools := NewMockPoolsInterface(ctrl)

	s.EXPECT().GetTenantByID(gomock.Any(), "acme-id").Return(&types.Tenant{
		ID: "acme-id", Slug: "acme", Plan: types.PlanProfessional,
		DataPlane: types.DataPlane{Type: types.DataPlaneDedicated, Database: "tenant_acme"},
	}, nil)
	s.EXPECT().GetTenantByID(gomock.Any(), "free-id").Return(&types.Tenant{
		ID: "free-id", Slug: "free", Plan: types.PlanFree,
		DataPlane: types.DataPlane{Type: types.DataPlaneShared},
	}, nil)
	pools.EXPECT().Dedicated(gomock.Any(), "tenant_acme").Return(testClient("tenant_acme"), nil)
	pools.EXPECT().Shared().Return(testClient("business"))

	var scopes []string
	stores := func(client db.DBClientInterface, tenantID string) DocumentStoreInterface {
		scopes = append(scopes, client.Database()+"/"+tenantID)
		return NewMockDocumentStoreInterface(ctrl)
	}

	r := NewRouter(s, pools, stores, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	_, dedicated, err := r.BusinessStore(context.Background(), "acme-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, sharedHandle, err := r.BusinessStore(context.Background(), "free-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dedicated.Client == sharedHandle.Client || dedicated.Database == sharedHandle.Database {
		t.Fatal("expected the dedicated handle to differ from the shared one")
	}
	if len(scopes) != 2 || scopes[0] != "tenant_acme/" || scopes[1] != "business/free-id" {
		t.Errorf("expected an unscoped dedicated store and a tenant scoped shared store, got %v", scopes)
	}
}
