// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dataplane

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-access/internal/db"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/storage"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/types"
)

// memoryDatabase holds the business collections of one database.
type memoryDatabase struct {
	collections map[string]map[string]*types.Document
}

func newMemoryDatabase() *memoryDatabase {
	return &memoryDatabase{collections: make(map[string]map[string]*types.Document)}
}

func (d *memoryDatabase) put(collection string, doc *types.Document) {
	if d.collections[collection] == nil {
		d.collections[collection] = make(map[string]*types.Document)
	}
	d.collections[collection][doc.ID] = doc
}

func (d *memoryDatabase) tagged(collection, tenantID string) []*types.Document {
	out := []*types.Document{}
	for _, doc := range d.collections[collection] {
		if tenantID == "" || (doc.TenantID != nil && *doc.TenantID == tenantID) {
			out = append(out, doc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// memoryStore is a tenant scoped view over a memoryDatabase.
type memoryStore struct {
	db       *memoryDatabase
	tenantID string

	dropInserts bool
}

func (s *memoryStore) ListDocuments(_ context.Context, collection, afterID string, limit uint64) ([]*types.Document, error) {
	out := []*types.Document{}
	for _, doc := range s.db.tagged(collection, s.tenantID) {
		if doc.ID <= afterID {
			continue
		}
		if uint64(len(out)) == limit {
			break
		}
		cp := *doc
		out = append(out, &cp)
	}
	return out, nil
}

func (s *memoryStore) InsertDocuments(_ context.Context, collection string, docs []*types.Document) (int64, error) {
	if s.dropInserts {
		return int64(len(docs)), nil
	}

	var n int64
	for _, doc := range docs {
		if _, ok := s.db.collections[collection][doc.ID]; ok {
			continue
		}
		cp := *doc
		cp.TenantID = nil
		if s.tenantID != "" {
			tag := s.tenantID
			cp.TenantID = &tag
		}
		s.db.put(collection, &cp)
		n++
	}
	return n, nil
}

func (s *memoryStore) DeleteDocuments(_ context.Context, collection string, ids []string) (int64, error) {
	var n int64
	for _, id := range ids {
		doc, ok := s.db.collections[collection][id]
		if !ok {
			continue
		}
		if s.tenantID != "" && (doc.TenantID == nil || *doc.TenantID != s.tenantID) {
			continue
		}
		delete(s.db.collections[collection], id)
		n++
	}
	return n, nil
}

func (s *memoryStore) CountDocuments(_ context.Context, collection string) (int64, error) {
	return int64(len(s.db.tagged(collection, s.tenantID))), nil
}

func (s *memoryStore) DocumentChecksums(_ context.Context, collection string, ids []string) (map[string]string, error) {
	sums := make(map[string]string, len(ids))
	for _, id := range ids {
		doc, ok := s.db.collections[collection][id]
		if !ok {
			continue
		}
		if s.tenantID != "" && (doc.TenantID == nil || *doc.TenantID != s.tenantID) {
			continue
		}
		sums[id] = fmt.Sprintf("%x", md5.Sum(doc.Data))
	}
	return sums, nil
}

// migrationStore keeps tenants and migrations in memory.
type migrationStore struct {
	tenants    map[string]*types.Tenant
	migrations []*types.Migration
	steps      map[string]map[string]types.MigrationStep
	failSwitch bool
}

func newMigrationStore(tenants ...*types.Tenant) *migrationStore {
	s := &migrationStore{tenants: make(map[string]*types.Tenant), steps: make(map[string]map[string]types.MigrationStep)}
	for _, t := range tenants {
		s.tenants[t.ID] = t
	}
	return s
}

func (s *migrationStore) GetTenantByID(_ context.Context, id string) (*types.Tenant, error) {
	t, ok := s.tenants[id]
	if !ok {
		return nil, fmt.Errorf("failed to get tenant: %w", storage.ErrNotFound)
	}
	cp := *t
	return &cp, nil
}

func (s *migrationStore) SetTenantDataPlane(_ context.Context, id string, dp types.DataPlane) error {
	if s.failSwitch {
		s.failSwitch = false
		return storage.ErrUnavailable
	}
	s.tenants[id].DataPlane = dp
	return nil
}

func (s *migrationStore) CreateMigration(_ context.Context, tenantID, targetDatabase string) (*types.Migration, error) {
	m := &types.Migration{
		ID:             fmt.Sprintf("m%d", len(s.migrations)+1),
		TenantID:       tenantID,
		TargetDatabase: targetDatabase,
		Status:         types.MigrationRunning,
		StartedAt:      time.Now(),
	}
	s.migrations = append(s.migrations, m)
	s.steps[m.ID] = make(map[string]types.MigrationStep)
	cp := *m
	return &cp, nil
}

func (s *migrationStore) GetLatestMigration(_ context.Context, tenantID string) (*types.Migration, error) {
	for i := len(s.migrations) - 1; i >= 0; i-- {
		m := s.migrations[i]
		if m.TenantID != tenantID {
			continue
		}
		cp := *m
		cp.Steps = nil
		for _, st := range s.steps[m.ID] {
			cp.Steps = append(cp.Steps, &st)
		}
		return &cp, nil
	}
	return nil, fmt.Errorf("failed to get migration: %w", storage.ErrNotFound)
}

func (s *migrationStore) UpdateMigrationStatus(_ context.Context, id string, status types.MigrationStatus, lastError string) error {
	for _, m := range s.migrations {
		if m.ID == id {
			m.Status = status
			m.LastError = lastError
			return nil
		}
	}
	return storage.ErrNotFound
}

func (s *migrationStore) SaveMigrationStep(_ context.Context, step *types.MigrationStep) error {
	s.steps[step.MigrationID][step.Collection] = *step
	return nil
}

type migrationFixture struct {
	store     *migrationStore
	shared    *memoryDatabase
	dedicated *memoryDatabase
	source    *memoryStore
	dest      *memoryStore
	migrator  *Migrator
}

func newMigrationFixture(t *testing.T, ctrl *gomock.Controller, tenant *types.Tenant, provisions int) *migrationFixture {
	t.Helper()

	f := &migrationFixture{
		store:     newMigrationStore(tenant),
		shared:    newMemoryDatabase(),
		dedicated: newMemoryDatabase(),
	}
	f.source = &memoryStore{db: f.shared, tenantID: tenant.ID}
	f.dest = &memoryStore{db: f.dedicated}

	sharedClient := testClient("business")
	dedicatedClient := testClient(types.DedicatedDatabaseName(tenant.Slug))

	pools := NewMockPoolsInterface(ctrl)
	pools.EXPECT().Shared().Return(sharedClient).AnyTimes()

	provisioner := NewMockProvisionerInterface(ctrl)
	provisioner.EXPECT().EnsureDatabase(gomock.Any(), dedicatedClient.Database()).Return(dedicatedClient, nil).Times(provisions)

	stores := func(client db.DBClientInterface, tenantID string) DocumentStoreInterface {
		if client == db.DBClientInterface(sharedClient) && tenantID == tenant.ID {
			return f.source
		}
		if client == db.DBClientInterface(dedicatedClient) && tenantID == "" {
			return f.dest
		}
		t.Fatalf("unexpected store for %s/%s", client.Database(), tenantID)
		return nil
	}

	f.migrator = NewMigrator(f.store, pools, provisioner, stores, 2, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	return f
}

func doc(id, tenantID string) *types.Document {
	tag := tenantID
	return &types.Document{ID: id, TenantID: &tag, Data: []byte(`{"id":"` + id + `"}`)}
}

func upgradedTenant() *types.Tenant {
	return &types.Tenant{ID: "t1", Slug: "acme", Plan: types.PlanProfessional, DataPlane: types.DataPlane{Type: types.DataPlaneShared}}
}

func TestMigrator_MovesTenantDocuments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newMigrationFixture(t, ctrl, upgradedTenant(), 1)

	for _, id := range []string{"c1", "c2", "c3"} {
		f.shared.put("campaigns", doc(id, "t1"))
	}
	f.shared.put("campaigns", doc("other", "t2"))
	f.shared.put("workflows", doc("w1", "t1"))

	m, err := f.migrator.MigrateTenantToDedicated(context.Background(), "t1", "acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Status != types.MigrationCompleted {
		t.Errorf("expected a completed migration, got %s", m.Status)
	}

	moved := f.dedicated.tagged("campaigns", "")
	if len(moved) != 3 {
		t.Fatalf("expected 3 campaigns in the dedicated database, got %d", len(moved))
	}
	for i, id := range []string{"c1", "c2", "c3"} {
		if moved[i].ID != id {
			t.Errorf("expected %s at %d, got %s", id, i, moved[i].ID)
		}
		if moved[i].TenantID != nil {
			t.Errorf("expected the tenant tag of %s to be stripped", id)
		}
	}

	if left := f.shared.tagged("campaigns", "t1"); len(left) != 0 {
		t.Errorf("expected no t1 campaigns left in the shared database, got %d", len(left))
	}
	if other := f.shared.tagged("campaigns", "t2"); len(other) != 1 {
		t.Errorf("expected documents of other tenants untouched, got %d", len(other))
	}
	if len(f.dedicated.tagged("workflows", "")) != 1 {
		t.Error("expected the workflow to be moved")
	}

	tenant := f.store.tenants["t1"]
	if tenant.DataPlane.Type != types.DataPlaneDedicated || tenant.DataPlane.Database != "tenant_acme" {
		t.Errorf("expected the tenant to be switched to tenant_acme, got %+v", tenant.DataPlane)
	}

	steps := f.store.steps[m.ID]
	if len(steps) != 4 {
		t.Fatalf("expected a step per collection, got %d", len(steps))
	}
	for collection, st := range steps {
		if st.Status != types.StepDone {
			t.Errorf("expected %s to be done, got %s", collection, st.Status)
		}
	}
	if c := steps["campaigns"]; c.SourceCount != 3 || c.CopiedCount != 3 || c.DeletedCount != 3 {
		t.Errorf("unexpected campaigns step %+v", c)
	}
}

func TestMigrator_CompletedMigrationIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newMigrationFixture(t, ctrl, upgradedTenant(), 1)
	f.shared.put("audiences", doc("a1", "t1"))

	first, err := f.migrator.MigrateTenantToDedicated(context.Background(), "t1", "acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := f.migrator.MigrateTenantToDedicated(context.Background(), "t1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if second.ID != first.ID || second.Status != types.MigrationCompleted {
		t.Errorf("expected the completed migration %s to be returned, got %+v", first.ID, second)
	}
	if len(f.store.migrations) != 1 {
		t.Errorf("expected no new migration, got %d", len(f.store.migrations))
	}
}

func TestMigrator_ResumesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newMigrationFixture(t, ctrl, upgradedTenant(), 2)
	for _, id := range []string{"a1", "a2", "a3"} {
		f.shared.put("audiences", doc(id, "t1"))
	}
	f.shared.put("campaigns", doc("c1", "t1"))

	// campaigns and the first audiences batch are moved, the second audiences batch fails
	calls := 0
	failing := &failingAfter{memoryStore: f.dest, failAt: 3, calls: &calls}
	f.migrator.stores = wrapDest(f.migrator.stores, f.dest, failing)

	_, err := f.migrator.MigrateTenantToDedicated(context.Background(), "t1", "acme")
	if !errors.Is(err, types.ErrStoreUnavailable) {
		t.Fatalf("expected a store error, got %v", err)
	}

	if f.store.migrations[0].Status != types.MigrationFailed || f.store.migrations[0].LastError == "" {
		t.Errorf("expected the migration to be recorded as failed, got %+v", f.store.migrations[0])
	}
	if f.store.tenants["t1"].DataPlane.Type != types.DataPlaneShared {
		t.Error("expected the tenant to stay on the shared data plane")
	}

	m, err := f.migrator.MigrateTenantToDedicated(context.Background(), "t1", "acme")
	if err != nil {
		t.Fatalf("unexpected error on resume: %v", err)
	}

	if m.ID != "m1" || len(f.store.migrations) != 1 {
		t.Errorf("expected the failed migration to be resumed, got %s", m.ID)
	}
	if n := len(f.dedicated.tagged("audiences", "")); n != 3 {
		t.Errorf("expected 3 audiences in the dedicated database, got %d", n)
	}
	if n := len(f.shared.tagged("audiences", "t1")); n != 0 {
		t.Errorf("expected no audiences left in the shared database, got %d", n)
	}
	if f.store.tenants["t1"].DataPlane.Type != types.DataPlaneDedicated {
		t.Error("expected the tenant to be switched after resuming")
	}
}

func TestMigrator_VerificationFailureKeepsSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newMigrationFixture(t, ctrl, upgradedTenant(), 1)
	f.shared.put("campaigns", doc("c1", "t1"))
	f.dest.dropInserts = true

	if _, err := f.migrator.MigrateTenantToDedicated(context.Background(), "t1", "acme"); err == nil {
		t.Fatal("expected the verification to fail")
	}

	if n := len(f.shared.tagged("campaigns", "t1")); n != 1 {
		t.Errorf("expected the source document to be kept, got %d", n)
	}
	if st := f.store.steps["m1"]["campaigns"]; st.Status != types.StepFailed {
		t.Errorf("expected the campaigns step to be failed, got %s", st.Status)
	}
}

func TestMigrator_ConflictingDedicatedDocumentKeepsSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newMigrationFixture(t, ctrl, upgradedTenant(), 1)
	f.shared.put("campaigns", doc("c1", "t1"))
	f.shared.put("campaigns", doc("c2", "t1"))

	// written through the router after the plan upgrade, before the migration ran
	f.dedicated.put("campaigns", &types.Document{ID: "c1", Data: []byte(`{"id":"c1","name":"newer"}`)})

	_, err := f.migrator.MigrateTenantToDedicated(context.Background(), "t1", "acme")
	if err == nil {
		t.Fatal("expected the verification to fail")
	}

	if n := len(f.shared.tagged("campaigns", "t1")); n != 2 {
		t.Errorf("expected both source documents to be kept, got %d", n)
	}
	if f.store.tenants["t1"].DataPlane.Type != types.DataPlaneShared {
		t.Error("expected the tenant to stay on the shared data plane")
	}
	if st := f.store.steps["m1"]["campaigns"]; st.Status != types.StepFailed || st.DeletedCount != 0 {
		t.Errorf("expected a failed campaigns step with nothing deleted, got %+v", st)
	}
}

func TestMigrator_SwitchFailureIsResumable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newMigrationFixture(t, ctrl, upgradedTenant(), 2)
	f.shared.put("campaigns", doc("c1", "t1"))
	f.store.failSwitch = true

	if _, err := f.migrator.MigrateTenantToDedicated(context.Background(), "t1", "acme"); err == nil {
		t.Fatal("expected the switch to fail")
	}
	if f.store.tenants["t1"].DataPlane.Type != types.DataPlaneShared {
		t.Fatal("expected the tenant to stay on the shared data plane")
	}

	if _, err := f.migrator.MigrateTenantToDedicated(context.Background(), "t1", "acme"); err != nil {
		t.Fatalf("unexpected error on resume: %v", err)
	}
	if f.store.tenants["t1"].DataPlane.Database != "tenant_acme" {
		t.Error("expected the tenant to be switched")
	}
	if n := len(f.dedicated.tagged("campaigns", "")); n != 1 {
		t.Errorf("expected exactly one campaign after resuming, got %d", n)
	}
}

func TestMigrator_RejectsBadInput(t *testing.T) {
	testCases := []struct {
		name      string
		tenantID  string
		slug      string
		expectErr error
	}{
		{name: "unknown tenant", tenantID: "missing", slug: "acme", expectErr: types.ErrTenantNotFound},
		{name: "slug of another tenant", tenantID: "t1", slug: "other", expectErr: types.ErrValidation},
		{name: "free plan", tenantID: "t2", slug: "beta", expectErr: types.ErrValidation},
		{name: "starter plan", tenantID: "t3", slug: "gamma", expectErr: types.ErrValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newMigrationFixture(t, ctrl, upgradedTenant(), 0)
			f.store.tenants["t2"] = &types.Tenant{ID: "t2", Slug: "beta", Plan: types.PlanFree, DataPlane: types.DataPlane{Type: types.DataPlaneShared}}
			f.store.tenants["t3"] = &types.Tenant{ID: "t3", Slug: "gamma", Plan: types.PlanStarter, DataPlane: types.DataPlane{Type: types.DataPlaneShared}}
			f.shared.put("campaigns", doc("c1", tc.tenantID))

			_, err := f.migrator.MigrateTenantToDedicated(context.Background(), tc.tenantID, tc.slug)
			if !errors.Is(err, tc.expectErr) {
				t.Fatalf("expected %v, got %v", tc.expectErr, err)
			}
			if len(f.store.migrations) != 0 {
				t.Error("expected no migration to be started")
			}
			if len(f.shared.tagged("campaigns", tc.tenantID)) != 1 || len(f.dedicated.tagged("campaigns", "")) != 0 {
				t.Error("expected the shared documents to stay in place")
			}
		})
	}
}

// failingAfter fails the failAt-th insert.
type failingAfter struct {
	*memoryStore
	failAt int
	calls  *int
}

func (f *failingAfter) InsertDocuments(ctx context.Context, collection string, docs []*types.Document) (int64, error) {
	*f.calls++
	if *f.calls == f.failAt {
		return 0, fmt.Errorf("insert: %w", storage.ErrUnavailable)
	}
	return f.memoryStore.InsertDocuments(ctx, collection, docs)
}

func wrapDest(next StoreFactory, dest *memoryStore, replacement DocumentStoreInterface) StoreFactory {
	return func(client db.DBClientInterface, tenantID string) DocumentStoreInterface {
		s := next(client, tenantID)
		if s == DocumentStoreInterface(dest) {
			return replacement
		}
		return s
	}
}
