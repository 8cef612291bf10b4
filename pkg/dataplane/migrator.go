// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dataplane

import (
	"context"
	"errors"
	"fmt"

	idataplane "github.com/canonical/tenant-access/internal/dataplane"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/types"
)

const defaultMigrationBatchSize uint64 = 500

// Migrator moves a tenant's business data from the shared database to its dedicated one.
//
// A migration is a resumable saga keyed by the tenant_migrations row: every collection is
// copied in batches, each batch is verified to be present in the dedicated database before
// it is removed from the shared one, and the tenant is only switched to the dedicated data
// plane once every collection is done. Re-running a failed migration resumes it.
type Migrator struct {
	storage     StorageInterface
	pools       PoolsInterface
	provisioner ProvisionerInterface
	stores      StoreFactory
	batchSize   uint64

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Migrator) MigrateTenantToDedicated(ctx context.Context, tenantID, slug string) (*types.Migration, error) {
	ctx, span := m.tracer.Start(ctx, "dataplane.Migrator.MigrateTenantToDedicated")
	defer span.End()

	tenant, err := m.storage.GetTenantByID(ctx, tenantID)
	if errors.Is(err, types.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", types.ErrTenantNotFound, tenantID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up tenant %s: %w", tenantID, err)
	}

	if slug == "" {
		slug = tenant.Slug
	}
	if slug != tenant.Slug {
		return nil, types.NewValidationError(fmt.Sprintf("slug %q does not belong to tenant %s", slug, tenantID))
	}

	// the router serves tenants by plan, data moved off the shared database for a
	// shared plan would be unreachable
	if !tenant.Plan.RequiresDedicated() {
		return nil, types.NewValidationError(fmt.Sprintf("tenant %s is on the %s plan which does not use a dedicated database", tenantID, tenant.Plan))
	}

	target := types.DedicatedDatabaseName(slug)

	migration, err := m.begin(ctx, tenant, target)
	if err != nil {
		return nil, err
	}
	if migration.Status == types.MigrationCompleted {
		return migration, nil
	}

	if err := m.run(ctx, tenant, migration); err != nil {
		m.fail(ctx, migration, err)
		return migration, fmt.Errorf("migration %s of tenant %s failed: %w", migration.ID, tenantID, err)
	}

	if err := m.storage.UpdateMigrationStatus(ctx, migration.ID, types.MigrationCompleted, ""); err != nil {
		// data is relocated and routed, only the bookkeeping is behind
		m.logger.Errorf("failed to mark migration %s completed: %v", migration.ID, err)
		return migration, fmt.Errorf("failed to complete migration %s: %w", migration.ID, err)
	}
	migration.Status = types.MigrationCompleted
	migration.LastError = ""

	m.logger.Security().AdminAction("system", "migrate_tenant_data_plane", tenantID)
	m.logger.Infof("tenant %s migrated to dedicated database %s", tenantID, target)

	return migration, nil
}

// begin returns the migration to run: an unfinished one is resumed, a tenant already
// recorded on its dedicated database yields a completed one.
func (m *Migrator) begin(ctx context.Context, tenant *types.Tenant, target string) (*types.Migration, error) {
	latest, err := m.storage.GetLatestMigration(ctx, tenant.ID)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up migrations of tenant %s: %w", tenant.ID, err)
	}

	onTarget := tenant.DataPlane.Type == types.DataPlaneDedicated && tenant.DataPlane.Database == target

	switch {
	case onTarget && latest != nil && latest.Status == types.MigrationCompleted:
		return latest, nil
	case onTarget && latest == nil:
		// provisioned dedicated at creation, nothing was ever shared
		return &types.Migration{TenantID: tenant.ID, TargetDatabase: target, Status: types.MigrationCompleted}, nil
	case latest != nil && latest.Status != types.MigrationCompleted:
		if latest.TargetDatabase != target {
			return nil, fmt.Errorf("%w: tenant %s has an unfinished migration to %s", types.ErrConflict, tenant.ID, latest.TargetDatabase)
		}
		if err := m.storage.UpdateMigrationStatus(ctx, latest.ID, types.MigrationRunning, ""); err != nil {
			return nil, fmt.Errorf("failed to resume migration %s: %w", latest.ID, err)
		}
		m.logger.Infof("resuming migration %s of tenant %s", latest.ID, tenant.ID)
		latest.Status = types.MigrationRunning
		return latest, nil
	}

	migration, err := m.storage.CreateMigration(ctx, tenant.ID, target)
	if err != nil {
		return nil, fmt.Errorf("failed to start migration of tenant %s: %w", tenant.ID, err)
	}

	return migration, nil
}

func (m *Migrator) run(ctx context.Context, tenant *types.Tenant, migration *types.Migration) error {
	dedicated, err := m.provisioner.EnsureDatabase(ctx, migration.TargetDatabase)
	if err != nil {
		m.count("provision", "failed")
		return fmt.Errorf("failed to provision %s: %w", migration.TargetDatabase, err)
	}

	source := m.stores(m.pools.Shared(), tenant.ID)
	dest := m.stores(dedicated, "")

	steps := make(map[string]*types.MigrationStep, len(migration.Steps))
	for _, st := range migration.Steps {
		steps[st.Collection] = st
	}

	for _, collection := range idataplane.Collections {
		step, ok := steps[collection]
		if !ok {
			step = &types.MigrationStep{MigrationID: migration.ID, Collection: collection, Status: types.StepPending}
			migration.Steps = append(migration.Steps, step)
		}

		if step.Status == types.StepDone {
			continue
		}

		if err := m.migrateCollection(ctx, source, dest, step); err != nil {
			step.Status = types.StepFailed
			if serr := m.storage.SaveMigrationStep(ctx, step); serr != nil {
				m.logger.Errorf("failed to record failed step %s of migration %s: %v", collection, migration.ID, serr)
			}
			m.count(collection, "failed")
			return fmt.Errorf("collection %s: %w", collection, err)
		}

		m.count(collection, "done")
	}

	dp := types.DataPlane{Type: types.DataPlaneDedicated, Database: migration.TargetDatabase}
	if err := m.storage.SetTenantDataPlane(ctx, tenant.ID, dp); err != nil {
		m.count("switch", "failed")
		return fmt.Errorf("failed to switch tenant to %s: %w", migration.TargetDatabase, err)
	}

	return nil
}

// migrateCollection copies, verifies and deletes one batch at a time. Inserts skip ids
// already present, so a batch interrupted after the copy is redone safely.
func (m *Migrator) migrateCollection(ctx context.Context, source, dest DocumentStoreInterface, step *types.MigrationStep) error {
	remaining, err := source.CountDocuments(ctx, step.Collection)
	if err != nil {
		return err
	}

	step.SourceCount = remaining + step.DeletedCount
	step.Status = types.StepPending
	if err := m.storage.SaveMigrationStep(ctx, step); err != nil {
		return err
	}

	for {
		// deleted rows never reappear, so every page starts from the beginning
		docs, err := source.ListDocuments(ctx, step.Collection, "", m.batchSize)
		if err != nil {
			return err
		}

		if len(docs) == 0 {
			break
		}

		ids := make([]string, 0, len(docs))
		for _, d := range docs {
			d.TenantID = nil
			ids = append(ids, d.ID)
		}

		copied, err := dest.InsertDocuments(ctx, step.Collection, docs)
		if err != nil {
			return err
		}
		step.CopiedCount += copied
		step.Status = types.StepCopied

		if err := verifyBatch(ctx, source, dest, step.Collection, ids); err != nil {
			return err
		}
		step.Status = types.StepVerified

		deleted, err := source.DeleteDocuments(ctx, step.Collection, ids)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return fmt.Errorf("no documents removed from the shared database")
		}
		step.DeletedCount += deleted

		if err := m.storage.SaveMigrationStep(ctx, step); err != nil {
			return err
		}

		if uint64(len(docs)) < m.batchSize {
			break
		}
	}

	step.Status = types.StepDone
	return m.storage.SaveMigrationStep(ctx, step)
}

// verifyBatch checks that every document of the batch is in the dedicated database with
// the same content as its shared copy. Inserts skip existing ids, so a document written to
// the dedicated database before the copy must match too.
func verifyBatch(ctx context.Context, source, dest DocumentStoreInterface, collection string, ids []string) error {
	want, err := source.DocumentChecksums(ctx, collection, ids)
	if err != nil {
		return err
	}

	got, err := dest.DocumentChecksums(ctx, collection, ids)
	if err != nil {
		return err
	}

	var missing, mismatched []string
	for _, id := range ids {
		sum, ok := got[id]
		switch {
		case !ok:
			missing = append(missing, id)
		case sum != want[id]:
			mismatched = append(mismatched, id)
		}
	}

	if len(missing) > 0 || len(mismatched) > 0 {
		return fmt.Errorf(
			"verification failed: %d of %d documents missing from the dedicated database, content differs for %v",
			len(missing), len(ids), mismatched,
		)
	}

	return nil
}

func (m *Migrator) fail(ctx context.Context, migration *types.Migration, cause error) {
	migration.Status = types.MigrationFailed
	migration.LastError = cause.Error()

	m.logger.Errorf("migration %s of tenant %s failed: %v", migration.ID, migration.TenantID, cause)

	if err := m.storage.UpdateMigrationStatus(context.WithoutCancel(ctx), migration.ID, types.MigrationFailed, cause.Error()); err != nil {
		m.logger.Errorf("failed to mark migration %s failed: %v", migration.ID, err)
	}
}

func (m *Migrator) count(step, result string) {
	if err := m.monitor.IncMigrationStep(map[string]string{"collection": step, "result": result}); err != nil {
		m.logger.Debugf("failed to record migration step: %v", err)
	}
}

// Status returns the latest migration of the tenant with its per collection steps.
func (m *Migrator) Status(ctx context.Context, tenantID string) (*types.Migration, error) {
	ctx, span := m.tracer.Start(ctx, "dataplane.Migrator.Status")
	defer span.End()

	migration, err := m.storage.GetLatestMigration(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get migration of tenant %s: %w", tenantID, err)
	}

	return migration, nil
}

func NewMigrator(
	storage StorageInterface,
	pools PoolsInterface,
	provisioner ProvisionerInterface,
	stores StoreFactory,
	batchSize uint64,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Migrator {
	m := new(Migrator)

	m.storage = storage
	m.pools = pools
	m.provisioner = provisioner
	m.stores = stores
	m.batchSize = batchSize
	if m.batchSize == 0 {
		m.batchSize = defaultMigrationBatchSize
	}

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
