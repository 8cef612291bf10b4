// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/tenant-access/internal/types"
)

var migrationColumns = []string{"id", "tenant_id", "target_database", "status", "started_at", "finished_at", "last_error"}

func scanMigration(row scanner) (*types.Migration, error) {
	var (
		m          types.Migration
		finishedAt sql.NullTime
	)

	if err := row.Scan(&m.ID, &m.TenantID, &m.TargetDatabase, &m.Status, &m.StartedAt, &finishedAt, &m.LastError); err != nil {
		return nil, err
	}

	if finishedAt.Valid {
		t := finishedAt.Time
		m.FinishedAt = &t
	}

	return &m, nil
}

// CreateMigration opens a migration record, a tenant can only have one unfinished migration.
func (s *Storage) CreateMigration(ctx context.Context, tenantID, targetDatabase string) (*types.Migration, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMigration")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate migration ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("tenant_migrations").
		Columns("id", "tenant_id", "target_database", "status").
		Values(id, tenantID, targetDatabase, types.MigrationRunning).
		Suffix("RETURNING " + joinColumns(migrationColumns)).
		QueryRowContext(ctx)

	m, err := scanMigration(row)
	if err != nil {
		return nil, wrapError(err, "failed to insert migration")
	}

	return m, nil
}

// GetLatestMigration returns the most recent migration of the tenant with its steps.
func (s *Storage) GetLatestMigration(ctx context.Context, tenantID string) (*types.Migration, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLatestMigration")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(migrationColumns...).
		From("tenant_migrations").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("started_at DESC", "id DESC").
		Limit(1).
		QueryRowContext(ctx)

	m, err := scanMigration(row)
	if err != nil {
		return nil, wrapError(err, "failed to get migration")
	}

	steps, err := s.ListMigrationSteps(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	m.Steps = steps

	return m, nil
}

// UpdateMigrationStatus moves the migration to status, completed and failed migrations get a finish time.
func (s *Storage) UpdateMigrationStatus(ctx context.Context, id string, status types.MigrationStatus, lastError string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMigrationStatus")
	defer span.End()

	query := s.db.Statement(ctx).
		Update("tenant_migrations").
		Set("status", status).
		Set("last_error", lastError).
		Where(sq.Eq{"id": id})

	if status == types.MigrationRunning {
		query = query.Set("finished_at", nil)
	} else {
		query = query.Set("finished_at", sq.Expr("NOW()"))
	}

	res, err := query.ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to update migration")
	}

	return expectAffected(res, "migration")
}

// SaveMigrationStep records the progress of one collection.
func (s *Storage) SaveMigrationStep(ctx context.Context, step *types.MigrationStep) error {
	ctx, span := s.tracer.Start(ctx, "storage.SaveMigrationStep")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("tenant_migration_steps").
		Columns("migration_id", "collection", "source_count", "copied_count", "deleted_count", "status").
		Values(step.MigrationID, step.Collection, step.SourceCount, step.CopiedCount, step.DeletedCount, step.Status).
		Suffix(
			"ON CONFLICT (migration_id, collection) DO UPDATE SET " +
				"source_count = EXCLUDED.source_count, copied_count = EXCLUDED.copied_count, " +
				"deleted_count = EXCLUDED.deleted_count, status = EXCLUDED.status, updated_at = NOW()",
		).
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to save migration step")
	}

	return nil
}

func (s *Storage) ListMigrationSteps(ctx context.Context, migrationID string) ([]*types.MigrationStep, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMigrationSteps")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("migration_id", "collection", "source_count", "copied_count", "deleted_count", "status", "updated_at").
		From("tenant_migration_steps").
		Where(sq.Eq{"migration_id": migrationID}).
		OrderBy("collection").
		QueryContext(ctx)
	if err != nil {
		return nil, wrapError(err, "failed to list migration steps")
	}
	defer rows.Close()

	steps := []*types.MigrationStep{}
	for rows.Next() {
		var st types.MigrationStep
		if err := rows.Scan(&st.MigrationID, &st.Collection, &st.SourceCount, &st.CopiedCount, &st.DeletedCount, &st.Status, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan migration step: %w", err)
		}
		steps = append(steps, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating migration step rows: %w", err)
	}

	return steps, nil
}
