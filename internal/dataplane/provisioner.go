// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dataplane

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pressly/goose/v3"

	"github.com/canonical/tenant-access/internal/db"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/storage"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/migrations"
)

const pgErrCodeDuplicateDatabase = "42P04"

// MigrateFunc brings the business schema of a data plane database up to date.
type MigrateFunc func(ctx context.Context, conn *sql.DB) error

// Provisioner creates dedicated databases and applies the data plane schema to them.
type Provisioner struct {
	admin   db.DBClientInterface
	pools   *PoolManager
	migrate MigrateFunc

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// EnsureDatabase creates database when it does not exist yet and migrates it.
// Running it against an existing, up to date database is a no-op.
func (p *Provisioner) EnsureDatabase(ctx context.Context, database string) (db.DBClientInterface, error) {
	ctx, span := p.tracer.Start(ctx, "dataplane.Provisioner.EnsureDatabase")
	defer span.End()

	exists, err := p.exists(ctx, database)
	if err != nil {
		return nil, err
	}

	if !exists {
		// CREATE DATABASE cannot run inside a transaction block
		_, err := p.admin.DB().ExecContext(ctx, "CREATE DATABASE "+pgx.Identifier{database}.Sanitize())

		var pgErr *pgconn.PgError
		switch {
		case err == nil:
			p.logger.Infof("created dedicated database %s", database)
		case errors.As(err, &pgErr) && pgErr.Code == pgErrCodeDuplicateDatabase:
			p.logger.Debugf("database %s created concurrently", database)
		default:
			return nil, storage.WrapError(err, fmt.Sprintf("failed to create database %s", database))
		}
	}

	client, err := p.pools.Dedicated(ctx, database)
	if err != nil {
		return nil, err
	}

	if err := p.migrate(ctx, client.DB()); err != nil {
		return nil, fmt.Errorf("failed to migrate database %s: %w", database, err)
	}

	return client, nil
}

func (p *Provisioner) exists(ctx context.Context, database string) (bool, error) {
	var one int

	err := p.admin.Statement(ctx).
		Select("1").
		From("pg_database").
		Where(sq.Eq{"datname": database}).
		QueryRowContext(ctx).
		Scan(&one)

	switch {
	case err == nil:
		return true, nil
	case storage.IsNoRows(err):
		return false, nil
	default:
		return false, storage.WrapError(err, "failed to look up database")
	}
}

// MigrateDataPlane applies the embedded business collection schema to conn.
func MigrateDataPlane(ctx context.Context, conn *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, conn, migrations.DataPlane(), goose.WithLogger(goose.NopLogger()))
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to apply data plane migrations: %w", err)
	}

	return nil
}

func NewProvisioner(admin db.DBClientInterface, pools *PoolManager, migrate MigrateFunc, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Provisioner {
	p := new(Provisioner)

	p.admin = admin
	p.pools = pools
	p.migrate = migrate
	if p.migrate == nil {
		p.migrate = MigrateDataPlane
	}

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}
