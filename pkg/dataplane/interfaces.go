// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dataplane

import (
	"context"

	"github.com/canonical/tenant-access/internal/db"
	"github.com/canonical/tenant-access/internal/types"
)

type RouterInterface interface {
	GetTenantDatabase(ctx context.Context, tenantID string) (*Handle, error)
}

type MigratorInterface interface {
	MigrateTenantToDedicated(ctx context.Context, tenantID, slug string) (*types.Migration, error)
	Status(ctx context.Context, tenantID string) (*types.Migration, error)
}

type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	SetTenantDataPlane(ctx context.Context, id string, dp types.DataPlane) error
	CreateMigration(ctx context.Context, tenantID, targetDatabase string) (*types.Migration, error)
	GetLatestMigration(ctx context.Context, tenantID string) (*types.Migration, error)
	UpdateMigrationStatus(ctx context.Context, id string, status types.MigrationStatus, lastError string) error
	SaveMigrationStep(ctx context.Context, step *types.MigrationStep) error
}

// PoolsInterface hands out database clients per data plane.
type PoolsInterface interface {
	Shared() db.DBClientInterface
	Dedicated(ctx context.Context, database string) (db.DBClientInterface, error)
}

type ProvisionerInterface interface {
	EnsureDatabase(ctx context.Context, database string) (db.DBClientInterface, error)
}

// DocumentStoreInterface is a tenant scoped view over the business collections of a data plane.
type DocumentStoreInterface interface {
	ListDocuments(ctx context.Context, collection, afterID string, limit uint64) ([]*types.Document, error)
	InsertDocuments(ctx context.Context, collection string, docs []*types.Document) (int64, error)
	DeleteDocuments(ctx context.Context, collection string, ids []string) (int64, error)
	CountDocuments(ctx context.Context, collection string) (int64, error)
	DocumentChecksums(ctx context.Context, collection string, ids []string) (map[string]string, error)
}
