// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dataplane

import (
	"context"
	"errors"
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/tenant-access/internal/db"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/storage"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/types"
)

// Collections lists the business collections held by every data plane.
var Collections = []string{"campaigns", "audiences", "analytics", "workflows"}

var ErrUnknownCollection = errors.New("unknown collection")

var documentColumns = []string{"id", "tenant_id", "data", "created_at", "updated_at"}

// BusinessStore reads and writes the business collections of one tenant on one data plane.
// On the shared database every statement is scoped to the tenant tag, on a dedicated
// database the tag is empty and documents are stored untagged.
type BusinessStore struct {
	db       db.DBClientInterface
	tenantID string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *BusinessStore) table(collection string) (string, error) {
	if !slices.Contains(Collections, collection) {
		return "", fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	return collection, nil
}

func (s *BusinessStore) scope() sq.Sqlizer {
	if s.tenantID == "" {
		return sq.Expr("1 = 1")
	}
	return sq.Eq{"tenant_id": s.tenantID}
}

// ListDocuments pages through the collection in id order, starting after afterID.
func (s *BusinessStore) ListDocuments(ctx context.Context, collection, afterID string, limit uint64) ([]*types.Document, error) {
	ctx, span := s.tracer.Start(ctx, "dataplane.BusinessStore.ListDocuments")
	defer span.End()

	table, err := s.table(collection)
	if err != nil {
		return nil, err
	}

	query := s.db.Statement(ctx).
		Select(documentColumns...).
		From(table).
		Where(s.scope()).
		OrderBy("id").
		Limit(limit)

	if afterID != "" {
		query = query.Where(sq.Gt{"id": afterID})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, storage.WrapError(err, "failed to list "+table)
	}
	defer rows.Close()

	docs := []*types.Document{}
	for rows.Next() {
		var d types.Document
		if err := rows.Scan(&d.ID, &d.TenantID, &d.Data, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		docs = append(docs, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", table, err)
	}

	return docs, nil
}

// InsertDocuments writes docs tagged with the store tenant, documents whose id already
// exists are skipped. It returns how many rows were inserted.
func (s *BusinessStore) InsertDocuments(ctx context.Context, collection string, docs []*types.Document) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "dataplane.BusinessStore.InsertDocuments")
	defer span.End()

	table, err := s.table(collection)
	if err != nil {
		return 0, err
	}

	if len(docs) == 0 {
		return 0, nil
	}

	var tag *string
	if s.tenantID != "" {
		tag = &s.tenantID
	}

	query := s.db.Statement(ctx).
		Insert(table).
		Columns(documentColumns...).
		Suffix("ON CONFLICT (id) DO NOTHING")

	for _, d := range docs {
		data := string(d.Data)
		if data == "" {
			data = "{}"
		}
		query = query.Values(d.ID, tag, data, d.CreatedAt, d.UpdatedAt)
	}

	res, err := query.ExecContext(ctx)
	if err != nil {
		return 0, storage.WrapError(err, "failed to insert into "+table)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count inserted %s rows: %w", table, err)
	}

	return n, nil
}

// DeleteDocuments removes the documents with the given ids, scoped to the store tenant.
func (s *BusinessStore) DeleteDocuments(ctx context.Context, collection string, ids []string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "dataplane.BusinessStore.DeleteDocuments")
	defer span.End()

	table, err := s.table(collection)
	if err != nil {
		return 0, err
	}

	if len(ids) == 0 {
		return 0, nil
	}

	res, err := s.db.Statement(ctx).
		Delete(table).
		Where(s.scope()).
		Where(sq.Eq{"id": ids}).
		ExecContext(ctx)
	if err != nil {
		return 0, storage.WrapError(err, "failed to delete from "+table)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted %s rows: %w", table, err)
	}

	return n, nil
}

func (s *BusinessStore) CountDocuments(ctx context.Context, collection string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "dataplane.BusinessStore.CountDocuments")
	defer span.End()

	return s.count(ctx, collection, nil)
}

// DocumentChecksums maps each of ids present in the collection to the md5 of its data.
// The data column is jsonb, so equal documents hash the same on every database.
func (s *BusinessStore) DocumentChecksums(ctx context.Context, collection string, ids []string) (map[string]string, error) {
	ctx, span := s.tracer.Start(ctx, "dataplane.BusinessStore.DocumentChecksums")
	defer span.End()

	table, err := s.table(collection)
	if err != nil {
		return nil, err
	}

	sums := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return sums, nil
	}

	rows, err := s.db.Statement(ctx).
		Select("id", "md5(data::text)").
		From(table).
		Where(s.scope()).
		Where(sq.Eq{"id": ids}).
		QueryContext(ctx)
	if err != nil {
		return nil, storage.WrapError(err, "failed to checksum "+table)
	}
	defer rows.Close()

	for rows.Next() {
		var id, sum string
		if err := rows.Scan(&id, &sum); err != nil {
			return nil, fmt.Errorf("failed to scan %s checksum: %w", table, err)
		}
		sums[id] = sum
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s checksums: %w", table, err)
	}

	return sums, nil
}

func (s *BusinessStore) count(ctx context.Context, collection string, where sq.Sqlizer) (int64, error) {
	table, err := s.table(collection)
	if err != nil {
		return 0, err
	}

	query := s.db.Statement(ctx).
		Select("COUNT(*)").
		From(table).
		Where(s.scope())

	if where != nil {
		query = query.Where(where)
	}

	var n int64
	if err := query.QueryRowContext(ctx).Scan(&n); err != nil {
		return 0, storage.WrapError(err, "failed to count "+table)
	}

	return n, nil
}

// Database names the database the store reads from.
func (s *BusinessStore) Database() string {
	return s.db.Database()
}

// NewBusinessStore scopes client to tenantID, pass an empty tenantID for a dedicated database.
func NewBusinessStore(client db.DBClientInterface, tenantID string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *BusinessStore {
	s := new(BusinessStore)

	s.db = client
	s.tenantID = tenantID

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
