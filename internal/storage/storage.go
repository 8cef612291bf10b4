// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/tenant-access/internal/db"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var tenantColumns = []string{
	"id", "slug", "name", "plan", "status", "data_plane_type", "data_plane_database", "created_at", "updated_at",
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTenant(row scanner) (*types.Tenant, error) {
	var t types.Tenant
	err := row.Scan(
		&t.ID, &t.Slug, &t.Name, &t.Plan, &t.Status,
		&t.DataPlane.Type, &t.DataPlane.Database,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTenant inserts a tenant, the data plane is always derived from the plan.
func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id := t.ID
	if id == "" {
		var err error
		if id, err = newID(); err != nil {
			return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
		}
	}

	status := t.Status
	if status == "" {
		status = types.TenantStatusActive
	}

	dp := types.DataPlaneFor(t.Plan, t.Slug)

	row := s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "slug", "name", "plan", "status", "data_plane_type", "data_plane_database").
		Values(id, t.Slug, t.Name, t.Plan, status, dp.Type, dp.Database).
		Suffix("RETURNING " + joinColumns(tenantColumns)).
		QueryRowContext(ctx)

	tenant, err := scanTenant(row)
	if err != nil {
		return nil, wrapError(err, "failed to insert tenant")
	}

	return tenant, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantBySlug")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"slug": slug})
}

func (s *Storage) getTenant(ctx context.Context, where sq.Eq) (*types.Tenant, error) {
	row := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(where).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		return nil, wrapError(err, "failed to get tenant")
	}

	return t, nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, wrapError(err, "failed to list tenants")
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

// UpdateTenantStatus moves a tenant between lifecycle states, tenants are never deleted.
func (s *Storage) UpdateTenantStatus(ctx context.Context, id string, status types.TenantStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenantStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to update tenant status")
	}

	return expectAffected(res, "tenant")
}

// UpdateTenantPlan changes the billing plan only, the data plane follows through a migration.
func (s *Storage) UpdateTenantPlan(ctx context.Context, id string, plan types.Plan) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenantPlan")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("plan", plan).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to update tenant plan")
	}

	return expectAffected(res, "tenant")
}

// SetTenantDataPlane records where the tenant data lives, only the data plane migration calls it.
func (s *Storage) SetTenantDataPlane(ctx context.Context, id string, dp types.DataPlane) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantDataPlane")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("data_plane_type", dp.Type).
		Set("data_plane_database", dp.Database).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to update tenant data plane")
	}

	return expectAffected(res, "tenant")
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "email", "email_verified", "created_at").
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Email, &u.EmailVerified, &u.CreatedAt)
	if err != nil {
		return nil, wrapError(err, "failed to get user")
	}

	return &u, nil
}

func (s *Storage) ListTenantEntitlements(ctx context.Context, tenantID string) ([]*types.Entitlement, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenantEntitlements")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("tenant_id", "app_id", "app_name", "enabled", "self_manageable").
		From("tenant_app_entitlements").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("app_id").
		QueryContext(ctx)
	if err != nil {
		return nil, wrapError(err, "failed to list entitlements")
	}
	defer rows.Close()

	var out []*types.Entitlement
	for rows.Next() {
		var e types.Entitlement
		if err := rows.Scan(&e.TenantID, &e.AppID, &e.AppName, &e.Enabled, &e.SelfManageable); err != nil {
			return nil, fmt.Errorf("failed to scan entitlement: %w", err)
		}
		out = append(out, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entitlement rows: %w", err)
	}

	return out, nil
}

func (s *Storage) GetTenantEntitlement(ctx context.Context, tenantID, appID string) (*types.Entitlement, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantEntitlement")
	defer span.End()

	var e types.Entitlement
	err := s.db.Statement(ctx).
		Select("tenant_id", "app_id", "app_name", "enabled", "self_manageable").
		From("tenant_app_entitlements").
		Where(sq.Eq{"tenant_id": tenantID, "app_id": appID}).
		QueryRowContext(ctx).
		Scan(&e.TenantID, &e.AppID, &e.AppName, &e.Enabled, &e.SelfManageable)
	if err != nil {
		return nil, wrapError(err, "failed to get entitlement")
	}

	return &e, nil
}

// UpsertUser records an identity known to the identity provider, the email follows the provider.
func (s *Storage) UpsertUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertUser")
	defer span.End()

	var out types.User
	err := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "email", "email_verified").
		Values(u.ID, u.Email, u.EmailVerified).
		Suffix("ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email, email_verified = EXCLUDED.email_verified RETURNING id, email, email_verified, created_at").
		QueryRowContext(ctx).
		Scan(&out.ID, &out.Email, &out.EmailVerified, &out.CreatedAt)
	if err != nil {
		return nil, wrapError(err, "failed to upsert user")
	}

	return &out, nil
}

func (s *Storage) UpsertTenantEntitlement(ctx context.Context, e *types.Entitlement) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertTenantEntitlement")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("tenant_app_entitlements").
		Columns("tenant_id", "app_id", "app_name", "enabled", "self_manageable").
		Values(e.TenantID, e.AppID, e.AppName, e.Enabled, e.SelfManageable).
		Suffix("ON CONFLICT (tenant_id, app_id) DO UPDATE SET app_name = EXCLUDED.app_name, enabled = EXCLUDED.enabled, self_manageable = EXCLUDED.self_manageable").
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to upsert entitlement")
	}

	return nil
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

func expectAffected(res rowsAffecter, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

func encodePermissions(perms []string) (string, error) {
	if perms == nil {
		perms = []string{}
	}
	b, err := json.Marshal(perms)
	if err != nil {
		return "", fmt.Errorf("failed to encode permissions: %w", err)
	}
	return string(b), nil
}

func decodePermissions(raw []byte) ([]string, error) {
	var perms []string
	if len(raw) == 0 {
		return perms, nil
	}
	if err := json.Unmarshal(raw, &perms); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}
	return perms, nil
}
