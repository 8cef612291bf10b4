// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/tenant-access/internal/types"
)

func (s *Storage) GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(membershipColumns...).
		From("tenant_memberships").
		Where(sq.Eq{"tenant_id": tenantID, "user_id": userID}).
		QueryRowContext(ctx)

	m, err := scanMembership(row)
	if err != nil {
		return nil, wrapError(err, "failed to get membership")
	}

	return m, nil
}

var membershipColumns = []string{"id", "tenant_id", "user_id", "role", "status", "created_at"}

func scanMembership(row scanner) (*types.Membership, error) {
	var m types.Membership
	if err := row.Scan(&m.ID, &m.TenantID, &m.UserID, &m.Role, &m.Status, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// AddMembership makes the user an active member of the tenant, an existing membership keeps its id
// and takes the new role.
func (s *Storage) AddMembership(ctx context.Context, tenantID, userID string, role types.Role) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMembership")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("tenant_memberships").
		Columns("id", "tenant_id", "user_id", "role", "status").
		Values(id, tenantID, userID, role, types.MembershipActive).
		Suffix("ON CONFLICT (user_id, tenant_id) DO UPDATE SET role = EXCLUDED.role, status = EXCLUDED.status RETURNING " + joinColumns(membershipColumns)).
		QueryRowContext(ctx)

	m, err := scanMembership(row)
	if err != nil {
		return nil, wrapError(err, "failed to add membership")
	}

	return m, nil
}

func (s *Storage) ListMemberships(ctx context.Context, tenantID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMemberships")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(membershipColumns...).
		From("tenant_memberships").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, wrapError(err, "failed to list memberships")
	}
	defer rows.Close()

	var out []*types.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		out = append(out, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating membership rows: %w", err)
	}

	return out, nil
}

// ListActiveMemberIDs returns the subset of userIDs holding an active membership in the tenant.
func (s *Storage) ListActiveMemberIDs(ctx context.Context, tenantID string, userIDs []string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveMemberIDs")
	defer span.End()

	out := []string{}
	if len(userIDs) == 0 {
		return out, nil
	}

	rows, err := s.db.Statement(ctx).
		Select("user_id").
		From("tenant_memberships").
		Where(sq.Eq{"tenant_id": tenantID, "user_id": userIDs, "status": types.MembershipActive}).
		QueryContext(ctx)
	if err != nil {
		return nil, wrapError(err, "failed to list active members")
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan member id: %w", err)
		}
		out = append(out, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}

	return out, nil
}

// ListDirectPermissions returns every direct grant held by the user's active membership in the
// tenant, expired entries included.
func (s *Storage) ListDirectPermissions(ctx context.Context, tenantID, userID string) ([]*types.AppPermission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDirectPermissions")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("p.membership_id", "p.app_id", "p.permissions", "p.granted_at", "p.granted_by", "p.expires_at").
		From("membership_app_permissions p").
		Join("tenant_memberships m ON m.id = p.membership_id").
		Where(sq.Eq{"m.tenant_id": tenantID, "m.user_id": userID, "m.status": types.MembershipActive}).
		OrderBy("p.app_id").
		QueryContext(ctx)
	if err != nil {
		return nil, wrapError(err, "failed to list direct permissions")
	}
	defer rows.Close()

	return scanAppPermissions(rows, types.SourceDirect)
}

// UpsertDirectPermission replaces the membership's grant for the app in a single statement.
func (s *Storage) UpsertDirectPermission(ctx context.Context, membershipID string, p *types.AppPermission) (*types.AppPermission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertDirectPermission")
	defer span.End()

	return s.upsertAppPermission(ctx, "membership_app_permissions", "membership_id", membershipID, types.SourceDirect, p)
}

func (s *Storage) DeleteDirectPermission(ctx context.Context, membershipID, appID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteDirectPermission")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("membership_app_permissions").
		Where(sq.Eq{"membership_id": membershipID, "app_id": appID}).
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to delete direct permission")
	}

	return expectAffected(res, "direct permission")
}

// DeleteExpiredDirectPermissions removes up to limit direct grants expired at now and reports
// the grantee of each one.
func (s *Storage) DeleteExpiredDirectPermissions(ctx context.Context, now time.Time, limit uint64) ([]*types.ExpiredGrant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteExpiredDirectPermissions")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Delete("membership_app_permissions").
		Where(sq.Expr(
			"(membership_id, app_id) IN (SELECT membership_id, app_id FROM membership_app_permissions WHERE expires_at <= ? ORDER BY expires_at LIMIT ? FOR UPDATE SKIP LOCKED)",
			now, limit,
		)).
		Suffix("RETURNING membership_id, app_id, " +
			"(SELECT m.user_id FROM tenant_memberships m WHERE m.id = membership_app_permissions.membership_id), " +
			"(SELECT m.tenant_id FROM tenant_memberships m WHERE m.id = membership_app_permissions.membership_id)").
		QueryContext(ctx)
	if err != nil {
		return nil, wrapError(err, "failed to delete expired direct permissions")
	}
	defer rows.Close()

	var out []*types.ExpiredGrant
	for rows.Next() {
		g := types.ExpiredGrant{Source: types.SourceDirect}
		if err := rows.Scan(&g.SourceID, &g.AppID, &g.UserID, &g.TenantID); err != nil {
			return nil, fmt.Errorf("failed to scan expired direct permission: %w", err)
		}
		out = append(out, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expired direct permission rows: %w", err)
	}

	return out, nil
}

func (s *Storage) upsertAppPermission(
	ctx context.Context,
	table, ownerColumn, ownerID string,
	source types.PermissionSource,
	p *types.AppPermission,
) (*types.AppPermission, error) {
	perms, err := encodePermissions(p.Permissions)
	if err != nil {
		return nil, err
	}

	var expiresAt sql.NullTime
	if p.ExpiresAt != nil {
		expiresAt = sql.NullTime{Time: *p.ExpiresAt, Valid: true}
	}

	row := s.db.Statement(ctx).
		Insert(table).
		Columns(ownerColumn, "app_id", "permissions", "granted_at", "granted_by", "expires_at").
		Values(ownerID, p.AppID, sq.Expr("?::jsonb", perms), p.GrantedAt, p.GrantedBy, expiresAt).
		Suffix(
			"ON CONFLICT ("+ownerColumn+", app_id) DO UPDATE SET "+
				"permissions = EXCLUDED.permissions, granted_at = EXCLUDED.granted_at, "+
				"granted_by = EXCLUDED.granted_by, expires_at = EXCLUDED.expires_at "+
				"RETURNING "+ownerColumn+", app_id, permissions, granted_at, granted_by, expires_at",
		).
		QueryRowContext(ctx)

	out, err := scanAppPermission(row, source)
	if err != nil {
		return nil, wrapError(err, "failed to upsert app permission")
	}

	return out, nil
}

func scanAppPermission(row scanner, source types.PermissionSource) (*types.AppPermission, error) {
	var (
		p         types.AppPermission
		raw       []byte
		expiresAt sql.NullTime
	)

	if err := row.Scan(&p.SourceID, &p.AppID, &raw, &p.GrantedAt, &p.GrantedBy, &expiresAt); err != nil {
		return nil, err
	}

	perms, err := decodePermissions(raw)
	if err != nil {
		return nil, err
	}

	p.Permissions = perms
	p.Source = source
	if expiresAt.Valid {
		t := expiresAt.Time
		p.ExpiresAt = &t
	}

	return &p, nil
}

type rowsScanner interface {
	scanner
	Next() bool
	Err() error
}

func scanAppPermissions(rows rowsScanner, source types.PermissionSource) ([]*types.AppPermission, error) {
	var out []*types.AppPermission
	for rows.Next() {
		p, err := scanAppPermission(rows, source)
		if err != nil {
			return nil, fmt.Errorf("failed to scan app permission: %w", err)
		}
		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating app permission rows: %w", err)
	}

	return out, nil
}
