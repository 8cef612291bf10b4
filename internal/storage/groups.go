// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/tenant-access/internal/types"
)

var groupColumns = []string{
	"g.id", "g.tenant_id", "g.name", "g.description", "g.member_count",
	"g.created_by", "g.created_at", "g.updated_at", "g.last_modified_by",
}

func scanGroup(row scanner) (*types.Group, error) {
	var g types.Group
	err := row.Scan(
		&g.ID, &g.TenantID, &g.Name, &g.Description, &g.MemberCount,
		&g.Metadata.CreatedBy, &g.Metadata.CreatedAt, &g.Metadata.UpdatedAt, &g.Metadata.LastModifiedBy,
	)
	if err != nil {
		return nil, err
	}
	g.Members = []string{}
	g.AppPermissions = []types.AppPermission{}
	return &g, nil
}

// CreateGroup inserts the group and its initial members.
func (s *Storage) CreateGroup(ctx context.Context, g *types.Group) (*types.Group, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateGroup")
	defer span.End()

	id := g.ID
	if id == "" {
		var err error
		if id, err = newID(); err != nil {
			return nil, fmt.Errorf("failed to generate group ID: %w", err)
		}
	}

	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		_, err := s.db.Statement(ctx).
			Insert("tenant_groups").
			Columns("id", "tenant_id", "name", "description", "created_by", "last_modified_by").
			Values(id, g.TenantID, g.Name, g.Description, g.Metadata.CreatedBy, g.Metadata.CreatedBy).
			ExecContext(ctx)
		if err != nil {
			return wrapError(err, "failed to insert group")
		}

		return s.addGroupMembers(ctx, id, g.Members, g.Metadata.CreatedBy)
	})
	if err != nil {
		return nil, err
	}

	return s.GetGroup(ctx, id)
}

// GetGroup loads a group with its members, in insertion order, and its app permissions.
func (s *Storage) GetGroup(ctx context.Context, id string) (*types.Group, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetGroup")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(groupColumns...).
		From("tenant_groups g").
		Where(sq.Eq{"g.id": id}).
		QueryRowContext(ctx)

	g, err := scanGroup(row)
	if err != nil {
		return nil, wrapError(err, "failed to get group")
	}

	if err := s.hydrateGroups(ctx, []*types.Group{g}); err != nil {
		return nil, err
	}

	return g, nil
}

// GroupNameExists reports whether the tenant already has a group called name.
func (s *Storage) GroupNameExists(ctx context.Context, tenantID, name string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GroupNameExists")
	defer span.End()

	var exists bool
	err := s.db.Statement(ctx).
		Select().
		Column(sq.Expr("EXISTS (SELECT 1 FROM tenant_groups WHERE tenant_id = ? AND name = ?)", tenantID, name)).
		QueryRowContext(ctx).
		Scan(&exists)
	if err != nil {
		return false, wrapError(err, "failed to check group name")
	}

	return exists, nil
}

func (s *Storage) ListGroups(ctx context.Context, tenantID string) ([]*types.Group, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListGroups")
	defer span.End()

	return s.listGroups(ctx, s.db.Statement(ctx).
		Select(groupColumns...).
		From("tenant_groups g").
		Where(sq.Eq{"g.tenant_id": tenantID}).
		OrderBy("g.name"),
	)
}

// ListUserGroups returns the groups of the tenant the user is a member of.
func (s *Storage) ListUserGroups(ctx context.Context, tenantID, userID string) ([]*types.Group, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUserGroups")
	defer span.End()

	return s.listGroups(ctx, s.db.Statement(ctx).
		Select(groupColumns...).
		From("tenant_groups g").
		Join("group_members gm ON gm.group_id = g.id").
		Where(sq.Eq{"g.tenant_id": tenantID, "gm.user_id": userID}).
		OrderBy("g.name"),
	)
}

func (s *Storage) listGroups(ctx context.Context, query sq.SelectBuilder) ([]*types.Group, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, wrapError(err, "failed to list groups")
	}
	defer rows.Close()

	groups := []*types.Group{}
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group rows: %w", err)
	}

	if err := s.hydrateGroups(ctx, groups); err != nil {
		return nil, err
	}

	return groups, nil
}

// hydrateGroups fills members and app permissions for a batch of groups with two queries.
func (s *Storage) hydrateGroups(ctx context.Context, groups []*types.Group) error {
	if len(groups) == 0 {
		return nil
	}

	byID := make(map[string]*types.Group, len(groups))
	ids := make([]string, 0, len(groups))
	for _, g := range groups {
		byID[g.ID] = g
		ids = append(ids, g.ID)
	}

	rows, err := s.db.Statement(ctx).
		Select("group_id", "user_id").
		From("group_members").
		Where(sq.Eq{"group_id": ids}).
		OrderBy("added_at", "user_id").
		QueryContext(ctx)
	if err != nil {
		return wrapError(err, "failed to list group members")
	}
	defer rows.Close()

	for rows.Next() {
		var groupID, userID string
		if err := rows.Scan(&groupID, &userID); err != nil {
			return fmt.Errorf("failed to scan group member: %w", err)
		}
		if g, ok := byID[groupID]; ok {
			g.Members = append(g.Members, userID)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating group member rows: %w", err)
	}

	permRows, err := s.db.Statement(ctx).
		Select("group_id", "app_id", "permissions", "granted_at", "granted_by", "expires_at").
		From("group_app_permissions").
		Where(sq.Eq{"group_id": ids}).
		OrderBy("app_id").
		QueryContext(ctx)
	if err != nil {
		return wrapError(err, "failed to list group permissions")
	}
	defer permRows.Close()

	perms, err := scanAppPermissions(permRows, types.SourceGroup)
	if err != nil {
		return err
	}
	for _, p := range perms {
		if g, ok := byID[p.SourceID]; ok {
			g.AppPermissions = append(g.AppPermissions, *p)
		}
	}

	return nil
}

// UpdateGroup changes name and description, nil fields are left untouched.
func (s *Storage) UpdateGroup(ctx context.Context, id string, name, description *string, modifiedBy string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateGroup")
	defer span.End()

	query := s.db.Statement(ctx).
		Update("tenant_groups").
		Set("updated_at", sq.Expr("NOW()")).
		Set("last_modified_by", modifiedBy).
		Where(sq.Eq{"id": id})

	if name != nil {
		query = query.Set("name", *name)
	}
	if description != nil {
		query = query.Set("description", *description)
	}

	res, err := query.ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to update group")
	}

	return expectAffected(res, "group")
}

// DeleteGroup removes the group, members and grants go with it through the cascade.
func (s *Storage) DeleteGroup(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteGroup")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("tenant_groups").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to delete group")
	}

	return expectAffected(res, "group")
}

// AddGroupMembers adds users not already in the group and recomputes member_count.
func (s *Storage) AddGroupMembers(ctx context.Context, groupID string, userIDs []string, modifiedBy string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddGroupMembers")
	defer span.End()

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		return s.addGroupMembers(ctx, groupID, userIDs, modifiedBy)
	})
}

func (s *Storage) addGroupMembers(ctx context.Context, groupID string, userIDs []string, modifiedBy string) error {
	if len(userIDs) > 0 {
		now := time.Now().UTC()
		insert := s.db.Statement(ctx).
			Insert("group_members").
			Columns("group_id", "user_id", "added_at")

		// added_at is offset per position so that ordering follows the request order
		for i, userID := range userIDs {
			insert = insert.Values(groupID, userID, now.Add(time.Duration(i)*time.Microsecond))
		}

		_, err := insert.Suffix("ON CONFLICT (group_id, user_id) DO NOTHING").ExecContext(ctx)
		if err != nil {
			if IsForeignKeyViolation(err) {
				return fmt.Errorf("group %s: %w", groupID, ErrNotFound)
			}
			return wrapError(err, "failed to add group members")
		}
	}

	return s.recountMembers(ctx, groupID, modifiedBy)
}

// RemoveGroupMembers removes exactly the listed users and recomputes member_count.
func (s *Storage) RemoveGroupMembers(ctx context.Context, groupID string, userIDs []string, modifiedBy string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveGroupMembers")
	defer span.End()

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		if len(userIDs) > 0 {
			_, err := s.db.Statement(ctx).
				Delete("group_members").
				Where(sq.Eq{"group_id": groupID, "user_id": userIDs}).
				ExecContext(ctx)
			if err != nil {
				return wrapError(err, "failed to remove group members")
			}
		}

		return s.recountMembers(ctx, groupID, modifiedBy)
	})
}

func (s *Storage) recountMembers(ctx context.Context, groupID, modifiedBy string) error {
	res, err := s.db.Statement(ctx).
		Update("tenant_groups").
		Set("member_count", sq.Expr("(SELECT COUNT(*) FROM group_members WHERE group_id = ?)", groupID)).
		Set("updated_at", sq.Expr("NOW()")).
		Set("last_modified_by", modifiedBy).
		Where(sq.Eq{"id": groupID}).
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to update member count")
	}

	return expectAffected(res, "group")
}

// ListGroupMembers returns the members of a group in the order they were added.
func (s *Storage) ListGroupMembers(ctx context.Context, groupID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListGroupMembers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("user_id").
		From("group_members").
		Where(sq.Eq{"group_id": groupID}).
		OrderBy("added_at", "user_id").
		QueryContext(ctx)
	if err != nil {
		return nil, wrapError(err, "failed to list group members")
	}
	defer rows.Close()

	members := []string{}
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		members = append(members, userID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group member rows: %w", err)
	}

	return members, nil
}

// ListMembersOfGroups expands a set of groups into the (user, tenant) pairs of their members.
func (s *Storage) ListMembersOfGroups(ctx context.Context, groupIDs []string) ([]types.UserTenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersOfGroups")
	defer span.End()

	if len(groupIDs) == 0 {
		return nil, nil
	}

	rows, err := s.db.Statement(ctx).
		Select("DISTINCT gm.user_id", "g.tenant_id").
		From("group_members gm").
		Join("tenant_groups g ON g.id = gm.group_id").
		Where(sq.Eq{"gm.group_id": groupIDs}).
		QueryContext(ctx)
	if err != nil {
		return nil, wrapError(err, "failed to list members of groups")
	}
	defer rows.Close()

	var out []types.UserTenant
	for rows.Next() {
		var k types.UserTenant
		if err := rows.Scan(&k.UserID, &k.TenantID); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		out = append(out, k)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group member rows: %w", err)
	}

	return out, nil
}

// ListGroupPermissionsForUser returns the grants of every group the user belongs to in the tenant.
// Group membership only counts while the user is an active member of the tenant.
func (s *Storage) ListGroupPermissionsForUser(ctx context.Context, tenantID, userID string) ([]*types.AppPermission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListGroupPermissionsForUser")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("p.group_id", "p.app_id", "p.permissions", "p.granted_at", "p.granted_by", "p.expires_at").
		From("group_app_permissions p").
		Join("group_members gm ON gm.group_id = p.group_id").
		Join("tenant_groups g ON g.id = p.group_id").
		Join("tenant_memberships tm ON tm.tenant_id = g.tenant_id AND tm.user_id = gm.user_id").
		Where(sq.Eq{"g.tenant_id": tenantID, "gm.user_id": userID, "tm.status": types.MembershipActive}).
		OrderBy("p.app_id").
		QueryContext(ctx)
	if err != nil {
		return nil, wrapError(err, "failed to list group permissions")
	}
	defer rows.Close()

	return scanAppPermissions(rows, types.SourceGroup)
}

// UpsertGroupPermission replaces the group's grant for the app in a single statement.
func (s *Storage) UpsertGroupPermission(ctx context.Context, groupID string, p *types.AppPermission) (*types.AppPermission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertGroupPermission")
	defer span.End()

	out, err := s.upsertAppPermission(ctx, "group_app_permissions", "group_id", groupID, types.SourceGroup, p)
	if errors.Is(err, ErrForeignKeyViolation) {
		return nil, fmt.Errorf("group %s: %w", groupID, ErrNotFound)
	}
	return out, err
}

func (s *Storage) DeleteGroupPermission(ctx context.Context, groupID, appID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteGroupPermission")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("group_app_permissions").
		Where(sq.Eq{"group_id": groupID, "app_id": appID}).
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to delete group permission")
	}

	return expectAffected(res, "group permission")
}

// DeleteExpiredGroupPermissions removes up to limit group grants expired at now.
func (s *Storage) DeleteExpiredGroupPermissions(ctx context.Context, now time.Time, limit uint64) ([]*types.ExpiredGrant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteExpiredGroupPermissions")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Delete("group_app_permissions").
		Where(sq.Expr(
			"(group_id, app_id) IN (SELECT group_id, app_id FROM group_app_permissions WHERE expires_at <= ? ORDER BY expires_at LIMIT ? FOR UPDATE SKIP LOCKED)",
			now, limit,
		)).
		Suffix("RETURNING group_id, app_id, " +
			"(SELECT g.tenant_id FROM tenant_groups g WHERE g.id = group_app_permissions.group_id)").
		QueryContext(ctx)
	if err != nil {
		return nil, wrapError(err, "failed to delete expired group permissions")
	}
	defer rows.Close()

	var out []*types.ExpiredGrant
	for rows.Next() {
		g := types.ExpiredGrant{Source: types.SourceGroup}
		if err := rows.Scan(&g.SourceID, &g.AppID, &g.TenantID); err != nil {
			return nil, fmt.Errorf("failed to scan expired group permission: %w", err)
		}
		out = append(out, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expired group permission rows: %w", err)
	}

	return out, nil
}
