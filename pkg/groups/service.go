// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package groups

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/tenant-access/internal/db"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/storage"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/types"
)

const maxGroupNameLength = 128

type Service struct {
	storage     StorageInterface
	tx          TxInterface
	invalidator InvalidatorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateGroup creates a group with an empty permission list and the given initial members.
func (s *Service) CreateGroup(ctx context.Context, tenantID, name, description string, members []string, createdBy string) (*types.Group, error) {
	ctx, span := s.tracer.Start(ctx, "groups.Service.CreateGroup")
	defer span.End()

	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	members, err := normalizeMembers(members)
	if err != nil {
		return nil, err
	}

	exists, err := s.storage.GroupNameExists(ctx, tenantID, name)
	if err != nil {
		return nil, s.mapError(err, "failed to check group name")
	}
	if exists {
		return nil, fmt.Errorf("%w: group %q already exists in tenant %s", types.ErrConflict, name, tenantID)
	}

	if err := s.requireMembers(ctx, tenantID, members); err != nil {
		return nil, err
	}

	g, err := s.storage.CreateGroup(ctx, &types.Group{
		TenantID:    tenantID,
		Name:        name,
		Description: description,
		Members:     members,
		Metadata:    types.GroupMetadata{CreatedBy: createdBy},
	})
	switch {
	case errors.Is(err, storage.ErrDuplicateKey):
		// lost the race against a concurrent create with the same name
		return nil, fmt.Errorf("%w: group %q already exists in tenant %s", types.ErrConflict, name, tenantID)
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return nil, fmt.Errorf("%w: %s", types.ErrTenantNotFound, tenantID)
	case err != nil:
		return nil, s.mapError(err, "failed to create group")
	}

	s.logger.Security().AdminAction(createdBy, "create_group", "group:"+g.ID)

	return g, nil
}

func (s *Service) GetGroup(ctx context.Context, tenantID, groupID string) (*types.Group, error) {
	ctx, span := s.tracer.Start(ctx, "groups.Service.GetGroup")
	defer span.End()

	return s.getGroup(ctx, tenantID, groupID)
}

func (s *Service) ListGroups(ctx context.Context, tenantID string) ([]*types.Group, error) {
	ctx, span := s.tracer.Start(ctx, "groups.Service.ListGroups")
	defer span.End()

	groups, err := s.storage.ListGroups(ctx, tenantID)
	if err != nil {
		return nil, s.mapError(err, "failed to list groups")
	}

	return groups, nil
}

// ListUserGroups returns the groups the user belongs to in the tenant.
// It is computed from the member table, so deleted groups and removed members never show up.
func (s *Service) ListUserGroups(ctx context.Context, tenantID, userID string) ([]*types.Group, error) {
	ctx, span := s.tracer.Start(ctx, "groups.Service.ListUserGroups")
	defer span.End()

	groups, err := s.storage.ListUserGroups(ctx, tenantID, userID)
	if err != nil {
		return nil, s.mapError(err, "failed to list user groups")
	}

	return groups, nil
}

func (s *Service) UpdateGroup(ctx context.Context, tenantID, groupID string, name, description *string, modifiedBy string) (*types.Group, error) {
	ctx, span := s.tracer.Start(ctx, "groups.Service.UpdateGroup")
	defer span.End()

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if err := validateName(trimmed); err != nil {
			return nil, err
		}
		name = &trimmed
	}

	var updated *types.Group

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		g, err := s.getGroup(ctx, tenantID, groupID)
		if err != nil {
			return err
		}

		if name != nil && *name != g.Name {
			exists, err := s.storage.GroupNameExists(ctx, tenantID, *name)
			if err != nil {
				return s.mapError(err, "failed to check group name")
			}
			if exists {
				return fmt.Errorf("%w: group %q already exists in tenant %s", types.ErrConflict, *name, tenantID)
			}
		}

		if err := s.storage.UpdateGroup(ctx, groupID, name, description, modifiedBy); err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				return fmt.Errorf("%w: group name already taken in tenant %s", types.ErrConflict, tenantID)
			}
			return s.mapError(err, "failed to update group")
		}

		updated, err = s.getGroup(ctx, tenantID, groupID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteGroup removes the group, its members and its grants.
// Former members have their cached permissions dropped once the deletion is committed.
func (s *Service) DeleteGroup(ctx context.Context, tenantID, groupID string) error {
	ctx, span := s.tracer.Start(ctx, "groups.Service.DeleteGroup")
	defer span.End()

	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		g, err := s.getGroup(ctx, tenantID, groupID)
		if err != nil {
			return err
		}

		if err := s.storage.DeleteGroup(ctx, groupID); err != nil {
			return s.mapError(err, "failed to delete group")
		}

		s.invalidateOnCommit(ctx, tenantID, g.Members)

		return nil
	})
}

// AddMembers adds users to the group, users already in it are left untouched.
func (s *Service) AddMembers(ctx context.Context, tenantID, groupID string, userIDs []string, modifiedBy string) (*types.Group, error) {
	ctx, span := s.tracer.Start(ctx, "groups.Service.AddMembers")
	defer span.End()

	userIDs, err := normalizeMembers(userIDs)
	if err != nil {
		return nil, err
	}
	if len(userIDs) == 0 {
		return nil, types.NewValidationError("no members given")
	}

	return s.updateMembers(ctx, tenantID, groupID, userIDs, func(ctx context.Context) error {
		if err := s.requireMembers(ctx, tenantID, userIDs); err != nil {
			return err
		}
		return s.storage.AddGroupMembers(ctx, groupID, userIDs, modifiedBy)
	})
}

// RemoveMembers removes exactly the given users from the group.
func (s *Service) RemoveMembers(ctx context.Context, tenantID, groupID string, userIDs []string, modifiedBy string) (*types.Group, error) {
	ctx, span := s.tracer.Start(ctx, "groups.Service.RemoveMembers")
	defer span.End()

	userIDs, err := normalizeMembers(userIDs)
	if err != nil {
		return nil, err
	}
	if len(userIDs) == 0 {
		return nil, types.NewValidationError("no members given")
	}

	return s.updateMembers(ctx, tenantID, groupID, userIDs, func(ctx context.Context) error {
		return s.storage.RemoveGroupMembers(ctx, groupID, userIDs, modifiedBy)
	})
}

func (s *Service) updateMembers(ctx context.Context, tenantID, groupID string, userIDs []string, mutate func(context.Context) error) (*types.Group, error) {
	var updated *types.Group

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.getGroup(ctx, tenantID, groupID); err != nil {
			return err
		}

		if err := mutate(ctx); err != nil {
			return s.mapError(err, "failed to update group members")
		}

		s.invalidateOnCommit(ctx, tenantID, userIDs)

		var err error
		updated, err = s.getGroup(ctx, tenantID, groupID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// requireMembers rejects users without an active membership in the tenant.
func (s *Service) requireMembers(ctx context.Context, tenantID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}

	active, err := s.storage.ListActiveMemberIDs(ctx, tenantID, userIDs)
	if err != nil {
		return s.mapError(err, "failed to check tenant members")
	}

	known := make(map[string]struct{}, len(active))
	for _, u := range active {
		known[u] = struct{}{}
	}

	var missing []string
	for _, u := range userIDs {
		if _, ok := known[u]; !ok {
			missing = append(missing, u)
		}
	}

	if len(missing) > 0 {
		return types.NewValidationError(fmt.Sprintf("not active members of tenant %s: %s", tenantID, strings.Join(missing, ", ")))
	}

	return nil
}

// getGroup loads the group and hides groups that belong to another tenant.
func (s *Service) getGroup(ctx context.Context, tenantID, groupID string) (*types.Group, error) {
	g, err := s.storage.GetGroup(ctx, groupID)
	if err != nil {
		return nil, s.mapError(err, "failed to get group")
	}

	if g.TenantID != tenantID {
		return nil, fmt.Errorf("%w: %s", types.ErrGroupNotFound, groupID)
	}

	return g, nil
}

func (s *Service) invalidateOnCommit(ctx context.Context, tenantID string, userIDs []string) {
	if len(userIDs) == 0 {
		return
	}

	keys := make([]types.UserTenant, 0, len(userIDs))
	for _, u := range userIDs {
		keys = append(keys, types.UserTenant{UserID: u, TenantID: tenantID})
	}

	detached := context.WithoutCancel(ctx)
	db.OnCommit(ctx, func() {
		if err := s.invalidator.InvalidateUsers(detached, keys); err != nil {
			s.logger.Warnf("failed to invalidate cached permissions in tenant %s: %v", tenantID, err)
		}
	})
}

func (s *Service) mapError(err error, msg string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %w", types.ErrGroupNotFound, err)
	case errors.Is(err, types.ErrNotFound), errors.Is(err, types.ErrConflict), errors.Is(err, types.ErrValidation), errors.Is(err, types.ErrStoreUnavailable):
		return err
	}

	s.logger.Errorf("%s: %v", msg, err)
	return fmt.Errorf("%s: %w", msg, err)
}

func validateName(name string) error {
	if name == "" {
		return types.NewValidationError("group name is required")
	}
	if len(name) > maxGroupNameLength {
		return types.NewValidationError(fmt.Sprintf("group name is longer than %d characters", maxGroupNameLength))
	}
	return nil
}

// normalizeMembers drops duplicates while keeping the first occurrence order.
func normalizeMembers(userIDs []string) ([]string, error) {
	seen := make(map[string]struct{}, len(userIDs))
	out := make([]string, 0, len(userIDs))

	for _, u := range userIDs {
		u = strings.TrimSpace(u)
		if u == "" {
			return nil, types.NewValidationError("member ids must not be empty")
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}

	return out, nil
}

func NewService(
	storage StorageInterface,
	tx TxInterface,
	invalidator InvalidatorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:     storage,
		tx:          tx,
		invalidator: invalidator,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}
