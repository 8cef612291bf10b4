// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package grants

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/tenant-access/internal/db"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/storage"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/types"
	"github.com/canonical/tenant-access/pkg/permissions"
)

type Service struct {
	storage     StorageInterface
	tx          TxInterface
	scheduler   SchedulerInterface
	invalidator InvalidatorInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// AssignGroupPermission replaces the group's grant for appID.
// Every current member gets expiry reminders and loses its cached permissions once committed.
func (s *Service) AssignGroupPermission(
	ctx context.Context,
	tenantID, groupID, appID string,
	perms []string,
	grantedBy string,
	expiresAt *time.Time,
) (*types.AppPermission, error) {
	ctx, span := s.tracer.Start(ctx, "grants.Service.AssignGroupPermission")
	defer span.End()

	grant, err := s.newGrant(appID, perms, grantedBy, expiresAt)
	if err != nil {
		return nil, err
	}

	var saved *types.AppPermission

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.checkGroup(ctx, tenantID, groupID); err != nil {
			return err
		}

		if err := s.checkEntitlement(ctx, tenantID, grant.AppID); err != nil {
			return err
		}

		var err error
		saved, err = s.storage.UpsertGroupPermission(ctx, groupID, grant)
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: %s", types.ErrGroupNotFound, groupID)
		}
		if err != nil {
			return fmt.Errorf("failed to assign group permission: %w", err)
		}

		members, err := s.storage.ListGroupMembers(ctx, groupID)
		if err != nil {
			return fmt.Errorf("failed to list group members: %w", err)
		}

		if _, err := s.scheduler.Schedule(ctx, tenantID, saved, members); err != nil {
			return err
		}

		s.invalidateOnCommit(ctx, tenantID, members...)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(grantedBy, "assign_group_permission", "group:"+groupID+":app:"+grant.AppID)

	return saved, nil
}

// AssignDirectPermission replaces the direct grant for appID on the user's membership in the tenant.
func (s *Service) AssignDirectPermission(
	ctx context.Context,
	tenantID, userID, appID string,
	perms []string,
	grantedBy string,
	expiresAt *time.Time,
) (*types.AppPermission, error) {
	ctx, span := s.tracer.Start(ctx, "grants.Service.AssignDirectPermission")
	defer span.End()

	grant, err := s.newGrant(appID, perms, grantedBy, expiresAt)
	if err != nil {
		return nil, err
	}

	var saved *types.AppPermission

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		m, err := s.membership(ctx, tenantID, userID)
		if err != nil {
			return err
		}

		if err := s.checkEntitlement(ctx, tenantID, grant.AppID); err != nil {
			return err
		}

		saved, err = s.storage.UpsertDirectPermission(ctx, m.ID, grant)
		if err != nil {
			return fmt.Errorf("failed to assign direct permission: %w", err)
		}

		if _, err := s.scheduler.Schedule(ctx, tenantID, saved, []string{userID}); err != nil {
			return err
		}

		s.invalidateOnCommit(ctx, tenantID, userID)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(grantedBy, "assign_direct_permission", "user:"+userID+":app:"+grant.AppID)

	return saved, nil
}

func (s *Service) RevokeGroupPermission(ctx context.Context, tenantID, groupID, appID string) error {
	ctx, span := s.tracer.Start(ctx, "grants.Service.RevokeGroupPermission")
	defer span.End()

	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.checkGroup(ctx, tenantID, groupID); err != nil {
			return err
		}

		err := s.storage.DeleteGroupPermission(ctx, groupID, appID)
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: app %s on group %s", types.ErrGrantNotFound, appID, groupID)
		}
		if err != nil {
			return fmt.Errorf("failed to revoke group permission: %w", err)
		}

		members, err := s.storage.ListGroupMembers(ctx, groupID)
		if err != nil {
			return fmt.Errorf("failed to list group members: %w", err)
		}

		s.invalidateOnCommit(ctx, tenantID, members...)

		return nil
	})
}

func (s *Service) RevokeDirectPermission(ctx context.Context, tenantID, userID, appID string) error {
	ctx, span := s.tracer.Start(ctx, "grants.Service.RevokeDirectPermission")
	defer span.End()

	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		m, err := s.membership(ctx, tenantID, userID)
		if err != nil {
			return err
		}

		err = s.storage.DeleteDirectPermission(ctx, m.ID, appID)
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: app %s for user %s", types.ErrGrantNotFound, appID, userID)
		}
		if err != nil {
			return fmt.Errorf("failed to revoke direct permission: %w", err)
		}

		s.invalidateOnCommit(ctx, tenantID, userID)

		return nil
	})
}

// ListDirectPermissions returns the direct grants of the user in the tenant, expired ones not yet swept included.
func (s *Service) ListDirectPermissions(ctx context.Context, tenantID, userID string) ([]*types.AppPermission, error) {
	ctx, span := s.tracer.Start(ctx, "grants.Service.ListDirectPermissions")
	defer span.End()

	if _, err := s.membership(ctx, tenantID, userID); err != nil {
		return nil, err
	}

	grants, err := s.storage.ListDirectPermissions(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list direct permissions: %w", err)
	}

	return grants, nil
}

// newGrant validates the assignment input, nothing reaches the store when it fails.
func (s *Service) newGrant(appID string, perms []string, grantedBy string, expiresAt *time.Time) (*types.AppPermission, error) {
	appID = strings.TrimSpace(appID)
	if appID == "" {
		return nil, types.NewValidationError("app id is required")
	}

	valid, err := permissions.CheckAssignable(perms)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if expiresAt != nil && !expiresAt.After(now) {
		return nil, types.NewValidationError("expires_at must be in the future")
	}

	return &types.AppPermission{
		AppID:       appID,
		Permissions: valid,
		GrantedAt:   now,
		GrantedBy:   grantedBy,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *Service) checkGroup(ctx context.Context, tenantID, groupID string) error {
	g, err := s.storage.GetGroup(ctx, groupID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", types.ErrGroupNotFound, groupID)
	}
	if err != nil {
		return fmt.Errorf("failed to get group: %w", err)
	}

	if g.TenantID != tenantID {
		return fmt.Errorf("%w: %s", types.ErrGroupNotFound, groupID)
	}

	return nil
}

func (s *Service) membership(ctx context.Context, tenantID, userID string) (*types.Membership, error) {
	m, err := s.storage.GetMembership(ctx, tenantID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: user %s in tenant %s", types.ErrMembershipNotFound, userID, tenantID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return m, nil
}

// checkEntitlement rejects apps the tenant holds a disabled entitlement for.
// Apps without an entitlement row are not restricted.
func (s *Service) checkEntitlement(ctx context.Context, tenantID, appID string) error {
	e, err := s.storage.GetTenantEntitlement(ctx, tenantID, appID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check entitlement: %w", err)
	}

	if !e.Enabled {
		return types.NewValidationError(fmt.Sprintf("app %s is not enabled for this tenant", appID))
	}

	return nil
}

func (s *Service) invalidateOnCommit(ctx context.Context, tenantID string, userIDs ...string) {
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

func NewService(
	storage StorageInterface,
	tx TxInterface,
	scheduler SchedulerInterface,
	invalidator InvalidatorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:     storage,
		tx:          tx,
		scheduler:   scheduler,
		invalidator: invalidator,
		now:         time.Now,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}
