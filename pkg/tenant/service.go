// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"fmt"
	"regexp"
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

const (
	maxNameLength = 128
	// postgres identifiers stop at 63 bytes and the dedicated database name carries a prefix
	maxSlugLength = 63 - len(types.DedicatedDatabasePrefix)
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

var statuses = map[types.TenantStatus]struct{}{
	types.TenantStatusActive:    {},
	types.TenantStatusTrialing:  {},
	types.TenantStatusPastDue:   {},
	types.TenantStatusSuspended: {},
	types.TenantStatusCanceled:  {},
}

var roles = map[types.Role]struct{}{
	types.RoleOwner:  {},
	types.RoleAdmin:  {},
	types.RoleMember: {},
	types.RoleViewer: {},
}

type Service struct {
	storage     StorageInterface
	tx          TxInterface
	provisioner ProvisionerInterface
	invalidator InvalidatorInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateTenant registers a tenant on the data plane its plan calls for.
// Dedicated databases are provisioned before the tenant row exists so a routed tenant always has
// a database to land on. A non nil owner becomes a member holding every system permission.
func (s *Service) CreateTenant(ctx context.Context, name, slug string, plan types.Plan, owner *types.User) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameLength {
		return nil, types.NewValidationError(fmt.Sprintf("name must be between 1 and %d characters", maxNameLength))
	}

	if err := validateSlug(slug); err != nil {
		return nil, err
	}

	if !plan.Valid() {
		return nil, types.NewValidationError(fmt.Sprintf("unknown plan %q", plan))
	}

	if owner != nil {
		if err := validateUser(owner); err != nil {
			return nil, err
		}
	}

	_, err := s.storage.GetTenantBySlug(ctx, slug)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: tenant %s already exists", types.ErrConflict, slug)
	case !errors.Is(err, storage.ErrNotFound):
		return nil, fmt.Errorf("failed to check tenant slug: %w", err)
	}

	if dp := types.DataPlaneFor(plan, slug); dp.Type == types.DataPlaneDedicated {
		if _, err := s.provisioner.EnsureDatabase(ctx, dp.Database); err != nil {
			return nil, fmt.Errorf("failed to provision dedicated database %s: %w", dp.Database, err)
		}
	}

	var created *types.Tenant

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.storage.CreateTenant(ctx, &types.Tenant{Name: name, Slug: slug, Plan: plan})
		if errors.Is(err, storage.ErrDuplicateKey) {
			return fmt.Errorf("%w: tenant %s already exists", types.ErrConflict, slug)
		}
		if err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		if owner == nil {
			return nil
		}

		_, err = s.addMember(ctx, created.ID, owner, types.RoleOwner, permissions.SystemAppID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(permissions.SystemAppID, "create_tenant", "tenant:"+created.ID)
	s.logger.Infof("created tenant %s on the %s data plane", created.Slug, created.DataPlane.Type)

	return created, nil
}

// GetTenant looks a tenant up by id, falling back to its slug.
func (s *Service) GetTenant(ctx context.Context, ref string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	t, err := s.storage.GetTenantByID(ctx, ref)
	if errors.Is(err, storage.ErrNotFound) {
		t, err = s.storage.GetTenantBySlug(ctx, ref)
	}
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", types.ErrTenantNotFound, ref)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

// GetTenantForMember returns the tenant only to its members, everybody else gets ErrTenantNotFound.
func (s *Service) GetTenantForMember(ctx context.Context, tenantID, userID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenantForMember")
	defer span.End()

	t, err := s.tenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	_, err = s.storage.GetMembership(ctx, tenantID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", types.ErrTenantNotFound, tenantID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return t, nil
}

func (s *Service) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	tenants, err := s.storage.ListTenants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	return tenants, nil
}

func (s *Service) UpdateTenantStatus(ctx context.Context, tenantID string, status types.TenantStatus, actor string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateTenantStatus")
	defer span.End()

	if _, ok := statuses[status]; !ok {
		return types.NewValidationError(fmt.Sprintf("unknown tenant status %q", status))
	}

	err := s.storage.UpdateTenantStatus(ctx, tenantID, status)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", types.ErrTenantNotFound, tenantID)
	}
	if err != nil {
		return fmt.Errorf("failed to update tenant status: %w", err)
	}

	s.logger.Security().AdminAction(actor, "update_tenant_status", "tenant:"+tenantID+":"+string(status))

	return nil
}

// ChangePlan moves the tenant to another plan. An upgrade to a dedicated plan leaves the data where
// it is until the data plane migration runs; a dedicated tenant cannot move back to a shared plan.
func (s *Service) ChangePlan(ctx context.Context, tenantID string, plan types.Plan, actor string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ChangePlan")
	defer span.End()

	if !plan.Valid() {
		return nil, types.NewValidationError(fmt.Sprintf("unknown plan %q", plan))
	}

	t, err := s.tenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if t.Plan == plan {
		return t, nil
	}

	if t.DataPlane.Type == types.DataPlaneDedicated && !plan.RequiresDedicated() {
		return nil, types.NewValidationError("a tenant on a dedicated data plane cannot move to a shared plan")
	}

	err = s.storage.UpdateTenantPlan(ctx, tenantID, plan)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", types.ErrTenantNotFound, tenantID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update tenant plan: %w", err)
	}

	s.logger.Security().AdminAction(actor, "change_tenant_plan", "tenant:"+tenantID+":"+string(plan))

	if plan.RequiresDedicated() && t.DataPlane.Type == types.DataPlaneShared {
		s.logger.Infof("tenant %s moved to plan %s and needs a data plane migration to %s", t.Slug, plan, types.DedicatedDatabaseName(t.Slug))
	}

	t.Plan = plan

	return t, nil
}

// AddMember upserts the user and makes it a member of the tenant with role.
// Owners also receive every system permission.
func (s *Service) AddMember(ctx context.Context, tenantID string, user *types.User, role types.Role, actor string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.AddMember")
	defer span.End()

	if role == "" {
		role = types.RoleMember
	}
	if _, ok := roles[role]; !ok {
		return nil, types.NewValidationError(fmt.Sprintf("unknown role %q", role))
	}

	if err := validateUser(user); err != nil {
		return nil, err
	}

	var m *types.Membership

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.tenant(ctx, tenantID); err != nil {
			return err
		}

		var err error
		m, err = s.addMember(ctx, tenantID, user, role, actor)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(actor, "add_member", "tenant:"+tenantID+":user:"+user.ID+":"+string(role))

	return m, nil
}

func (s *Service) ListMembers(ctx context.Context, tenantID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListMembers")
	defer span.End()

	if _, err := s.tenant(ctx, tenantID); err != nil {
		return nil, err
	}

	members, err := s.storage.ListMemberships(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return members, nil
}

// SetEntitlement enables or disables an app for the tenant. Disabling blocks new assignments only,
// existing grants stay effective until revoked or expired.
func (s *Service) SetEntitlement(ctx context.Context, e *types.Entitlement, actor string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetEntitlement")
	defer span.End()

	e.AppID = strings.TrimSpace(e.AppID)
	if e.AppID == "" {
		return types.NewValidationError("app id is required")
	}
	if e.AppID == permissions.SystemAppID {
		return types.NewValidationError("the system app cannot be entitled")
	}

	if _, err := s.tenant(ctx, e.TenantID); err != nil {
		return err
	}

	if err := s.storage.UpsertTenantEntitlement(ctx, e); err != nil {
		return fmt.Errorf("failed to set entitlement: %w", err)
	}

	s.logger.Security().AdminAction(actor, "set_entitlement", fmt.Sprintf("tenant:%s:app:%s:enabled:%t", e.TenantID, e.AppID, e.Enabled))

	return nil
}

func (s *Service) ListEntitlements(ctx context.Context, tenantID string) ([]*types.Entitlement, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListEntitlements")
	defer span.End()

	if _, err := s.tenant(ctx, tenantID); err != nil {
		return nil, err
	}

	entitlements, err := s.storage.ListTenantEntitlements(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entitlements: %w", err)
	}

	return entitlements, nil
}

func (s *Service) tenant(ctx context.Context, tenantID string) (*types.Tenant, error) {
	t, err := s.storage.GetTenantByID(ctx, tenantID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", types.ErrTenantNotFound, tenantID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

// addMember must run inside a transaction.
func (s *Service) addMember(ctx context.Context, tenantID string, user *types.User, role types.Role, grantedBy string) (*types.Membership, error) {
	if _, err := s.storage.UpsertUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	m, err := s.storage.AddMembership(ctx, tenantID, user.ID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to add membership: %w", err)
	}

	if role != types.RoleOwner {
		return m, nil
	}

	grant := &types.AppPermission{
		AppID:       permissions.SystemAppID,
		Permissions: permissions.SystemPermissions,
		GrantedAt:   s.now().UTC(),
		GrantedBy:   grantedBy,
	}
	if _, err := s.storage.UpsertDirectPermission(ctx, m.ID, grant); err != nil {
		return nil, fmt.Errorf("failed to grant owner permissions: %w", err)
	}

	keys := []types.UserTenant{{UserID: user.ID, TenantID: tenantID}}
	detached := context.WithoutCancel(ctx)
	db.OnCommit(ctx, func() {
		if err := s.invalidator.InvalidateUsers(detached, keys); err != nil {
			s.logger.Warnf("failed to invalidate cached permissions of %s in tenant %s: %v", user.ID, tenantID, err)
		}
	})

	return m, nil
}

func validateSlug(slug string) error {
	if len(slug) == 0 || len(slug) > maxSlugLength || !slugPattern.MatchString(slug) {
		return types.NewValidationError(
			fmt.Sprintf("slug must be 1 to %d lowercase letters, digits or inner dashes", maxSlugLength),
		)
	}
	return nil
}

func validateUser(u *types.User) error {
	if u == nil || strings.TrimSpace(u.ID) == "" {
		return types.NewValidationError("user id is required")
	}
	if !strings.Contains(u.Email, "@") {
		return types.NewValidationError("a valid user email is required")
	}
	return nil
}

func NewService(
	storage StorageInterface,
	tx TxInterface,
	provisioner ProvisionerInterface,
	invalidator InvalidatorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:     storage,
		tx:          tx,
		provisioner: provisioner,
		invalidator: invalidator,
		now:         time.Now,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}
