// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/tenant-access/internal/http/types"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/types"
	"github.com/canonical/tenant-access/pkg/authentication"
	"github.com/canonical/tenant-access/pkg/permissions"
)

// AddMemberRequest invites a user into the tenant. Owners are only created by operators.
type AddMemberRequest struct {
	UserID string `json:"user_id" validate:"required,max=255"`
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"omitempty,oneof=admin member viewer"`
}

type API struct {
	service   ServiceInterface
	authz     AuthorizerInterface
	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/tenants/{tenant}", a.getTenant)

	mux.Group(func(r chi.Router) {
		r.Use(a.authz.Require(permissions.PermissionInviteUsers))

		r.Get("/api/v0/tenants/{tenant}/members", a.listMembers)
		r.Post("/api/v0/tenants/{tenant}/members", a.addMember)
	})

	mux.Group(func(r chi.Router) {
		r.Use(a.authz.Require(permissions.PermissionAssignApps))

		r.Get("/api/v0/tenants/{tenant}/entitlements", a.listEntitlements)
	})
}

func (a *API) getTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.getTenant")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorMessage(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	t, err := a.service.GetTenantForMember(ctx, chi.URLParam(r, "tenant"), userID)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, t, "tenant")
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listMembers")
	defer span.End()

	members, err := a.service.ListMembers(ctx, chi.URLParam(r, "tenant"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, members, "members")
}

func (a *API) addMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.addMember")
	defer span.End()

	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validator.Struct(req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	actor, _ := authentication.GetUserID(ctx)

	m, err := a.service.AddMember(
		ctx,
		chi.URLParam(r, "tenant"),
		&types.User{ID: req.UserID, Email: req.Email},
		types.Role(req.Role),
		actor,
	)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, m, "member added")
}

func (a *API) listEntitlements(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listEntitlements")
	defer span.End()

	entitlements, err := a.service.ListEntitlements(ctx, chi.URLParam(r, "tenant"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, entitlements, "entitlements")
}

func NewAPI(
	service ServiceInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:   service,
		authz:     authz,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
