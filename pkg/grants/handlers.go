// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package grants

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/tenant-access/internal/http/types"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/pkg/authentication"
	"github.com/canonical/tenant-access/pkg/permissions"
)

// AssignRequest replaces the grant of an app. Permission strings are checked by the service
// so that the response can list the invalid ones.
type AssignRequest struct {
	Permissions []string   `json:"permissions" validate:"required"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
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
	mux.Group(func(r chi.Router) {
		r.Use(a.authz.Require(permissions.PermissionAssignApps))

		r.Put("/api/v0/tenants/{tenant}/groups/{group}/apps/{app}", a.assignGroup)
		r.Delete("/api/v0/tenants/{tenant}/groups/{group}/apps/{app}", a.revokeGroup)
		r.Get("/api/v0/tenants/{tenant}/users/{user}/apps", a.listDirect)
		r.Put("/api/v0/tenants/{tenant}/users/{user}/apps/{app}", a.assignDirect)
		r.Delete("/api/v0/tenants/{tenant}/users/{user}/apps/{app}", a.revokeDirect)
	})
}

func (a *API) assignGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "grants.API.assignGroup")
	defer span.End()

	var req AssignRequest
	if !a.decode(w, r, &req) {
		return
	}

	actor, _ := authentication.GetUserID(ctx)

	grant, err := a.service.AssignGroupPermission(
		ctx,
		chi.URLParam(r, "tenant"), chi.URLParam(r, "group"), chi.URLParam(r, "app"),
		req.Permissions, actor, req.ExpiresAt,
	)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, grant, "group permission assigned")
}

func (a *API) revokeGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "grants.API.revokeGroup")
	defer span.End()

	err := a.service.RevokeGroupPermission(ctx, chi.URLParam(r, "tenant"), chi.URLParam(r, "group"), chi.URLParam(r, "app"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, nil, "group permission revoked")
}

func (a *API) listDirect(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "grants.API.listDirect")
	defer span.End()

	grants, err := a.service.ListDirectPermissions(ctx, chi.URLParam(r, "tenant"), chi.URLParam(r, "user"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, grants, "direct permissions")
}

func (a *API) assignDirect(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "grants.API.assignDirect")
	defer span.End()

	var req AssignRequest
	if !a.decode(w, r, &req) {
		return
	}

	actor, _ := authentication.GetUserID(ctx)

	grant, err := a.service.AssignDirectPermission(
		ctx,
		chi.URLParam(r, "tenant"), chi.URLParam(r, "user"), chi.URLParam(r, "app"),
		req.Permissions, actor, req.ExpiresAt,
	)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, grant, "direct permission assigned")
}

func (a *API) revokeDirect(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "grants.API.revokeDirect")
	defer span.End()

	err := a.service.RevokeDirectPermission(ctx, chi.URLParam(r, "tenant"), chi.URLParam(r, "user"), chi.URLParam(r, "app"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, nil, "direct permission revoked")
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		httptypes.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := a.validator.Struct(v); err != nil {
		httptypes.WriteError(w, err)
		return false
	}

	return true
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
