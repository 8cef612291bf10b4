// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/tenant-access/internal/http/types"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/pkg/authentication"
)

type CheckRequest struct {
	AppID       string   `json:"app_id" validate:"required"`
	Permissions []string `json:"permissions" validate:"required,min=1,dive,required"`
	// Mode is "all" unless set to "any"
	Mode string `json:"mode" validate:"omitempty,oneof=any all"`
}

type CheckResponse struct {
	AppID       string   `json:"app_id"`
	Permissions []string `json:"permissions"`
	Mode        string   `json:"mode"`
	Allowed     bool     `json:"allowed"`
}

type API struct {
	service   ServiceInterface
	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/tenants/{tenant}/permissions/me", a.me)
	mux.Get("/api/v0/tenants/{tenant}/permissions/me/apps", a.myApps)
	mux.Post("/api/v0/tenants/{tenant}/permissions/check", a.check)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "permissions.API.me")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorMessage(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	perms := a.service.Resolve(ctx, userID, chi.URLParam(r, "tenant"))

	httptypes.WriteData(w, http.StatusOK, perms.Map(), "effective permissions")
}

func (a *API) myApps(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "permissions.API.myApps")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorMessage(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	apps := a.service.AccessibleApps(ctx, userID, chi.URLParam(r, "tenant"))

	httptypes.WriteData(w, http.StatusOK, apps, "accessible apps")
}

func (a *API) check(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "permissions.API.check")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorMessage(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validator.Struct(req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	if req.Mode == "" {
		req.Mode = "all"
	}

	tenantID := chi.URLParam(r, "tenant")

	var allowed bool
	if req.Mode == "any" {
		allowed = a.service.HasAnyPermission(ctx, userID, tenantID, req.AppID, req.Permissions)
	} else {
		allowed = a.service.HasAllPermissions(ctx, userID, tenantID, req.AppID, req.Permissions)
	}

	httptypes.WriteData(w, http.StatusOK, CheckResponse{
		AppID:       req.AppID,
		Permissions: req.Permissions,
		Mode:        req.Mode,
		Allowed:     allowed,
	}, "permission check")
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
