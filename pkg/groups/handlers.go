// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package groups

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
	"github.com/canonical/tenant-access/pkg/permissions"
)

type CreateGroupRequest struct {
	Name        string   `json:"name" validate:"required,max=128"`
	Description string   `json:"description" validate:"max=1024"`
	Members     []string `json:"members" validate:"dive,required"`
}

type UpdateGroupRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=128"`
	Description *string `json:"description" validate:"omitempty,max=1024"`
}

type MembersRequest struct {
	Members []string `json:"members" validate:"required,min=1,dive,required"`
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
	mux.Get("/api/v0/tenants/{tenant}/groups", a.listGroups)
	mux.Get("/api/v0/tenants/{tenant}/groups/{group}", a.getGroup)
	mux.Get("/api/v0/tenants/{tenant}/users/me/groups", a.myGroups)

	mux.Group(func(r chi.Router) {
		r.Use(a.authz.Require(permissions.PermissionManageGroups))

		r.Post("/api/v0/tenants/{tenant}/groups", a.createGroup)
		r.Patch("/api/v0/tenants/{tenant}/groups/{group}", a.updateGroup)
		r.Delete("/api/v0/tenants/{tenant}/groups/{group}", a.deleteGroup)
		r.Post("/api/v0/tenants/{tenant}/groups/{group}/members", a.addMembers)
		r.Delete("/api/v0/tenants/{tenant}/groups/{group}/members", a.removeMembers)
	})
}

func (a *API) listGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "groups.API.listGroups")
	defer span.End()

	groups, err := a.service.ListGroups(ctx, chi.URLParam(r, "tenant"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, groups, "groups")
}

func (a *API) getGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "groups.API.getGroup")
	defer span.End()

	g, err := a.service.GetGroup(ctx, chi.URLParam(r, "tenant"), chi.URLParam(r, "group"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, g, "group")
}

func (a *API) myGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "groups.API.myGroups")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteErrorMessage(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	groups, err := a.service.ListUserGroups(ctx, chi.URLParam(r, "tenant"), userID)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, groups, "user groups")
}

func (a *API) createGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "groups.API.createGroup")
	defer span.End()

	var req CreateGroupRequest
	if !a.decode(w, r, &req) {
		return
	}

	actor, _ := authentication.GetUserID(ctx)

	g, err := a.service.CreateGroup(ctx, chi.URLParam(r, "tenant"), req.Name, req.Description, req.Members, actor)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, g, "group created")
}

func (a *API) updateGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "groups.API.updateGroup")
	defer span.End()

	var req UpdateGroupRequest
	if !a.decode(w, r, &req) {
		return
	}

	actor, _ := authentication.GetUserID(ctx)

	g, err := a.service.UpdateGroup(ctx, chi.URLParam(r, "tenant"), chi.URLParam(r, "group"), req.Name, req.Description, actor)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, g, "group updated")
}

func (a *API) deleteGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "groups.API.deleteGroup")
	defer span.End()

	groupID := chi.URLParam(r, "group")

	if err := a.service.DeleteGroup(ctx, chi.URLParam(r, "tenant"), groupID); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	actor, _ := authentication.GetUserID(ctx)
	a.logger.Security().AdminAction(actor, "delete_group", "group:"+groupID)

	httptypes.WriteData(w, http.StatusOK, nil, "group deleted")
}

func (a *API) addMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "groups.API.addMembers")
	defer span.End()

	var req MembersRequest
	if !a.decode(w, r, &req) {
		return
	}

	actor, _ := authentication.GetUserID(ctx)

	g, err := a.service.AddMembers(ctx, chi.URLParam(r, "tenant"), chi.URLParam(r, "group"), req.Members, actor)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, g, "members added")
}

func (a *API) removeMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "groups.API.removeMembers")
	defer span.End()

	var req MembersRequest
	if !a.decode(w, r, &req) {
		return
	}

	actor, _ := authentication.GetUserID(ctx)

	g, err := a.service.RemoveMembers(ctx, chi.URLParam(r, "tenant"), chi.URLParam(r, "group"), req.Members, actor)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, g, "members removed")
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
