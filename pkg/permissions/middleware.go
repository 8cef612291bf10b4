// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/tenant-access/internal/http/types"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/pkg/authentication"
)

// Middleware guards tenant scoped routes behind a system permission of the caller.
type Middleware struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// Require lets the request through only when the caller holds permission on the system app
// of the tenant named by the {tenant} route parameter.
func (m *Middleware) Require(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "permissions.Middleware.Require")
			defer span.End()

			userID, ok := authentication.GetUserID(ctx)
			if !ok {
				httptypes.WriteErrorMessage(w, http.StatusUnauthorized, "unauthenticated")
				return
			}

			tenantID := chi.URLParam(r, "tenant")

			if !m.service.HasPermission(ctx, userID, tenantID, SystemAppID, permission) {
				m.logger.Security().AuthzFailure(userID, "tenant:"+tenantID+":"+permission)
				httptypes.WriteErrorMessage(w, http.StatusForbidden, "missing permission "+permission)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func NewMiddleware(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}
