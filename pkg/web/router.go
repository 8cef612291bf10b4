// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/tenant-access/internal/db"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/pkg/grants"
	"github.com/canonical/tenant-access/pkg/groups"
	"github.com/canonical/tenant-access/pkg/metrics"
	"github.com/canonical/tenant-access/pkg/permissions"
	"github.com/canonical/tenant-access/pkg/status"
	"github.com/canonical/tenant-access/pkg/tenant"
)

// Services bundles the domain services exposed over http.
type Services struct {
	Permissions permissions.ServiceInterface
	Groups      groups.ServiceInterface
	Grants      grants.ServiceInterface
	Tenants     tenant.ServiceInterface
}

func NewRouter(
	services Services,
	dbClient db.DBClientInterface,
	authn func(http.Handler) http.Handler,
	allowedOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(allowedOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(
		map[string]status.PingerInterface{"database": dbClient},
		tracer,
		monitor,
		logger,
	).RegisterEndpoints(router)

	authz := permissions.NewMiddleware(services.Permissions, tracer, logger)

	router.Group(func(r chi.Router) {
		r.Use(authn)

		permissions.NewAPI(services.Permissions, tracer, monitor, logger).RegisterEndpoints(r)

		// mutations share a single transaction per request
		r.Group(func(r chi.Router) {
			r.Use(db.TransactionMiddleware(dbClient, logger))

			tenant.NewAPI(services.Tenants, authz, tracer, monitor, logger).RegisterEndpoints(r)
			groups.NewAPI(services.Groups, authz, tracer, monitor, logger).RegisterEndpoints(r)
			grants.NewAPI(services.Grants, authz, tracer, monitor, logger).RegisterEndpoints(r)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
