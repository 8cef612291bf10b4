// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
)

// healthPaths are polled by the orchestrator and the metrics scraper, they are not traced.
var healthPaths = []string{"/api/v0/status", "/api/v0/ready", "/api/v0/metrics"}

// Middleware wraps the router with OpenTelemetry http instrumentation
type Middleware struct {
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (mdw *Middleware) OpenTelemetry(handler http.Handler) http.Handler {
	return otelhttp.NewHandler(
		handler,
		"server",
		otelhttp.WithFilter(traced),
		otelhttp.WithSpanNameFormatter(spanName),
	)
}

func traced(r *http.Request) bool {
	for _, p := range healthPaths {
		if r.URL.Path == p {
			return false
		}
	}

	return true
}

// spanName keeps the resource type of tenant scoped paths and drops the ids, the route
// pattern is not known yet when the span starts.
func spanName(_ string, r *http.Request) string {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	// api v0 tenants {tenant} <resource> ...
	if len(parts) >= 4 && parts[2] == "tenants" {
		if len(parts) == 4 {
			return r.Method + " /api/v0/tenants/{tenant}"
		}
		return r.Method + " /api/v0/tenants/{tenant}/" + parts[4]
	}

	return r.Method + " " + r.URL.Path
}

// NewMiddleware returns a Middleware based on the type of monitor
func NewMiddleware(monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	mdw := new(Middleware)

	mdw.monitor = monitor
	mdw.logger = logger

	return mdw
}
