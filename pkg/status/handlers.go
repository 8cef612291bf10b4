// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/tenant-access/internal/http/types"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/version"
)

const pingTimeout = 2 * time.Second

// PingerInterface is a dependency whose availability gates readiness.
type PingerInterface interface {
	Ping(context.Context) error
}

type Status struct {
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

type API struct {
	dependencies map[string]PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteData(w, http.StatusOK, Status{Version: version.Version}, "alive")
}

func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	s := Status{Version: version.Version, Checks: make(map[string]string, len(a.dependencies))}
	code := http.StatusOK

	for name, dep := range a.dependencies {
		if err := dep.Ping(ctx); err != nil {
			a.logger.Warnf("dependency %s is not available: %v", name, err)
			s.Checks[name] = "unavailable"
			code = http.StatusServiceUnavailable
			continue
		}
		s.Checks[name] = "ok"
	}

	httptypes.WriteData(w, code, s, "ready")
}

func NewAPI(dependencies map[string]PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.dependencies = dependencies

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
