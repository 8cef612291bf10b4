// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"strings"

	httptypes "github.com/canonical/tenant-access/internal/http/types"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/pkg/authentication"
)

// DefaultHeaderName is the header an identity aware proxy uses to pass the authenticated identity id.
const DefaultHeaderName = "X-Kratos-Authenticated-Identity-Id"

// Middleware trusts the identity forwarded by a proxy in front of the service.
// Only deploy it where the header cannot reach the service from untrusted clients.
type Middleware struct {
	header string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		userID := strings.TrimSpace(r.Header.Get(m.header))
		if userID == "" {
			m.logger.Debugf("request to %s carries no %s header", r.URL.Path, m.header)
			httptypes.WriteErrorMessage(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		next.ServeHTTP(w, r.WithContext(authentication.WithUserID(ctx, userID)))
	})
}

func NewMiddleware(header string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)

	m.header = header
	if m.header == "" {
		m.header = DefaultHeaderName
	}

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
