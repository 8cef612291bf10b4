// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
)

// NewJWTAuthenticator builds the verifier of tenant user access tokens.
func NewJWTAuthenticator(
	ctx context.Context,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	if cfg.Issuer == "" {
		return nil, fmt.Errorf("issuer is required for JWT authentication")
	}

	if cfg.JwksURL != "" {
		logger.Infof("Using JWKS URL %s for issuer %s", cfg.JwksURL, cfg.Issuer)
		return NewJWTVerifierDirect(NewKeySetVerifier(ctx, cfg), cfg, tracer, monitor, logger), nil
	}

	logger.Infof("Using OIDC discovery for issuer: %s", cfg.Issuer)
	provider, err := NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, err
	}

	logger.Infof("JWT authentication is enabled, user id read from the %s claim", cfg.userClaim())

	return NewJWTVerifier(provider, cfg, tracer, monitor, logger), nil
}
