// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
)

type JWTVerifier struct {
	verifier      *oidc.IDTokenVerifier
	userClaim     string
	requiredScope string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	claims := make(map[string]any)
	if err := token.Claims(&claims); err != nil {
		v.logger.Debugf("Failed to extract claims: %v", err)
		return nil, err
	}

	principal, err := principalFromClaims(claims, v.userClaim, v.requiredScope)
	if err != nil {
		v.logger.Security().AuthzFailure(token.Subject, "jwt_api_access")
		return nil, err
	}

	return principal, nil
}

// principalFromClaims reads the caller out of verified token claims. Scopes come from the
// space separated scope claim or from the scp array, whichever the issuer sets.
func principalFromClaims(claims map[string]any, userClaim, requiredScope string) (*Principal, error) {
	userID, _ := claims[userClaim].(string)
	if userID == "" {
		return nil, fmt.Errorf("token has no %s claim", userClaim)
	}

	p := &Principal{UserID: userID}
	p.Email, _ = claims["email"].(string)

	if scope, ok := claims["scope"].(string); ok {
		p.Scopes = strings.Fields(scope)
	}
	if scp, ok := claims["scp"].([]any); ok {
		for _, s := range scp {
			if str, ok := s.(string); ok {
				p.Scopes = append(p.Scopes, str)
			}
		}
	}

	if requiredScope != "" && !p.HasScope(requiredScope) {
		return nil, fmt.Errorf("unauthorized: token lacks the %s scope", requiredScope)
	}

	return p, nil
}

func oidcConfig(cfg Config) *oidc.Config {
	return &oidc.Config{
		ClientID:          cfg.Audience,
		SkipClientIDCheck: cfg.Audience == "",
		SkipIssuerCheck:   false,
	}
}

func NewJWTVerifier(
	provider ProviderInterface,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return NewJWTVerifierDirect(provider.Verifier(oidcConfig(cfg)), cfg, tracer, monitor, logger)
}

func NewJWTVerifierDirect(
	verifier *oidc.IDTokenVerifier,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier:      verifier,
		userClaim:     cfg.userClaim(),
		requiredScope: cfg.RequiredScope,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}
