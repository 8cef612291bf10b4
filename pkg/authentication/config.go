// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

const DefaultUserClaim = "sub"

// Config describes which access tokens the API accepts.
type Config struct {
	Issuer string
	// JwksURL skips OIDC discovery when the issuer does not publish it.
	JwksURL string
	// Audience must be listed in the aud claim, the check is skipped when empty.
	Audience string
	// UserClaim names the claim carrying the identity provider user id.
	UserClaim     string
	RequiredScope string
}

func (c Config) userClaim() string {
	if c.UserClaim == "" {
		return DefaultUserClaim
	}

	return c.UserClaim
}
