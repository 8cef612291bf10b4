// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"
)

var (
	clientID     string
	clientSecret string
	tokenURL     string
	issuerURL    string
	audience     string
	scopes       []string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an access token for the HTTP API using the client credentials flow",
	Long: `Get an access token for the HTTP API using the client credentials flow.

The token endpoint is discovered from --issuer-url unless --token-url is given.
Print it with -o json to also get its expiry.`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

type tokenOutput struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	Expiry      time.Time `json:"expiry"`
}

func runToken(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	endpoint := tokenURL
	if endpoint == "" {
		if issuerURL == "" {
			return errors.New("either --token-url or --issuer-url must be provided")
		}

		provider, err := oidc.NewProvider(ctx, issuerURL)
		if err != nil {
			return fmt.Errorf("failed to discover the token endpoint of %s: %w", issuerURL, err)
		}
		endpoint = provider.Endpoint().TokenURL
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     endpoint,
		Scopes:       scopes,
	}
	if audience != "" {
		config.EndpointParams = url.Values{"audience": {audience}}
	}

	token, err := config.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to get token: %w", err)
	}

	out := tokenOutput{AccessToken: token.AccessToken, TokenType: token.Type(), Expiry: token.Expiry}

	return render(cmd.OutOrStdout(), outputFormat, out, "", func(w io.Writer) {
		fmt.Fprintln(w, token.AccessToken)
	})
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&clientID, "client-id", "", "Client ID")
	tokenCmd.Flags().StringVar(&clientSecret, "client-secret", "", "Client Secret")
	tokenCmd.Flags().StringVar(&tokenURL, "token-url", "", "Token URL")
	tokenCmd.Flags().StringVar(&issuerURL, "issuer-url", "", "Issuer URL (for OIDC discovery)")
	tokenCmd.Flags().StringVar(&audience, "audience", "", "Audience requested for the token")
	tokenCmd.Flags().StringSliceVar(&scopes, "scopes", []string{}, "Scopes (comma-separated)")

	_ = tokenCmd.MarkFlagRequired("client-id")
	_ = tokenCmd.MarkFlagRequired("client-secret")
}
