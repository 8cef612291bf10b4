// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	actor        string
	outputFormat string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "app",
	Short: "Tenant Access",
	Long:  `Tenant Access resolves the app permissions of tenant members and routes tenants to their data plane.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&actor, "actor", "cli", "Actor recorded in the audit log of operator commands")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format of operator commands (text or json)")
}
