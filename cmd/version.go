// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/canonical/tenant-access/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of tenant-access",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printVersion(cmd.OutOrStdout(), outputFormat)
	},
}

type versionOutput struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

func printVersion(out io.Writer, format string) error {
	v := versionOutput{Version: version.Version, GoVersion: runtime.Version()}

	return render(out, format, v, "", func(w io.Writer) {
		fmt.Fprintf(w, "App Version: %s\n", v.Version)
	})
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
