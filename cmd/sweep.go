// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/tenant-access/pkg/notifications"
	"github.com/canonical/tenant-access/pkg/sweeper"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Remove expired grants and deliver due expiry reminders once",
	Long: `Run a single pass of the expiration sweeper and of the reminder dispatcher.

Use it from an external scheduler when the in process scheduler of serve is disabled.`,
	Args: cobra.NoArgs,
	RunE: runSweep,
}

var skipNotifications bool

func init() {
	sweepCmd.Flags().BoolVar(&skipNotifications, "skip-notifications", false, "Only remove expired grants")

	rootCmd.AddCommand(sweepCmd)
}

type sweepReport struct {
	Sweep         *sweeper.SweepResult          `json:"sweep"`
	Notifications *notifications.DispatchResult `json:"notifications,omitempty"`
}

func runSweep(cmd *cobra.Command, args []string) error {
	specs, err := loadSpecs()
	if err != nil {
		return err
	}

	c, err := bootstrap(specs)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx := cmd.Context()
	report := new(sweepReport)

	report.Sweep, err = c.sweeper(c.permissions()).Sweep(ctx)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	if !skipNotifications {
		report.Notifications, err = c.dispatcher().DispatchDue(ctx, time.Now())
		if err != nil {
			return fmt.Errorf("notification dispatch failed: %w", err)
		}
	}

	return render(cmd.OutOrStdout(), outputFormat, report, "STEP\tRESULT", func(w io.Writer) {
		fmt.Fprintf(w, "group grants removed\t%d\n", report.Sweep.GroupGrantsRemoved)
		fmt.Fprintf(w, "direct grants removed\t%d\n", report.Sweep.DirectGrantsRemoved)
		fmt.Fprintf(w, "users invalidated\t%d\n", report.Sweep.UsersInvalidated)
		if n := report.Notifications; n != nil {
			fmt.Fprintf(w, "reminders sent\t%d\n", n.Sent)
			fmt.Fprintf(w, "reminders retrying\t%d\n", n.Retrying)
			fmt.Fprintf(w, "reminders failed\t%d\n", n.Failed)
		}
	})
}
