// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/tenant-access/internal/types"
)

var dataplaneCmd = &cobra.Command{
	Use:   "dataplane",
	Short: "Inspect and migrate the data plane of tenants",
}

var dataplaneRouteCmd = &cobra.Command{
	Use:   "route [tenant id or slug]",
	Short: "Show the database a tenant is routed to",
	Args:  cobra.ExactArgs(1),
	RunE: withComponents(func(cmd *cobra.Command, c *components, args []string) error {
		t, err := c.tenants(c.permissions()).GetTenant(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		h, err := c.dataPlaneRouter().GetTenantDatabase(cmd.Context(), t.ID)
		if err != nil {
			return fmt.Errorf("failed to route tenant %s: %w", args[0], err)
		}

		return render(cmd.OutOrStdout(), outputFormat, h, "TENANT\tPLAN\tTYPE\tDATABASE\tMIGRATED", func(w io.Writer) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", h.TenantID, h.Plan, h.Type, h.Database, h.Migrated())
		})
	}),
}

var dataplaneMigrateCmd = &cobra.Command{
	Use:   "migrate [tenant id or slug]",
	Short: "Move the business data of a tenant to its dedicated database",
	Long: `Copy every business collection of the tenant from the shared database to tenant_<slug>,
verify the counts and delete the shared rows. Re-running a failed migration resumes it.`,
	Args: cobra.ExactArgs(1),
	RunE: withComponents(func(cmd *cobra.Command, c *components, args []string) error {
		t, err := c.tenants(c.permissions()).GetTenant(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		started := time.Now()
		m, err := c.migrator().MigrateTenantToDedicated(cmd.Context(), t.ID, t.Slug)
		if err != nil {
			return fmt.Errorf("failed to migrate tenant %s: %w", t.Slug, err)
		}

		c.logger.Infof("migration %s of tenant %s finished in %s", m.ID, t.Slug, time.Since(started))

		return renderMigration(cmd.OutOrStdout(), m)
	}),
}

var dataplaneStatusCmd = &cobra.Command{
	Use:   "status [tenant id or slug]",
	Short: "Show the latest data plane migration of a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: withComponents(func(cmd *cobra.Command, c *components, args []string) error {
		t, err := c.tenants(c.permissions()).GetTenant(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		m, err := c.migrator().Status(cmd.Context(), t.ID)
		if err != nil {
			return err
		}

		return renderMigration(cmd.OutOrStdout(), m)
	}),
}

func renderMigration(out io.Writer, m *types.Migration) error {
	return render(out, outputFormat, m, "COLLECTION\tSOURCE\tCOPIED\tDELETED\tSTATUS", func(w io.Writer) {
		for _, s := range m.Steps {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", s.Collection, s.SourceCount, s.CopiedCount, s.DeletedCount, s.Status)
		}
		fmt.Fprintf(w, "\nmigration %s to %s: %s\n", m.ID, m.TargetDatabase, m.Status)
		if m.LastError != "" {
			fmt.Fprintf(w, "last error: %s\n", m.LastError)
		}
	})
}

// withComponents builds the clients from the environment for the lifetime of one command.
func withComponents(fn func(cmd *cobra.Command, c *components, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		specs, err := loadSpecs()
		if err != nil {
			return err
		}

		c, err := bootstrap(specs)
		if err != nil {
			return err
		}
		defer c.Close()

		return fn(cmd, c, args)
	}
}

func init() {
	dataplaneCmd.AddCommand(dataplaneRouteCmd)
	dataplaneCmd.AddCommand(dataplaneMigrateCmd)
	dataplaneCmd.AddCommand(dataplaneStatusCmd)

	rootCmd.AddCommand(dataplaneCmd)
}
