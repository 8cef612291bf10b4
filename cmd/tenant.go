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

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage tenants",
}

var (
	tenantSlug       string
	tenantPlan       string
	tenantOwnerID    string
	tenantOwnerEmail string
)

var createTenantCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new tenant and its owner membership",
	Args:  cobra.ExactArgs(1),
	RunE: withComponents(func(cmd *cobra.Command, c *components, args []string) error {
		owner := &types.User{ID: tenantOwnerID, Email: tenantOwnerEmail}

		t, err := c.tenants(c.permissions()).CreateTenant(cmd.Context(), args[0], tenantSlug, types.Plan(tenantPlan), owner)
		if err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		return renderTenants(cmd.OutOrStdout(), t, []*types.Tenant{t})
	}),
}

var getTenantCmd = &cobra.Command{
	Use:   "get [id or slug]",
	Short: "Show a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: withComponents(func(cmd *cobra.Command, c *components, args []string) error {
		t, err := c.tenants(c.permissions()).GetTenant(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return renderTenants(cmd.OutOrStdout(), t, []*types.Tenant{t})
	}),
}

var listTenantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tenants",
	Args:  cobra.NoArgs,
	RunE: withComponents(func(cmd *cobra.Command, c *components, args []string) error {
		tenants, err := c.tenants(c.permissions()).ListTenants(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}

		return renderTenants(cmd.OutOrStdout(), tenants, tenants)
	}),
}

var tenantStatusCmd = &cobra.Command{
	Use:   "status [id or slug] [status]",
	Short: "Set the lifecycle status of a tenant",
	Long:  `Set the lifecycle status of a tenant: active, trialing, past_due, suspended or canceled.`,
	Args:  cobra.ExactArgs(2),
	RunE: withComponents(func(cmd *cobra.Command, c *components, args []string) error {
		svc := c.tenants(c.permissions())

		t, err := svc.GetTenant(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if err := svc.UpdateTenantStatus(cmd.Context(), t.ID, types.TenantStatus(args[1]), actor); err != nil {
			return fmt.Errorf("failed to update tenant status: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Tenant %s is now %s\n", t.Slug, args[1])
		return nil
	}),
}

var tenantPlanCmd = &cobra.Command{
	Use:   "plan [id or slug] [plan]",
	Short: "Change the plan of a tenant",
	Long: `Change the plan of a tenant: free, starter, professional, enterprise or custom.

Upgrading a shared tenant to a dedicated plan does not move its data, run
"dataplane migrate" afterwards.`,
	Args: cobra.ExactArgs(2),
	RunE: withComponents(func(cmd *cobra.Command, c *components, args []string) error {
		svc := c.tenants(c.permissions())

		t, err := svc.GetTenant(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		t, err = svc.ChangePlan(cmd.Context(), t.ID, types.Plan(args[1]), actor)
		if err != nil {
			return fmt.Errorf("failed to change plan: %w", err)
		}

		return renderTenants(cmd.OutOrStdout(), t, []*types.Tenant{t})
	}),
}

func renderTenants(out io.Writer, v any, tenants []*types.Tenant) error {
	return render(out, outputFormat, v, "ID\tSLUG\tNAME\tPLAN\tSTATUS\tDATA PLANE\tCREATED_AT", func(w io.Writer) {
		for _, t := range tenants {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				t.ID, t.Slug, t.Name, t.Plan, t.Status, t.DataPlane.Database, t.CreatedAt.Format(time.RFC3339),
			)
		}
	})
}

func init() {
	rootCmd.AddCommand(tenantCmd)
	tenantCmd.AddCommand(createTenantCmd)
	tenantCmd.AddCommand(getTenantCmd)
	tenantCmd.AddCommand(listTenantsCmd)
	tenantCmd.AddCommand(tenantStatusCmd)
	tenantCmd.AddCommand(tenantPlanCmd)

	createTenantCmd.Flags().StringVar(&tenantSlug, "slug", "", "URL safe identifier, also names the dedicated database")
	createTenantCmd.Flags().StringVar(&tenantPlan, "plan", string(types.PlanFree), "Subscription plan")
	createTenantCmd.Flags().StringVar(&tenantOwnerID, "owner-id", "", "Identity provider id of the owner")
	createTenantCmd.Flags().StringVar(&tenantOwnerEmail, "owner-email", "", "Email of the owner")
	_ = createTenantCmd.MarkFlagRequired("slug")
	_ = createTenantCmd.MarkFlagRequired("owner-id")
	_ = createTenantCmd.MarkFlagRequired("owner-email")
}
