// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/tenant-access/internal/types"
)

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Manage tenant members",
}

var listMembersCmd = &cobra.Command{
	Use:   "list [tenant]",
	Short: "List the members of a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: withComponents(func(cmd *cobra.Command, c *components, args []string) error {
		svc := c.tenants(c.permissions())

		t, err := svc.GetTenant(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		members, err := svc.ListMembers(cmd.Context(), t.ID)
		if err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		return renderMembers(cmd.OutOrStdout(), members, members)
	}),
}

var memberRole string

var addMemberCmd = &cobra.Command{
	Use:   "add [tenant] [user-id] [email]",
	Short: "Add a user to a tenant or change its role",
	Long: `Add a user to a tenant or change its role: owner, admin, member or viewer.

Owners receive every system permission of the tenant.`,
	Args: cobra.ExactArgs(3),
	RunE: withComponents(func(cmd *cobra.Command, c *components, args []string) error {
		svc := c.tenants(c.permissions())

		t, err := svc.GetTenant(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		m, err := svc.AddMember(cmd.Context(), t.ID, &types.User{ID: args[1], Email: args[2]}, types.Role(memberRole), actor)
		if err != nil {
			return fmt.Errorf("failed to add member: %w", err)
		}

		return renderMembers(cmd.OutOrStdout(), m, []*types.Membership{m})
	}),
}

var (
	entitlementName           string
	entitlementDisabled       bool
	entitlementSelfManageable bool
)

var entitleCmd = &cobra.Command{
	Use:   "entitle [tenant] [app-id]",
	Short: "Enable or disable an app for a tenant",
	Args:  cobra.ExactArgs(2),
	RunE: withComponents(func(cmd *cobra.Command, c *components, args []string) error {
		svc := c.tenants(c.permissions())

		t, err := svc.GetTenant(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		e := &types.Entitlement{
			TenantID:       t.ID,
			AppID:          args[1],
			AppName:        entitlementName,
			Enabled:        !entitlementDisabled,
			SelfManageable: entitlementSelfManageable,
		}
		if err := svc.SetEntitlement(cmd.Context(), e, actor); err != nil {
			return fmt.Errorf("failed to set entitlement: %w", err)
		}

		return renderEntitlements(cmd.OutOrStdout(), e, []*types.Entitlement{e})
	}),
}

var listEntitlementsCmd = &cobra.Command{
	Use:   "entitlements [tenant]",
	Short: "List the apps a tenant is entitled to",
	Args:  cobra.ExactArgs(1),
	RunE: withComponents(func(cmd *cobra.Command, c *components, args []string) error {
		svc := c.tenants(c.permissions())

		t, err := svc.GetTenant(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		entitlements, err := svc.ListEntitlements(cmd.Context(), t.ID)
		if err != nil {
			return fmt.Errorf("failed to list entitlements: %w", err)
		}

		return renderEntitlements(cmd.OutOrStdout(), entitlements, entitlements)
	}),
}

func renderMembers(out io.Writer, v any, members []*types.Membership) error {
	return render(out, outputFormat, v, "ID\tUSER\tROLE\tSTATUS\tCREATED_AT", func(w io.Writer) {
		for _, m := range members {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.ID, m.UserID, m.Role, m.Status, m.CreatedAt.Format(time.RFC3339))
		}
	})
}

func renderEntitlements(out io.Writer, v any, entitlements []*types.Entitlement) error {
	return render(out, outputFormat, v, "APP\tNAME\tENABLED\tSELF_MANAGEABLE", func(w io.Writer) {
		for _, e := range entitlements {
			fmt.Fprintf(w, "%s\t%s\t%t\t%t\n", strings.TrimSpace(e.AppID), e.AppName, e.Enabled, e.SelfManageable)
		}
	})
}

func init() {
	tenantCmd.AddCommand(membersCmd)
	membersCmd.AddCommand(listMembersCmd)
	membersCmd.AddCommand(addMemberCmd)
	tenantCmd.AddCommand(entitleCmd)
	tenantCmd.AddCommand(listEntitlementsCmd)

	addMemberCmd.Flags().StringVar(&memberRole, "role", string(types.RoleMember), "Role of the member")

	entitleCmd.Flags().StringVar(&entitlementName, "name", "", "Display name of the app")
	entitleCmd.Flags().BoolVar(&entitlementDisabled, "disabled", false, "Block new assignments of the app")
	entitleCmd.Flags().BoolVar(&entitlementSelfManageable, "self-manageable", false, "Let tenant admins assign the app")
}
