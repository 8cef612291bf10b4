// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"strings"

	"github.com/canonical/tenant-access/internal/types"
)

// Standard permissions apply to any application.
const (
	PermissionView   = "view"
	PermissionCreate = "create"
	PermissionEdit   = "edit"
	PermissionDelete = "delete"
	PermissionExport = "export"
	PermissionShare  = "share"
	PermissionAdmin  = "admin"
)

// System permissions gate tenant administration.
const (
	PermissionInviteUsers   = "invite_users"
	PermissionManageGroups  = "manage_groups"
	PermissionAssignApps    = "assign_apps"
	PermissionViewAnalytics = "view_analytics"
	PermissionManageBilling = "manage_billing"
)

// SystemPermissions lists every system permission, a tenant owner starts with all of them.
var SystemPermissions = []string{
	PermissionInviteUsers,
	PermissionManageGroups,
	PermissionAssignApps,
	PermissionViewAnalytics,
	PermissionManageBilling,
}

// CustomPrefix marks application defined permissions, the suffix must not be empty.
const CustomPrefix = "custom:"

// SystemAppID is the pseudo application holding the system permissions of a tenant.
const SystemAppID = "system"

var vocabulary = map[string]struct{}{
	PermissionView:          {},
	PermissionCreate:        {},
	PermissionEdit:          {},
	PermissionDelete:        {},
	PermissionExport:        {},
	PermissionShare:         {},
	PermissionAdmin:         {},
	PermissionInviteUsers:   {},
	PermissionManageGroups:  {},
	PermissionAssignApps:    {},
	PermissionViewAnalytics: {},
	PermissionManageBilling: {},
}

// IsValidPermission reports whether perm belongs to the vocabulary.
func IsValidPermission(perm string) bool {
	if _, ok := vocabulary[perm]; ok {
		return true
	}
	return strings.HasPrefix(perm, CustomPrefix) && len(perm) > len(CustomPrefix)
}

// ValidatePermissions splits perms into known and unknown items keeping the input order.
// Duplicates collapse in the valid list.
func ValidatePermissions(perms []string) (valid, invalid []string) {
	valid = []string{}
	invalid = []string{}
	seen := make(map[string]struct{}, len(perms))

	for _, p := range perms {
		if !IsValidPermission(p) {
			invalid = append(invalid, p)
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		valid = append(valid, p)
	}

	return valid, invalid
}

// CheckAssignable validates a permission list for assignment, it must be non empty and fully valid.
func CheckAssignable(perms []string) ([]string, error) {
	if len(perms) == 0 {
		return nil, types.NewValidationError("at least one permission is required")
	}

	valid, invalid := ValidatePermissions(perms)
	if len(invalid) > 0 {
		return nil, &types.ValidationError{Valid: valid, Invalid: invalid}
	}

	return valid, nil
}
