// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"sort"
	"strings"
	"time"
)

type Plan string

const (
	PlanFree         Plan = "free"
	PlanStarter      Plan = "starter"
	PlanProfessional Plan = "professional"
	PlanEnterprise   Plan = "enterprise"
	PlanCustom       Plan = "custom"
)

// RequiresDedicated reports whether tenants on this plan get their own database.
func (p Plan) RequiresDedicated() bool {
	switch p {
	case PlanProfessional, PlanEnterprise, PlanCustom:
		return true
	}
	return false
}

func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanStarter, PlanProfessional, PlanEnterprise, PlanCustom:
		return true
	}
	return false
}

type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "active"
	TenantStatusTrialing  TenantStatus = "trialing"
	TenantStatusPastDue   TenantStatus = "past_due"
	TenantStatusSuspended TenantStatus = "suspended"
	TenantStatusCanceled  TenantStatus = "canceled"
)

type DataPlaneType string

const (
	DataPlaneShared    DataPlaneType = "shared"
	DataPlaneDedicated DataPlaneType = "dedicated"
)

type DataPlane struct {
	Type     DataPlaneType `db:"data_plane_type" json:"type"`
	Database string        `db:"data_plane_database" json:"database"`
}

// DedicatedDatabasePrefix prefixes the database name of every dedicated data plane.
const DedicatedDatabasePrefix = "tenant_"

// DedicatedDatabaseName maps a tenant slug to its dedicated database name.
func DedicatedDatabaseName(slug string) string {
	return DedicatedDatabasePrefix + strings.ReplaceAll(slug, "-", "_")
}

// DataPlaneFor derives the data plane a tenant on plan should live on.
func DataPlaneFor(plan Plan, slug string) DataPlane {
	if plan.RequiresDedicated() {
		return DataPlane{Type: DataPlaneDedicated, Database: DedicatedDatabaseName(slug)}
	}
	return DataPlane{Type: DataPlaneShared}
}

type Tenant struct {
	ID        string       `db:"id" json:"id"`
	Slug      string       `db:"slug" json:"slug"`
	Name      string       `db:"name" json:"name"`
	Plan      Plan         `db:"plan" json:"plan"`
	Status    TenantStatus `db:"status" json:"status"`
	DataPlane DataPlane    `json:"data_plane"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
}

type User struct {
	ID            string    `db:"id" json:"id"`
	Email         string    `db:"email" json:"email"`
	EmailVerified bool      `db:"email_verified" json:"email_verified"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

// MembershipActive is the status of a membership that takes part in permission resolution.
const MembershipActive = "active"

type Membership struct {
	ID        string    `db:"id" json:"id"`
	TenantID  string    `db:"tenant_id" json:"tenant_id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Role      Role      `db:"role" json:"role"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type PermissionSource string

const (
	SourceGroup  PermissionSource = "group"
	SourceDirect PermissionSource = "direct"
)

// AppPermission is a single app-scoped grant, either attached to a group or directly to a membership.
type AppPermission struct {
	AppID       string     `db:"app_id" json:"app_id"`
	Permissions []string   `db:"permissions" json:"permissions"`
	GrantedAt   time.Time  `db:"granted_at" json:"granted_at"`
	GrantedBy   string     `db:"granted_by" json:"granted_by"`
	ExpiresAt   *time.Time `db:"expires_at" json:"expires_at,omitempty"`

	// Source and SourceID identify the owner of the grant, a group id or a membership id.
	Source   PermissionSource `json:"source,omitempty"`
	SourceID string           `json:"source_id,omitempty"`
}

// Expired reports whether the grant is no longer effective at now.
func (p *AppPermission) Expired(now time.Time) bool {
	return p.ExpiresAt != nil && !p.ExpiresAt.After(now)
}

type GroupMetadata struct {
	CreatedBy      string    `db:"created_by" json:"created_by"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
	LastModifiedBy string    `db:"last_modified_by" json:"last_modified_by"`
}

type Group struct {
	ID             string          `db:"id" json:"id"`
	TenantID       string          `db:"tenant_id" json:"tenant_id"`
	Name           string          `db:"name" json:"name"`
	Description    string          `db:"description" json:"description"`
	Members        []string        `json:"members"`
	MemberCount    int             `db:"member_count" json:"member_count"`
	AppPermissions []AppPermission `json:"app_permissions"`
	Metadata       GroupMetadata   `json:"metadata"`
}

// ExpiredGrant is a grant removed by the sweeper together with the users it affected.
type ExpiredGrant struct {
	Source   PermissionSource
	SourceID string
	AppID    string
	TenantID string
	// UserID is only set for direct grants, group grants fan out to the group members.
	UserID string
}

// UserTenant identifies a cached effective permission set.
type UserTenant struct {
	UserID   string
	TenantID string
}

type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSending NotificationStatus = "sending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)

const NotificationTypePermissionExpiring = "permission_expiring"

type NotificationDetails struct {
	AppID               string           `json:"app_id"`
	ExpiresAt           time.Time        `json:"expires_at"`
	DaysUntilExpiration int              `json:"days_until_expiration"`
	PermissionSource    PermissionSource `json:"permission_source"`
	SourceID            string           `json:"source_id"`
}

type ExpirationNotification struct {
	ID             string              `db:"id" json:"id"`
	Type           string              `db:"type" json:"type"`
	RecipientID    string              `db:"recipient_id" json:"recipient_id"`
	RecipientEmail string              `db:"recipient_email" json:"recipient_email"`
	TenantID       string              `db:"tenant_id" json:"tenant_id"`
	AppName        string              `db:"app_name" json:"app_name"`
	Details        NotificationDetails `json:"details"`
	Status         NotificationStatus  `db:"status" json:"status"`
	ScheduledFor   time.Time           `db:"scheduled_for" json:"scheduled_for"`
	Attempts       int                 `db:"attempts" json:"attempts"`
	LastError      string              `db:"last_error" json:"last_error,omitempty"`
	CreatedAt      time.Time           `db:"created_at" json:"created_at"`
	SentAt         *time.Time          `db:"sent_at" json:"sent_at,omitempty"`
}

type Entitlement struct {
	TenantID       string `db:"tenant_id" json:"tenant_id"`
	AppID          string `db:"app_id" json:"app_id"`
	AppName        string `db:"app_name" json:"app_name"`
	Enabled        bool   `db:"enabled" json:"enabled"`
	SelfManageable bool   `db:"self_manageable" json:"self_manageable"`
}

type MigrationStatus string

const (
	MigrationRunning   MigrationStatus = "running"
	MigrationFailed    MigrationStatus = "failed"
	MigrationCompleted MigrationStatus = "completed"
)

type StepStatus string

const (
	StepPending  StepStatus = "pending"
	StepCopied   StepStatus = "copied"
	StepVerified StepStatus = "verified"
	StepDone     StepStatus = "done"
	StepFailed   StepStatus = "failed"
)

type MigrationStep struct {
	MigrationID  string     `db:"migration_id" json:"migration_id"`
	Collection   string     `db:"collection" json:"collection"`
	SourceCount  int64      `db:"source_count" json:"source_count"`
	CopiedCount  int64      `db:"copied_count" json:"copied_count"`
	DeletedCount int64      `db:"deleted_count" json:"deleted_count"`
	Status       StepStatus `db:"status" json:"status"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

type Migration struct {
	ID             string           `db:"id" json:"id"`
	TenantID       string           `db:"tenant_id" json:"tenant_id"`
	TargetDatabase string           `db:"target_database" json:"target_database"`
	Status         MigrationStatus  `db:"status" json:"status"`
	StartedAt      time.Time        `db:"started_at" json:"started_at"`
	FinishedAt     *time.Time       `db:"finished_at" json:"finished_at,omitempty"`
	LastError      string           `db:"last_error" json:"last_error,omitempty"`
	Steps          []*MigrationStep `json:"steps,omitempty"`
}

// Document is a business record held in a data plane collection.
type Document struct {
	ID        string    `db:"id" json:"id"`
	TenantID  *string   `db:"tenant_id" json:"tenant_id,omitempty"`
	Data      []byte    `db:"data" json:"data"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// PermissionSet is the set of permission strings held for one app.
type PermissionSet map[string]struct{}

func (s PermissionSet) Has(perm string) bool {
	_, ok := s[perm]
	return ok
}

// Sorted returns the members in lexical order.
func (s PermissionSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// EffectivePermissions maps app ids to the union of permissions held for them.
// A missing app id means no permissions at all.
type EffectivePermissions map[string]PermissionSet

func (e EffectivePermissions) Add(appID string, perms ...string) {
	set, ok := e[appID]
	if !ok {
		set = make(PermissionSet, len(perms))
		e[appID] = set
	}
	for _, p := range perms {
		set[p] = struct{}{}
	}
}

func (e EffectivePermissions) Has(appID, perm string) bool {
	return e[appID].Has(perm)
}

func (e EffectivePermissions) HasAny(appID string, perms ...string) bool {
	set := e[appID]
	for _, p := range perms {
		if set.Has(p) {
			return true
		}
	}
	return false
}

// HasAll is false for an empty perms list so that a malformed check never grants access.
func (e EffectivePermissions) HasAll(appID string, perms ...string) bool {
	if len(perms) == 0 {
		return false
	}
	set := e[appID]
	for _, p := range perms {
		if !set.Has(p) {
			return false
		}
	}
	return true
}

// Apps returns the accessible app ids in lexical order.
func (e EffectivePermissions) Apps() []string {
	out := make([]string, 0, len(e))
	for app, set := range e {
		if len(set) == 0 {
			continue
		}
		out = append(out, app)
	}
	sort.Strings(out)
	return out
}

// Map flattens the permission sets into sorted slices, the shape used on the wire and in the cache.
func (e EffectivePermissions) Map() map[string][]string {
	out := make(map[string][]string, len(e))
	for app, set := range e {
		out[app] = set.Sorted()
	}
	return out
}

func EffectivePermissionsFromMap(m map[string][]string) EffectivePermissions {
	e := make(EffectivePermissions, len(m))
	for app, perms := range m {
		e.Add(app, perms...)
	}
	return e
}
