// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dataplane

import (
	"context"
	"errors"
	"fmt"

	idataplane "github.com/canonical/tenant-access/internal/dataplane"
	"github.com/canonical/tenant-access/internal/db"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/types"
)

// StoreFactory builds a business store over client, scoped to tenantID or unscoped when empty.
type StoreFactory func(client db.DBClientInterface, tenantID string) DocumentStoreInterface

// Handle is the routing decision for a tenant.
type Handle struct {
	TenantID string              `json:"tenant_id"`
	Plan     types.Plan          `json:"plan"`
	Type     types.DataPlaneType `json:"type"`
	Database string              `json:"database"`
	// Stored is the data plane recorded on the tenant, it differs from Type while a
	// tenant on a dedicated plan has not been migrated yet.
	Stored types.DataPlane `json:"stored"`

	Client db.DBClientInterface `json:"-"`
}

// Migrated reports whether the recorded data plane matches the one the plan routes to.
func (h *Handle) Migrated() bool {
	return h.Stored.Type == h.Type
}

type Router struct {
	storage StorageInterface
	pools   PoolsInterface
	stores  StoreFactory

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// GetTenantDatabase routes by plan: free and starter tenants share one database, every
// other plan reads from tenant_<slug>.
func (r *Router) GetTenantDatabase(ctx context.Context, tenantID string) (*Handle, error) {
	ctx, span := r.tracer.Start(ctx, "dataplane.Router.GetTenantDatabase")
	defer span.End()

	tenant, err := r.storage.GetTenantByID(ctx, tenantID)
	if errors.Is(err, types.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", types.ErrTenantNotFound, tenantID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up tenant %s: %w", tenantID, err)
	}

	h := &Handle{
		TenantID: tenant.ID,
		Plan:     tenant.Plan,
		Stored:   tenant.DataPlane,
	}

	if !tenant.Plan.RequiresDedicated() {
		h.Type = types.DataPlaneShared
		h.Client = r.pools.Shared()
		h.Database = h.Client.Database()
		return h, nil
	}

	h.Type = types.DataPlaneDedicated
	h.Database = types.DedicatedDatabaseName(tenant.Slug)

	client, err := r.pools.Dedicated(ctx, h.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to data plane of tenant %s: %w", tenantID, err)
	}
	h.Client = client

	if !h.Migrated() {
		r.logger.Warnf("tenant %s routes to %s but is recorded on the %s data plane", tenantID, h.Database, h.Stored.Type)
	}

	return h, nil
}

// BusinessStore returns the business collections of the tenant on the data plane it routes to.
func (r *Router) BusinessStore(ctx context.Context, tenantID string) (DocumentStoreInterface, *Handle, error) {
	h, err := r.GetTenantDatabase(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}

	if h.Type == types.DataPlaneShared {
		return r.stores(h.Client, h.TenantID), h, nil
	}

	return r.stores(h.Client, ""), h, nil
}

// BusinessStores builds the postgres backed StoreFactory.
func BusinessStores(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) StoreFactory {
	return func(client db.DBClientInterface, tenantID string) DocumentStoreInterface {
		return idataplane.NewBusinessStore(client, tenantID, tracer, monitor, logger)
	}
}

func NewRouter(storage StorageInterface, pools PoolsInterface, stores StoreFactory, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Router {
	r := new(Router)

	r.storage = storage
	r.pools = pools
	r.stores = stores

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
