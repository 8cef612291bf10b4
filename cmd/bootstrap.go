// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/canonical/tenant-access/internal/cache"
	"github.com/canonical/tenant-access/internal/config"
	idataplane "github.com/canonical/tenant-access/internal/dataplane"
	"github.com/canonical/tenant-access/internal/db"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring/prometheus"
	"github.com/canonical/tenant-access/internal/storage"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/pkg/dataplane"
	"github.com/canonical/tenant-access/pkg/notifications"
	"github.com/canonical/tenant-access/pkg/permissions"
	"github.com/canonical/tenant-access/pkg/sweeper"
	"github.com/canonical/tenant-access/pkg/tenant"
)

// components holds the long lived clients shared by the serve command and the operator commands.
type components struct {
	specs *config.EnvSpec

	logger  *logging.Logger
	monitor *prometheus.Monitor
	tracer  *tracing.Tracer

	db          *db.DBClient
	shared      *db.DBClient
	pools       *idataplane.PoolManager
	provisioner *idataplane.Provisioner
	storage     *storage.Storage
	cache       cache.CacheInterface

	closers []func()
}

func loadSpecs() (*config.EnvSpec, error) {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %s", err)
	}

	return specs, nil
}

func bootstrap(specs *config.EnvSpec) (*components, error) {
	c := new(components)
	c.specs = specs

	c.logger = logging.NewLogger(specs.LogLevel)
	c.logger.Debugf("env vars: %v", specs)

	c.monitor = prometheus.NewMonitor("tenant-access", c.logger)
	c.tracer = tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, c.logger))

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		c.tracer, c.monitor, c.logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %v", err)
	}
	c.db = dbClient
	c.closers = append(c.closers, dbClient.Close)

	shared, err := db.NewDBClient(
		db.Config{
			DSN:             specs.SharedDataPlaneDSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		c.tracer, c.monitor, c.logger,
	)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to create shared data plane client: %v", err)
	}
	c.shared = shared
	c.closers = append(c.closers, shared.Close)

	// dedicated pools are closed before the shared client they were derived from
	c.pools = idataplane.NewPoolManager(
		shared,
		db.Config{
			DSN:             specs.SharedDataPlaneDSN,
			MaxConns:        specs.DedicatedDBMaxConns,
			MinConns:        specs.DedicatedDBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		nil,
		c.tracer, c.monitor, c.logger,
	)
	c.closers = append(c.closers, c.pools.Close)
	c.provisioner = idataplane.NewProvisioner(shared, c.pools, nil, c.tracer, c.monitor, c.logger)

	c.storage = storage.NewStorage(dbClient, c.tracer, c.monitor, c.logger)

	cc, closeCache, err := cache.New(
		cache.Config{
			Backend:       specs.CacheBackend,
			L1TTL:         specs.CacheL1TTL,
			MaxCostBytes:  specs.CacheMaxCostBytes,
			RedisAddr:     specs.RedisAddr,
			RedisPassword: specs.RedisPassword,
			RedisDB:       specs.RedisDB,
			KeyPrefix:     specs.RedisKeyPrefix,
		},
		c.tracer, c.monitor, c.logger,
	)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to create cache: %v", err)
	}
	c.cache = cc
	c.closers = append(c.closers, closeCache)

	return c, nil
}

func (c *components) permissions() *permissions.Service {
	return permissions.NewService(c.storage, c.cache, c.specs.CacheTTL, c.tracer, c.monitor, c.logger)
}

func (c *components) tenants(invalidator tenant.InvalidatorInterface) *tenant.Service {
	return tenant.NewService(c.storage, c.db, c.provisioner, invalidator, c.tracer, c.monitor, c.logger)
}

func (c *components) dispatcher() *notifications.Dispatcher {
	sender := notifications.NewSender(
		notifications.SMTPConfig{
			Host:               c.specs.SMTPHost,
			Port:               c.specs.SMTPPort,
			User:               c.specs.SMTPUser,
			Password:           c.specs.SMTPPassword,
			From:               c.specs.SMTPFrom,
			InsecureSkipVerify: c.specs.SMTPInsecureSkipTLS,
		},
		c.logger,
	)

	return notifications.NewDispatcher(c.storage, sender, c.specs.NotifyBatchSize, c.specs.NotifyMaxAttempts, c.tracer, c.monitor, c.logger)
}

func (c *components) sweeper(invalidator sweeper.InvalidatorInterface) *sweeper.Sweeper {
	return sweeper.NewSweeper(c.storage, invalidator, c.specs.SweepBatchSize, c.tracer, c.monitor, c.logger)
}

func (c *components) dataPlaneRouter() *dataplane.Router {
	return dataplane.NewRouter(c.storage, c.pools, dataplane.BusinessStores(c.tracer, c.monitor, c.logger), c.tracer, c.monitor, c.logger)
}

func (c *components) migrator() *dataplane.Migrator {
	return dataplane.NewMigrator(
		c.storage,
		c.pools,
		c.provisioner,
		dataplane.BusinessStores(c.tracer, c.monitor, c.logger),
		c.specs.MigrationBatchSize,
		c.tracer, c.monitor, c.logger,
	)
}

// Close releases the clients in reverse order of creation.
func (c *components) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil

	if c.logger != nil {
		_ = c.logger.Desugar().Sync()
	}
}
