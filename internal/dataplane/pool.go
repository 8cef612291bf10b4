// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dataplane

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/sync/singleflight"

	"github.com/canonical/tenant-access/internal/db"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
)

// Opener connects to a database described by cfg.
type Opener func(ctx context.Context, cfg db.Config) (db.DBClientInterface, error)

// PoolManager hands out one client per dedicated database, opening each at most once.
type PoolManager struct {
	shared db.DBClientInterface
	base   db.Config
	open   Opener

	mu      sync.RWMutex
	clients map[string]db.DBClientInterface
	sf      singleflight.Group

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Shared returns the client of the multi-tenant database.
func (p *PoolManager) Shared() db.DBClientInterface {
	return p.shared
}

// Dedicated returns the client of database, opening a pool on first use.
func (p *PoolManager) Dedicated(ctx context.Context, database string) (db.DBClientInterface, error) {
	ctx, span := p.tracer.Start(ctx, "dataplane.PoolManager.Dedicated")
	defer span.End()

	p.mu.RLock()
	c, ok := p.clients[database]
	p.mu.RUnlock()
	if ok {
		return c, nil
	}

	v, err, _ := p.sf.Do(database, func() (interface{}, error) {
		p.mu.RLock()
		c, ok := p.clients[database]
		p.mu.RUnlock()
		if ok {
			return c, nil
		}

		dsn, err := DSNForDatabase(p.base.DSN, database)
		if err != nil {
			return nil, err
		}

		cfg := p.base
		cfg.DSN = dsn

		c, err = p.open(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open database %s: %w", database, err)
		}

		p.mu.Lock()
		p.clients[database] = c
		p.mu.Unlock()

		p.logger.Debugf("opened pool for dedicated database %s", database)

		return c, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(db.DBClientInterface), nil
}

// Close releases every dedicated pool, the shared client belongs to the caller.
func (p *PoolManager) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for name, c := range p.clients {
		c.Close()
		delete(p.clients, name)
	}
}

// DSNForDatabase rewrites dsn to point at database, keeping host, credentials and options.
// Both URL and keyword/value DSNs are accepted.
func DSNForDatabase(dsn, database string) (string, error) {
	if database == "" {
		return "", fmt.Errorf("empty database name")
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("invalid DSN: %w", err)
		}
		u.Path = "/" + database
		u.RawPath = ""
		return u.String(), nil
	}

	if _, err := pgconn.ParseConfig(dsn); err != nil {
		return "", fmt.Errorf("invalid DSN: %w", err)
	}

	// later keywords win over earlier ones
	return strings.TrimSpace(dsn) + " dbname='" + strings.ReplaceAll(database, "'", `\'`) + "'", nil
}

func defaultOpener(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) Opener {
	return func(_ context.Context, cfg db.Config) (db.DBClientInterface, error) {
		return db.NewDBClient(cfg, tracer, monitor, logger)
	}
}

// NewPoolManager derives dedicated pools from base, whose DSN must point at the shared database.
func NewPoolManager(shared db.DBClientInterface, base db.Config, opener Opener, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *PoolManager {
	p := new(PoolManager)

	p.shared = shared
	p.base = base
	p.open = opener
	if p.open == nil {
		p.open = defaultOpener(tracer, monitor, logger)
	}
	p.clients = make(map[string]db.DBClientInterface)

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}
