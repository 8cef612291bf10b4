// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendTiered = "tiered"
	BackendNone   = "none"
)

type Config struct {
	Backend      string
	L1TTL        time.Duration
	MaxCostBytes int64

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	KeyPrefix     string
}

// Resolve fills in the backend when none was chosen: tiered when a redis server is configured,
// so invalidations reach every replica, memory otherwise.
func (c Config) Resolve() (Config, error) {
	switch c.Backend {
	case "":
		c.Backend = BackendMemory
		if c.RedisAddr != "" {
			c.Backend = BackendTiered
		}
	case BackendRedis, BackendTiered:
		if c.RedisAddr == "" {
			return c, fmt.Errorf("cache backend %q needs a redis address", c.Backend)
		}
	}

	return c, nil
}

// New builds the backend selected by cfg, the returned function releases its resources.
func New(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (CacheInterface, func(), error) {
	cfg, err := cfg.Resolve()
	if err != nil {
		return nil, nil, err
	}

	if cfg.Backend == BackendMemory {
		logger.Warn("Using the in-process permission cache, invalidations do not reach other replicas")
	}

	newRedis := func() *Redis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return NewRedis(client, cfg.KeyPrefix, tracer, monitor, logger)
	}

	switch cfg.Backend {
	case BackendNone:
		return NewNoop(), func() {}, nil
	case BackendMemory:
		m, err := NewMemory(cfg.MaxCostBytes)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create memory cache: %w", err)
		}
		return m, m.Close, nil
	case BackendRedis:
		r := newRedis()
		return r, func() { _ = r.Close() }, nil
	case BackendTiered:
		m, err := NewMemory(cfg.MaxCostBytes)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create memory cache: %w", err)
		}
		r := newRedis()
		return NewTiered(m, r, cfg.L1TTL), func() { m.Close(); _ = r.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
