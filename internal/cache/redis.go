// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
)

var _ CacheInterface = (*Redis)(nil)

// Redis is the shared L2 cache, all keys are namespaced with prefix.
type Redis struct {
	client *redis.Client
	prefix string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *Redis) key(k string) string {
	if r.prefix == "" {
		return k
	}
	return r.prefix + ":" + k
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, span := r.tracer.Start(ctx, "cache.Redis.Get")
	defer span.End()

	b, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		r.setAvailability(0)
		return nil, false, err
	}

	return b, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ctx, span := r.tracer.Start(ctx, "cache.Redis.Set")
	defer span.End()

	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		r.setAvailability(0)
		return err
	}

	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	ctx, span := r.tracer.Start(ctx, "cache.Redis.Delete")
	defer span.End()

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.setAvailability(0)
		return err
	}

	return nil
}

// Ping checks the connection and records the availability of redis.
func (r *Redis) Ping(ctx context.Context) error {
	err := r.client.Ping(ctx).Err()
	if err != nil {
		r.setAvailability(0)
		return err
	}
	r.setAvailability(1)
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) setAvailability(v float64) {
	if err := r.monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, v); err != nil {
		r.logger.Debugf("failed to record redis availability: %v", err)
	}
}

// NewRedis wraps an existing client, the caller keeps ownership of its options.
func NewRedis(client *redis.Client, prefix string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Redis {
	r := new(Redis)

	r.client = client
	r.prefix = prefix

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
