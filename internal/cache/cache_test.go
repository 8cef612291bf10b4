// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedis(client, "test", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()), mr
}

func TestRedisRoundTrip(t *testing.T) {
	r, mr := newTestRedis(t)
	ctx := context.Background()

	if _, ok, err := r.Get(ctx, "k"); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	if err := r.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !mr.Exists("test:k") {
		t.Fatal("expected key to be namespaced with the prefix")
	}

	val, ok, err := r.Get(ctx, "k")
	if err != nil || !ok || string(val) != "v" {
		t.Fatalf("expected hit with v, got %q ok=%v err=%v", val, ok, err)
	}

	if err := r.Delete(ctx, "k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok, _ := r.Get(ctx, "k"); ok {
		t.Error("expected miss after delete")
	}
}

func TestRedisTTL(t *testing.T) {
	r, mr := newTestRedis(t)
	ctx := context.Background()

	if err := r.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, ok, _ := r.Get(ctx, "k"); ok {
		t.Error("expected entry to expire")
	}
}

func TestRedisUnavailable(t *testing.T) {
	r, mr := newTestRedis(t)
	mr.Close()

	if _, _, err := r.Get(context.Background(), "k"); err == nil {
		t.Error("expected an error when redis is down")
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	m, err := NewMemory(1 << 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer m.Close()

	ctx := context.Background()

	if err := m.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	val, ok, err := m.Get(ctx, "k")
	if err != nil || !ok || string(val) != "v" {
		t.Fatalf("expected hit with v, got %q ok=%v err=%v", val, ok, err)
	}

	_ = m.Delete(ctx, "k")
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Error("expected miss after delete")
	}
}

func TestTieredBackfillsL1(t *testing.T) {
	l1, err := NewMemory(1 << 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer l1.Close()

	l2, _ := newTestRedis(t)
	c := NewTiered(l1, l2, time.Minute)
	ctx := context.Background()

	if err := l2.Set(ctx, "k", []byte("v"), time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	val, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || string(val) != "v" {
		t.Fatalf("expected L2 hit, got %q ok=%v err=%v", val, ok, err)
	}

	if _, ok, _ := l1.Get(ctx, "k"); !ok {
		t.Error("expected L1 backfill")
	}
}

func TestTieredDeleteClearsBothLevels(t *testing.T) {
	l1, err := NewMemory(1 << 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer l1.Close()

	l2, _ := newTestRedis(t)
	c := NewTiered(l1, l2, time.Minute)
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok, _ := l1.Get(ctx, "k"); ok {
		t.Error("expected L1 miss")
	}
	if _, ok, _ := l2.Get(ctx, "k"); ok {
		t.Error("expected L2 miss")
	}
}

func TestNewUnknownBackend(t *testing.T) {
	_, _, err := New(Config{Backend: "memcached"}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	if err == nil {
		t.Error("expected an error for an unknown backend")
	}
}

func TestConfigResolve(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       Config
		backend   string
		expectErr bool
	}{
		{name: "memory without redis", cfg: Config{}, backend: BackendMemory},
		{name: "tiered when redis is configured", cfg: Config{RedisAddr: "redis:6379"}, backend: BackendTiered},
		{name: "explicit memory is kept", cfg: Config{Backend: BackendMemory, RedisAddr: "redis:6379"}, backend: BackendMemory},
		{name: "explicit none is kept", cfg: Config{Backend: BackendNone}, backend: BackendNone},
		{name: "redis without an address", cfg: Config{Backend: BackendRedis}, expectErr: true},
		{name: "tiered without an address", cfg: Config{Backend: BackendTiered}, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := tc.cfg.Resolve()

			if tc.expectErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Backend != tc.backend {
				t.Errorf("expected backend %s, got %s", tc.backend, cfg.Backend)
			}
		})
	}
}

func TestNewTieredFromRedisAddress(t *testing.T) {
	mr := miniredis.RunT(t)

	c, closeCache, err := New(
		Config{RedisAddr: mr.Addr(), KeyPrefix: "test", L1TTL: time.Second, MaxCostBytes: 1 << 20},
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeCache()

	if _, ok := c.(*Tiered); !ok {
		t.Fatalf("expected a tiered cache, got %T", c)
	}

	if err := c.Set(context.Background(), "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !mr.Exists("test:k") {
		t.Errorf("expected the value in redis, keys %v", mr.Keys())
	}
}
