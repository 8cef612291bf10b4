// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"time"
)

var _ CacheInterface = (*Tiered)(nil)

// Tiered checks the in-process cache before the shared one and backfills L1 on an L2 hit.
// Writes and deletes go to both levels.
type Tiered struct {
	l1    CacheInterface
	l2    CacheInterface
	l1TTL time.Duration
}

func (t *Tiered) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, found, err := t.l1.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if found {
		return val, true, nil
	}

	val, found, err = t.l2.Get(ctx, key)
	if err != nil || !found {
		return nil, false, err
	}

	_ = t.l1.Set(ctx, key, val, t.l1TTL)
	return val, true, nil
}

// Set keeps L1 entries no longer than l1TTL so that invalidations issued by other replicas
// through L2 are picked up quickly.
func (t *Tiered) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	l1TTL := ttl
	if t.l1TTL > 0 && t.l1TTL < ttl {
		l1TTL = t.l1TTL
	}
	if err := t.l1.Set(ctx, key, value, l1TTL); err != nil {
		return err
	}
	return t.l2.Set(ctx, key, value, ttl)
}

// Delete always clears L1 even when L2 fails.
func (t *Tiered) Delete(ctx context.Context, key string) error {
	_ = t.l1.Delete(ctx, key)
	return t.l2.Delete(ctx, key)
}

func NewTiered(l1, l2 CacheInterface, l1TTL time.Duration) *Tiered {
	return &Tiered{l1: l1, l2: l2, l1TTL: l1TTL}
}
