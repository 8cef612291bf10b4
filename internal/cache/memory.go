// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

var _ CacheInterface = (*Memory)(nil)

// Memory is the in-process L1 cache.
type Memory struct {
	c *ristretto.Cache[string, []byte]
}

// Get retrieves a value, ristretto drops entries past their TTL on read.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	val, found := m.c.Get(key)
	if !found {
		return nil, false, nil
	}
	return val, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.c.SetWithTTL(key, value, int64(len(value)), ttl)
	// make the write visible to the next Get
	m.c.Wait()
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.c.Del(key)
	return nil
}

func (m *Memory) Close() {
	m.c.Close()
}

// NewMemory creates a ristretto backed cache bounded to maxCostBytes of values.
func NewMemory(maxCostBytes int64) (*Memory, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: max(maxCostBytes/100*10, 1000),
		MaxCost:     maxCostBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Memory{c: c}, nil
}
