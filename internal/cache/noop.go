// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"time"
)

var _ CacheInterface = (*Noop)(nil)

// Noop never stores anything, every read is a miss.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (Noop) Delete(context.Context, string) error { return nil }

func NewNoop() *Noop {
	return new(Noop)
}
