// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dataplane

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/canonical/tenant-access/internal/db"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
)

func testClient(database string) *db.DBClient {
	return db.NewDBClientFromDB(nil, database, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func newTestPoolManager(opener Opener) *PoolManager {
	return NewPoolManager(
		testClient("business"),
		db.Config{DSN: "postgres://app:secret@db:5432/business?sslmode=disable"},
		opener,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test"),
		logging.NewNoopLogger(),
	)
}

func TestDSNForDatabase(t *testing.T) {
	tests := []struct {
		name      string
		dsn       string
		database  string
		want      string
		expectErr bool
	}{
		{
			name:     "url dsn keeps credentials and options",
			dsn:      "postgres://app:secret@db:5432/business?sslmode=disable",
			database: "tenant_acme",
			want:     "postgres://app:secret@db:5432/tenant_acme?sslmode=disable",
		},
		{
			name:     "postgresql scheme",
			dsn:      "postgresql://db/business",
			database: "tenant_big_co",
			want:     "postgresql://db/tenant_big_co",
		},
		{
			name:     "keyword dsn gets an overriding dbname",
			dsn:      "host=db user=app dbname=business",
			database: "tenant_acme",
			want:     "host=db user=app dbname=business dbname='tenant_acme'",
		},
		{
			name:      "empty database",
			dsn:       "postgres://db/business",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DSNForDatabase(tt.dsn, tt.database)

			if tt.expectErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPoolManagerOpensEachDatabaseOnce(t *testing.T) {
	var opened atomic.Int32
	var gotDSN atomic.Value

	p := newTestPoolManager(func(_ context.Context, cfg db.Config) (db.DBClientInterface, error) {
		opened.Add(1)
		gotDSN.Store(cfg.DSN)
		return testClient("tenant_acme"), nil
	})

	var wg sync.WaitGroup
	clients := make([]db.DBClientInterface, 8)
	for i := range clients {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := p.Dedicated(context.Background(), "tenant_acme")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			clients[i] = c
		}(i)
	}
	wg.Wait()

	if n := opened.Load(); n != 1 {
		t.Fatalf("expected a single open, got %d", n)
	}
	for _, c := range clients[1:] {
		if c != clients[0] {
			t.Fatal("expected every caller to share the same client")
		}
	}
	if dsn := gotDSN.Load().(string); dsn != "postgres://app:secret@db:5432/tenant_acme?sslmode=disable" {
		t.Errorf("unexpected DSN %q", dsn)
	}
	if clients[0] == p.Shared() {
		t.Error("expected the dedicated client to differ from the shared one")
	}
}

func TestPoolManagerOpenFailureIsRetried(t *testing.T) {
	calls := 0
	p := newTestPoolManager(func(_ context.Context, cfg db.Config) (db.DBClientInterface, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("database \"tenant_acme\" does not exist")
		}
		return testClient("tenant_acme"), nil
	})

	if _, err := p.Dedicated(context.Background(), "tenant_acme"); err == nil {
		t.Fatal("expected the first open to fail")
	}

	c, err := p.Dedicated(context.Background(), "tenant_acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Database() != "tenant_acme" {
		t.Errorf("expected tenant_acme, got %s", c.Database())
	}

	p.Close()

	if _, err := p.Dedicated(context.Background(), "tenant_acme"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected Close to drop cached pools, got %d opens", calls)
	}
}
