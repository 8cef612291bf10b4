// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
)

func newMockClient(t *testing.T) (*DBClient, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return NewDBClientFromDB(conn, "shared", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()), mock
}

func TestWithTx_CommitRunsOnCommitCallbacks(t *testing.T) {
	c, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tenants").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	called := false
	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := c.Statement(ctx).Update("tenants").Set("status", "active").ExecContext(ctx); err != nil {
			return err
		}
		OnCommit(ctx, func() { called = true })
		if called {
			t.Error("callback must not run before commit")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected callback to run after commit")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestWithTx_RollbackDropsOnCommitCallbacks(t *testing.T) {
	c, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tenants").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	called := false
	failure := errors.New("handler failed")
	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := c.Statement(ctx).Update("tenants").Set("status", "active").ExecContext(ctx); err != nil {
			return err
		}
		OnCommit(ctx, func() { called = true })
		return failure
	})

	if !errors.Is(err, failure) {
		t.Fatalf("expected handler error, got %v", err)
	}
	if called {
		t.Error("callback must not run on rollback")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestOnCommit_WithoutTransactionRunsImmediately(t *testing.T) {
	called := false
	OnCommit(context.Background(), func() { called = true })

	if !called {
		t.Error("expected callback to run immediately")
	}
}

func TestPagination(t *testing.T) {
	if got := Offset(0, 10); got != 0 {
		t.Errorf("expected offset 0, got %d", got)
	}
	if got := Offset(3, 10); got != 20 {
		t.Errorf("expected offset 20, got %d", got)
	}
	if got := PageSize(0); got != defaultPageSize {
		t.Errorf("expected default page size, got %d", got)
	}
}

func TestWithoutTx_DetachesFromTransaction(t *testing.T) {
	c, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tenants").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := c.Statement(ctx).Update("tenants").Set("status", "active").ExecContext(ctx); err != nil {
			return err
		}

		detached := WithoutTx(ctx)
		if lazyTxFromContext(detached) != nil || TxFromContext(detached) != nil {
			t.Error("expected no transaction in the detached context")
		}

		ran := false
		OnCommit(detached, func() { ran = true })
		if !ran {
			t.Error("expected the callback to run immediately outside the transaction")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
