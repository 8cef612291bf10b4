// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/canonical/tenant-access/internal/logging"
)

func TestTransactionMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		status    int
		write     bool
		setupMock func(sqlmock.Sqlmock)
		committed bool
	}{
		{
			name:   "successful mutation commits",
			method: http.MethodPost,
			status: http.StatusCreated,
			write:  true,
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("UPDATE tenant_groups").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
			committed: true,
		},
		{
			name:   "failed mutation rolls back",
			method: http.MethodDelete,
			status: http.StatusConflict,
			write:  true,
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("UPDATE tenant_groups").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectRollback()
			},
		},
		{
			name:      "mutation without statements opens no transaction",
			method:    http.MethodPut,
			status:    http.StatusBadRequest,
			setupMock: func(sqlmock.Sqlmock) {},
		},
		{
			name:   "reads run outside a transaction",
			method: http.MethodGet,
			status: http.StatusOK,
			write:  true,
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE tenant_groups").WillReturnResult(sqlmock.NewResult(0, 1))
			},
			committed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mock := newMockClient(t)
			tt.setupMock(mock)

			committed := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctx := r.Context()
				if tt.write {
					if _, err := c.Statement(ctx).Update("tenant_groups").Set("name", "sales").ExecContext(ctx); err != nil {
						t.Errorf("unexpected error: %v", err)
					}
				}
				OnCommit(ctx, func() { committed = true })
				w.WriteHeader(tt.status)
			})

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/api/v0/tenants/t1/groups", nil)

			TransactionMiddleware(c, logging.NewNoopLogger())(handler).ServeHTTP(rr, req)

			if rr.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, rr.Code)
			}
			if tt.write && committed != tt.committed {
				t.Fatalf("expected committed %v, got %v", tt.committed, committed)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}
