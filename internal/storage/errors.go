// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/canonical/tenant-access/internal/types"
)

// Sentinel errors for storage operations, they wrap the service level taxonomy.
var (
	ErrNotFound            = fmt.Errorf("resource %w", types.ErrNotFound)
	ErrDuplicateKey        = fmt.Errorf("duplicate key violation: %w", types.ErrConflict)
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrUnavailable         = fmt.Errorf("database: %w", types.ErrStoreUnavailable)
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeUniqueViolation
	}
	return false
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeForeignKeyViolation
	}
	return false
}

// IsNoRows checks both the pgx and the database/sql flavours of an empty result.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

// IsUnavailableError reports transport level faults: the database could not be reached or
// did not answer in time. These are retryable and distinct from a definitive answer.
func IsUnavailableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// WrapDuplicateKeyError wraps a duplicate key error with context about which constraint was violated.
func WrapDuplicateKeyError(err error, context string) error {
	if !IsDuplicateKeyError(err) {
		return err
	}
	return fmt.Errorf("%s: %w", context, ErrDuplicateKey)
}

// WrapForeignKeyError wraps a foreign key violation with context.
func WrapForeignKeyError(err error, context string) error {
	if !IsForeignKeyViolation(err) {
		return err
	}
	return fmt.Errorf("%s: %w", context, ErrForeignKeyViolation)
}

// wrapError classifies a raw driver error into the storage sentinels.
func wrapError(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case IsNoRows(err):
		return fmt.Errorf("%s: %w", msg, ErrNotFound)
	case IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", msg, ErrDuplicateKey)
	case IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", msg, ErrForeignKeyViolation)
	case IsUnavailableError(err):
		return fmt.Errorf("%s: %w: %w", msg, ErrUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}

// WrapError classifies err into the storage sentinels for callers running their own statements.
func WrapError(err error, msg string) error {
	return wrapError(err, msg)
}
