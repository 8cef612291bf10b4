// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrValidation       = errors.New("validation error")
	ErrStoreUnavailable = errors.New("store unavailable")

	ErrTenantNotFound     = fmt.Errorf("tenant %w", ErrNotFound)
	ErrGroupNotFound      = fmt.Errorf("group %w", ErrNotFound)
	ErrMembershipNotFound = fmt.Errorf("membership %w", ErrNotFound)
	ErrGrantNotFound      = fmt.Errorf("grant %w", ErrNotFound)
)

// ValidationError carries the partition of a permission list so callers can report per item.
type ValidationError struct {
	Valid   []string
	Invalid []string
	Reason  string
}

func (e *ValidationError) Error() string {
	if len(e.Invalid) > 0 {
		return fmt.Sprintf("invalid permissions: %s", strings.Join(e.Invalid, ", "))
	}
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}
