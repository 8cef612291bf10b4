// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// NewNoopLogger discards every entry, security events included.
func NewNoopLogger() *Logger {
	return newLogger(zap.NewNop())
}

// NewObservedLogger keeps every entry at or above lvl in memory so security events can be
// asserted on.
func NewObservedLogger(lvl zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(lvl)
	return newLogger(zap.New(core)), logs
}
