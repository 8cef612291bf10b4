// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestDebugLogger(t *testing.T) {
	l := NewLogger("DEBUG")
	if l.Level().String() != "debug" {
		t.Errorf("expected debug level, got %s", l.Level())
	}
}

func TestInvalidLevel(t *testing.T) {
	l := NewLogger("invalid")
	if l.Level().String() != "error" {
		t.Errorf("expected fallback to error level, got %s", l.Level())
	}
}

func TestNoopLoggerSecurity(t *testing.T) {
	l := NewNoopLogger()

	l.Security().SystemStartup()
	l.Security().AuthzFailure("user-1", "tenant:acme")
	l.Security().AdminAction("user-1", "delete_group", "group:1")
	l.Security().SystemShutdown()
}

func TestObservedLoggerSecurityEvents(t *testing.T) {
	l, logs := NewObservedLogger(zapcore.InfoLevel)

	l.Security().AuthzFailure("user-1", "tenant:acme")
	l.Security().AdminAction("cli", "migrate_tenant_data_plane", "t1")
	l.Debug("dropped below the level")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	testCases := []struct {
		message string
		event   string
		level   zapcore.Level
	}{
		{message: "authorization failure", event: "authz_fail:user-1,tenant:acme", level: zapcore.WarnLevel},
		{message: "administrative action", event: "admin_action:cli,migrate_tenant_data_plane,t1", level: zapcore.InfoLevel},
	}

	for i, tc := range testCases {
		fields := entries[i].ContextMap()

		if entries[i].Message != tc.message || entries[i].Level != tc.level {
			t.Errorf("unexpected entry %d: %s at %s", i, entries[i].Message, entries[i].Level)
		}
		if fields["event"] != tc.event {
			t.Errorf("expected event %q, got %v", tc.event, fields["event"])
		}
		if fields["security"] != true || fields["appid"] != securityAppID {
			t.Errorf("expected the security markers on %q, got %v", tc.message, fields)
		}
	}
}
