// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/canonical/tenant-access/internal/logging"
)

func TestMonitorCounters(t *testing.T) {
	m := NewMonitor("tenant-access-test", logging.NewNoopLogger())

	if err := m.IncResolutionOutcome(map[string]string{"outcome": "store_unavailable"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.AddSweptGrants(map[string]string{"source": "group", "unexpected": "x"}, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := testutil.ToFloat64(m.resolutionOutcomes.WithLabelValues("store_unavailable", "tenant-access-test"))
	if got != 1 {
		t.Errorf("expected 1 resolution, got %v", got)
	}

	got = testutil.ToFloat64(m.sweptGrants.WithLabelValues("group", "tenant-access-test"))
	if got != 3 {
		t.Errorf("expected 3 swept grants, got %v", got)
	}
}

func TestMonitorUninitialised(t *testing.T) {
	m := new(Monitor)

	if err := m.SetResponseTimeMetric(nil, 1); err == nil {
		t.Error("expected error for uninitialised metric")
	}
	if err := m.IncMigrationStep(nil); err == nil {
		t.Error("expected error for uninitialised metric")
	}
}

func TestMonitorNotifications(t *testing.T) {
	m := NewMonitor("tenant-access-notify-test", logging.NewNoopLogger())

	for range 2 {
		if err := m.IncNotification(map[string]string{"status": "sent"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got := testutil.ToFloat64(m.notifications.WithLabelValues("sent", "tenant-access-notify-test"))
	if got != 2 {
		t.Errorf("expected 2 notifications, got %v", got)
	}
}
