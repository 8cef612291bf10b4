// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

type MonitorInterface interface {
	GetService() string
	SetResponseTimeMetric(map[string]string, float64) error
	SetDependencyAvailability(map[string]string, float64) error
	IncResolutionOutcome(map[string]string) error
	AddSweptGrants(map[string]string, float64) error
	IncMigrationStep(map[string]string) error
	IncNotification(map[string]string) error
}
