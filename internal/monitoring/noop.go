// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

type NoopMonitor struct {
	service string
}

func (m *NoopMonitor) GetService() string {
	return m.service
}

func (m *NoopMonitor) SetResponseTimeMetric(map[string]string, float64) error {
	return nil
}

func (m *NoopMonitor) SetDependencyAvailability(map[string]string, float64) error {
	return nil
}

func (m *NoopMonitor) IncResolutionOutcome(map[string]string) error {
	return nil
}

func (m *NoopMonitor) AddSweptGrants(map[string]string, float64) error {
	return nil
}

func (m *NoopMonitor) IncMigrationStep(map[string]string) error {
	return nil
}

func (m *NoopMonitor) IncNotification(map[string]string) error {
	return nil
}

func NewNoopMonitor(service string) *NoopMonitor {
	return &NoopMonitor{service: service}
}
