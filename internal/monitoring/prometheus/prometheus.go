// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime       *prometheus.HistogramVec
	dependencies       *prometheus.GaugeVec
	resolutionOutcomes *prometheus.CounterVec
	sweptGrants        *prometheus.CounterVec
	migrationSteps     *prometheus.CounterVec
	notifications      *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(m.labels(tags, "route", "status")).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencies == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencies.With(m.labels(tags, "component")).Set(value)

	return nil
}

func (m *Monitor) IncResolutionOutcome(tags map[string]string) error {
	if m.resolutionOutcomes == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.resolutionOutcomes.With(m.labels(tags, "outcome")).Inc()

	return nil
}

func (m *Monitor) AddSweptGrants(tags map[string]string, value float64) error {
	if m.sweptGrants == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.sweptGrants.With(m.labels(tags, "source")).Add(value)

	return nil
}

func (m *Monitor) IncMigrationStep(tags map[string]string) error {
	if m.migrationSteps == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.migrationSteps.With(m.labels(tags, "collection", "result")).Inc()

	return nil
}

func (m *Monitor) IncNotification(tags map[string]string) error {
	if m.notifications == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.notifications.With(m.labels(tags, "status")).Inc()

	return nil
}

// labels keeps only the expected keys so a stray tag never panics the vector lookup.
func (m *Monitor) labels(tags map[string]string, keys ...string) prometheus.Labels {
	l := prometheus.Labels{"service": m.service}
	for _, k := range keys {
		l[k] = tags[k]
	}
	return l
}

func (m *Monitor) register(c prometheus.Collector) {
	if err := prometheus.Register(c); err != nil {
		m.logger.Debugf("metric already registered: %v", err)
	}
}

func (m *Monitor) registerMetrics() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_time_seconds",
			Help: "http_response_time_seconds",
		},
		[]string{"route", "status", "service"},
	)
	m.dependencies = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "dependency_available",
		},
		[]string{"component", "service"},
	)
	m.resolutionOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "permission_resolutions_total",
			Help: "effective permission resolutions by outcome",
		},
		[]string{"outcome", "service"},
	)
	m.sweptGrants = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "expired_grants_swept_total",
			Help: "expired permission grants removed by the sweeper",
		},
		[]string{"source", "service"},
	)
	m.migrationSteps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataplane_migration_steps_total",
			Help: "data plane migration collection steps by result",
		},
		[]string{"collection", "result", "service"},
	)
	m.notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "expiration_notifications_total",
			Help: "expiration notification deliveries by status",
		},
		[]string{"status", "service"},
	)

	m.register(m.responseTime)
	m.register(m.dependencies)
	m.register(m.resolutionOutcomes)
	m.register(m.sweptGrants)
	m.register(m.migrationSteps)
	m.register(m.notifications)
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerMetrics()

	return m
}
