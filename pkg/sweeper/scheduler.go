// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/pkg/notifications"
)

const jobTimeout = 2 * time.Minute

// cronLogger routes cron's own messages through the service logger.
type cronLogger struct {
	logger logging.LoggerInterface
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugf("cron: %s %v", msg, keysAndValues)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorf("cron: %s %v: %v", msg, keysAndValues, err)
}

// Scheduler runs the expiry sweep and the notification dispatch on cron schedules.
// A run still in progress when its next tick fires makes that tick a no-op.
type Scheduler struct {
	cron       *cron.Cron
	sweeper    SweeperInterface
	dispatcher notifications.DispatcherInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for the running ones until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "sweeper.Scheduler.sweep")
	defer span.End()

	if _, err := s.sweeper.Sweep(ctx); err != nil {
		s.logger.Errorf("expired grant sweep failed: %v", err)
	}
}

func (s *Scheduler) dispatch() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "sweeper.Scheduler.dispatch")
	defer span.End()

	if _, err := s.dispatcher.DispatchDue(ctx, time.Now()); err != nil {
		s.logger.Errorf("notification dispatch failed: %v", err)
	}
}

// NewScheduler registers the jobs, an empty spec disables the matching job.
func NewScheduler(
	sweeper SweeperInterface,
	dispatcher notifications.DispatcherInterface,
	sweepSpec, notifySpec string,
	tracer tracing.TracingInterface,
	logger logging.LoggerInterface,
) (*Scheduler, error) {
	l := cronLogger{logger: logger}

	s := &Scheduler{
		cron:       cron.New(cron.WithLogger(l), cron.WithChain(cron.Recover(l), cron.SkipIfStillRunning(l))),
		sweeper:    sweeper,
		dispatcher: dispatcher,
		tracer:     tracer,
		logger:     logger,
	}

	if sweepSpec != "" {
		if _, err := s.cron.AddFunc(sweepSpec, s.sweep); err != nil {
			return nil, fmt.Errorf("invalid sweep schedule %q: %w", sweepSpec, err)
		}
	}

	if notifySpec != "" && dispatcher != nil {
		if _, err := s.cron.AddFunc(notifySpec, s.dispatch); err != nil {
			return nil, fmt.Errorf("invalid notification schedule %q: %w", notifySpec, err)
		}
	}

	return s, nil
}
