// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/types"
)

const defaultBatchSize uint64 = 500

type SweepResult struct {
	GroupGrantsRemoved  int `json:"group_grants_removed"`
	DirectGrantsRemoved int `json:"direct_grants_removed"`
	UsersInvalidated    int `json:"users_invalidated"`
}

// Sweeper removes expired grants and drops the cached permissions of exactly the users they reached.
type Sweeper struct {
	storage     StorageInterface
	invalidator InvalidatorInterface
	batchSize   uint64

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Sweep removes every grant with expires_at <= now in batches.
// Each batch is invalidated as soon as it is removed, so a failure part way returns the
// partial result with the error and the next run picks up the rest.
func (s *Sweeper) Sweep(ctx context.Context) (*SweepResult, error) {
	ctx, span := s.tracer.Start(ctx, "sweeper.Sweeper.Sweep")
	defer span.End()

	now := s.now()
	result := new(SweepResult)

	for {
		expired, err := s.storage.DeleteExpiredGroupPermissions(ctx, now, s.batchSize)
		if err != nil {
			return result, fmt.Errorf("failed to sweep group permissions: %w", err)
		}

		result.GroupGrantsRemoved += len(expired)
		s.swept(types.SourceGroup, len(expired))

		if len(expired) > 0 {
			groupIDs := make([]string, 0, len(expired))
			for _, g := range expired {
				groupIDs = append(groupIDs, g.SourceID)
			}

			members, err := s.storage.ListMembersOfGroups(ctx, groupIDs)
			if err != nil {
				return result, fmt.Errorf("failed to list members of swept groups: %w", err)
			}

			result.UsersInvalidated += s.invalidate(ctx, members)
		}

		if uint64(len(expired)) < s.batchSize {
			break
		}
	}

	for {
		expired, err := s.storage.DeleteExpiredDirectPermissions(ctx, now, s.batchSize)
		if err != nil {
			return result, fmt.Errorf("failed to sweep direct permissions: %w", err)
		}

		result.DirectGrantsRemoved += len(expired)
		s.swept(types.SourceDirect, len(expired))

		keys := make([]types.UserTenant, 0, len(expired))
		for _, g := range expired {
			keys = append(keys, types.UserTenant{UserID: g.UserID, TenantID: g.TenantID})
		}
		result.UsersInvalidated += s.invalidate(ctx, keys)

		if uint64(len(expired)) < s.batchSize {
			break
		}
	}

	if result.GroupGrantsRemoved+result.DirectGrantsRemoved > 0 {
		s.logger.Infof(
			"swept %d group and %d direct expired grants, invalidated %d users",
			result.GroupGrantsRemoved, result.DirectGrantsRemoved, result.UsersInvalidated,
		)
	}

	return result, nil
}

// invalidate drops the cached sets of keys and returns how many distinct keys were targeted.
// Failures only delay visibility, a cached set never outlives its earliest grant expiry.
func (s *Sweeper) invalidate(ctx context.Context, keys []types.UserTenant) int {
	if len(keys) == 0 {
		return 0
	}

	distinct := make(map[types.UserTenant]struct{}, len(keys))
	for _, k := range keys {
		distinct[k] = struct{}{}
	}

	if err := s.invalidator.InvalidateUsers(ctx, keys); err != nil {
		s.logger.Warnf("failed to invalidate permissions after sweep: %v", err)
	}

	return len(distinct)
}

func (s *Sweeper) swept(source types.PermissionSource, n int) {
	if n == 0 {
		return
	}
	if err := s.monitor.AddSweptGrants(map[string]string{"source": string(source)}, float64(n)); err != nil {
		s.logger.Debugf("failed to record swept grants: %v", err)
	}
}

func NewSweeper(
	storage StorageInterface,
	invalidator InvalidatorInterface,
	batchSize uint64,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Sweeper {
	if batchSize == 0 {
		batchSize = defaultBatchSize
	}

	return &Sweeper{
		storage:     storage,
		invalidator: invalidator,
		batchSize:   batchSize,
		now:         time.Now,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}
