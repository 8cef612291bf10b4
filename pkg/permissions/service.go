// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/canonical/tenant-access/internal/cache"
	"github.com/canonical/tenant-access/internal/db"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/internal/types"
)

const (
	outcomeAllowed          = "allowed"
	outcomeEmpty            = "empty"
	outcomeStoreUnavailable = "store_unavailable"
)

// cacheEntry is the cached form of an effective permission set.
// ValidUntil is the earliest expiry among the grants that contributed to it, Generation is
// the generation of the key read before the grants were.
type cacheEntry struct {
	Permissions map[string][]string `json:"permissions"`
	ValidUntil  *time.Time          `json:"valid_until,omitempty"`
	Generation  string              `json:"generation,omitempty"`
}

// CacheKey identifies the cached permission set of a user in a tenant.
func CacheKey(userID, tenantID string) string {
	return "perms:" + tenantID + ":" + userID
}

// generationKey holds a token replaced on every invalidation of the user's set. An entry
// is only served while its generation is the current one, so a set resolved before an
// invalidation and written after it is never read.
func generationKey(userID, tenantID string) string {
	return "perms-gen:" + tenantID + ":" + userID
}

type Service struct {
	storage  StorageInterface
	cache    cache.CacheInterface
	cacheTTL time.Duration

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Resolve computes the effective permissions of a user in a tenant.
// Any failure to read grants yields an empty set, access is never granted on error.
func (s *Service) Resolve(ctx context.Context, userID, tenantID string) types.EffectivePermissions {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.Resolve")
	defer span.End()

	perms, err := s.ResolveDetailed(ctx, userID, tenantID)
	if err != nil {
		s.logger.Errorf("permission store unavailable, denying access for user %s in tenant %s: %v", userID, tenantID, err)
		return types.EffectivePermissions{}
	}

	return perms
}

// ResolveDetailed is Resolve for callers that must tell a store failure apart from an empty set.
func (s *Service) ResolveDetailed(ctx context.Context, userID, tenantID string) (types.EffectivePermissions, error) {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.ResolveDetailed")
	defer span.End()

	now := s.now()
	key := CacheKey(userID, tenantID)

	generation, cacheable := s.generation(ctx, userID, tenantID)
	if cacheable {
		if perms, ok := s.fromCache(ctx, key, generation, now); ok {
			s.recordOutcome(perms)
			return perms, nil
		}
	}

	var direct, group []*types.AppPermission

	g, gctx := errgroup.WithContext(db.WithoutTx(ctx))
	g.Go(func() error {
		var err error
		direct, err = s.storage.ListDirectPermissions(gctx, tenantID, userID)
		return err
	})
	g.Go(func() error {
		var err error
		group, err = s.storage.ListGroupPermissionsForUser(gctx, tenantID, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		s.outcome(outcomeStoreUnavailable)
		if !errors.Is(err, types.ErrStoreUnavailable) {
			err = fmt.Errorf("%w: %w", types.ErrStoreUnavailable, err)
		}
		return types.EffectivePermissions{}, err
	}

	perms := types.EffectivePermissions{}
	var validUntil *time.Time

	for _, grants := range [][]*types.AppPermission{direct, group} {
		for _, p := range grants {
			if p.Expired(now) {
				continue
			}

			perms.Add(p.AppID, p.Permissions...)

			if p.ExpiresAt != nil && (validUntil == nil || p.ExpiresAt.Before(*validUntil)) {
				validUntil = p.ExpiresAt
			}
		}
	}

	if cacheable {
		s.toCache(ctx, key, cacheEntry{Permissions: perms.Map(), ValidUntil: validUntil, Generation: generation}, now)
	}
	s.recordOutcome(perms)

	return perms, nil
}

func (s *Service) HasPermission(ctx context.Context, userID, tenantID, appID, permission string) bool {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.HasPermission")
	defer span.End()

	return s.Resolve(ctx, userID, tenantID).Has(appID, permission)
}

func (s *Service) HasAnyPermission(ctx context.Context, userID, tenantID, appID string, permissions []string) bool {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.HasAnyPermission")
	defer span.End()

	return s.Resolve(ctx, userID, tenantID).HasAny(appID, permissions...)
}

// HasAllPermissions is false for an empty permission list.
func (s *Service) HasAllPermissions(ctx context.Context, userID, tenantID, appID string, permissions []string) bool {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.HasAllPermissions")
	defer span.End()

	return s.Resolve(ctx, userID, tenantID).HasAll(appID, permissions...)
}

// AccessibleApps lists the apps the user holds at least one permission on, sorted.
func (s *Service) AccessibleApps(ctx context.Context, userID, tenantID string) []string {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.AccessibleApps")
	defer span.End()

	return s.Resolve(ctx, userID, tenantID).Apps()
}

func (s *Service) InvalidateUser(ctx context.Context, userID, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.InvalidateUser")
	defer span.End()

	if err := s.invalidate(ctx, userID, tenantID); err != nil {
		return fmt.Errorf("failed to invalidate permissions of user %s in tenant %s: %w", userID, tenantID, err)
	}

	return nil
}

// InvalidateUsers drops the cached sets of every key, it keeps going on failure and returns the joined errors.
func (s *Service) InvalidateUsers(ctx context.Context, keys []types.UserTenant) error {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.InvalidateUsers")
	defer span.End()

	seen := make(map[types.UserTenant]struct{}, len(keys))
	var errs []error

	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}

		if err := s.invalidate(ctx, k.UserID, k.TenantID); err != nil {
			errs = append(errs, fmt.Errorf("user %s in tenant %s: %w", k.UserID, k.TenantID, err))
		}
	}

	return errors.Join(errs...)
}

// invalidate moves the user to a new generation before dropping the cached set. The
// generation outlives every entry written under the previous one.
func (s *Service) invalidate(ctx context.Context, userID, tenantID string) error {
	var errs []error

	if err := s.cache.Set(ctx, generationKey(userID, tenantID), []byte(uuid.NewString()), 2*s.cacheTTL); err != nil {
		errs = append(errs, err)
	}
	if err := s.cache.Delete(ctx, CacheKey(userID, tenantID)); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// generation returns the current generation of the user's set, false when it cannot be
// read and the cache must be bypassed.
func (s *Service) generation(ctx context.Context, userID, tenantID string) (string, bool) {
	raw, _, err := s.cache.Get(ctx, generationKey(userID, tenantID))
	if err != nil {
		s.logger.Warnf("permission cache generation read failed for user %s in tenant %s: %v", userID, tenantID, err)
		return "", false
	}

	return string(raw), true
}

func (s *Service) fromCache(ctx context.Context, key, generation string, now time.Time) (types.EffectivePermissions, bool) {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warnf("permission cache read failed for %s: %v", key, err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		s.logger.Warnf("discarding malformed permission cache entry %s: %v", key, err)
		return nil, false
	}

	// invalidated since it was resolved
	if entry.Generation != generation {
		return nil, false
	}

	// a grant contributing to this entry has expired since it was cached
	if entry.ValidUntil != nil && !now.Before(*entry.ValidUntil) {
		return nil, false
	}

	return types.EffectivePermissionsFromMap(entry.Permissions), true
}

func (s *Service) toCache(ctx context.Context, key string, entry cacheEntry, now time.Time) {
	ttl := s.cacheTTL
	if entry.ValidUntil != nil {
		if remaining := entry.ValidUntil.Sub(now); remaining < ttl {
			ttl = remaining
		}
	}
	if ttl <= 0 {
		return
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		s.logger.Warnf("failed to encode permission cache entry %s: %v", key, err)
		return
	}

	if err := s.cache.Set(ctx, key, raw, ttl); err != nil {
		s.logger.Warnf("permission cache write failed for %s: %v", key, err)
	}
}

func (s *Service) recordOutcome(perms types.EffectivePermissions) {
	if len(perms.Apps()) == 0 {
		s.outcome(outcomeEmpty)
		return
	}
	s.outcome(outcomeAllowed)
}

func (s *Service) outcome(o string) {
	if err := s.monitor.IncResolutionOutcome(map[string]string{"outcome": o}); err != nil {
		s.logger.Debugf("failed to record resolution outcome: %v", err)
	}
}

func NewService(
	storage StorageInterface,
	c cache.CacheInterface,
	cacheTTL time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		cache:    c,
		cacheTTL: cacheTTL,
		now:      time.Now,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
