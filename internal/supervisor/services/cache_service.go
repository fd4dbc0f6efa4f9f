// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package services

import (
	"context"
	"time"
)

// CacheCleaner is satisfied by *cache.Cache.
type CacheCleaner interface {
	Name() string
	RunCleanup(ctx context.Context, interval time.Duration) error
}

// CacheCleanupService periodically drops expired response cache entries.
type CacheCleanupService struct {
	cache    CacheCleaner
	interval time.Duration
}

// NewCacheCleanupService wraps c. A non-positive interval uses the cache's
// default sweep interval.
func NewCacheCleanupService(c CacheCleaner, interval time.Duration) *CacheCleanupService {
	return &CacheCleanupService{cache: c, interval: interval}
}

// Serve implements suture.Service.
func (s *CacheCleanupService) Serve(ctx context.Context) error {
	return s.cache.RunCleanup(ctx, s.interval)
}

func (s *CacheCleanupService) String() string {
	return "cache-cleanup:" + s.cache.Name()
}
