// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelscope/internal/metrics"
)

const (
	// DefaultCleanupInterval is how often RunCleanup sweeps expired entries.
	DefaultCleanupInterval = 5 * time.Minute

	// DefaultCapacity bounds caches built with New.
	DefaultCapacity = 10000
)

// Entry represents a cached item with expiration. Entries are linked in
// recency order; head.next is the most recently used.
type Entry struct {
	Data      interface{}
	ExpiresAt time.Time

	key        string
	prev, next *Entry
}

// Cache is a thread-safe, capacity-bounded in-memory cache. Every entry
// carries a TTL; once the cache holds capacity entries, storing a new key
// evicts the least recently used one. Lookups are reported to the
// cache_hits_total and cache_misses_total metrics under the cache name.
type Cache struct {
	name     string
	mu       sync.Mutex
	entries  map[string]*Entry
	head     *Entry
	tail     *Entry
	capacity int
	ttl      time.Duration
	now      func() time.Time
	stats    Stats
}

// Stats tracks cache performance counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// New creates a cache named name (the metrics label) whose entries expire
// after ttl, holding at most DefaultCapacity entries.
//
//	c := cache.New("charts", 10*time.Minute)
//	c.Set(key, result)
//	if v, ok := c.Get(key); ok { ... }
func New(name string, ttl time.Duration) *Cache {
	return NewWithCapacity(name, ttl, DefaultCapacity)
}

// NewWithCapacity is New with an explicit entry limit. A non-positive
// capacity falls back to DefaultCapacity.
func NewWithCapacity(name string, ttl time.Duration, capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache{
		name:     name,
		entries:  make(map[string]*Entry),
		head:     &Entry{},
		tail:     &Entry{},
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// Name returns the metrics label of the cache.
func (c *Cache) Name() string {
	return c.name
}

// Capacity returns the maximum number of entries the cache holds.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Len returns the number of stored entries, expired ones included until
// they are swept.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Get returns the value stored under key if it has not expired and marks
// it most recently used.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	entry, exists := c.entries[key]
	switch {
	case !exists:
		c.stats.Misses++
		c.mu.Unlock()
		metrics.RecordCacheLookup(c.name, false)
		return nil, false
	case c.now().After(entry.ExpiresAt):
		c.remove(entry)
		c.stats.Misses++
		c.stats.Evictions++
		c.mu.Unlock()
		metrics.RecordCacheLookup(c.name, false)
		return nil, false
	}

	c.unlink(entry)
	c.pushFront(entry)
	c.stats.Hits++
	data := entry.Data
	c.mu.Unlock()

	metrics.RecordCacheLookup(c.name, true)
	return data, true
}

// Set stores value under key with the cache TTL.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with a custom TTL, evicting the least
// recently used entries while the cache is over capacity.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(ttl)
	if entry, ok := c.entries[key]; ok {
		entry.Data = value
		entry.ExpiresAt = expiresAt
		c.unlink(entry)
		c.pushFront(entry)
		return
	}

	entry := &Entry{Data: value, ExpiresAt: expiresAt, key: key}
	c.pushFront(entry)
	c.entries[key] = entry

	for len(c.entries) > c.capacity {
		oldest := c.tail.prev
		if oldest == c.head {
			break
		}
		c.remove(oldest)
		c.stats.Evictions++
	}
	c.stats.TotalKeys = int64(len(c.entries))
}

// Delete removes key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[key]; ok {
		c.remove(entry)
		c.stats.Evictions++
	}
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Evictions += int64(len(c.entries))
	c.entries = make(map[string]*Entry)
	c.head.next = c.tail
	c.tail.prev = c.head
	c.stats.TotalKeys = 0
}

// GetStats returns a snapshot of the counters.
func (c *Cache) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// HitRate returns the hit rate as a percentage.
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// RunCleanup sweeps expired entries every interval until ctx is canceled.
// It is run as a supervised service.
func (c *Cache) RunCleanup(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.cleanup()
		}
	}
}

// cleanup walks from the least recently used end and drops expired entries.
func (c *Cache) cleanup() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()

	for entry := c.tail.prev; entry != c.head; {
		prev := entry.prev
		if now.After(entry.ExpiresAt) {
			c.remove(entry)
			c.stats.Evictions++
		}
		entry = prev
	}
	c.stats.LastCleanup = now
}

// List helpers; callers hold c.mu.

func (c *Cache) pushFront(e *Entry) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *Cache) unlink(e *Entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

func (c *Cache) remove(e *Entry) {
	c.unlink(e)
	delete(c.entries, e.key)
	c.stats.TotalKeys = int64(len(c.entries))
}

// GenerateKey creates a cache key from a method name and its parameters.
// Parameters are encoded as JSON and hashed, so equal parameter structs
// always produce the same key.
func GenerateKey(method string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
