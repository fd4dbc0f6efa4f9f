// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

/*
Package cache provides a thread-safe in-memory TTL cache for API responses.

Option lists and chart figures are pure functions of the immutable dataset
and the request parameters, so the API caches them under a key derived from
the normalized request:

	key := cache.GenerateKey("charts:categorical", req)
	if v, ok := c.Get(key); ok {
	    return v.(*dashboard.CategoricalResult)
	}

The cache holds at most its capacity (CACHE_MAX_ENTRIES) entries. Storing
a new key into a full cache evicts the least recently used entry, so
client-controlled keys such as person names cannot grow it without bound.

Every lookup is counted in cache_hits_total or cache_misses_total with the
cache name as the cache_type label. Expired entries are removed lazily on
Get and periodically by RunCleanup, which the supervisor runs as a service.
*/
package cache
