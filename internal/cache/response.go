// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// response.go provides a Valkey-backed JSON response cache for the public
// catalog endpoints. Product and category listings change rarely compared
// to how often they are read, so cached payloads skip the DB entirely.
// Admin writes invalidate the affected prefix.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// responseKeyPrefix namespaces cached responses in Valkey.
	responseKeyPrefix = "resp:"

	// DefaultResponseTTL is how long a cached listing stays fresh. Writes
	// invalidate eagerly, so the TTL only bounds staleness after missed
	// invalidations.
	DefaultResponseTTL = 5 * time.Minute
)

// ResponseCache stores serialized JSON payloads for public GET endpoints.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a response cache backed by the given Valkey client.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl == 0 {
		ttl = DefaultResponseTTL
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Get retrieves a cached payload. Returns false on miss or error; cache
// failures must never fail a request.
func (rc *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := rc.client.Get(ctx, responseKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("response cache get error", "key", key, "error", err)
		return nil, false
	}
	return val, true
}

// Set stores a payload with the configured TTL. Best-effort.
func (rc *ResponseCache) Set(ctx context.Context, key string, payload []byte) {
	if err := rc.client.Set(ctx, responseKeyPrefix+key, payload, rc.ttl).Err(); err != nil {
		slog.Warn("response cache set error", "key", key, "error", err)
	}
}

// Invalidate removes every cached response under the given prefix, e.g.
// "products" after a product write. Scans to handle query-string variants.
func (rc *ResponseCache) Invalidate(ctx context.Context, prefix string) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := rc.client.Scan(ctx, cursor, responseKeyPrefix+prefix+"*", 100).Result()
		if err != nil {
			slog.Warn("response cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("response cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Debug("response cache invalidated", "prefix", prefix, "deleted", deleted)
	}
}
