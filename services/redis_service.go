package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const DefaultCacheTTL = 10 * time.Minute

// BookingCache is a read-through JSON cache in Redis. A nil client disables it.
type BookingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewBookingCache(rdb *redis.Client, ttl time.Duration) *BookingCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &BookingCache{rdb: rdb, ttl: ttl}
}

// Enabled reports whether a Redis client is configured
func (c *BookingCache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Get loads key into target. It reports false on a miss.
func (c *BookingCache) Get(ctx context.Context, key string, target interface{}) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}
	cached, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(cached, target); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores value under key for the cache TTL
func (c *BookingCache) Set(ctx context.Context, key string, value interface{}) error {
	if !c.Enabled() {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.ttl).Err()
}

// Version returns the current version of a cached list. Lists are stored
// under VersionedKey so a fill racing with Invalidate lands on a version no
// reader asks for.
func (c *BookingCache) Version(ctx context.Context, key string) (int64, error) {
	if !c.Enabled() {
		return 0, nil
	}
	v, err := c.rdb.Get(ctx, versionKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// Invalidate bumps the version of every key, orphaning the cached entries
func (c *BookingCache) Invalidate(ctx context.Context, keys ...string) error {
	if !c.Enabled() || len(keys) == 0 {
		return nil
	}
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range keys {
			pipe.Incr(ctx, versionKey(key))
		}
		return nil
	})
	return err
}

// VersionedKey is where the list key is stored at version
func VersionedKey(key string, version int64) string {
	return fmt.Sprintf("%s:v%d", key, version)
}

func versionKey(key string) string { return key + ":version" }

func userBookingsKey(userID string) string   { return "bookings:user:" + userID }
func ownerBookingsKey(ownerID string) string { return "bookings:owner:" + ownerID }

const allBookingsKey = "bookings:all"
