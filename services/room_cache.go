package services

import (
	"context"
	"encoding/json"
	"time"

	"stayhub-backend/models"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const availableRoomsKey = "rooms:available"

// AvailabilityCache keeps the available-rooms listing in Redis so the public
// search page doesn't hammer the database. The booking processor invalidates
// it on every occupancy change. A nil cache (or nil client) is a no-op, so
// the backend runs fine without Redis.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func NewAvailabilityCache(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *AvailabilityCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &AvailabilityCache{rdb: rdb, ttl: ttl, log: log}
}

func (c *AvailabilityCache) enabled() bool {
	return c != nil && c.rdb != nil
}

func (c *AvailabilityCache) GetAvailable(ctx context.Context) ([]models.Room, bool) {
	if !c.enabled() {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, availableRoomsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("availability cache read failed")
		}
		return nil, false
	}
	var rooms []models.Room
	if err := json.Unmarshal(raw, &rooms); err != nil {
		c.log.Warn().Err(err).Msg("availability cache payload corrupt, dropping")
		_ = c.rdb.Del(ctx, availableRoomsKey).Err()
		return nil, false
	}
	return rooms, true
}

func (c *AvailabilityCache) SetAvailable(ctx context.Context, rooms []models.Room) {
	if !c.enabled() {
		return
	}
	raw, err := json.Marshal(rooms)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, availableRoomsKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("availability cache write failed")
	}
}

func (c *AvailabilityCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	if err := c.rdb.Del(ctx, availableRoomsKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("availability cache invalidation failed")
	}
}
