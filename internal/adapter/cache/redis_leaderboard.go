package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"greencampus/internal/domain/entity"
	"greencampus/pkg/logger"
)

const leaderboardKey = "leaderboard:top"

// RedisLeaderboardCache keeps the rendered leaderboard in Redis for a short
// TTL. A cache failure is never surfaced; callers fall through to Firestore.
type RedisLeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLeaderboardCache(addr, password string, ttl time.Duration) *RedisLeaderboardCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	return &RedisLeaderboardCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisLeaderboardCache) Get(ctx context.Context) ([]entity.LeaderboardEntry, bool) {
	payload, err := c.client.Get(ctx, leaderboardKey).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Leaderboard cache read failed: %v", err)
		}
		return nil, false
	}

	var entries []entity.LeaderboardEntry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		logger.Warn("Leaderboard cache payload invalid: %v", err)
		return nil, false
	}

	return entries, true
}

func (c *RedisLeaderboardCache) Set(ctx context.Context, entries []entity.LeaderboardEntry) {
	payload, err := json.Marshal(entries)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, leaderboardKey, payload, c.ttl).Err(); err != nil {
		logger.Warn("Leaderboard cache write failed: %v", err)
	}
}

// Invalidate drops the cached board after a completion credits new points.
func (c *RedisLeaderboardCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, leaderboardKey).Err(); err != nil {
		logger.Warn("Leaderboard cache invalidation failed: %v", err)
	}
}

func (c *RedisLeaderboardCache) Close() error {
	return c.client.Close()
}
