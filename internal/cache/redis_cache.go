package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

// RedisCache caches aggregated best odds in Redis. The cache is
// disposable: the quote store stays the source of truth, and entries are
// invalidated whenever a new quote batch arrives for a match.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// RedisCacheConfig holds Redis cache configuration
type RedisCacheConfig struct {
	Addr     string // e.g., "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration // e.g., 5 * time.Minute
}

// NewRedisCache creates a new Redis cache
func NewRedisCache(config RedisCacheConfig, logger zerolog.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &RedisCache{
		client: client,
		ttl:    config.TTL,
		logger: logger.With().Str("component", "redis_cache").Logger(),
	}
}

func bestOddsKey(matchID string) string {
	return fmt.Sprintf("bestodds:%s", matchID)
}

// Set caches the best odds for a match
func (c *RedisCache) Set(ctx context.Context, odds *models.BestOdds) error {
	key := bestOddsKey(odds.MatchID)

	// Serialize to JSON
	data, err := json.Marshal(odds)
	if err != nil {
		return fmt.Errorf("failed to marshal best odds: %w", err)
	}

	// Set in Redis with TTL
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	c.logger.Debug().
		Str("key", key).
		Dur("ttl", c.ttl).
		Msg("cached best odds")

	return nil
}

// Get retrieves cached best odds for a match
func (c *RedisCache) Get(ctx context.Context, matchID string) (*models.BestOdds, error) {
	key := bestOddsKey(matchID)

	// Get from Redis
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("best odds not found in cache")
	} else if err != nil {
		return nil, fmt.Errorf("failed to get from Redis: %w", err)
	}

	// Deserialize
	var odds models.BestOdds
	if err := json.Unmarshal(data, &odds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal best odds: %w", err)
	}

	return &odds, nil
}

// Invalidate drops the cached entry for a match. Called whenever a new
// quote batch for the match is ingested.
func (c *RedisCache) Invalidate(ctx context.Context, matchID string) error {
	key := bestOddsKey(matchID)

	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete from Redis: %w", err)
	}

	c.logger.Debug().
		Str("key", key).
		Msg("invalidated cached best odds")

	return nil
}

// Ping checks Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
