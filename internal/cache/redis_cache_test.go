package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

// testRedisCacheSetup is a helper struct to hold test dependencies
type testRedisCacheSetup struct {
	cache     *RedisCache
	miniRedis *miniredis.Miniredis
	ctx       context.Context
}

// setupTestRedisCache creates a test cache with miniredis
func setupTestRedisCache(t *testing.T) *testRedisCacheSetup {
	// Create miniredis server
	mr, err := miniredis.Run()
	require.NoError(t, err)

	logger := zerolog.Nop()

	config := RedisCacheConfig{
		Addr:     mr.Addr(),
		Password: "",
		DB:       0,
		TTL:      5 * time.Minute,
	}

	cache := NewRedisCache(config, logger)
	ctx := context.Background()

	return &testRedisCacheSetup{
		cache:     cache,
		miniRedis: mr,
		ctx:       ctx,
	}
}

// cleanup cleans up test resources
func (s *testRedisCacheSetup) cleanup() {
	s.cache.Close()
	s.miniRedis.Close()
}

// testBestOdds builds a BestOdds fixture with home and draw offers and
// no away offer
func testBestOdds(matchID string) *models.BestOdds {
	observed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return &models.BestOdds{
		MatchID: matchID,
		PerOutcome: map[models.Outcome]*models.OutcomeOffer{
			models.OutcomeHome: {
				Price:      decimal.NewFromFloat(2.35),
				OperatorID: "OpB",
				ObservedAt: observed,
			},
			models.OutcomeDraw: {
				Price:      decimal.NewFromFloat(3.20),
				OperatorID: "OpA",
				ObservedAt: observed,
			},
		},
		ComputedAt: observed.Add(time.Minute),
	}
}

// TestNewRedisCache tests cache creation
func TestNewRedisCache(t *testing.T) {
	setup := setupTestRedisCache(t)
	defer setup.cleanup()

	assert.NotNil(t, setup.cache)
	assert.NotNil(t, setup.cache.client)
	assert.Equal(t, 5*time.Minute, setup.cache.ttl)
}

// TestSet_Success tests caching best odds for a match
func TestSet_Success(t *testing.T) {
	setup := setupTestRedisCache(t)
	defer setup.cleanup()

	best := testBestOdds("M1")

	err := setup.cache.Set(setup.ctx, best)

	require.NoError(t, err)
	assert.True(t, setup.miniRedis.Exists("bestodds:M1"))
}

// TestSet_TTL tests that cached entries carry the configured TTL
func TestSet_TTL(t *testing.T) {
	setup := setupTestRedisCache(t)
	defer setup.cleanup()

	require.NoError(t, setup.cache.Set(setup.ctx, testBestOdds("M1")))

	ttl := setup.miniRedis.TTL("bestodds:M1")
	assert.Equal(t, 5*time.Minute, ttl)

	// Expired entries disappear
	setup.miniRedis.FastForward(6 * time.Minute)
	_, err := setup.cache.Get(setup.ctx, "M1")
	assert.Error(t, err)
}

// TestGet_Success tests retrieving cached best odds
func TestGet_Success(t *testing.T) {
	setup := setupTestRedisCache(t)
	defer setup.cleanup()

	best := testBestOdds("M1")
	require.NoError(t, setup.cache.Set(setup.ctx, best))

	got, err := setup.cache.Get(setup.ctx, "M1")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "M1", got.MatchID)

	home := got.Offer(models.OutcomeHome)
	require.NotNil(t, home)
	assert.True(t, home.Price.Equal(decimal.NewFromFloat(2.35)))
	assert.Equal(t, "OpB", home.OperatorID)

	// The no-offer away outcome survives the round trip as absent
	assert.Nil(t, got.Offer(models.OutcomeAway))
}

// TestGet_NotFound tests the miss path
func TestGet_NotFound(t *testing.T) {
	setup := setupTestRedisCache(t)
	defer setup.cleanup()

	got, err := setup.cache.Get(setup.ctx, "missing")

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "not found in cache")
}

// TestInvalidate tests dropping a cached entry on new quote arrival
func TestInvalidate(t *testing.T) {
	setup := setupTestRedisCache(t)
	defer setup.cleanup()

	require.NoError(t, setup.cache.Set(setup.ctx, testBestOdds("M1")))
	require.True(t, setup.miniRedis.Exists("bestodds:M1"))

	err := setup.cache.Invalidate(setup.ctx, "M1")

	require.NoError(t, err)
	assert.False(t, setup.miniRedis.Exists("bestodds:M1"))
}

// TestInvalidate_MissingKey tests that invalidating an absent entry is
// not an error
func TestInvalidate_MissingKey(t *testing.T) {
	setup := setupTestRedisCache(t)
	defer setup.cleanup()

	err := setup.cache.Invalidate(setup.ctx, "never-cached")
	assert.NoError(t, err)
}

// TestPing tests the connection check
func TestPing(t *testing.T) {
	setup := setupTestRedisCache(t)
	defer setup.cleanup()

	assert.NoError(t, setup.cache.Ping(setup.ctx))

	setup.miniRedis.Close()
	assert.Error(t, setup.cache.Ping(setup.ctx))
}
