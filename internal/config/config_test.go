package config

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig_Defaults tests loading configuration with default values
func TestLoadConfig_Defaults(t *testing.T) {
	// Load config without a file (should use defaults)
	config, err := LoadConfig("")

	require.NoError(t, err)
	require.NotNil(t, config)

	// Verify server defaults
	assert.Equal(t, 8082, config.Server.Port)
	assert.Equal(t, 30*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, config.Server.WriteTimeout)

	// Verify Kafka defaults
	assert.Equal(t, []string{"localhost:9092"}, config.Kafka.Brokers)
	assert.Equal(t, "odds_quotes", config.Kafka.Topic)
	assert.Equal(t, "odds-comparison", config.Kafka.GroupID)

	// Verify Redis defaults
	assert.Equal(t, "localhost:6379", config.Redis.Addr)
	assert.Equal(t, "", config.Redis.Password)
	assert.Equal(t, 0, config.Redis.DB)
	assert.Equal(t, 5*time.Minute, config.Redis.TTL)

	// Verify Postgres defaults
	assert.Equal(t, "postgres://localhost:5432/odds_comparison?sslmode=disable", config.Postgres.DSN)
	assert.Equal(t, 10, config.Postgres.MaxOpenConns)
	assert.Equal(t, 5, config.Postgres.MaxIdleConns)

	// Verify ranking defaults
	assert.Equal(t, 40.0, config.Ranking.RatingWeight)
	assert.Equal(t, 30.0, config.Ranking.BonusWeight)
	assert.Equal(t, 20.0, config.Ranking.LicenseWeight)
	assert.Equal(t, 10.0, config.Ranking.OddsWeight)
	assert.Equal(t, 200.0, config.Ranking.BonusReferenceCap)
	assert.Equal(t, 3.0, config.Ranking.LicenseReferenceCap)
	assert.Equal(t, 15*time.Minute, config.Ranking.RefreshInterval)
	assert.Equal(t, 50, config.Ranking.MatchWindow)

	// Verify logging defaults
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
}

// TestLoadConfig_WithFile tests loading configuration from file
func TestLoadConfig_WithFile(t *testing.T) {
	// Create temporary config file
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	configContent := `
server:
  port: 9090
  read_timeout: 45s
  write_timeout: 45s
kafka:
  brokers:
    - kafka-1:9092
    - kafka-2:9092
  topic: odds_quotes_staging
  group_id: odds-comparison-staging
redis:
  addr: redis-staging:6379
  ttl: 90s
postgres:
  dsn: postgres://staging:5432/odds?sslmode=disable
ranking:
  rating_weight: 50
  bonus_weight: 25
  license_weight: 15
  odds_weight: 10
  bonus_reference_cap: 500
  license_reference_cap: 5
  refresh_interval: 5m
  match_window: 25
logging:
  level: debug
  format: console
`
	_, err = tmpFile.WriteString(configContent)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	config, err := LoadConfig(tmpFile.Name())

	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, 45*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, config.Kafka.Brokers)
	assert.Equal(t, "odds_quotes_staging", config.Kafka.Topic)
	assert.Equal(t, "redis-staging:6379", config.Redis.Addr)
	assert.Equal(t, 90*time.Second, config.Redis.TTL)
	assert.Equal(t, "postgres://staging:5432/odds?sslmode=disable", config.Postgres.DSN)
	assert.Equal(t, 50.0, config.Ranking.RatingWeight)
	assert.Equal(t, 500.0, config.Ranking.BonusReferenceCap)
	assert.Equal(t, 5.0, config.Ranking.LicenseReferenceCap)
	assert.Equal(t, 5*time.Minute, config.Ranking.RefreshInterval)
	assert.Equal(t, 25, config.Ranking.MatchWindow)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "console", config.Logging.Format)
}

// TestLoadConfig_MissingFile tests loading with a nonexistent file path
func TestLoadConfig_MissingFile(t *testing.T) {
	config, err := LoadConfig("/nonexistent/config.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read config file")
}

// TestToRankingWeights tests conversion to the engine's weight vector
func TestToRankingWeights(t *testing.T) {
	cfg := RankingConfig{
		RatingWeight:  40,
		BonusWeight:   30,
		LicenseWeight: 20,
		OddsWeight:    10,
	}

	weights := cfg.ToRankingWeights()

	assert.True(t, weights.RatingWeight.Equal(decimal.NewFromInt(40)))
	assert.True(t, weights.BonusWeight.Equal(decimal.NewFromInt(30)))
	assert.True(t, weights.LicenseWeight.Equal(decimal.NewFromInt(20)))
	assert.True(t, weights.OddsWeight.Equal(decimal.NewFromInt(10)))
}

// TestToRankingParams tests conversion to the engine's reference caps
func TestToRankingParams(t *testing.T) {
	cfg := RankingConfig{
		BonusReferenceCap:   200,
		LicenseReferenceCap: 3,
	}

	params := cfg.ToRankingParams()

	assert.True(t, params.BonusReferenceCap.Equal(decimal.NewFromInt(200)))
	assert.True(t, params.LicenseReferenceCap.Equal(decimal.NewFromInt(3)))
}
