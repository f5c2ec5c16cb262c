package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

// Config holds all configuration for odds-comparison-service
type Config struct {
	Server   ServerConfig
	Kafka    KafkaConfig
	Redis    RedisConfig
	Postgres PostgresConfig
	Ranking  RankingConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string // Topic to consume from (odds_quotes)
	GroupID string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// PostgresConfig holds the content-store connection settings
type PostgresConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

// RankingConfig holds ranking weights, reference caps and the
// competitiveness refresh schedule
type RankingConfig struct {
	RatingWeight        float64       // relative weight of operator rating
	BonusWeight         float64       // relative weight of bonus value
	LicenseWeight       float64       // relative weight of license score
	OddsWeight          float64       // relative weight of odds competitiveness
	BonusReferenceCap   float64       // bonus value above which bonus_norm stays 1.0
	LicenseReferenceCap float64       // license score above which license_norm stays 1.0
	RefreshInterval     time.Duration // how often competitiveness is re-derived
	MatchWindow         int           // recent matches forming the reference set
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.port", 8082)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "odds_quotes")
	v.SetDefault("kafka.group_id", "odds-comparison")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 5*time.Minute)

	v.SetDefault("postgres.dsn", "postgres://localhost:5432/odds_comparison?sslmode=disable")
	v.SetDefault("postgres.max_open_conns", 10)
	v.SetDefault("postgres.max_idle_conns", 5)

	v.SetDefault("ranking.rating_weight", 40.0)
	v.SetDefault("ranking.bonus_weight", 30.0)
	v.SetDefault("ranking.license_weight", 20.0)
	v.SetDefault("ranking.odds_weight", 10.0)
	v.SetDefault("ranking.bonus_reference_cap", 200.0)
	v.SetDefault("ranking.license_reference_cap", 3.0)
	v.SetDefault("ranking.refresh_interval", 15*time.Minute)
	v.SetDefault("ranking.match_window", 50)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Read config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Override with environment variables
	v.SetEnvPrefix("ODDS_COMPARE")
	v.AutomaticEnv()
	// Replace . with _ for environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Unmarshal to struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// ToRankingWeights converts config to the engine's weight vector
func (c *RankingConfig) ToRankingWeights() models.RankingWeights {
	return models.RankingWeights{
		RatingWeight:  decimal.NewFromFloat(c.RatingWeight),
		BonusWeight:   decimal.NewFromFloat(c.BonusWeight),
		LicenseWeight: decimal.NewFromFloat(c.LicenseWeight),
		OddsWeight:    decimal.NewFromFloat(c.OddsWeight),
	}
}

// ToRankingParams converts config to the engine's reference caps
func (c *RankingConfig) ToRankingParams() models.RankingParams {
	return models.RankingParams{
		BonusReferenceCap:   decimal.NewFromFloat(c.BonusReferenceCap),
		LicenseReferenceCap: decimal.NewFromFloat(c.LicenseReferenceCap),
	}
}
