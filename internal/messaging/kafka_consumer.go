package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/cypherlabdev/odds-comparison-service/internal/metrics"
	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

// Ingestor is the slice of the service layer the consumer needs
type Ingestor interface {
	IngestQuotes(ctx context.Context, quotes []*models.OddsQuote) error
}

// KafkaConsumer consumes odds quote batches from Kafka and feeds them
// into the comparison service.
type KafkaConsumer struct {
	reader   *kafka.Reader
	ingestor Ingestor
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

// KafkaConsumerConfig holds Kafka consumer configuration
type KafkaConsumerConfig struct {
	Brokers []string // e.g., ["localhost:9092"]
	Topic   string   // e.g., "odds_quotes"
	GroupID string   // e.g., "odds-comparison"
}

// NewKafkaConsumer creates a new Kafka consumer
func NewKafkaConsumer(
	config KafkaConsumerConfig,
	ingestor Ingestor,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.GroupID,
		MinBytes:       1e3,  // 1KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
	})

	return &KafkaConsumer{
		reader:   reader,
		ingestor: ingestor,
		metrics:  m,
		logger:   logger.With().Str("component", "kafka_consumer").Logger(),
	}
}

// Start begins consuming messages from Kafka
func (c *KafkaConsumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("topic", c.reader.Config().Topic).
		Str("group_id", c.reader.Config().GroupID).
		Msg("started consuming from Kafka")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("stopping Kafka consumer")
			return c.reader.Close()

		default:
			// Read message
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if err == context.Canceled {
					return nil
				}
				c.logger.Error().Err(err).Msg("failed to fetch message")
				c.metrics.ErrorsByStage.WithLabelValues("fetch").Inc()
				continue
			}

			// Process message
			if err := c.processMessage(ctx, msg); err != nil {
				c.logger.Error().
					Err(err).
					Int64("offset", msg.Offset).
					Str("key", string(msg.Key)).
					Msg("failed to process message")
				c.metrics.ErrorsByStage.WithLabelValues("process").Inc()
				// Don't commit if processing failed
				continue
			}

			// Commit message
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error().Err(err).Msg("failed to commit message")
				c.metrics.ErrorsByStage.WithLabelValues("commit").Inc()
			}
		}
	}
}

// processMessage processes a single Kafka message
func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message) error {
	// Parse message
	var batch models.QuoteBatchMessage
	if err := json.Unmarshal(msg.Value, &batch); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	c.logger.Debug().
		Int("quote_count", len(batch.Quotes)).
		Str("batch_id", batch.BatchID).
		Msg("processing odds quote batch")

	// Drop quotes missing required identity fields. Price validation
	// stays inside the aggregator, which skips per outcome.
	quotes := make([]*models.OddsQuote, 0, len(batch.Quotes))
	for i := range batch.Quotes {
		quote := &batch.Quotes[i]
		if quote.MatchID == "" || quote.OperatorID == "" {
			c.logger.Warn().
				Str("batch_id", batch.BatchID).
				Str("match_id", quote.MatchID).
				Str("operator_id", quote.OperatorID).
				Msg("dropping quote with missing identity")
			c.metrics.QuotesSkipped.Inc()
			continue
		}
		quotes = append(quotes, quote)
	}

	if err := c.ingestor.IngestQuotes(ctx, quotes); err != nil {
		return fmt.Errorf("failed to ingest quotes: %w", err)
	}

	c.metrics.QuotesIngested.Add(float64(len(quotes)))

	c.logger.Info().
		Int("input_count", len(batch.Quotes)).
		Int("ingested_count", len(quotes)).
		Str("batch_id", batch.BatchID).
		Msg("processed odds quote batch")

	return nil
}

// Close closes the Kafka reader
func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
