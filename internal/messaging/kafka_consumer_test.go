package messaging

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cypherlabdev/odds-comparison-service/internal/metrics"
	"github.com/cypherlabdev/odds-comparison-service/internal/mocks"
	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

// testKafkaConsumerSetup is a helper struct to hold test dependencies
type testKafkaConsumerSetup struct {
	consumer     *KafkaConsumer
	mockIngestor *mocks.MockIngestor
	ctrl         *gomock.Controller
	ctx          context.Context
}

// setupTestKafkaConsumer creates a test consumer with mocked dependencies
func setupTestKafkaConsumer(t *testing.T) *testKafkaConsumerSetup {
	ctrl := gomock.NewController(t)

	mockIngestor := mocks.NewMockIngestor(ctrl)
	m := metrics.New(prometheus.NewRegistry())

	consumer := NewKafkaConsumer(
		KafkaConsumerConfig{
			Brokers: []string{"localhost:9092"},
			Topic:   "odds_quotes",
			GroupID: "test-group",
		},
		mockIngestor,
		m,
		zerolog.Nop(),
	)

	return &testKafkaConsumerSetup{
		consumer:     consumer,
		mockIngestor: mockIngestor,
		ctrl:         ctrl,
		ctx:          context.Background(),
	}
}

// cleanup cleans up test resources
func (s *testKafkaConsumerSetup) cleanup() {
	s.consumer.Close()
	s.ctrl.Finish()
}

// batchMessage builds a Kafka message carrying the given quotes
func batchMessage(t *testing.T, quotes []models.OddsQuote) kafka.Message {
	t.Helper()
	payload, err := json.Marshal(models.QuoteBatchMessage{
		Quotes:    quotes,
		Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		BatchID:   "batch-1",
	})
	require.NoError(t, err)
	return kafka.Message{Value: payload}
}

// TestNewKafkaConsumer tests consumer creation
func TestNewKafkaConsumer(t *testing.T) {
	setup := setupTestKafkaConsumer(t)
	defer setup.cleanup()

	assert.NotNil(t, setup.consumer)
	assert.NotNil(t, setup.consumer.reader)
	assert.NotNil(t, setup.consumer.ingestor)
	assert.Equal(t, "odds_quotes", setup.consumer.reader.Config().Topic)
	assert.Equal(t, "test-group", setup.consumer.reader.Config().GroupID)
	assert.Equal(t, time.Second, setup.consumer.reader.Config().CommitInterval)
}

// TestProcessMessage_Success tests that a valid batch reaches the
// ingestor intact
func TestProcessMessage_Success(t *testing.T) {
	setup := setupTestKafkaConsumer(t)
	defer setup.cleanup()

	quotes := []models.OddsQuote{
		{
			ID:         uuid.New(),
			MatchID:    "M1",
			OperatorID: "OpA",
			OutcomePrices: map[models.Outcome]decimal.Decimal{
				models.OutcomeHome: decimal.NewFromFloat(2.10),
			},
			ObservedAt: time.Date(2026, 8, 1, 11, 59, 0, 0, time.UTC),
		},
		{
			ID:         uuid.New(),
			MatchID:    "M1",
			OperatorID: "OpB",
			OutcomePrices: map[models.Outcome]decimal.Decimal{
				models.OutcomeHome: decimal.NewFromFloat(2.35),
			},
			ObservedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	setup.mockIngestor.EXPECT().
		IngestQuotes(setup.ctx, gomock.Len(2)).
		Return(nil)

	err := setup.consumer.processMessage(setup.ctx, batchMessage(t, quotes))

	assert.NoError(t, err)
}

// TestProcessMessage_DropsQuotesMissingIdentity tests that quotes without
// match or operator id are dropped before ingestion
func TestProcessMessage_DropsQuotesMissingIdentity(t *testing.T) {
	setup := setupTestKafkaConsumer(t)
	defer setup.cleanup()

	quotes := []models.OddsQuote{
		{MatchID: "", OperatorID: "OpA"},
		{MatchID: "M1", OperatorID: ""},
		{
			MatchID:    "M1",
			OperatorID: "OpB",
			OutcomePrices: map[models.Outcome]decimal.Decimal{
				models.OutcomeDraw: decimal.NewFromFloat(3.20),
			},
		},
	}

	setup.mockIngestor.EXPECT().
		IngestQuotes(setup.ctx, gomock.Len(1)).
		DoAndReturn(func(_ context.Context, got []*models.OddsQuote) error {
			assert.Equal(t, "OpB", got[0].OperatorID)
			return nil
		})

	err := setup.consumer.processMessage(setup.ctx, batchMessage(t, quotes))

	assert.NoError(t, err)
}

// TestProcessMessage_InvalidJSON tests that a malformed payload returns
// an error so the offset is not committed
func TestProcessMessage_InvalidJSON(t *testing.T) {
	setup := setupTestKafkaConsumer(t)
	defer setup.cleanup()

	err := setup.consumer.processMessage(setup.ctx, kafka.Message{Value: []byte("not json")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal message")
}

// TestProcessMessage_IngestFailure tests that an ingest failure
// propagates so the message is retried
func TestProcessMessage_IngestFailure(t *testing.T) {
	setup := setupTestKafkaConsumer(t)
	defer setup.cleanup()

	quotes := []models.OddsQuote{
		{MatchID: "M1", OperatorID: "OpA"},
	}

	setup.mockIngestor.EXPECT().
		IngestQuotes(setup.ctx, gomock.Any()).
		Return(assert.AnError)

	err := setup.consumer.processMessage(setup.ctx, batchMessage(t, quotes))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ingest quotes")
}

// TestProcessMessage_EmptyBatch tests that an empty batch is processed
// without touching the ingestor's store path
func TestProcessMessage_EmptyBatch(t *testing.T) {
	setup := setupTestKafkaConsumer(t)
	defer setup.cleanup()

	setup.mockIngestor.EXPECT().
		IngestQuotes(setup.ctx, gomock.Len(0)).
		Return(nil)

	err := setup.consumer.processMessage(setup.ctx, batchMessage(t, nil))

	assert.NoError(t, err)
}
