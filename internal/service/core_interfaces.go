package service

import (
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

// Aggregator is an interface that abstracts best-odds aggregation
// This allows for easier testing and mocking
type Aggregator interface {
	AggregateBestOdds(quotes []*models.OddsQuote, matchID string) *models.BestOdds
	CompetitivenessShares(results []*models.BestOdds) map[string]decimal.Decimal
}

// Ranker is an interface that abstracts operator ranking
type Ranker interface {
	ComputeScore(profile *models.OperatorProfile, weights models.RankingWeights) (decimal.Decimal, error)
	RankOperators(profiles []*models.OperatorProfile, weights models.RankingWeights) ([]*models.RankedOperator, error)
}
