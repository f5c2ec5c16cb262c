package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Outcome is one of the three possible results of a match.
type Outcome string

const (
	OutcomeHome Outcome = "home"
	OutcomeDraw Outcome = "draw"
	OutcomeAway Outcome = "away"
)

// Outcomes lists all match outcomes in display order.
var Outcomes = []Outcome{OutcomeHome, OutcomeDraw, OutcomeAway}

// Valid reports whether o is one of the three match outcomes. Quotes
// arriving over the wire can carry arbitrary outcome keys.
func (o Outcome) Valid() bool {
	return o == OutcomeHome || o == OutcomeDraw || o == OutcomeAway
}

// MinValidPrice is the lowest decimal price a bookmaker can legitimately
// quote. Prices below it are skipped during aggregation.
var MinValidPrice = decimal.NewFromFloat(1.01)

// OddsQuote is one bookmaker's prices for one match at one point in time.
// A newer quote for the same match/operator pair supersedes an older one;
// quotes are never mutated in place.
type OddsQuote struct {
	ID            uuid.UUID                   `json:"id"`
	MatchID       string                      `json:"match_id"`
	OperatorID    string                      `json:"operator_id"`
	OutcomePrices map[Outcome]decimal.Decimal `json:"outcome_prices"`
	ObservedAt    time.Time                   `json:"observed_at"`
}

// OutcomeOffer is the best available price for one outcome and the
// operator offering it.
type OutcomeOffer struct {
	Price      decimal.Decimal `json:"price"`
	OperatorID string          `json:"operator_id"`
	ObservedAt time.Time       `json:"observed_at"`
}

// BestOdds is the aggregation result for one match. An outcome with no
// valid quote across all operators is absent from PerOutcome.
type BestOdds struct {
	MatchID    string                    `json:"match_id"`
	PerOutcome map[Outcome]*OutcomeOffer `json:"per_outcome"`
	ComputedAt time.Time                 `json:"computed_at"`
}

// Offer returns the best offer for an outcome, or nil if no operator
// offers it.
func (b *BestOdds) Offer(outcome Outcome) *OutcomeOffer {
	if b == nil || b.PerOutcome == nil {
		return nil
	}
	return b.PerOutcome[outcome]
}

// OperatorProfile holds the ranking inputs for one operator.
type OperatorProfile struct {
	OperatorID          string          `json:"operator_id"`
	Rating              decimal.Decimal `json:"rating"`               // [0.0, 5.0]
	BonusValue          decimal.Decimal `json:"bonus_value"`          // >= 0, already in a common currency
	LicenseScore        decimal.Decimal `json:"license_score"`        // >= 0
	OddsCompetitiveness decimal.Decimal `json:"odds_competitiveness"` // [0.0, 1.0]
}

// RankingWeights is the configurable weight vector for the composite
// score. Weights need not sum to any fixed total; the engine normalizes
// internally.
type RankingWeights struct {
	RatingWeight  decimal.Decimal `json:"rating_weight"`
	BonusWeight   decimal.Decimal `json:"bonus_weight"`
	LicenseWeight decimal.Decimal `json:"license_weight"`
	OddsWeight    decimal.Decimal `json:"odds_weight"`
}

// RankingParams holds the reference caps above which a raw signal stops
// improving its normalized contribution.
type RankingParams struct {
	BonusReferenceCap   decimal.Decimal // e.g. 200 (currency units)
	LicenseReferenceCap decimal.Decimal // e.g. 3 (licenses)
}

// RankedOperator is one entry of a sorted ranking listing.
type RankedOperator struct {
	OperatorID string          `json:"operator_id"`
	Score      decimal.Decimal `json:"score"`
	Rank       int             `json:"rank"`
}

// QuoteBatchMessage is the Kafka envelope carrying a batch of odds quotes
// from the ingest pipeline.
type QuoteBatchMessage struct {
	Quotes    []OddsQuote `json:"quotes"`
	Timestamp time.Time   `json:"timestamp"`
	BatchID   string      `json:"batch_id"`
}
