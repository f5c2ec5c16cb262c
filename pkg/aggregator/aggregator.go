package aggregator

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

// Aggregator computes the best available price per outcome across all
// bookmakers' quotes for a match.
type Aggregator struct {
	logger zerolog.Logger
}

// NewAggregator creates a new odds aggregator.
func NewAggregator(logger zerolog.Logger) *Aggregator {
	return &Aggregator{
		logger: logger.With().Str("component", "aggregator").Logger(),
	}
}

// AggregateBestOdds selects, for each outcome of the given match, the
// highest valid price among the quotes and the operator offering it.
//
// Quotes for other matches are filtered out, and individual quotes with
// invalid prices are skipped without aborting the rest of the batch. An
// outcome nobody offers is simply absent from the result. Ties on price
// go to the more recently observed quote, then to the lexicographically
// smaller operator id, so repeated calls are reproducible.
func (a *Aggregator) AggregateBestOdds(quotes []*models.OddsQuote, matchID string) *models.BestOdds {
	best := &models.BestOdds{
		MatchID:    matchID,
		PerOutcome: make(map[models.Outcome]*models.OutcomeOffer),
		ComputedAt: time.Now().UTC(),
	}

	skipped := 0
	for _, quote := range quotes {
		if quote == nil {
			skipped++
			continue
		}
		if quote.MatchID != matchID {
			a.logger.Debug().
				Str("match_id", matchID).
				Str("quote_match_id", quote.MatchID).
				Str("operator_id", quote.OperatorID).
				Msg("ignoring quote for different match")
			continue
		}
		if quote.OperatorID == "" || len(quote.OutcomePrices) == 0 {
			skipped++
			continue
		}

		for outcome, price := range quote.OutcomePrices {
			if !outcome.Valid() {
				a.logger.Debug().
					Str("match_id", matchID).
					Str("operator_id", quote.OperatorID).
					Str("outcome", string(outcome)).
					Msg("skipping unknown outcome")
				skipped++
				continue
			}
			if price.LessThan(models.MinValidPrice) {
				a.logger.Debug().
					Str("match_id", matchID).
					Str("operator_id", quote.OperatorID).
					Str("outcome", string(outcome)).
					Str("price", price.String()).
					Msg("skipping invalid price")
				skipped++
				continue
			}

			current := best.PerOutcome[outcome]
			if current == nil || beats(price, quote, current) {
				best.PerOutcome[outcome] = &models.OutcomeOffer{
					Price:      price,
					OperatorID: quote.OperatorID,
					ObservedAt: quote.ObservedAt,
				}
			}
		}
	}

	if skipped > 0 {
		a.logger.Debug().
			Str("match_id", matchID).
			Int("skipped", skipped).
			Msg("skipped invalid quotes during aggregation")
	}

	return best
}

// beats reports whether the candidate price/quote should replace the
// current best offer. Higher price wins; on equal price the more recent
// observation wins; on equal timestamp the smaller operator id wins.
func beats(price decimal.Decimal, quote *models.OddsQuote, current *models.OutcomeOffer) bool {
	if !price.Equal(current.Price) {
		return price.GreaterThan(current.Price)
	}
	if !quote.ObservedAt.Equal(current.ObservedAt) {
		return quote.ObservedAt.After(current.ObservedAt)
	}
	return quote.OperatorID < current.OperatorID
}

// CompetitivenessShares derives, from a set of aggregated results, the
// fraction of offered outcomes for which each operator held the best
// price. Outcomes with no offer do not count toward the denominator.
// The returned shares feed OperatorProfile.OddsCompetitiveness.
func (a *Aggregator) CompetitivenessShares(results []*models.BestOdds) map[string]decimal.Decimal {
	wins := make(map[string]int)
	total := 0

	for _, result := range results {
		if result == nil {
			continue
		}
		for _, offer := range result.PerOutcome {
			wins[offer.OperatorID]++
			total++
		}
	}

	shares := make(map[string]decimal.Decimal, len(wins))
	if total == 0 {
		return shares
	}

	denom := decimal.NewFromInt(int64(total))
	for operatorID, count := range wins {
		shares[operatorID] = decimal.NewFromInt(int64(count)).Div(denom)
	}

	a.logger.Debug().
		Int("matches", len(results)).
		Int("offered_outcomes", total).
		Int("operators", len(shares)).
		Msg("derived competitiveness shares")

	return shares
}
