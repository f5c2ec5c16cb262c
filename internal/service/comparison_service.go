package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/odds-comparison-service/internal/metrics"
	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

// ComparisonService orchestrates best-odds aggregation and operator
// ranking over the content store, with a disposable Redis cache in front
// of the aggregation.
type ComparisonService struct {
	aggregator Aggregator
	ranker     Ranker
	quotes     QuoteRepository
	profiles   ProfileRepository
	cache      Cache
	weights    models.RankingWeights
	metrics    *metrics.Metrics
	logger     zerolog.Logger
}

// NewComparisonService creates a new comparison service
func NewComparisonService(
	aggregator Aggregator,
	ranker Ranker,
	quotes QuoteRepository,
	profiles ProfileRepository,
	cache Cache,
	weights models.RankingWeights,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *ComparisonService {
	return &ComparisonService{
		aggregator: aggregator,
		ranker:     ranker,
		quotes:     quotes,
		profiles:   profiles,
		cache:      cache,
		weights:    weights,
		metrics:    m,
		logger:     logger.With().Str("component", "comparison_service").Logger(),
	}
}

// GetBestOdds returns the best odds for a match with a cache-first
// strategy: on a miss the quotes are loaded from the store, aggregated
// and re-cached.
func (s *ComparisonService) GetBestOdds(ctx context.Context, matchID string) (*models.BestOdds, error) {
	cached, err := s.cache.Get(ctx, matchID)
	if err == nil && cached != nil {
		s.logger.Debug().
			Str("match_id", matchID).
			Msg("cache hit for best odds")
		return cached, nil
	}

	quotes, err := s.quotes.QuotesByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quotes for match %s: %w", matchID, err)
	}

	best := s.aggregator.AggregateBestOdds(quotes, matchID)
	s.metrics.Aggregations.Inc()

	if err := s.cache.Set(ctx, best); err != nil {
		s.logger.Warn().
			Err(err).
			Str("match_id", matchID).
			Msg("failed to cache best odds")
		// Don't fail the request on cache errors
	}

	s.logger.Debug().
		Str("match_id", matchID).
		Int("quotes", len(quotes)).
		Int("offered_outcomes", len(best.PerOutcome)).
		Msg("aggregated best odds")

	return best, nil
}

// IngestQuotes persists a batch of odds quotes, invalidates the cached
// best odds for every affected match and recomputes them eagerly so the
// next page view is served warm.
func (s *ComparisonService) IngestQuotes(ctx context.Context, quotes []*models.OddsQuote) error {
	if len(quotes) == 0 {
		return nil
	}

	if err := s.quotes.SaveQuotes(ctx, quotes); err != nil {
		return fmt.Errorf("failed to save quotes: %w", err)
	}

	// Unique affected matches, in arrival order
	matchIDs := make([]string, 0, len(quotes))
	seen := make(map[string]struct{}, len(quotes))
	for _, quote := range quotes {
		if _, ok := seen[quote.MatchID]; ok {
			continue
		}
		seen[quote.MatchID] = struct{}{}
		matchIDs = append(matchIDs, quote.MatchID)
	}

	for _, matchID := range matchIDs {
		if err := s.cache.Invalidate(ctx, matchID); err != nil {
			s.logger.Warn().
				Err(err).
				Str("match_id", matchID).
				Msg("failed to invalidate cached best odds")
		} else {
			s.metrics.CacheInvalidations.Inc()
		}

		matchQuotes, err := s.quotes.QuotesByMatch(ctx, matchID)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("match_id", matchID).
				Msg("failed to reload quotes after ingest")
			continue
		}

		best := s.aggregator.AggregateBestOdds(matchQuotes, matchID)
		s.metrics.Aggregations.Inc()
		if err := s.cache.Set(ctx, best); err != nil {
			s.logger.Warn().
				Err(err).
				Str("match_id", matchID).
				Msg("failed to re-cache best odds")
		}
	}

	s.logger.Info().
		Int("quotes", len(quotes)).
		Int("matches", len(matchIDs)).
		Msg("ingested quote batch")

	return nil
}

// GetRankedOperators loads every operator profile and returns the
// listing sorted by composite score.
func (s *ComparisonService) GetRankedOperators(ctx context.Context) ([]*models.RankedOperator, error) {
	profiles, err := s.profiles.Profiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load operator profiles: %w", err)
	}

	ranked, err := s.ranker.RankOperators(profiles, s.weights)
	if err != nil {
		return nil, fmt.Errorf("ranking failed: %w", err)
	}
	s.metrics.RankingRequests.Inc()

	s.logger.Debug().
		Int("operators", len(ranked)).
		Msg("served ranked operator listing")

	return ranked, nil
}

// StartCompetitivenessRefresher re-derives operator competitiveness
// once at startup and then on every interval tick, until the context is
// cancelled. Refresh failures are logged and retried on the next tick.
func (s *ComparisonService) StartCompetitivenessRefresher(ctx context.Context, interval time.Duration, matchWindow int) {
	s.logger.Info().
		Dur("interval", interval).
		Int("match_window", matchWindow).
		Msg("started competitiveness refresher")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := s.RefreshCompetitiveness(ctx, matchWindow); err != nil {
			s.logger.Error().
				Err(err).
				Msg("competitiveness refresh failed")
		}

		select {
		case <-ctx.Done():
			s.logger.Info().Msg("stopping competitiveness refresher")
			return
		case <-ticker.C:
		}
	}
}

// RefreshCompetitiveness re-derives each operator's odds-competitiveness
// share from the best odds of the most recent matchWindow matches and
// writes the derived values back to the profile store. Operators that
// never held a best price in the window get an explicit zero so a stale
// share does not linger.
func (s *ComparisonService) RefreshCompetitiveness(ctx context.Context, matchWindow int) error {
	matchIDs, err := s.quotes.RecentMatchIDs(ctx, matchWindow)
	if err != nil {
		return fmt.Errorf("failed to list recent matches: %w", err)
	}
	if len(matchIDs) == 0 {
		s.logger.Info().Msg("no recent matches, skipping competitiveness refresh")
		return nil
	}

	results := make([]*models.BestOdds, 0, len(matchIDs))
	for _, matchID := range matchIDs {
		best, err := s.GetBestOdds(ctx, matchID)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("match_id", matchID).
				Msg("skipping match in competitiveness window")
			continue
		}
		results = append(results, best)
	}

	shares := s.aggregator.CompetitivenessShares(results)

	profiles, err := s.profiles.Profiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to load operator profiles: %w", err)
	}

	for _, profile := range profiles {
		share, ok := shares[profile.OperatorID]
		if !ok {
			share = decimal.Zero
		}
		if err := s.profiles.UpdateCompetitiveness(ctx, profile.OperatorID, share); err != nil {
			return fmt.Errorf("failed to store competitiveness for %s: %w", profile.OperatorID, err)
		}
	}

	s.logger.Info().
		Int("matches", len(results)).
		Int("operators", len(profiles)).
		Msg("refreshed operator competitiveness")

	return nil
}
