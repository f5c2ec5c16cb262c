package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

// QuoteRepository abstracts the content store for odds quotes. Quotes
// are append-only: a new quote supersedes older ones for the same
// match/operator pair, it never mutates them.
type QuoteRepository interface {
	SaveQuotes(ctx context.Context, quotes []*models.OddsQuote) error
	QuotesByMatch(ctx context.Context, matchID string) ([]*models.OddsQuote, error)
	RecentMatchIDs(ctx context.Context, limit int) ([]string, error)
}

// ProfileRepository abstracts the content store for operator profiles.
// UpdateCompetitiveness is the only write the comparison core performs
// back to the store; everything else on a profile is edited upstream.
type ProfileRepository interface {
	Profiles(ctx context.Context) ([]*models.OperatorProfile, error)
	UpdateCompetitiveness(ctx context.Context, operatorID string, share decimal.Decimal) error
}
