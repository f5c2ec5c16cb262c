package service

import (
	"context"

	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

// Cache is an interface that abstracts best-odds cache operations
// This allows for easier testing and mocking
type Cache interface {
	Set(ctx context.Context, odds *models.BestOdds) error
	Get(ctx context.Context, matchID string) (*models.BestOdds, error)
	Invalidate(ctx context.Context, matchID string) error
	Ping(ctx context.Context) error
	Close() error
}
