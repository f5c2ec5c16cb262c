package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

// Postgres implements the quote and profile repositories against the
// relational content store.
type Postgres struct {
	db *sql.DB
}

// PostgresConfig holds connection settings for the content store
type PostgresConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

// NewPostgres opens a connection pool to the content store
func NewPostgres(config PostgresConfig) (*Postgres, error) {
	db, err := sql.Open("postgres", config.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)

	return &Postgres{db: db}, nil
}

// SaveQuotes appends a batch of odds quotes. Quotes are append-only: a
// newer quote supersedes older rows for the same match/operator pair by
// observed_at, rows are never updated in place.
func (p *Postgres) SaveQuotes(ctx context.Context, quotes []*models.OddsQuote) error {
	if len(quotes) == 0 {
		return nil
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, quote := range quotes {
		id := quote.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		prices, err := json.Marshal(quote.OutcomePrices)
		if err != nil {
			return fmt.Errorf("failed to marshal outcome prices: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO odds_quotes (id, match_id, operator_id, outcome_prices, observed_at)
			VALUES ($1, $2, $3, $4, $5)`,
			id, quote.MatchID, quote.OperatorID, prices, quote.ObservedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert quote: %w", err)
		}
	}

	return tx.Commit()
}

// QuotesByMatch returns the latest quote per operator for a match.
// Older superseded quotes stay in the table for history but are not
// part of the aggregation input.
func (p *Postgres) QuotesByMatch(ctx context.Context, matchID string) ([]*models.OddsQuote, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT DISTINCT ON (operator_id) id, match_id, operator_id, outcome_prices, observed_at
		FROM odds_quotes
		WHERE match_id = $1
		ORDER BY operator_id, observed_at DESC`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*models.OddsQuote
	for rows.Next() {
		var quote models.OddsQuote
		var prices []byte
		if err := rows.Scan(&quote.ID, &quote.MatchID, &quote.OperatorID, &prices, &quote.ObservedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		if err := json.Unmarshal(prices, &quote.OutcomePrices); err != nil {
			return nil, fmt.Errorf("failed to unmarshal outcome prices: %w", err)
		}
		quotes = append(quotes, &quote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quotes: %w", err)
	}

	return quotes, nil
}

// RecentMatchIDs lists matches with the freshest quote activity, used as
// the reference window for competitiveness derivation.
func (p *Postgres) RecentMatchIDs(ctx context.Context, limit int) ([]string, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT match_id
		FROM odds_quotes
		GROUP BY match_id
		ORDER BY MAX(observed_at) DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query match ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan match id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate match ids: %w", err)
	}

	return ids, nil
}

// Profiles returns the ranking inputs for every listed operator
func (p *Postgres) Profiles(ctx context.Context) ([]*models.OperatorProfile, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT operator_id, rating, bonus_value, license_score, odds_competitiveness
		FROM operator_profiles
		ORDER BY operator_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.OperatorProfile
	for rows.Next() {
		var profile models.OperatorProfile
		var rating, bonus, license, competitiveness string
		if err := rows.Scan(&profile.OperatorID, &rating, &bonus, &license, &competitiveness); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		if profile.Rating, err = decimal.NewFromString(rating); err != nil {
			return nil, fmt.Errorf("failed to parse rating: %w", err)
		}
		if profile.BonusValue, err = decimal.NewFromString(bonus); err != nil {
			return nil, fmt.Errorf("failed to parse bonus value: %w", err)
		}
		if profile.LicenseScore, err = decimal.NewFromString(license); err != nil {
			return nil, fmt.Errorf("failed to parse license score: %w", err)
		}
		if profile.OddsCompetitiveness, err = decimal.NewFromString(competitiveness); err != nil {
			return nil, fmt.Errorf("failed to parse odds competitiveness: %w", err)
		}
		profiles = append(profiles, &profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profiles: %w", err)
	}

	return profiles, nil
}

// UpdateCompetitiveness writes the derived odds-competitiveness share
// back to an operator profile. This is the only column the comparison
// core writes.
func (p *Postgres) UpdateCompetitiveness(ctx context.Context, operatorID string, share decimal.Decimal) error {
	res, err := p.db.ExecContext(ctx, `
		UPDATE operator_profiles
		SET odds_competitiveness = $2
		WHERE operator_id = $1`,
		operatorID, share.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update competitiveness: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("operator %s not found", operatorID)
	}

	return nil
}

// Ping checks the database connection
func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close closes the connection pool
func (p *Postgres) Close() error {
	return p.db.Close()
}
