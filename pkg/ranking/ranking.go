package ranking

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

var (
	ratingScale = decimal.NewFromInt(5)
	one         = decimal.NewFromInt(1)
	four        = decimal.NewFromInt(4)
)

// Ranker computes composite ranking scores for operators from their
// rating, bonus, license and odds-competitiveness signals.
type Ranker struct {
	params models.RankingParams
	logger zerolog.Logger
}

// NewRanker creates a new operator ranker.
func NewRanker(params models.RankingParams, logger zerolog.Logger) *Ranker {
	return &Ranker{
		params: params,
		logger: logger.With().Str("component", "ranker").Logger(),
	}
}

// ComputeScore produces the composite score in [0, 1] for one operator.
//
// Each raw signal is first normalized to [0, 1]: rating over its 5-point
// scale, bonus and license clamped at their configured reference caps,
// competitiveness taken as-is. The weight vector is normalized by its own
// sum, so only relative weight magnitudes matter; an all-zero vector
// falls back to equal weighting.
//
// Out-of-range inputs (rating outside [0,5], negative weight, negative
// bonus or license, competitiveness outside [0,1]) are contract
// violations and return an error rather than being clamped, so that a
// misconfigured weight entry is caught instead of producing misleading
// rankings.
func (r *Ranker) ComputeScore(profile *models.OperatorProfile, weights models.RankingWeights) (decimal.Decimal, error) {
	if err := r.validateProfile(profile); err != nil {
		return decimal.Zero, err
	}
	if err := validateWeights(weights); err != nil {
		return decimal.Zero, err
	}

	ratingNorm := profile.Rating.Div(ratingScale)
	bonusNorm := cappedNorm(profile.BonusValue, r.params.BonusReferenceCap)
	licenseNorm := cappedNorm(profile.LicenseScore, r.params.LicenseReferenceCap)
	oddsNorm := profile.OddsCompetitiveness

	total := weights.RatingWeight.
		Add(weights.BonusWeight).
		Add(weights.LicenseWeight).
		Add(weights.OddsWeight)

	if total.IsZero() {
		// Degenerate all-zero configuration: weight every signal equally
		// instead of dividing by zero.
		return ratingNorm.Add(bonusNorm).Add(licenseNorm).Add(oddsNorm).Div(four), nil
	}

	weighted := weights.RatingWeight.Mul(ratingNorm).
		Add(weights.BonusWeight.Mul(bonusNorm)).
		Add(weights.LicenseWeight.Mul(licenseNorm)).
		Add(weights.OddsWeight.Mul(oddsNorm))

	return weighted.Div(total), nil
}

// RankOperators scores every profile and returns a listing sorted by
// score descending, ties broken by the smaller operator id. Any contract
// violation fails the whole listing: ranking inputs are configuration,
// not runtime data, so a bad entry must surface instead of silently
// dropping an operator.
func (r *Ranker) RankOperators(profiles []*models.OperatorProfile, weights models.RankingWeights) ([]*models.RankedOperator, error) {
	ranked := make([]*models.RankedOperator, 0, len(profiles))

	for _, profile := range profiles {
		if profile == nil {
			return nil, fmt.Errorf("nil operator profile in listing")
		}
		score, err := r.ComputeScore(profile, weights)
		if err != nil {
			return nil, fmt.Errorf("ranking operator %s: %w", profile.OperatorID, err)
		}
		ranked = append(ranked, &models.RankedOperator{
			OperatorID: profile.OperatorID,
			Score:      score,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Score.Equal(ranked[j].Score) {
			return ranked[i].Score.GreaterThan(ranked[j].Score)
		}
		return ranked[i].OperatorID < ranked[j].OperatorID
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	r.logger.Debug().
		Int("operators", len(ranked)).
		Msg("ranked operator listing")

	return ranked, nil
}

// validateProfile checks the caller contract on ranking inputs.
func (r *Ranker) validateProfile(profile *models.OperatorProfile) error {
	if profile == nil {
		return fmt.Errorf("nil operator profile")
	}
	if profile.Rating.IsNegative() || profile.Rating.GreaterThan(ratingScale) {
		return fmt.Errorf("invalid rating %s for operator %s: must be in [0, 5]",
			profile.Rating.String(), profile.OperatorID)
	}
	if profile.BonusValue.IsNegative() {
		return fmt.Errorf("invalid bonus value %s for operator %s: must be >= 0",
			profile.BonusValue.String(), profile.OperatorID)
	}
	if profile.LicenseScore.IsNegative() {
		return fmt.Errorf("invalid license score %s for operator %s: must be >= 0",
			profile.LicenseScore.String(), profile.OperatorID)
	}
	if profile.OddsCompetitiveness.IsNegative() || profile.OddsCompetitiveness.GreaterThan(one) {
		return fmt.Errorf("invalid odds competitiveness %s for operator %s: must be in [0, 1]",
			profile.OddsCompetitiveness.String(), profile.OperatorID)
	}
	if !r.params.BonusReferenceCap.IsPositive() {
		return fmt.Errorf("invalid bonus reference cap %s: must be > 0",
			r.params.BonusReferenceCap.String())
	}
	if !r.params.LicenseReferenceCap.IsPositive() {
		return fmt.Errorf("invalid license reference cap %s: must be > 0",
			r.params.LicenseReferenceCap.String())
	}
	return nil
}

func validateWeights(weights models.RankingWeights) error {
	for _, w := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"rating_weight", weights.RatingWeight},
		{"bonus_weight", weights.BonusWeight},
		{"license_weight", weights.LicenseWeight},
		{"odds_weight", weights.OddsWeight},
	} {
		if w.value.IsNegative() {
			return fmt.Errorf("invalid %s %s: must be >= 0", w.name, w.value.String())
		}
	}
	return nil
}

// cappedNorm normalizes a raw signal against its reference cap, clamped
// to 1 so oversized claims stop improving the score at the cap.
func cappedNorm(value, refCap decimal.Decimal) decimal.Decimal {
	norm := value.Div(refCap)
	if norm.GreaterThan(one) {
		return one
	}
	return norm
}
