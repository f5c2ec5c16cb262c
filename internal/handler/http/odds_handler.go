package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/odds-comparison-service/internal/models"
	"github.com/cypherlabdev/odds-comparison-service/internal/service"
)

// OddsHandler handles HTTP requests for best odds and operator rankings
type OddsHandler struct {
	service *service.ComparisonService
	logger  zerolog.Logger
}

// NewOddsHandler creates a new odds HTTP handler
func NewOddsHandler(service *service.ComparisonService, logger zerolog.Logger) *OddsHandler {
	return &OddsHandler{
		service: service,
		logger:  logger.With().Str("component", "odds_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided mux
func (h *OddsHandler) RegisterRoutes(mux *http.ServeMux) {
	// GET /api/v1/matches/:match_id/best-odds - Best price per outcome for a match
	mux.HandleFunc("/api/v1/matches/", h.handleGetBestOdds)

	// GET /api/v1/operators/rankings - Ranked operator listing
	mux.HandleFunc("/api/v1/operators/rankings", h.handleGetRankings)
}

// handleGetBestOdds handles GET /api/v1/matches/:match_id/best-odds
func (h *OddsHandler) handleGetBestOdds(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// Parse path: /api/v1/matches/:match_id/best-odds
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/matches/")
	parts := strings.Split(path, "/")

	if len(parts) != 2 || parts[1] != "best-odds" {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/matches/:match_id/best-odds")
		return
	}

	matchID := parts[0]
	if matchID == "" {
		h.errorResponse(w, http.StatusBadRequest, "match_id is required")
		return
	}

	best, err := h.service.GetBestOdds(r.Context(), matchID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("match_id", matchID).
			Msg("failed to aggregate best odds")
		h.errorResponse(w, http.StatusInternalServerError, "failed to retrieve best odds")
		return
	}

	h.jsonResponse(w, http.StatusOK, ToBestOddsResponse(best))
}

// handleGetRankings handles GET /api/v1/operators/rankings
func (h *OddsHandler) handleGetRankings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ranked, err := h.service.GetRankedOperators(r.Context())
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to rank operators")
		h.errorResponse(w, http.StatusInternalServerError, "failed to retrieve rankings")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"count":    len(ranked),
		"rankings": ToRankingResponses(ranked),
	})
}

// jsonResponse writes a JSON response
func (h *OddsHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response
func (h *OddsHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}

// OfferResponse is the API shape of one outcome's best offer. A nil
// offer renders as JSON null, which the presentation layer shows as
// "odds not yet available".
type OfferResponse struct {
	Price      string `json:"price"`
	OperatorID string `json:"operator_id"`
	ObservedAt string `json:"observed_at"`
}

// BestOddsResponse is the API shape of a match's best odds, with all
// three outcomes always present.
type BestOddsResponse struct {
	MatchID    string                            `json:"match_id"`
	Outcomes   map[models.Outcome]*OfferResponse `json:"outcomes"`
	ComputedAt string                            `json:"computed_at"`
}

// ToBestOddsResponse converts BestOdds to the API response format
func ToBestOddsResponse(best *models.BestOdds) *BestOddsResponse {
	resp := &BestOddsResponse{
		MatchID:    best.MatchID,
		Outcomes:   make(map[models.Outcome]*OfferResponse, len(models.Outcomes)),
		ComputedAt: best.ComputedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	for _, outcome := range models.Outcomes {
		offer := best.Offer(outcome)
		if offer == nil {
			resp.Outcomes[outcome] = nil
			continue
		}
		resp.Outcomes[outcome] = &OfferResponse{
			Price:      offer.Price.String(),
			OperatorID: offer.OperatorID,
			ObservedAt: offer.ObservedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return resp
}

// RankingResponse is the API shape of one ranking listing entry
type RankingResponse struct {
	Rank       int    `json:"rank"`
	OperatorID string `json:"operator_id"`
	Score      string `json:"score"`
}

// ToRankingResponses converts ranked operators to the API response format
func ToRankingResponses(ranked []*models.RankedOperator) []*RankingResponse {
	out := make([]*RankingResponse, 0, len(ranked))
	for _, entry := range ranked {
		out = append(out, &RankingResponse{
			Rank:       entry.Rank,
			OperatorID: entry.OperatorID,
			Score:      entry.Score.StringFixed(4),
		})
	}
	return out
}
