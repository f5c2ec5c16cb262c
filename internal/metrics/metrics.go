package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the comparison pipeline.
type Metrics struct {
	QuotesIngested     prometheus.Counter
	QuotesSkipped      prometheus.Counter
	Aggregations       prometheus.Counter
	CacheInvalidations prometheus.Counter
	RankingRequests    prometheus.Counter
	ErrorsByStage      *prometheus.CounterVec
}

// New registers the service collectors on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		QuotesIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "odds_compare_quotes_ingested_total",
			Help: "Odds quotes persisted from the ingest topic",
		}),
		QuotesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "odds_compare_quotes_skipped_total",
			Help: "Odds quotes dropped for failing validation",
		}),
		Aggregations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "odds_compare_aggregations_total",
			Help: "Best-odds aggregations computed",
		}),
		CacheInvalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "odds_compare_cache_invalidations_total",
			Help: "Best-odds cache entries invalidated on ingest",
		}),
		RankingRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "odds_compare_ranking_requests_total",
			Help: "Operator ranking listings served",
		}),
		ErrorsByStage: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "odds_compare_errors_total",
			Help: "Errors by pipeline stage",
		}, []string{"stage"}),
	}

	reg.MustRegister(
		m.QuotesIngested,
		m.QuotesSkipped,
		m.Aggregations,
		m.CacheInvalidations,
		m.RankingRequests,
		m.ErrorsByStage,
	)

	return m
}
