// Package metrics exposes prometheus collectors for queries and catalog
// state.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Query outcomes used as label values.
const (
	OutcomeOK           = "ok"
	OutcomeInvalidInput = "invalid_input"
)

var (
	once sync.Once

	queriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dinefinder",
			Name:      "queries_total",
			Help:      "Count of availability queries by outcome.",
		},
		[]string{"outcome"},
	)

	openResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "dinefinder",
			Name:      "query_open_restaurants",
			Help:      "Number of open restaurants returned per query.",
			Buckets:   prometheus.LinearBuckets(0, 5, 11),
		},
	)

	catalogSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "dinefinder",
			Name:      "catalog_restaurants",
			Help:      "Number of restaurants in the loaded catalog.",
		},
	)

	skippedClauses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dinefinder",
			Name:      "skipped_hour_clauses_total",
			Help:      "Count of hour clauses dropped because they matched no pattern.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(queriesTotal, openResults, catalogSize, skippedClauses)
	})
}

func IncQuery(outcome string) {
	queriesTotal.WithLabelValues(outcome).Inc()
}

func ObserveOpenResults(count int) {
	openResults.Observe(float64(count))
}

func SetCatalogSize(count int) {
	catalogSize.Set(float64(count))
}

func AddSkippedClauses(count int) {
	if count > 0 {
		skippedClauses.Add(float64(count))
	}
}
