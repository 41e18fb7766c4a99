package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Search outcomes.
const (
	OutcomeHit          = "hit"
	OutcomeEmpty        = "empty"
	OutcomeShortCircuit = "short_circuit"
	OutcomeDegenerate   = "degenerate"
)

// Search pipeline Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docsearch",
			Name:      "searches_total",
			Help:      "Total number of ranked searches by outcome",
		},
		[]string{"outcome"},
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "docsearch",
			Name:      "search_duration_seconds",
			Help:      "Time spent normalizing, vectorizing and ranking one query",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	CorpusDocuments = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "docsearch",
			Name:      "corpus_documents",
			Help:      "Number of documents in the most recently loaded corpus",
		},
	)

	DocumentsDroppedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docsearch",
			Name:      "documents_dropped_total",
			Help:      "Documents skipped during corpus load",
		},
		[]string{"reason"}, // "error" / "empty"
	)
)

var registerSearchOnce sync.Once

// RegisterSearchMetrics registers the search pipeline metrics. Safe to call more than once.
func RegisterSearchMetrics() {
	registerSearchOnce.Do(func() {
		prometheus.MustRegister(SearchesTotal)
		prometheus.MustRegister(SearchDuration)
		prometheus.MustRegister(CorpusDocuments)
		prometheus.MustRegister(DocumentsDroppedTotal)
	})
}

// ObserveDrop counts a document skipped by the corpus loader.
func ObserveDrop(_ string, err error) {
	reason := "empty"
	if err != nil {
		reason = "error"
	}
	DocumentsDroppedTotal.WithLabelValues(reason).Inc()
}
