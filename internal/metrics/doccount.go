package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "browse"

// DocumentCountLookupsTotal counts document count lookups per source and outcome.
var DocumentCountLookupsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "document_count_lookups_total",
		Help:      "Document count lookups by tier and outcome",
	},
	[]string{"tier", "outcome"}, // outcome: found / not_found / error
)

var registerDocCount sync.Once

// RegisterDocumentCountMetrics registers the lookup counter. Safe to call more than once.
func RegisterDocumentCountMetrics() {
	registerDocCount.Do(func() {
		prometheus.MustRegister(DocumentCountLookupsTotal)
	})
}
