package analysis

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gasgraph/centrality"
)

// Metrics bundles the engine collectors with the analyzer's cache counter.
type Metrics struct {
	Engine        *centrality.Metrics
	CacheRequests *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Engine: centrality.NewMetrics(reg),
		CacheRequests: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gasgraph",
				Subsystem: "analysis",
				Name:      "cache_requests_total",
				Help:      "Result cache lookups by outcome",
			},
			[]string{"result"},
		),
	}
}

func (m *Metrics) cacheRequest(result string) {
	if m == nil {
		return
	}
	m.CacheRequests.WithLabelValues(result).Inc()
}
