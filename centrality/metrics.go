package centrality

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "gasgraph"
	subsystem        = "centrality"
)

// Metrics groups the collectors updated after every run.
type Metrics struct {
	Runs        *prometheus.CounterVec
	Relaxations prometheus.Counter
	StalePops   prometheus.Counter
	Saturated   prometheus.Counter
	Reached     prometheus.Histogram
	Duration    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Runs: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: subsystem,
				Name:      "runs_total",
				Help:      "Total number of centrality runs by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),
		Relaxations: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "relaxations_total",
			Help:      "Total number of accepted edge relaxations",
		}),
		StalePops: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "stale_pops_total",
			Help:      "Total number of stale priority-queue entries discarded",
		}),
		Saturated: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "saturated_candidates_total",
			Help:      "Total number of candidates rejected because their gas sum reaches the distance sentinel",
		}),
		Reached: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "reached_vertices",
			Help:      "Vertices finalised per successful run",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of centrality runs",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) observe(mode Mode, s Stats, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Runs.WithLabelValues(mode.String(), outcome).Inc()
	m.Relaxations.Add(float64(s.Relaxations))
	m.StalePops.Add(float64(s.StalePops))
	m.Saturated.Add(float64(s.Saturated))
	m.Duration.Observe(elapsed.Seconds())
	if err == nil {
		m.Reached.Observe(float64(s.Reached))
	}
}
