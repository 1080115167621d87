package reconcile

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	runsTotal *prometheus.CounterVec
	rowsTotal *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

var metricsSingleton = sync.OnceValue(func() *metrics {
	return &metrics{
		runsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ops",
			Name:      "sync_runs_total",
			Help:      "Total number of reconciliation runs.",
		}, []string{"source", "outcome"}),
		rowsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ops",
			Name:      "sync_rows_total",
			Help:      "Rows handled by reconciliation, by result.",
		}, []string{"source", "result"}),
		duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ops",
			Name:      "sync_duration_seconds",
			Help:      "Wall time of reconciliation runs.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"source"}),
	}
})

func observe(res Result, err error, elapsed time.Duration) {
	m := metricsSingleton()
	outcome := "ok"
	if err != nil {
		outcome = "interrupted"
	}
	m.runsTotal.WithLabelValues(res.Source, outcome).Inc()
	m.rowsTotal.WithLabelValues(res.Source, "created").Add(float64(res.Created))
	m.rowsTotal.WithLabelValues(res.Source, "updated").Add(float64(res.Updated))
	m.rowsTotal.WithLabelValues(res.Source, "skipped").Add(float64(res.Skipped))
	m.rowsTotal.WithLabelValues(res.Source, "error").Add(float64(res.Errors))
	m.duration.WithLabelValues(res.Source).Observe(elapsed.Seconds())
}

// ObserveFetchFailure counts a run that never reached reconciliation.
func ObserveFetchFailure(source string) {
	metricsSingleton().runsTotal.WithLabelValues(source, "fetch_failed").Inc()
}
