package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RefreshTotal         *prometheus.CounterVec
	SourceFetchDuration  prometheus.Histogram
	CurrentRequestsTotal prometheus.Counter
}

// NewMetrics registers the service collectors on reg. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction doesn't collide.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RefreshTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_rate_refresh_total",
				Help: "Total number of refresh cycles by result",
			},
			[]string{"result"},
		),

		SourceFetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "exchange_rate_source_fetch_duration_seconds",
				Help:    "Duration of third-party rate API calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),

		CurrentRequestsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "exchange_rate_current_requests_total",
				Help: "Total number of current-rate reads",
			},
		),
	}
}

func (m *Metrics) ObserveRefresh(success bool) {
	if m == nil {
		return
	}
	result := "success"
	if !success {
		result = "failure"
	}
	m.RefreshTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveFetchDuration(seconds float64) {
	if m == nil {
		return
	}
	m.SourceFetchDuration.Observe(seconds)
}

func (m *Metrics) ObserveCurrentRequest() {
	if m == nil {
		return
	}
	m.CurrentRequestsTotal.Inc()
}
