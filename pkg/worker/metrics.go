package worker

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK       = "ok"
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

type metrics struct {
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	combinations prometheus.Histogram
}

// newMetrics builds the worker collectors and registers them on registerer when it is not nil
func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "classpicker",
			Name:      "requests_total",
			Help:      "Total number of handled requests",
		}, []string{"kind", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "classpicker",
			Name:      "request_duration_seconds",
			Help:      "Time spent handling a request",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		combinations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "classpicker",
			Name:      "combinations_found",
			Help:      "Number of combinations under the overlap threshold per auto-schedule request",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}

	if registerer == nil {
		return m, nil
	}
	for _, collector := range []prometheus.Collector{m.requests, m.duration, m.combinations} {
		if err := registerer.Register(collector); err != nil {
			return nil, fmt.Errorf("cannot register worker metrics: %w", err)
		}
	}
	return m, nil
}

func (m *metrics) observe(kind string, response Response, elapsed time.Duration) {
	outcome := outcomeOK
	switch {
	case response.Err != nil:
		outcome = outcomeError
	case response.Auto != nil && response.Auto.Found:
		outcome = outcomeFound
		m.combinations.Observe(float64(response.Auto.Count))
	case response.Auto != nil:
		outcome = outcomeNotFound
		m.combinations.Observe(0)
	}

	m.requests.WithLabelValues(kind, outcome).Inc()
	m.duration.WithLabelValues(kind).Observe(elapsed.Seconds())
}
