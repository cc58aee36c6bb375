package bsearch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searches = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "bsearch_searches_total",
		Help: "The total number of searches, by container direction and outcome",
	}, []string{"direction", "outcome"})

	matches = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "bsearch_matches",
		Help:    "The number of indices returned by successful searches",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8), //nolint:mnd
	}, []string{"direction"})
)

func recordSearch(direction string, count int) {
	if count == 0 {
		searches.WithLabelValues(direction, "miss").Inc()

		return
	}

	searches.WithLabelValues(direction, "hit").Inc()
	matches.WithLabelValues(direction).Observe(float64(count))
}
