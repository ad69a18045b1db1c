package cache

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	metricsOnce sync.Once
	events      *prometheus.CounterVec
)

// initMetrics registers the cache counter vec once per process.
func initMetrics() {
	metricsOnce.Do(func() {
		events = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settings_cache_events_total",
				Help: "Number of cache events, differentiated by region and event type.",
			},
			[]string{"region", "event"},
		)
	})
}

func countHit(region string) {
	initMetrics()
	events.WithLabelValues(region, "hit").Inc()
}

func countMiss(region string) {
	initMetrics()
	events.WithLabelValues(region, "miss").Inc()
}

func countExpiration(region string) {
	initMetrics()
	events.WithLabelValues(region, "expiration").Inc()
}
