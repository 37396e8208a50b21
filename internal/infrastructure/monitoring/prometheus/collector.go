// Package prometheus gathers the service's metrics in a private registry and
// exposes them over the /metrics endpoint.
package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "siamhora"

// Collector owns the registry and every application metric.  Its methods
// satisfy the metric interfaces declared by the application and
// infrastructure layers, so those packages never import prometheus directly.
type Collector struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	chartComputationsTotal *prometheus.CounterVec
	transitAnalysesTotal   prometheus.Counter
	transitAspectsTotal    prometheus.Counter
	matchScores            prometheus.Histogram

	geocodeLookupsTotal    *prometheus.CounterVec
	verifierFallbacksTotal prometheus.Counter
}

// NewCollector builds the collector with a fresh private registry including
// the standard Go and process collectors.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c := &Collector{
		registry: registry,

		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route, and status code.",
		}, []string{"method", "route", "status"}),

		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"method", "route"}),

		chartComputationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_computations_total",
			Help:      "Charts computed by zodiac system.",
		}, []string{"system"}),

		transitAnalysesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transit_analyses_total",
			Help:      "Transit analyses performed.",
		}),

		transitAspectsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transit_aspects_total",
			Help:      "Aspects reported across all transit analyses.",
		}),

		matchScores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_score",
			Help:      "Distribution of compatibility scores.",
			Buckets:   []float64{0, 15, 25, 40, 55, 70, 85, 100},
		}),

		geocodeLookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_lookups_total",
			Help:      "Reverse geocode lookups by cache outcome.",
		}, []string{"outcome"}),

		verifierFallbacksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verifier_fallbacks_total",
			Help:      "Date verifications that fell back to the local resolver.",
		}),
	}

	registry.MustRegister(
		c.httpRequestsTotal,
		c.httpRequestDuration,
		c.chartComputationsTotal,
		c.transitAnalysesTotal,
		c.transitAspectsTotal,
		c.matchScores,
		c.geocodeLookupsTotal,
		c.verifierFallbacksTotal,
	)

	return c
}

// Handler serves the registry in the prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records one completed HTTP request.
func (c *Collector) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	c.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ChartComputed implements the astro service's Metrics interface.
func (c *Collector) ChartComputed(system string) {
	c.chartComputationsTotal.WithLabelValues(system).Inc()
}

// TransitAnalyzed implements the astro service's Metrics interface.
func (c *Collector) TransitAnalyzed(aspects int) {
	c.transitAnalysesTotal.Inc()
	c.transitAspectsTotal.Add(float64(aspects))
}

// MatchScored implements the astro service's Metrics interface.
func (c *Collector) MatchScored(score int) {
	c.matchScores.Observe(float64(score))
}

// GeocodeLookup implements the geocoder's CacheMetrics interface.
func (c *Collector) GeocodeLookup(cacheHit bool) {
	outcome := "miss"
	if cacheHit {
		outcome = "hit"
	}
	c.geocodeLookupsTotal.WithLabelValues(outcome).Inc()
}

// VerifierFallback implements the verifier's FallbackMetrics interface.
func (c *Collector) VerifierFallback() {
	c.verifierFallbacksTotal.Inc()
}

//Personal.AI order the ending
