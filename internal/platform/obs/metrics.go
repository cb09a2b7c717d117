package obs

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "subway_http_requests_total",
		Help: "HTTP requests served, by route and status code",
	}, []string{"method", "route", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "subway_http_request_duration_seconds",
		Help:    "End-to-end HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	operationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "subway_operation_duration_seconds",
		Help:    "Latency of instrumented internal operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})

	fareQuotes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "subway_fare_quotes_total",
		Help: "Fare quotes computed, by rider age group",
	}, []string{"age_group"})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, operationDuration, fareQuotes)
}

func ObserveHTTP(method, route string, status int, seconds float64) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(seconds)
}

func CountFareQuote(ageGroup string) {
	fareQuotes.WithLabelValues(ageGroup).Inc()
}
