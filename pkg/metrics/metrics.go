package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of requests sent to upstream travel APIs",
		},
		[]string{"vendor", "endpoint", "status"},
	)
	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Upstream travel API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"vendor", "endpoint"},
	)
	SearchEventsLoggedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "search_events_logged_total",
			Help: "Total number of search events written to the analytics store",
		},
	)
	SearchEventFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "search_event_failures_total",
			Help: "Total number of search events dropped due to analytics store errors",
		},
	)
)

func Init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(UpstreamRequestsTotal)
	prometheus.MustRegister(UpstreamRequestDuration)
	prometheus.MustRegister(SearchEventsLoggedTotal)
	prometheus.MustRegister(SearchEventFailuresTotal)
}
