// Package metrics registers the Prometheus instruments for the API: request
// counters and latency by route, scope-gateway call results, and a live
// gauge of open review sessions.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "dockmaster_"

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	scopeRequests *prometheus.CounterVec

	workOrderCommits    prometheus.Counter
	outreachTransitions *prometheus.CounterVec
)

// SessionCounter reports the number of live review sessions; the review
// usecase satisfies it.
type SessionCounter interface {
	OpenSessions() int
}

// Init registers all instruments. sessions may be nil when the review flow
// is not wired (e.g. in one-off tools).
func Init(sessions SessionCounter) {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		)
		scopeRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "scope_requests_total",
				Help: "Total scope generations by result",
			},
			[]string{"result"},
		)
		workOrderCommits = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "work_order_commits_total",
				Help: "Total review sessions committed into work orders",
			},
		)
		outreachTransitions = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "outreach_transitions_total",
				Help: "Total outreach status transitions by target status",
			},
			[]string{"status"},
		)

		prometheus.MustRegister(httpRequests, httpLatency, scopeRequests, workOrderCommits, outreachTransitions)

		if sessions != nil {
			prometheus.MustRegister(prometheus.NewGaugeFunc(
				prometheus.GaugeOpts{
					Name: metricPrefix + "review_sessions_open",
					Help: "Review sessions currently open",
				},
				func() float64 {
					return float64(sessions.OpenSessions())
				},
			))
		}
	})
}

// GinMiddleware records per-route request counts and latency.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if httpRequests == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpLatency.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// ScopeRequest counts one scope generation outcome ("success" or "error").
func ScopeRequest(result string) {
	if scopeRequests != nil {
		scopeRequests.WithLabelValues(result).Inc()
	}
}

// WorkOrderCommitted counts one committed review session.
func WorkOrderCommitted() {
	if workOrderCommits != nil {
		workOrderCommits.Inc()
	}
}

// OutreachTransition counts one outreach status change.
func OutreachTransition(status string) {
	if outreachTransitions != nil {
		outreachTransitions.WithLabelValues(status).Inc()
	}
}
