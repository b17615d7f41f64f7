package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the quote service.
//
// Every method is safe on a nil *Metrics, so components can run without
// instrumentation in tests and in the CLI.
type Metrics struct {
	Derivations      *prometheus.CounterVec
	QuoteTotal       prometheus.Histogram
	Intents          *prometheus.CounterVec
	ActiveSessions   prometheus.Gauge
	QuotesIssued     prometheus.Counter
	QuoteTransitions *prometheus.CounterVec
	Payments         *prometheus.CounterVec
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
}

func NewMetrics(registry prometheus.Registerer) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		Derivations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webquote_derivations_total",
				Help: "Total number of quote derivations",
			},
			[]string{"source"},
		),
		QuoteTotal: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "webquote_derived_total_price",
				Help:    "Distribution of derived quote totals",
				Buckets: []float64{10, 25, 50, 75, 100, 150, 200, 300},
			},
		),
		Intents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webquote_session_intents_total",
				Help: "Total number of selection intents by outcome",
			},
			[]string{"intent", "outcome"},
		),
		ActiveSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "webquote_active_sessions",
				Help: "Number of selection sessions held in memory",
			},
		),
		QuotesIssued: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "webquote_quotes_issued_total",
				Help: "Total number of issued quotes",
			},
		),
		QuoteTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webquote_quote_transitions_total",
				Help: "Total number of quote status transitions",
			},
			[]string{"status"},
		),
		Payments: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webquote_deposit_payments_total",
				Help: "Total number of deposit payments by status",
			},
			[]string{"status"},
		),
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webquote_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "webquote_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

func (m *Metrics) RecordDerivation(source string, total float64) {
	if m == nil {
		return
	}
	m.Derivations.WithLabelValues(source).Inc()
	m.QuoteTotal.Observe(total)
}

func (m *Metrics) RecordIntent(intent string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "rejected"
	}
	m.Intents.WithLabelValues(intent, outcome).Inc()
}

func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.ActiveSessions.Set(float64(n))
}

func (m *Metrics) RecordQuoteIssued() {
	if m == nil {
		return
	}
	m.QuotesIssued.Inc()
}

func (m *Metrics) RecordQuoteTransition(status string) {
	if m == nil {
		return
	}
	m.QuoteTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordPayment(status string) {
	if m == nil {
		return
	}
	m.Payments.WithLabelValues(status).Inc()
}

// Middleware records request counts and latency per route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if m == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
