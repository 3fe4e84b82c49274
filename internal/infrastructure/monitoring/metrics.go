package monitoring

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// MetricsCollector handles Prometheus metrics collection
type MetricsCollector struct {
	logger *zap.Logger

	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Business metrics
	mealsStartedTotal      prometheus.Counter
	mealsFinalizedTotal    *prometheus.CounterVec
	mealFailuresTotal      *prometheus.CounterVec
	suggestionsTotal       prometheus.Counter
	recommendationsTotal   *prometheus.CounterVec
	purchaseOrdersTotal    *prometheus.CounterVec
	invoicesGeneratedTotal prometheus.Counter

	// System metrics
	dbQueryDuration *prometheus.HistogramVec

	// SLA/SLO metrics
	uptimeSeconds  prometheus.Counter
	errorRateTotal *prometheus.CounterVec
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger *zap.Logger) *MetricsCollector {
	return &MetricsCollector{
		logger: logger,

		// HTTP metrics
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),

		// Business metrics
		mealsStartedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "meals_started_total",
				Help: "Total number of custom meal requests started",
			},
		),
		mealsFinalizedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meals_finalized_total",
				Help: "Total number of finalized custom meals",
			},
			[]string{"outcome"},
		),
		mealFailuresTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meal_failures_total",
				Help: "Total number of meal failures by kind",
			},
			[]string{"kind"},
		),
		suggestionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ingredient_suggestions_total",
				Help: "Total number of alternative suggestion queries",
			},
		),
		recommendationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipe_recommendations_total",
				Help: "Total number of recipe recommendation queries",
			},
			[]string{"outcome"},
		),
		purchaseOrdersTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "purchase_orders_total",
				Help: "Total number of generated purchase orders",
			},
			[]string{"kind"},
		),
		invoicesGeneratedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "invoices_generated_total",
				Help: "Total number of generated invoices",
			},
		),

		// System metrics
		dbQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"operation", "table"},
		),

		// SLA/SLO metrics
		uptimeSeconds: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "uptime_seconds_total",
				Help: "Total uptime in seconds",
			},
		),
		errorRateTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "error_rate_total",
				Help: "Total error rate",
			},
			[]string{"service", "error_type"},
		),
	}
}

// HTTPMiddleware creates a Gin middleware for HTTP metrics collection
func (m *MetricsCollector) HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())

		m.httpRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			statusCode,
		).Inc()

		m.httpRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			statusCode,
		).Observe(duration)

		if c.Writer.Status() >= 400 {
			errorType := "client_error"
			if c.Writer.Status() >= 500 {
				errorType = "server_error"
			}
			m.errorRateTotal.WithLabelValues("http", errorType).Inc()
		}
	}
}

// Business metric methods

func (m *MetricsCollector) MealStarted() {
	m.mealsStartedTotal.Inc()
}

func (m *MetricsCollector) MealFinalized(successful bool) {
	outcome := "failure"
	if successful {
		outcome = "success"
	}
	m.mealsFinalizedTotal.WithLabelValues(outcome).Inc()
}

func (m *MetricsCollector) MealFailure(kind string) {
	m.mealFailuresTotal.WithLabelValues(kind).Inc()
}

func (m *MetricsCollector) SuggestionQueried() {
	m.suggestionsTotal.Inc()
}

func (m *MetricsCollector) RecommendationServed(matched bool) {
	outcome := "no_match"
	if matched {
		outcome = "match"
	}
	m.recommendationsTotal.WithLabelValues(outcome).Inc()
}

func (m *MetricsCollector) PurchaseOrderGenerated(automatic bool) {
	kind := "manual"
	if automatic {
		kind = "auto"
	}
	m.purchaseOrdersTotal.WithLabelValues(kind).Inc()
}

func (m *MetricsCollector) InvoiceGenerated() {
	m.invoicesGeneratedTotal.Inc()
}

// System metric methods

func (m *MetricsCollector) DBQuery(operation, table string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

func (m *MetricsCollector) RecordError(service, errorType string) {
	m.errorRateTotal.WithLabelValues(service, errorType).Inc()
}

// StartUptimeCounter starts the uptime counter
func (m *MetricsCollector) StartUptimeCounter(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.uptimeSeconds.Inc()
		}
	}
}

// Handler returns the Prometheus metrics HTTP handler
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.Handler()
}
