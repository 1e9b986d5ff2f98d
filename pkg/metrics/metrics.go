package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics. A nil *Metrics is valid and
// records nothing, so services can take it as an optional dependency.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	LeadsIngested       *prometheus.CounterVec
	WhatsAppDispatches  *prometheus.CounterVec
	AssignmentConflicts prometheus.Counter
	LeadsImported       *prometheus.CounterVec
	StatusChanges       prometheus.Counter

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		LeadsIngested: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leads_ingested_total",
				Help: "Total number of leads ingested",
			},
			[]string{"action", "strategy"}, // created/updated, SPECIFIC/ROUND_ROBIN/PERCENTAGE/NONE
		),
		WhatsAppDispatches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "whatsapp_dispatches_total",
				Help: "Total number of WhatsApp campaign dispatches",
			},
			[]string{"result"}, // sent, failed
		),
		AssignmentConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "assignment_conflicts_total",
			Help: "Total number of optimistic assignment bookkeeping conflicts",
		}),
		LeadsImported: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leads_imported_total",
				Help: "Total number of leads processed by bulk import",
			},
			[]string{"result"}, // created, updated, failed
		),
		StatusChanges: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lead_status_changes_total",
			Help: "Total number of lead status changes",
		}),

		CacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache_type"},
		),
		CacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache_type"},
		),
	}
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // route pattern, not the raw URL

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}

// RecordLeadIngested increments the ingest counter
func (m *Metrics) RecordLeadIngested(action, strategy string) {
	if m == nil {
		return
	}
	m.LeadsIngested.WithLabelValues(action, strategy).Inc()
}

// RecordWhatsAppDispatch increments the dispatch counter
func (m *Metrics) RecordWhatsAppDispatch(success bool) {
	if m == nil {
		return
	}
	result := "failed"
	if success {
		result = "sent"
	}
	m.WhatsAppDispatches.WithLabelValues(result).Inc()
}

// RecordAssignmentConflict increments the bookkeeping conflict counter
func (m *Metrics) RecordAssignmentConflict() {
	if m == nil {
		return
	}
	m.AssignmentConflicts.Inc()
}

// RecordImportedLead increments the bulk import counter
func (m *Metrics) RecordImportedLead(result string) {
	if m == nil {
		return
	}
	m.LeadsImported.WithLabelValues(result).Inc()
}

// RecordStatusChange increments the status change counter
func (m *Metrics) RecordStatusChange() {
	if m == nil {
		return
	}
	m.StatusChanges.Inc()
}

// RecordCacheHit increments cache hits counter
func (m *Metrics) RecordCacheHit(cacheType string) {
	if m == nil {
		return
	}
	m.CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss increments cache misses counter
func (m *Metrics) RecordCacheMiss(cacheType string) {
	if m == nil {
		return
	}
	m.CacheMisses.WithLabelValues(cacheType).Inc()
}
