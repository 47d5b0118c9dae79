// Package metrics exposes Prometheus instrumentation for the game server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mcoot/wordgrid/internal/model"
)

const namespace = "wordgrid"

// Metrics holds the collectors for one server instance.
// Each instance has its own registry so tests can build many apps.
type Metrics struct {
	registry *prometheus.Registry

	boardsGenerated prometheus.Counter
	wordChecks      *prometheus.CounterVec
	scoresPosted    prometheus.Counter
	scorePosted     prometheus.Histogram
	sessionsCreated prometheus.Counter
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// New creates and registers all collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		boardsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "boards_generated_total",
			Help:      "Total number of boards generated",
		}),
		wordChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "word_checks_total",
			Help:      "Total number of word checks by result",
		}, []string{"result"}),
		scoresPosted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scores_posted_total",
			Help:      "Total number of completed rounds",
		}),
		scorePosted: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "round_score",
			Help:      "Distribution of posted round scores",
			Buckets:   []float64{0, 5, 10, 20, 40, 80, 160},
		}),
		sessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "Total number of sessions created",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.boardsGenerated,
		m.wordChecks,
		m.scoresPosted,
		m.scorePosted,
		m.sessionsCreated,
		m.httpRequests,
		m.httpDuration,
	)

	// Pre-create result series so they are exported at zero
	for _, result := range []model.ValidationResult{model.ResultOK, model.ResultNotOnBoard, model.ResultNotWord} {
		m.wordChecks.WithLabelValues(string(result))
	}

	return m
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// BoardGenerated counts a new board
func (m *Metrics) BoardGenerated() {
	m.boardsGenerated.Inc()
}

// WordChecked counts a word check by its result
func (m *Metrics) WordChecked(result model.ValidationResult) {
	m.wordChecks.WithLabelValues(string(result)).Inc()
}

// ScorePosted counts a completed round and records its score
func (m *Metrics) ScorePosted(score int) {
	m.scoresPosted.Inc()
	m.scorePosted.Observe(float64(score))
}

// SessionCreated counts a new session
func (m *Metrics) SessionCreated() {
	m.sessionsCreated.Inc()
}

// ObserveRequest records a completed HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
