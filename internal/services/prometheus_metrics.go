package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	insightJobsTotal    *prometheus.CounterVec
	generationDuration  prometheus.Histogram
	queueDepth          *prometheus.GaugeVec
	retryAttempts       prometheus.Counter
	circuitBreakerState *prometheus.GaugeVec
	cacheEventsTotal    *prometheus.CounterVec
	analyticsDuration   prometheus.Histogram
	insightsEnqueued    prometheus.Counter
	llmCallsTotal       *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		insightJobsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insight_jobs_total",
				Help: "Total number of insight generation jobs by outcome",
			},
			[]string{"status"},
		),
		generationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "insight_generation_duration_milliseconds",
				Help:    "Insight generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 16),
			},
		),
		queueDepth: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "insight_queue_depth",
				Help: "Current depth of the insight generation queue",
			},
			[]string{"status"},
		),
		retryAttempts: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "insight_retry_attempts_total",
				Help: "Total number of insight job retry attempts",
			},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		cacheEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_cache_events_total",
				Help: "Analytics cache lookups by result",
			},
			[]string{"result", "metric"},
		),
		analyticsDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analytics_computation_duration_milliseconds",
				Help:    "Analytics metric computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		insightsEnqueued: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "insight_jobs_enqueued_total",
				Help: "Total number of insight generation jobs enqueued",
			},
		),
		llmCallsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "llm_calls_total",
				Help: "Total number of LLM generation calls by outcome",
			},
			[]string{"status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	metric := tags["metric"]
	status := tags["status"]

	switch name {
	case "insight.job.completed":
		m.insightJobsTotal.WithLabelValues("completed").Inc()
	case "insight.job.failed":
		m.insightJobsTotal.WithLabelValues("failed").Inc()
	case "insight.job.dropped":
		m.insightJobsTotal.WithLabelValues("dropped").Inc()
	case "insight.job.retry":
		m.retryAttempts.Inc()
	case "insight.job.enqueued":
		m.insightsEnqueued.Inc()
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	case "analytics.cache.hit":
		m.cacheEventsTotal.WithLabelValues("hit", metric).Inc()
	case "analytics.cache.miss":
		m.cacheEventsTotal.WithLabelValues("miss", metric).Inc()
	case "analytics.cache.invalidated":
		m.cacheEventsTotal.WithLabelValues("invalidated", metric).Inc()
	case "llm.call":
		if status != "" {
			m.llmCallsTotal.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "insight.generation":
		m.generationDuration.Observe(float64(duration.Milliseconds()))
	case "analytics.computation":
		m.analyticsDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	status := tags["status"]
	switch name {
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	default:
		if status != "" {
			m.queueDepth.WithLabelValues(status).Set(value)
		}
	}
}

func (m *PrometheusMetrics) UpdateQueueMetrics(pending, processing, failed int64) {
	m.queueDepth.WithLabelValues("pending").Set(float64(pending))
	m.queueDepth.WithLabelValues("processing").Set(float64(processing))
	m.queueDepth.WithLabelValues("failed").Set(float64(failed))
}
