package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	// Метрики исходящих запросов к n8n webhook
	WebhookForwardsTotal  *prometheus.CounterVec
	WebhookForwardSeconds prometheus.Histogram
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		RequestsInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests currently being served",
			ConstLabels: constLabels,
		}),

		WebhookForwardsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "webhook_forwards_total",
			Help:        "Total number of submissions forwarded to the automation webhook",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		WebhookForwardSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:        "webhook_forward_duration_seconds",
			Help:        "Duration of outbound webhook calls in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}),
	}
}

// ObserveForward фиксирует результат исходящего запроса к webhook
func (m *Metrics) ObserveForward(outcome string, seconds float64) {
	m.WebhookForwardsTotal.WithLabelValues(outcome).Inc()
	m.WebhookForwardSeconds.Observe(seconds)
}
