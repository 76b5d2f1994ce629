package owm

import (
	stderrors "errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "owm_client"

type metrics struct {
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	apiErrorsTotal  *prometheus.CounterVec
	rebuildsTotal   *prometheus.CounterVec
}

// newMetrics builds the client collectors. A nil registerer leaves them
// unregistered but usable.
func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "request_duration_seconds",
				Help:      "Duration of requests to the weather service in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"area", "operation", "outcome"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "requests_total",
				Help:      "Total number of requests to the weather service.",
			},
			[]string{"area", "operation", "outcome"},
		),
		apiErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "api_errors_total",
				Help:      "Total number of non-2xx responses by status code.",
			},
			[]string{"area", "status"},
		),
		rebuildsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "transport_rebuilds_total",
				Help:      "Total number of transport rebuilds per service area.",
			},
			[]string{"area"},
		),
	}

	if reg != nil {
		m.requestDuration = registerOrReuse(reg, m.requestDuration)
		m.requestsTotal = registerOrReuse(reg, m.requestsTotal)
		m.apiErrorsTotal = registerOrReuse(reg, m.apiErrorsTotal)
		m.rebuildsTotal = registerOrReuse(reg, m.rebuildsTotal)
	}
	return m
}

func registerOrReuse[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if stderrors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (m *metrics) recordRequest(area Area, operation, outcome string, start time.Time) {
	m.requestDuration.WithLabelValues(area.String(), operation, outcome).Observe(time.Since(start).Seconds())
	m.requestsTotal.WithLabelValues(area.String(), operation, outcome).Inc()
}

func (m *metrics) recordAPIError(area Area, status int) {
	m.apiErrorsTotal.WithLabelValues(area.String(), strconv.Itoa(status)).Inc()
}

func (m *metrics) recordRebuild(area Area) {
	m.rebuildsTotal.WithLabelValues(area.String()).Inc()
}
