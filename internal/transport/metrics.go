package transport

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jmylchreest/rvpanel/internal/model"
)

// Metrics collects Server activity on its own registry.
type Metrics struct {
	registry    *prometheus.Registry
	requests    *prometheus.CounterVec
	connections prometheus.Gauge
}

// NewMetrics creates an empty metrics registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rvpanel",
			Name:      "requests_total",
			Help:      "Remote View requests handled, by request name and outcome.",
		}, []string{"name", "outcome"}),
		connections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "rvpanel",
			Name:      "connections_active",
			Help:      "Number of open WebSocket connections.",
		}),
	}
}

// WatchSessions exports the value of count as the active session gauge.
func (m *Metrics) WatchSessions(count func() int) {
	promauto.With(m.registry).NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "rvpanel",
		Name:      "sessions_active",
		Help:      "Number of active Remote View sessions.",
	}, func() float64 {
		return float64(count())
	})
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observe(name string, resp *model.Response) {
	if m == nil {
		return
	}
	outcome := "ok"
	switch {
	case resp == nil:
		outcome = "none"
	case resp.Failed():
		outcome = "error"
	}
	m.requests.WithLabelValues(name, outcome).Inc()
}

func (m *Metrics) connected(delta float64) {
	if m == nil {
		return
	}
	m.connections.Add(delta)
}
