package middleware

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics — счётчики HTTP-запросов и результатов поиска по чату.
type Metrics struct {
	reg          *prometheus.Registry
	requestCount *prometheus.CounterVec
	resolveCount *prometheus.CounterVec
}

// NewMetrics регистрирует счётчики в переданном реестре.
func NewMetrics(reg *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		reg: reg,
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
		resolveCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vault_resolve_total",
				Help: "Chat queries resolved, by intent.",
			},
			[]string{"intent"},
		),
	}
	for _, c := range []prometheus.Collector{m.requestCount, m.resolveCount} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Handler считает запросы по шаблону маршрута chi, а не по сырому пути.
func (m *Metrics) Handler(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			h.ServeHTTP(w, r)
			return
		}
		lw, data := wrapWriter(w)
		h.ServeHTTP(lw, r)

		path := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			path = rc.RoutePattern()
		}
		m.requestCount.WithLabelValues(r.Method, path, strconv.Itoa(data.code())).Inc()
	})
}

// ObserveIntent учитывает результат поиска.
func (m *Metrics) ObserveIntent(intent string) {
	m.resolveCount.WithLabelValues(intent).Inc()
}

// Exposer отдаёт метрики реестра в формате Prometheus.
func (m *Metrics) Exposer() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
