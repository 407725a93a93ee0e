package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los collectors del sitio sobre un registry propio,
// así cada test puede crear el suyo sin chocar con el global.
type Metrics struct {
	Registry *prometheus.Registry

	contentFetches *prometheus.CounterVec
	pageRenders    *prometheus.CounterVec
	renderDur      *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{Registry: prometheus.NewRegistry()}

	m.contentFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "site",
		Name:      "content_fetches_total",
		Help:      "Content documents fetched by kind and result",
	}, []string{"kind", "result"})
	m.pageRenders = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "site",
		Name:      "page_renders_total",
		Help:      "Page pipeline runs by page and outcome",
	}, []string{"page", "outcome"})
	m.renderDur = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "site",
		Name:      "page_render_duration_seconds",
		Help:      "Time from request to rendered page",
		Buckets:   prometheus.DefBuckets,
	}, []string{"page"})

	m.Registry.MustRegister(
		m.contentFetches, m.pageRenders, m.renderDur,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ContentFetch cuenta una lectura de contenido. Nil-safe.
func (m *Metrics) ContentFetch(kind, result string) {
	if m == nil {
		return
	}
	m.contentFetches.WithLabelValues(kind, result).Inc()
}

// PageRender cuenta una ejecución de controller y su duración. Nil-safe.
func (m *Metrics) PageRender(page, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.pageRenders.WithLabelValues(page, outcome).Inc()
	m.renderDur.WithLabelValues(page).Observe(d.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
