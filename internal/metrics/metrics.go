// Package metrics держит Prometheus-метрики сервиса в собственном реестре.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"component-linker/internal/linkage/model"
)

// Исходы прогона для linkage_runs_total.
const (
	OutcomeMatched     = "matched"
	OutcomeEmpty       = "empty"
	OutcomeSchemaError = "schema_error"
	OutcomeError       = "error"
)

type Metrics struct {
	reg         *prometheus.Registry
	runs        *prometheus.CounterVec
	comparisons prometheus.Counter
	rows        *prometheus.CounterVec
	httpDur     *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linkage_runs_total",
			Help: "Linkage runs by outcome.",
		}, []string{"outcome"}),
		comparisons: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "linkage_comparisons_total",
			Help: "Pairwise description comparisons performed.",
		}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linkage_rows_total",
			Help: "Linkage rows emitted by orientation.",
		}, []string{"orientation"}),
		httpDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}
	m.reg.MustRegister(
		m.runs, m.comparisons, m.rows, m.httpDur,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRun учитывает итог прогона. err — ошибка service.Run (или nil).
func (m *Metrics) ObserveRun(res model.Result, err error) {
	var se *model.SchemaError
	switch {
	case errors.As(err, &se):
		m.runs.WithLabelValues(OutcomeSchemaError).Inc()
		return
	case err != nil:
		m.runs.WithLabelValues(OutcomeError).Inc()
		return
	case len(res.Rows) == 0:
		m.runs.WithLabelValues(OutcomeEmpty).Inc()
	default:
		m.runs.WithLabelValues(OutcomeMatched).Inc()
	}
	m.comparisons.Add(float64(res.Comparisons))
	for _, o := range []model.Orientation{model.CandidateAsDependent, model.CandidateAsEnabling} {
		if n := res.Count(o); n > 0 {
			m.rows.WithLabelValues(string(o)).Add(float64(n))
		}
	}
}

func (m *Metrics) ObserveHTTP(method string, status int, d time.Duration) {
	m.httpDur.WithLabelValues(method, strconv.Itoa(status)).Observe(d.Seconds())
}

func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
