// Package metrics exposes Prometheus collectors for scheduling runs served over HTTP.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cpu_scheduler"

// Metrics owns a private registry so several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	schedulesTotal     *prometheus.CounterVec
	batchSize          prometheus.Histogram
	averageWaitingTime *prometheus.GaugeVec
}

func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.schedulesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schedules_total",
			Help:      "Scheduling runs by algorithm and status.",
		},
		[]string{"algorithm", "status"},
	)
	m.batchSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of processes per scheduled batch.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
	m.averageWaitingTime = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "average_waiting_time",
			Help:      "Average waiting time of the last successful run per algorithm.",
		},
		[]string{"algorithm"},
	)

	m.registry.MustRegister(m.schedulesTotal, m.batchSize, m.averageWaitingTime)
	return m
}

// RecordSuccess counts a completed run of size processes.
func (m *Metrics) RecordSuccess(algorithm string, size int, averageWaitingTime float64) {
	m.schedulesTotal.WithLabelValues(algorithm, "success").Inc()
	m.batchSize.Observe(float64(size))
	m.averageWaitingTime.WithLabelValues(algorithm).Set(averageWaitingTime)
}

// RecordFailure counts a rejected run.
func (m *Metrics) RecordFailure(algorithm string) {
	m.schedulesTotal.WithLabelValues(algorithm, "error").Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
