// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics owns the Prometheus instruments of the serving process.
//
// A single Collector is created at startup and shared by the service
// decorators, the batch export worker and the /metrics endpoint. Every
// instrument is registered on the Collector's own registry, so tests can
// create independent collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes recorded in requests_total.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Operation names used as the "operation" label.
const (
	OperationOnlineFeatures   = "get_online_features"
	OperationOnlineFeaturesV2 = "get_online_features_v2"
	OperationBatchFeatures    = "get_batch_features"
	OperationGetJob           = "get_job"
)

// Batch job events recorded in batch_jobs_total.
const (
	BatchJobCreated = "created"
	BatchJobDone    = "done"
	BatchJobFailed  = "failed"
	BatchJobRetried = "retried"
)

// Collector records request, validation and batch job metrics.
type Collector struct {
	registry *prometheus.Registry

	requestsTotal        *prometheus.CounterVec
	validationRejections *prometheus.CounterVec
	requestDuration      *prometheus.HistogramVec
	batchJobsTotal       *prometheus.CounterVec
}

// NewCollector registers all instruments under namespace on a fresh registry.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of serving requests by operation and outcome.",
			},
			[]string{"operation", "outcome"},
		),
		validationRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_rejections_total",
				Help:      "Total number of requests rejected by validation, by operation and kind.",
			},
			[]string{"operation", "kind"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Serving request duration in seconds.",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"operation"},
		),
		batchJobsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "batch_jobs_total",
				Help:      "Total number of batch job events by status.",
			},
			[]string{"status"},
		),
	}

	registry.MustRegister(
		c.requestsTotal,
		c.validationRejections,
		c.requestDuration,
		c.batchJobsTotal,
	)

	return c
}

// ObserveRequest records the outcome and duration of one serving call.
func (c *Collector) ObserveRequest(operation, outcome string, duration time.Duration) {
	c.requestsTotal.WithLabelValues(operation, outcome).Inc()
	c.requestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// IncValidationRejection counts a request rejected with the given kind.
func (c *Collector) IncValidationRejection(operation, kind string) {
	c.validationRejections.WithLabelValues(operation, kind).Inc()
}

// IncBatchJob counts a batch job event, one of the BatchJob* constants.
func (c *Collector) IncBatchJob(status string) {
	c.batchJobsTotal.WithLabelValues(status).Inc()
}

// Registry exposes the underlying registry, e.g. for extra collectors.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
}
