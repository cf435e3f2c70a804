// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the prometheus collectors of the sync server.
//
// All collectors are registered on a dedicated registry so that tests can
// create independent instances and the process never touches the global
// default registry. A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Push outcomes.
const (
	PushOK       = "ok"
	PushConflict = "conflict"
	PushError    = "error"
)

// Reasons a bearer token was rejected.
const (
	RejectInvalidToken = "invalid_token"
	RejectTokenExpired = "token_expired"
	RejectUserNotFound = "user_not_found"
	RejectBanned       = "banned"
	RejectSuperseded   = "superseded"
)

type Metrics struct {
	registry *prometheus.Registry

	syncPushes      *prometheus.CounterVec
	syncPulls       prometheus.Counter
	authRejections  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		syncPushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "timi_sync_push_total",
			Help: "Sync document writes by outcome.",
		}, []string{"result"}),
		syncPulls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timi_sync_pull_total",
			Help: "Sync document reads.",
		}),
		authRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "timi_auth_rejections_total",
			Help: "Bearer tokens rejected by the session authority, by reason.",
		}, []string{"reason"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "timi_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.syncPushes,
		m.syncPulls,
		m.authRejections,
		m.requestDuration,
	)

	return m
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry: m.registry,
		// responses are compressed by the HTTP middleware
		DisableCompression: true,
	})
}

func (m *Metrics) ObservePush(result string) {
	if m == nil {
		return
	}
	m.syncPushes.WithLabelValues(result).Inc()
}

func (m *Metrics) ObservePull() {
	if m == nil {
		return
	}
	m.syncPulls.Inc()
}

func (m *Metrics) ObserveAuthRejection(reason string) {
	if m == nil {
		return
	}
	m.authRejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveRequest(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
