// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the rental server and
// the handler exposing them on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "car_rental"

// Order outcomes recorded by [Metrics.ObserveOrder].
const (
	OrderSucceeded         = "success"
	OrderInsufficientFunds = "insufficient_funds"
	OrderNoCreditCard      = "no_credit_card"
	OrderPackageNotFound   = "package_not_found"
	OrderRejected          = "rejected"
	OrderFailed            = "error"
)

// Metrics owns a private registry, so several servers (or tests) in one
// process never collide on collector registration.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	orders       *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"route", "method", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
			},
			[]string{"route", "method", "status"},
		),
		orders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "orders",
				Name:      "submitted_total",
				Help:      "Order submissions by outcome.",
			},
			[]string{"outcome"},
		),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.orders,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return m
}

// ObserveRequest records one finished HTTP request. route is the matched
// router pattern (e.g. "/cars/{id}"), never the raw path.
func (m *Metrics) ObserveRequest(route, method string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	code := strconv.Itoa(status)

	m.httpRequests.WithLabelValues(route, method, code).Inc()
	m.httpDuration.WithLabelValues(route, method, code).Observe(duration.Seconds())
}

func (m *Metrics) ObserveOrder(outcome string) {
	m.orders.WithLabelValues(outcome).Inc()
}

// OrdersCounter returns the counter of outcome.
func (m *Metrics) OrdersCounter(outcome string) prometheus.Counter {
	return m.orders.WithLabelValues(outcome)
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
