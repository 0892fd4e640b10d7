// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "robocop_mcp"

// Metrics collects tool invocation metrics.
type Metrics struct {
	registry *prometheus.Registry

	toolCalls       *prometheus.CounterVec
	toolDuration    *prometheus.HistogramVec
	violationsTotal prometheus.Histogram
	violationsShown prometheus.Histogram
	fixSources      *prometheus.CounterVec
}

// NewMetrics creates a metrics collector on its own registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		toolCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "tool_calls_total",
			Help:      "Number of MCP tool invocations.",
		}, []string{"tool", "status"}),
		toolDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "tool_duration_seconds",
			Help:      "Duration of MCP tool invocations.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"tool"}),
		violationsTotal: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "violations_found",
			Help:      "Violations reported by robocop per report request.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		violationsShown: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "violations_shown",
			Help:      "Violations rendered per report request after filtering.",
			Buckets:   prometheus.LinearBuckets(0, 5, 10),
		}),
		fixSources: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "fix_resolutions_total",
			Help:      "Proposed fix resolutions by source.",
		}, []string{"source"}),
	}
}

// RecordToolCall records one tool invocation.
func (m *Metrics) RecordToolCall(tool string, duration time.Duration, success bool) {
	if m == nil {
		return
	}
	status := "success"
	if !success {
		status = "error"
	}
	m.toolCalls.WithLabelValues(tool, status).Inc()
	m.toolDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// RecordViolations records the size of the raw violation list and the cohort.
func (m *Metrics) RecordViolations(total, shown int) {
	if m == nil {
		return
	}
	m.violationsTotal.Observe(float64(total))
	m.violationsShown.Observe(float64(shown))
}

// RecordFixSource records where a proposed fix came from
// ("user", "predefined" or "none").
func (m *Metrics) RecordFixSource(source string) {
	if m == nil {
		return
	}
	m.fixSources.WithLabelValues(source).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
