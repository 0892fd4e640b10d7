// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordToolCall(t *testing.T) {
	m := NewMetrics()

	m.RecordToolCall("get_robocop_report", 150*time.Millisecond, true)
	m.RecordToolCall("get_robocop_report", 90*time.Millisecond, false)
	m.RecordToolCall("run_robocop_format", time.Second, true)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.toolCalls.WithLabelValues("get_robocop_report", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.toolCalls.WithLabelValues("get_robocop_report", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.toolCalls.WithLabelValues("run_robocop_format", "success")))
}

func TestRecordFixSource(t *testing.T) {
	m := NewMetrics()

	m.RecordFixSource("user")
	m.RecordFixSource("user")
	m.RecordFixSource("none")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.fixSources.WithLabelValues("user")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fixSources.WithLabelValues("none")))
}

func TestRecordViolationsCollected(t *testing.T) {
	m := NewMetrics()
	m.RecordViolations(42, 5)

	count, err := testutil.GatherAndCount(m.Registry(), "robocop_mcp_violations_found", "robocop_mcp_violations_shown")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordToolCall("x", time.Second, true)
		m.RecordViolations(1, 1)
		m.RecordFixSource("none")
	})
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics()
	m.RecordToolCall("get_robocop_report", time.Millisecond, true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "robocop_mcp_tool_calls_total")
}
