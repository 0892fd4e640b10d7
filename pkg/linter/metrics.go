// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package linter

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("robocop-mcp.linter")
	meter  = otel.Meter("robocop-mcp.linter")
)

var (
	runLatency  metric.Float64Histogram
	runTotal    metric.Int64Counter
	diagsFound  metric.Int64Histogram
	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		runLatency, err = meter.Float64Histogram(
			"robocop_run_duration_seconds",
			metric.WithDescription("Duration of robocop invocations"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		runTotal, err = meter.Int64Counter(
			"robocop_run_total",
			metric.WithDescription("Total number of robocop invocations"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		diagsFound, err = meter.Int64Histogram(
			"robocop_diagnostics_found",
			metric.WithDescription("Number of diagnostics per robocop check"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func startRunSpan(ctx context.Context, operation string, paths []string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Runner."+operation,
		trace.WithAttributes(
			attribute.String("robocop.operation", operation),
			attribute.StringSlice("robocop.paths", paths),
		),
	)
}

func recordRunMetrics(ctx context.Context, operation string, duration time.Duration, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.Bool("success", success),
	)
	runLatency.Record(ctx, duration.Seconds(), attrs)
	runTotal.Add(ctx, 1, attrs)
}

func recordDiagnostics(ctx context.Context, span trace.Span, count int) {
	span.SetAttributes(attribute.Int("robocop.diagnostics", count))
	if err := initMetrics(); err != nil {
		return
	}
	diagsFound.Record(ctx, int64(count))
}
