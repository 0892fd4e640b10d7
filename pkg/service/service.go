// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package service implements the report and format operations exposed over
// MCP and the command line.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/robocop-mcp/robocop-mcp/pkg/config"
	toolerrors "github.com/robocop-mcp/robocop-mcp/pkg/errors"
	"github.com/robocop-mcp/robocop-mcp/pkg/linter"
	"github.com/robocop-mcp/robocop-mcp/pkg/observability"
	"github.com/robocop-mcp/robocop-mcp/pkg/output"
	"github.com/robocop-mcp/robocop-mcp/pkg/security"
	"github.com/robocop-mcp/robocop-mcp/pkg/violation"
)

// Tool names, shared with the MCP layer for metrics.
const (
	ToolReport = "get_robocop_report"
	ToolFormat = "run_robocop_format"
)

const (
	formatDonePrefix  = "All done in "
	formatErrorPrefix = "An error occurred during formatting: "
)

// Linter runs robocop.
type Linter interface {
	Check(ctx context.Context, paths []string, opts linter.CheckOptions) ([]linter.Diagnostic, error)
	Format(ctx context.Context, paths []string, opts linter.FormatOptions) (string, error)
}

// ConfigResolver builds the configuration of one request.
type ConfigResolver interface {
	Resolve(ctx context.Context) *config.Config
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithPathValidator rejects tool paths the validator refuses.
func WithPathValidator(v *security.PathValidator) Option {
	return func(s *Service) {
		s.paths = v
	}
}

// Service runs robocop and shapes its results.
//
// Thread Safety: Safe for concurrent use. Every call builds its own
// configuration and violation list.
type Service struct {
	linter   Linter
	configs  ConfigResolver
	fixes    *violation.FixResolver
	renderer *output.Renderer
	logger   *zap.Logger
	metrics  *observability.Metrics
	paths    *security.PathValidator
}

// New creates a service.
func New(l Linter, configs ConfigResolver, opts ...Option) *Service {
	s := &Service{
		linter:   l,
		configs:  configs,
		renderer: output.NewRenderer(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.fixes = violation.NewFixResolver(s.logger)
	return s
}

// GetReport lints path and returns the markdown report of the selected
// violations. A nil or empty path means the current directory. Robocop
// failures are returned as errors.
func (s *Service) GetReport(ctx context.Context, path *string) (report string, err error) {
	target := resolvePath(path)
	logger := s.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("tool", ToolReport),
		zap.String("path", target),
	)

	ctx, span := observability.StartSpan(ctx, "Service.GetReport", attribute.String("robocop.path", target))
	start := time.Now()
	defer func() {
		observability.EndSpan(span, err)
		s.metrics.RecordToolCall(ToolReport, time.Since(start), err == nil)
	}()

	if verr := s.paths.Validate(target); verr != nil {
		terr := toolerrors.ValidationError("invalid path", verr).WithContext("allowed_roots", s.paths.Roots())
		logger.Warn("Rejected path", terr.LogFields()...)
		return "", terr
	}

	logger.Info("Running Robocop")
	cfg := s.configs.Resolve(ctx)

	diags, err := s.linter.Check(ctx, []string{target}, linter.CheckOptions{ConfigFile: cfg.FormatConfigFile})
	if err != nil {
		logger.Error("Robocop check failed", zap.Error(err))
		return "", lintError(err)
	}

	all := violation.FromDiagnostics(diags)
	cohort := violation.Cohort(all, violation.OptionsFromConfig(cfg))
	s.metrics.RecordViolations(len(all), len(cohort))
	span.SetAttributes(
		attribute.Int("robocop.violations", len(all)),
		attribute.Int("robocop.reported", len(cohort)),
	)

	if len(cohort) == 0 {
		logger.Info("No violations found", zap.Int("violations", len(all)))
		return output.NoViolations(), nil
	}

	fix, source := s.fixes.Resolve(cohort[0], cfg.UserRules, cfg.PredefinedFixes)
	s.metrics.RecordFixSource(string(source))

	logger.Info("Report generated",
		zap.String("rule_id", cohort[0].RuleID),
		zap.Int("violations", len(all)),
		zap.Int("reported", len(cohort)),
		zap.String("fix_source", string(source)),
	)
	return s.renderer.Render(cohort, fix, len(all)), nil
}

// Format formats path with robocop format and returns robocop's summary.
// Rejected paths are ErrValidation errors and robocop failures ErrFormat
// (or ErrTimeout) errors.
func (s *Service) Format(ctx context.Context, path string) (summary string, err error) {
	target := resolvePath(&path)
	logger := s.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("tool", ToolFormat),
		zap.String("path", target),
	)

	if verr := s.paths.Validate(target); verr != nil {
		terr := toolerrors.ValidationError("invalid path", verr).WithContext("allowed_roots", s.paths.Roots())
		logger.Warn("Rejected path", terr.LogFields()...)
		return "", terr
	}

	ctx, span := observability.StartSpan(ctx, "Service.Format", attribute.String("robocop.path", target))
	start := time.Now()
	defer func() {
		observability.EndSpan(span, err)
		s.metrics.RecordToolCall(ToolFormat, time.Since(start), err == nil)
	}()

	cfg := s.configs.Resolve(ctx)
	out, ferr := s.linter.Format(ctx, []string{target}, linter.FormatOptions{
		ConfigFile: cfg.FormatConfigFile,
		Reruns:     cfg.FormatReruns,
	})
	if ferr != nil {
		err = formatError(ferr)
		logger.Error("Robocop format failed", zap.Error(err))
		return "", err
	}

	summary = strings.TrimRight(out, "\n")
	logger.Info("Robocop format completed", zap.String("report", summary))
	return summary, nil
}

// RunFormat formats path and returns the result as text. It never fails;
// formatting errors are reported in the returned text.
func (s *Service) RunFormat(ctx context.Context, path string) string {
	summary, err := s.Format(ctx, path)
	if err != nil {
		return formatErrorPrefix + toolerrors.Reason(err)
	}
	return formatDonePrefix + summary
}

func resolvePath(path *string) string {
	if path == nil || strings.TrimSpace(*path) == "" {
		return "."
	}
	return *path
}

func formatError(err error) error {
	if errors.Is(err, linter.ErrLinterTimeout) {
		return toolerrors.TimeoutError("robocop format timed out", err)
	}
	return toolerrors.FormatError("robocop format failed", err)
}

func lintError(err error) error {
	if errors.Is(err, linter.ErrLinterTimeout) {
		return toolerrors.TimeoutError("robocop check timed out", err)
	}
	return toolerrors.LinterError("robocop check failed", err)
}
