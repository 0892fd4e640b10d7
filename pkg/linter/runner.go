// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package linter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// runResult is the captured output of one robocop process.
type runResult struct {
	stdout   []byte
	stderr   []byte
	exitCode int
}

// combinedOutput joins stdout and stderr for error reports.
func (res runResult) combinedOutput() string {
	parts := make([]string, 0, 2)
	for _, b := range [][]byte{res.stdout, res.stderr} {
		if out := strings.TrimSpace(string(b)); out != "" {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, "\n")
}

// waitDelay bounds how long Wait blocks on output pipes after the
// process has been killed.
const waitDelay = 2 * time.Second

// Runner executes robocop subcommands.
//
// Thread Safety: Safe for concurrent use. Every call spawns its own process.
type Runner struct {
	cfg    Config
	logger *zap.Logger
}

// NewRunner creates a runner. Zero fields of cfg take DefaultConfig values.
func NewRunner(cfg Config, logger *zap.Logger) *Runner {
	def := DefaultConfig()
	if cfg.Bin == "" {
		cfg.Bin = def.Bin
	}
	if cfg.DocsConcurrency <= 0 {
		cfg.DocsConcurrency = def.DocsConcurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{cfg: cfg, logger: logger}
}

// Available reports whether the robocop binary can be found.
func (r *Runner) Available() error {
	if _, err := exec.LookPath(r.cfg.Bin); err != nil {
		return NewLinterError(r.cfg.Bin, "lookup", ErrLinterNotInstalled).WithOutput(err.Error())
	}
	return nil
}

// Check runs robocop check on paths and returns the reported diagnostics
// in the order robocop printed them. No output means no diagnostics.
//
// Errors:
//
//	ErrInvalidInput - no paths given
//	ErrLinterNotInstalled - robocop not found
//	ErrLinterTimeout - robocop exceeded the timeout
//	ErrLinterFailed - robocop failed without output, or exited non-zero
//	                  without printing an issue
//	ErrParseOutput - an issue line was malformed
func (r *Runner) Check(ctx context.Context, paths []string, opts CheckOptions) ([]Diagnostic, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no paths to check", ErrInvalidInput)
	}

	ctx, span := startRunSpan(ctx, "check", paths)
	defer span.End()
	start := time.Now()

	args := []string{"check", "--output-format", outputFormat, "--issue-format", issueFormat}
	if opts.ConfigFile != "" {
		args = append(args, "--config", opts.ConfigFile)
	}
	args = append(args, paths...)

	fail := func(err error) ([]Diagnostic, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		recordRunMetrics(ctx, "check", time.Since(start), false)
		return nil, err
	}

	res, err := r.execute(ctx, "check", args)
	if err != nil {
		return fail(err)
	}

	diags, err := parseDiagnostics(res.stdout)
	if err != nil {
		return fail(err)
	}

	// Robocop only exits non-zero after reporting issues.
	if len(diags) == 0 && res.exitCode != 0 {
		return fail(NewLinterError(r.cfg.Bin, "check", ErrLinterFailed).WithOutput(res.combinedOutput()))
	}

	recordDiagnostics(ctx, span, len(diags))
	recordRunMetrics(ctx, "check", time.Since(start), true)

	r.logger.Debug("Robocop check completed",
		zap.Strings("paths", paths),
		zap.Int("diagnostics", len(diags)),
		zap.Duration("duration", time.Since(start)),
	)
	return diags, nil
}

// Format runs robocop format on paths and returns its captured stdout.
func (r *Runner) Format(ctx context.Context, paths []string, opts FormatOptions) (string, error) {
	if len(paths) == 0 {
		return "", fmt.Errorf("%w: no paths to format", ErrInvalidInput)
	}

	ctx, span := startRunSpan(ctx, "format", paths)
	defer span.End()
	start := time.Now()

	args := []string{"format"}
	if opts.ConfigFile != "" {
		args = append(args, "--config", opts.ConfigFile)
	}
	if opts.Reruns > 0 {
		args = append(args, "--reruns", strconv.Itoa(opts.Reruns))
	}
	args = append(args, paths...)

	res, err := r.execute(ctx, "format", args)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		recordRunMetrics(ctx, "format", time.Since(start), false)
		return "", err
	}

	recordRunMetrics(ctx, "format", time.Since(start), true)
	return string(res.stdout), nil
}

// Rules lists every rule registered in robocop. When RuleDocs is enabled
// the documentation of each rule is fetched with bounded concurrency; a
// failed documentation lookup leaves Docs empty.
func (r *Runner) Rules(ctx context.Context) ([]RuleInfo, error) {
	ctx, span := startRunSpan(ctx, "rules", nil)
	defer span.End()
	start := time.Now()

	res, err := r.execute(ctx, "list", []string{"list", "rules", "--filter", "ALL"})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		recordRunMetrics(ctx, "rules", time.Since(start), false)
		return nil, err
	}

	rules := parseRuleList(res.stdout)
	if len(rules) == 0 {
		err := NewLinterError(r.cfg.Bin, "list", ErrParseOutput).WithOutput("no rules listed")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		recordRunMetrics(ctx, "rules", time.Since(start), false)
		return nil, err
	}

	if r.cfg.RuleDocs {
		r.fetchDocs(ctx, rules)
	}

	recordRunMetrics(ctx, "rules", time.Since(start), true)
	r.logger.Debug("Robocop rules listed",
		zap.Int("rules", len(rules)),
		zap.Duration("duration", time.Since(start)),
	)
	return rules, nil
}

func (r *Runner) fetchDocs(ctx context.Context, rules []RuleInfo) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.DocsConcurrency)

	for i := range rules {
		g.Go(func() error {
			res, err := r.execute(gctx, "docs", []string{"docs", rules[i].ID})
			if err != nil {
				r.logger.Debug("Rule documentation unavailable",
					zap.String("rule_id", rules[i].ID),
					zap.Error(err),
				)
				return nil
			}
			rules[i].Docs = strings.TrimSpace(string(res.stdout))
			return nil
		})
	}
	_ = g.Wait()
}

// execute runs robocop with args. A non-zero exit is only an error when
// nothing was printed on stdout.
func (r *Runner) execute(ctx context.Context, operation string, args []string) (runResult, error) {
	if _, err := exec.LookPath(r.cfg.Bin); err != nil {
		return runResult{}, NewLinterError(r.cfg.Bin, operation, ErrLinterNotInstalled).WithOutput(err.Error())
	}

	cmdCtx := ctx
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		cmdCtx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(cmdCtx, r.cfg.Bin, args...)
	cmd.WaitDelay = waitDelay
	if r.cfg.WorkingDir != "" {
		cmd.Dir = r.cfg.WorkingDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if errors.Is(cmdCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		return runResult{}, NewLinterError(r.cfg.Bin, operation, ErrLinterTimeout).
			WithOutput(strings.TrimSpace(stderr.String()))
	}
	if ctx.Err() != nil {
		return runResult{}, ctx.Err()
	}

	// Robocop exits non-zero when it reports issues.
	if err != nil && stdout.Len() == 0 {
		output := strings.TrimSpace(stderr.String())
		if output == "" {
			output = err.Error()
		}
		return runResult{}, NewLinterError(r.cfg.Bin, operation, ErrLinterFailed).WithOutput(output)
	}

	res := runResult{stdout: stdout.Bytes(), stderr: stderr.Bytes()}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.exitCode = exitErr.ExitCode()
	} else if err != nil {
		return runResult{}, NewLinterError(r.cfg.Bin, operation, ErrLinterFailed).WithOutput(err.Error())
	}
	return res, nil
}
