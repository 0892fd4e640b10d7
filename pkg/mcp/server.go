// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package mcp exposes the robocop operations as MCP tools.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	toolerrors "github.com/robocop-mcp/robocop-mcp/pkg/errors"
	"github.com/robocop-mcp/robocop-mcp/pkg/observability"
	"github.com/robocop-mcp/robocop-mcp/pkg/version"
)

const (
	mcpEndpoint     = "/mcp"
	metricsEndpoint = "/metrics"
	healthEndpoint  = "/healthz"

	shutdownTimeout = 10 * time.Second
)

const instructions = "Use get_robocop_report to find Robot Framework violations one rule at a time " +
	"and apply the proposed fix. Use run_robocop_format to format files before checking them."

// Service is the robocop operations served as tools.
type Service interface {
	GetReport(ctx context.Context, path *string) (string, error)
	RunFormat(ctx context.Context, path string) string
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics exposes m on the metrics endpoint in HTTP mode.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// Server is the MCP server.
type Server struct {
	mcp     *mcpserver.MCPServer
	svc     Service
	logger  *zap.Logger
	metrics *observability.Metrics
	tools   []mcpgo.Tool
}

// NewServer creates the server and registers the tools.
func NewServer(svc Service, opts ...Option) *Server {
	s := &Server{
		svc:    svc,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mcp = mcpserver.NewMCPServer(
		version.ServerName,
		version.Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
		mcpserver.WithInstructions(instructions),
	)

	s.register(reportTool(), s.handleReport)
	s.register(formatTool(), s.handleFormat)
	return s
}

func (s *Server) register(tool mcpgo.Tool, handler mcpserver.ToolHandlerFunc) {
	s.mcp.AddTool(tool, handler)
	s.tools = append(s.tools, tool)
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcp
}

// Tools returns the registered tool definitions.
func (s *Server) Tools() []mcpgo.Tool {
	out := make([]mcpgo.Tool, len(s.tools))
	copy(out, s.tools)
	return out
}

// ServeStdio serves JSON-RPC over in and out until ctx is done or in is
// closed.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := mcpserver.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(zap.NewStdLog(s.logger))

	s.logger.Info("Serving MCP over stdio", zap.String("server", version.ServerName))
	err := stdio.Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Handler returns the HTTP handler serving the streamable HTTP transport,
// the metrics endpoint and a health check.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(mcpEndpoint, mcpserver.NewStreamableHTTPServer(s.mcp))
	if s.metrics != nil {
		mux.Handle(metricsEndpoint, s.metrics.Handler())
	}
	mux.HandleFunc(healthEndpoint, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// ListenAndServe serves the HTTP transport on addr until ctx is done, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("Serving MCP over HTTP",
			zap.String("addr", addr),
			zap.String("endpoint", mcpEndpoint),
		)
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleReport(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	var path *string
	if raw, ok := req.GetArguments()[argPath]; ok && raw != nil {
		p, ok := raw.(string)
		if !ok {
			return invalidArgument(argPath, "must be a string"), nil
		}
		path = &p
	}

	report, err := s.svc.GetReport(ctx, path)
	if err != nil {
		return reportError(err), nil
	}
	return mcpgo.NewToolResultText(report), nil
}

func (s *Server) handleFormat(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	path, err := req.RequireString(argPath)
	if err != nil {
		return invalidArgument(argPath, err.Error()), nil
	}
	return mcpgo.NewToolResultText(s.svc.RunFormat(ctx, path)), nil
}

func reportError(err error) *mcpgo.CallToolResult {
	var text string
	switch {
	case toolerrors.IsType(err, toolerrors.ErrValidation):
		text = "Invalid path: " + toolerrors.Reason(err)
	case toolerrors.IsType(err, toolerrors.ErrTimeout):
		text = "Robocop timed out: " + toolerrors.Reason(err) + ". Check a smaller file or folder."
	default:
		text = "Robocop failed: " + toolerrors.Reason(err)
	}
	if toolerrors.IsRetryable(err) {
		text += " The call can be retried."
	}
	return mcpgo.NewToolResultError(text)
}

func invalidArgument(name, reason string) *mcpgo.CallToolResult {
	err := toolerrors.ValidationError(fmt.Sprintf("invalid argument %q: %s", name, reason), nil)
	return mcpgo.NewToolResultError(err.Error())
}
