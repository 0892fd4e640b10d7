// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/robocop-mcp/robocop-mcp/pkg/config"
	"github.com/robocop-mcp/robocop-mcp/pkg/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the MCP tools",
	Long: `Serve get_robocop_report and run_robocop_format over MCP.

The stdio transport is meant to be launched by an MCP client. The http
transport serves the streamable HTTP endpoint on /mcp and Prometheus
metrics on /metrics.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("transport", config.TransportStdio, "transport (stdio, http)")
	serveCmd.Flags().String("http-addr", "127.0.0.1:8080", "listen address of the http transport")
	bindFlag(serveCmd.Flags(), "transport", "transport")
	bindFlag(serveCmd.Flags(), "http_addr", "http-addr")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := newApp()
	if err != nil {
		return err
	}
	logger := a.logger.Named("mcp")

	if err := a.runner.Available(); err != nil {
		logger.Warn("Robocop is not available; tool calls will fail until it is installed", zap.Error(err))
	}

	cfg := a.resolver.Resolve(ctx)
	logger.Info("Configuration loaded",
		zap.String("config_file", cfg.ConfigFile),
		zap.String("robocop_config_file", cfg.FormatConfigFile),
		zap.Int("violation_count", cfg.ViolationCount),
		zap.Int("user_rules", cfg.UserRules.Len()),
		zap.Int("predefined_fixes", cfg.PredefinedFixes.Len()),
	)

	server := mcp.NewServer(a.service,
		mcp.WithLogger(logger),
		mcp.WithMetrics(a.metrics),
	)

	if strings.EqualFold(settings.Transport, config.TransportHTTP) {
		return server.ListenAndServe(ctx, settings.HTTPAddr)
	}
	return server.ServeStdio(ctx, os.Stdin, os.Stdout)
}
