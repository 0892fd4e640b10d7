// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/robocop-mcp/robocop-mcp/pkg/config"
	"github.com/robocop-mcp/robocop-mcp/pkg/linter"
	"github.com/robocop-mcp/robocop-mcp/pkg/observability"
	"github.com/robocop-mcp/robocop-mcp/pkg/rules"
	"github.com/robocop-mcp/robocop-mcp/pkg/security"
	"github.com/robocop-mcp/robocop-mcp/pkg/service"
	"github.com/robocop-mcp/robocop-mcp/pkg/version"
)

var (
	env      = viper.New()
	settings *config.Settings
)

// rootCmd serves MCP when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "robocop-mcp",
	Short: "Robocop MCP server",
	Long: `robocop-mcp exposes Robocop, the Robot Framework linter and formatter,
as MCP tools.

Without a subcommand it serves MCP over stdio. The report, format and rules
subcommands run the same operations from the command line.`,
	Version:           version.FullString(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	RunE:              runServe,
}

// Execute runs the root command until it completes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	config.SetDefaults(env)

	flags := rootCmd.PersistentFlags()
	flags.String("config-file", "", "project TOML file with a [tool.robocop_mcp] section (none when empty)")
	flags.String("robocop-config-file", "", "Robocop TOML file passed to robocop as --config (none when empty)")
	flags.String("fixes-dir", "", "directory of predefined fixes, replacing the embedded library")
	flags.StringSlice("allowed-root", nil, "only accept tool paths below this directory (repeatable)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("log-file", "", "also write JSON logs to this rotated file")
	flags.String("robocop-bin", "robocop", "robocop executable")
	flags.Duration("robocop-timeout", 5*time.Minute, "timeout of one robocop run, 0 disables it")

	bindFlag(flags, config.KeyConfigFile, "config-file")
	bindFlag(flags, config.KeyRobocopConfigFile, "robocop-config-file")
	bindFlag(flags, config.KeyFixesDir, "fixes-dir")
	bindFlag(flags, config.KeyAllowedRoots, "allowed-root")
	bindFlag(flags, "log.level", "log-level")
	bindFlag(flags, "log.format", "log-format")
	bindFlag(flags, "log.file", "log-file")
	bindFlag(flags, "robocop.bin", "robocop-bin")
	bindFlag(flags, "robocop.timeout", "robocop-timeout")
}

func bindFlag(flags *pflag.FlagSet, key, name string) {
	if err := env.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", name, err))
	}
}

func loadSettings(_ *cobra.Command, _ []string) error {
	s, err := config.LoadSettings(env)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	settings = s
	observability.InitializeLogger(s.Log)
	return nil
}

// app wires the components shared by all subcommands.
type app struct {
	logger   *zap.Logger
	runner   *linter.Runner
	catalog  *rules.Catalog
	resolver *config.Resolver
	service  *service.Service
	metrics  *observability.Metrics
}

func newApp() (*app, error) {
	logger := observability.GetLogger()

	runner := linter.NewRunner(linter.Config{
		Bin:             settings.Robocop.Bin,
		Timeout:         settings.Robocop.Timeout,
		RuleDocs:        settings.Robocop.RuleDocs,
		DocsConcurrency: settings.Robocop.DocsConcurrency,
	}, logger.Named("linter"))

	catalog := rules.NewCatalog(runner, logger.Named("rules"))
	predefined, err := rules.PredefinedFixes(rules.FixesFS(settings.FixesDir), logger.Named("rules"))
	if err != nil {
		return nil, fmt.Errorf("failed to load predefined fixes: %w", err)
	}

	paths, err := security.NewPathValidator(settings.AllowedRoots)
	if err != nil {
		return nil, err
	}

	resolver := config.NewResolver(env, catalog, predefined, logger.Named("config"))
	metrics := observability.NewMetrics()

	return &app{
		logger:   logger,
		runner:   runner,
		catalog:  catalog,
		resolver: resolver,
		metrics:  metrics,
		service: service.New(runner, resolver,
			service.WithLogger(logger.Named("service")),
			service.WithMetrics(metrics),
			service.WithPathValidator(paths),
		),
	}, nil
}
