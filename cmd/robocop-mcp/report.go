// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const maxParallelReports = 4

var reportCmd = &cobra.Command{
	Use:   "report [path...]",
	Short: "Print the Robocop report of files or folders",
	Long: `Run Robocop and print the same markdown report as the get_robocop_report
tool. Without a path the current directory is checked. Several paths are
checked in parallel and their reports printed in argument order.`,
	Args: cobra.ArbitraryArgs,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		report, err := a.service.GetReport(cmd.Context(), nil)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), report)
		return nil
	}

	reports := make([]string, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(maxParallelReports)
	for i, path := range args {
		g.Go(func() error {
			report, err := a.service.GetReport(ctx, &path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(reports, "\n\n"))
	return nil
}
