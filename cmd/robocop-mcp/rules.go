// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/robocop-mcp/robocop-mcp/pkg/config"
	"github.com/robocop-mcp/robocop-mcp/pkg/rules"
	"github.com/robocop-mcp/robocop-mcp/pkg/violation"
)

var (
	rulesJSON bool
	rulesDocs bool
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the Robocop rules and where their fix comes from",
	RunE:  runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.Flags().BoolVar(&rulesJSON, "json", false, "print JSON instead of a table")
	rulesCmd.Flags().BoolVar(&rulesDocs, "docs", false, "describe rules with robocop docs (one robocop run per rule)")
}

type ruleEntry struct {
	ID          string `json:"rule_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	FixSource   string `json:"fix_source"`
	Instruction string `json:"instruction,omitempty"`
}

func runRules(cmd *cobra.Command, _ []string) error {
	if rulesDocs {
		settings.Robocop.RuleDocs = true
	}
	a, err := newApp()
	if err != nil {
		return err
	}

	builtin, err := a.catalog.Builtin(cmd.Context())
	if err != nil {
		return err
	}
	entries := ruleEntries(builtin, a.resolver.Resolve(cmd.Context()))

	if rulesJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	return printRules(cmd.OutOrStdout(), entries)
}

func ruleEntries(builtin *rules.Set, cfg *config.Config) []ruleEntry {
	entries := make([]ruleEntry, 0, builtin.Len())
	for _, r := range builtin.Rules() {
		e := ruleEntry{
			ID:          r.RuleID,
			Name:        r.Name,
			Description: r.Instruction,
			FixSource:   string(violation.FixSourceNone),
		}
		if fix, ok := cfg.UserRules.Get(r.RuleID); ok {
			e.FixSource, e.Instruction = string(violation.FixSourceUser), fix.Instruction
		} else if fix, ok := cfg.PredefinedFixes.Get(r.RuleID); ok {
			e.FixSource, e.Instruction = string(violation.FixSourcePredefined), fix.Instruction
		}
		entries = append(entries, e)
	}
	return entries
}

func printRules(out io.Writer, entries []ruleEntry) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RULE\tNAME\tFIX")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.ID, e.Name, e.FixSource)
	}
	return w.Flush()
}
