// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package violation

import (
	"github.com/robocop-mcp/robocop-mcp/pkg/config"
	"github.com/robocop-mcp/robocop-mcp/pkg/rules"
)

// SelectOptions controls which violations are reported.
type SelectOptions struct {
	// Priority lists rule ids or names to report first.
	Priority []string
	// Ignore lists rule ids or names to skip when nothing has priority.
	Ignore []string
	// Limit caps the cohort size.
	Limit int
	// Names resolves a rule id to its name so that lists may use either.
	Names *rules.Set
}

// OptionsFromConfig builds selection options from a request configuration.
func OptionsFromConfig(cfg *config.Config) SelectOptions {
	return SelectOptions{
		Priority: cfg.RulePriority,
		Ignore:   cfg.RuleIgnore,
		Limit:    cfg.ViolationCount,
		Names:    cfg.RobocopRules,
	}
}

// Representative picks the violation whose rule is reported:
//  1. the first violation whose rule is in Priority;
//  2. otherwise the first violation whose rule is not in Ignore;
//  3. otherwise the first violation.
//
// Rules match an entry when the entry equals the rule id or the rule name
// exactly; the comparison is case-sensitive. ok is false for empty input.
func Representative(vs []Violation, opts SelectOptions) (v Violation, ok bool) {
	if len(vs) == 0 {
		return Violation{}, false
	}
	for _, candidate := range vs {
		if listed(opts.Priority, candidate.RuleID, opts.Names) {
			return candidate, true
		}
	}
	for _, candidate := range vs {
		if !listed(opts.Ignore, candidate.RuleID, opts.Names) {
			return candidate, true
		}
	}
	return vs[0], true
}

// Cohort returns the violations sharing the representative's rule id, in
// input order, capped at opts.Limit. A non-positive limit yields an empty
// cohort.
func Cohort(vs []Violation, opts SelectOptions) []Violation {
	cohort := []Violation{}

	rep, ok := Representative(vs, opts)
	if !ok || opts.Limit <= 0 {
		return cohort
	}
	for _, v := range vs {
		if len(cohort) >= opts.Limit {
			break
		}
		if v.RuleID == rep.RuleID {
			cohort = append(cohort, v)
		}
	}
	return cohort
}

func listed(list []string, ruleID string, names *rules.Set) bool {
	if len(list) == 0 {
		return false
	}
	name := names.NameOf(ruleID)
	for _, entry := range list {
		if entry == ruleID || (name != "" && entry == name) {
			return true
		}
	}
	return false
}
