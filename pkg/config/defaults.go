// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import "github.com/robocop-mcp/robocop-mcp/pkg/rules"

const (
	// DefaultViolationCount is used when violation_count is absent or invalid.
	DefaultViolationCount = 20
	// DefaultReruns is used when reruns is absent or invalid.
	DefaultReruns = 10
)

// Keys read from the [tool.robocop_mcp] section.
const (
	sectionViolationCount = "violation_count"
	sectionRulePriority   = "rule_priority"
	sectionIgnore         = "ignore"
	sectionReruns         = "reruns"
)

// DefaultConfig returns the configuration used when no project file exists.
func DefaultConfig(predefined, builtin *rules.Set) *Config {
	return &Config{
		UserRules:       rules.NewSet(),
		PredefinedFixes: predefined,
		RobocopRules:    builtin,
		ViolationCount:  DefaultViolationCount,
		RulePriority:    []string{},
		RuleIgnore:      []string{},
		FormatReruns:    DefaultReruns,
	}
}
