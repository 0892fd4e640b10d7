// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package linter

import (
	"strings"
	"time"
)

// Severity is the severity reported by robocop for a diagnostic.
type Severity string

const (
	SeverityInfo    Severity = "INFO"
	SeverityWarning Severity = "WARNING"
	SeverityError   Severity = "ERROR"
)

// ParseSeverity maps robocop's one-letter or spelled-out severity to a
// Severity. Unknown values are returned uppercased.
func ParseSeverity(s string) Severity {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "I", "INFO":
		return SeverityInfo
	case "W", "WARNING":
		return SeverityWarning
	case "E", "ERROR":
		return SeverityError
	default:
		return Severity(strings.ToUpper(strings.TrimSpace(s)))
	}
}

// Position is a 1-based line and column.
type Position struct {
	Line   int
	Column int
}

// Range is the span of source a diagnostic covers.
type Range struct {
	Start Position
	End   Position
}

// Diagnostic is one issue reported by robocop check.
type Diagnostic struct {
	Source   string
	Range    Range
	Severity Severity
	RuleID   string
	Name     string
	Message  string
}

// RuleInfo describes a rule registered in robocop.
type RuleInfo struct {
	ID       string
	Name     string
	Severity Severity
	Message  string
	// Docs is the output of robocop docs for the rule. Empty when the
	// documentation lookup is disabled or failed.
	Docs    string
	Enabled bool
}

// CheckOptions configures a robocop check run.
type CheckOptions struct {
	// ConfigFile is passed as --config when set.
	ConfigFile string
}

// FormatOptions configures a robocop format run.
type FormatOptions struct {
	// ConfigFile is passed as --config when set.
	ConfigFile string
	// Reruns is passed as --reruns when positive.
	Reruns int
}

// Config configures the Runner.
type Config struct {
	// Bin is the robocop executable, looked up in PATH when not absolute.
	Bin string
	// Timeout bounds every invocation. Zero means no timeout.
	Timeout time.Duration
	// RuleDocs enables one robocop docs call per rule when listing rules.
	// Off by default: only the rules command shows the documentation.
	RuleDocs bool
	// DocsConcurrency bounds concurrent robocop docs calls.
	DocsConcurrency int
	// WorkingDir is the directory robocop runs in. Empty means the
	// current directory.
	WorkingDir string
}

// DefaultConfig returns the runner defaults.
func DefaultConfig() Config {
	return Config{
		Bin:             "robocop",
		Timeout:         5 * time.Minute,
		DocsConcurrency: 8,
	}
}
