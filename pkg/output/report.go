// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package output renders violation reports as markdown.
package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/robocop-mcp/robocop-mcp/pkg/violation"
)

const (
	reportTitle  = "# Robocop Report"
	noViolations = reportTitle + "\n\nNo violations found."
	allReported  = "All violations reported."
)

// Renderer renders a violation cohort as a markdown report.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render returns the report for cohort. fix is the instruction proposed for
// the first violation of the cohort and total is the number of violations
// robocop reported before selection.
func (r *Renderer) Render(cohort []violation.Violation, fix string, total int) string {
	if len(cohort) == 0 {
		return noViolations
	}

	lines := []string{reportTitle}
	for _, v := range cohort {
		lines = append(lines, "")
		lines = append(lines, violationBlock(v)...)
	}

	lines = append(lines,
		"",
		"## Proposed fix for violations",
		"",
		"The following fix is proposed: "+fix,
		"",
	)

	if hidden := total - len(cohort); hidden > 0 {
		lines = append(lines, fmt.Sprintf("and %d more violations not shown.", hidden))
	} else {
		lines = append(lines, allReported)
	}
	return strings.Join(lines, "\n")
}

// NoViolations returns the report for an empty cohort.
func NoViolations() string {
	return noViolations
}

func violationBlock(v violation.Violation) []string {
	return []string{
		fmt.Sprintf("## Violation for file %s in line %d rule %s", filepath.Base(v.File), v.StartLine, v.RuleID),
		"",
		"description: " + v.Description,
		fmt.Sprintf("start line: %d", v.StartLine),
		fmt.Sprintf("end line: %d", v.EndLine),
		fmt.Sprintf("start column: %d", v.StartColumn),
		fmt.Sprintf("end column: %d", v.EndColumn),
		"file: " + v.File,
		"rule id: " + v.RuleID,
		"severity: " + v.Severity,
	}
}
