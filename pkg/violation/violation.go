// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package violation selects which robocop violations are reported and
// resolves the fix proposed for them.
package violation

import "github.com/robocop-mcp/robocop-mcp/pkg/linter"

// Violation is one issue reported by robocop.
type Violation struct {
	File        string
	StartLine   int
	EndLine     int
	StartColumn int
	EndColumn   int
	Severity    string
	RuleID      string
	Description string
}

// FromDiagnostics converts linter diagnostics, keeping their order.
func FromDiagnostics(diags []linter.Diagnostic) []Violation {
	out := make([]Violation, 0, len(diags))
	for _, d := range diags {
		out = append(out, Violation{
			File:        d.Source,
			StartLine:   d.Range.Start.Line,
			EndLine:     d.Range.End.Line,
			StartColumn: d.Range.Start.Column,
			EndColumn:   d.Range.End.Column,
			Severity:    string(d.Severity),
			RuleID:      d.RuleID,
			Description: d.Message,
		})
	}
	return out
}
