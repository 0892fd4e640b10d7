// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package violation

import (
	"os"

	"go.uber.org/zap"

	"github.com/robocop-mcp/robocop-mcp/pkg/rules"
)

// NoFixFound is returned when no instruction exists for a rule.
const NoFixFound = "No solution proposed fix found"

// FixSource tells where a proposed fix came from.
type FixSource string

const (
	FixSourceUser       FixSource = "user"
	FixSourcePredefined FixSource = "predefined"
	FixSourceNone       FixSource = "none"
)

// FixResolver resolves the fix instruction for a violation.
type FixResolver struct {
	logger *zap.Logger
}

// NewFixResolver creates a fix resolver.
func NewFixResolver(logger *zap.Logger) *FixResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FixResolver{logger: logger}
}

// Resolve returns the instruction for v: the user fix, else the predefined
// fix, else NoFixFound. An instruction naming an existing file is replaced
// by the file content.
func (f *FixResolver) Resolve(v Violation, user, predefined *rules.Set) (string, FixSource) {
	if r, ok := user.Get(v.RuleID); ok {
		return f.dereference(r), FixSourceUser
	}
	if r, ok := predefined.Get(v.RuleID); ok {
		return f.dereference(r), FixSourcePredefined
	}
	return NoFixFound, FixSourceNone
}

func (f *FixResolver) dereference(r rules.Rule) string {
	info, err := os.Stat(r.Instruction)
	if err != nil || !info.Mode().IsRegular() {
		return r.Instruction
	}
	data, err := os.ReadFile(r.Instruction)
	if err != nil {
		f.logger.Warn("Cannot read fix instruction file, using the text as is",
			zap.String("rule_id", r.RuleID),
			zap.String("file", r.Instruction),
			zap.Error(err),
		)
		return r.Instruction
	}
	return string(data)
}
