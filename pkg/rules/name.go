// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package rules

import (
	"regexp"
	"strings"
)

var separators = regexp.MustCompile(`[\s_./-]+`)

// NormalizeName lowercases a rule display name and collapses every run of
// separators (whitespace, underscore, dot, slash, hyphen) into one hyphen.
// An empty result falls back to the lowercased rule id.
func NormalizeName(display, ruleID string) string {
	name := separators.ReplaceAllString(strings.ToLower(strings.TrimSpace(display)), "-")
	name = strings.Trim(name, "-")
	if name == "" {
		return strings.ToLower(strings.TrimSpace(ruleID))
	}
	return name
}
