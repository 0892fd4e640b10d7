// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package linter

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// issueMarker prefixes every issue line so unrelated robocop output
// (summaries, deprecation notices) can be skipped.
const issueMarker = "robocop-mcp"

// outputFormat selects the robocop check output that honors --issue-format.
const outputFormat = "simple"

// issueFormat is passed to robocop check --issue-format.
var issueFormat = strings.Join([]string{
	issueMarker,
	"{source}",
	"{line}",
	"{end_line}",
	"{col}",
	"{end_col}",
	"{severity}",
	"{rule_id}",
	"{name}",
	"{desc}",
}, "\t")

const issueFields = 10

// ruleLine matches one entry of "robocop list rules", e.g.
//
//	Rule - ARG01 [W]: unused-argument: Keyword argument '{name}' is not used (enabled)
var ruleLine = regexp.MustCompile(`^Rule - (\S+) \[(\w)\]: (\S+): (.*?)(?: \((enabled|disabled)\))?$`)

// parseDiagnostics parses check output produced with issueFormat.
func parseDiagnostics(out []byte) ([]Diagnostic, error) {
	var diags []Diagnostic

	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if !strings.HasPrefix(line, issueMarker+"\t") {
			continue
		}

		fields := strings.SplitN(line, "\t", issueFields)
		if len(fields) != issueFields {
			return nil, fmt.Errorf("%w: line %d: expected %d fields, got %d",
				ErrParseOutput, lineNo, issueFields, len(fields))
		}

		nums := make([]int, 4)
		for i, raw := range fields[2:6] {
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrParseOutput, lineNo, err)
			}
			nums[i] = n
		}

		diags = append(diags, Diagnostic{
			Source: fields[1],
			Range: Range{
				Start: Position{Line: nums[0], Column: nums[2]},
				End:   Position{Line: nums[1], Column: nums[3]},
			},
			Severity: ParseSeverity(fields[6]),
			RuleID:   strings.TrimSpace(fields[7]),
			Name:     strings.TrimSpace(fields[8]),
			Message:  fields[9],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseOutput, err)
	}
	return diags, nil
}

// parseRuleList parses "robocop list rules" output. Lines that are not rule
// entries are skipped.
func parseRuleList(out []byte) []RuleInfo {
	var rules []RuleInfo

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		m := ruleLine.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if m == nil {
			continue
		}
		rules = append(rules, RuleInfo{
			ID:       m[1],
			Severity: ParseSeverity(m[2]),
			Name:     m[3],
			Message:  m[4],
			Enabled:  m[5] != "disabled",
		})
	}
	return rules
}
