// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package mcp

import (
	mcpgo "github.com/mark3labs/mcp-go/mcp"

	"github.com/robocop-mcp/robocop-mcp/pkg/service"
)

const argPath = "path"

const reportDescription = `Run Robocop on a Robot Framework file or folder and return a markdown report.

Only violations of one rule are reported: the first violation whose rule is listed
in rule_priority, otherwise the first violation whose rule is not ignored. At most
violation_count violations are shown, followed by one proposed fix.

Example report:

# Robocop Report

## Violation for file sample.robot in line 2 rule DOC02

description: Missing documentation in 'this is a test' test case
start line: 2
end line: 2
start column: 1
end column: 15
file: /path/to/sample.robot
rule id: DOC02
severity: WARNING

## Proposed fix for violations

The following fix is proposed: Add documentation to the test case.

All violations reported.`

const formatDescription = `Run Robocop format on a Robot Framework file or folder.

Returns "All done in" followed by the Robocop format summary, or a description of
the error when formatting failed.`

func reportTool() mcpgo.Tool {
	return mcpgo.NewTool(service.ToolReport,
		mcpgo.WithDescription(reportDescription),
		mcpgo.WithString(argPath,
			mcpgo.Description("File or folder to analyze. Defaults to the current directory."),
		),
	)
}

func formatTool() mcpgo.Tool {
	return mcpgo.NewTool(service.ToolFormat,
		mcpgo.WithDescription(formatDescription),
		mcpgo.WithString(argPath,
			mcpgo.Required(),
			mcpgo.Description("File or folder to format."),
		),
	)
}
