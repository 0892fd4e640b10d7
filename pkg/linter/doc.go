// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package linter runs the robocop command line and turns its output into
// typed records.
//
// Three subcommands are used:
//
//	| Operation | Command                          | Result          |
//	|-----------|----------------------------------|-----------------|
//	| Check     | robocop check --issue-format ... | []Diagnostic    |
//	| Format    | robocop format                   | captured stdout |
//	| Rules     | robocop list rules, robocop docs | []RuleInfo      |
//
// Check forces the simple output format so every issue is printed with the
// tab-separated issue format. Robocop exits with a non-zero status whenever
// it reports issues, so a failed exit is accepted when at least one issue
// was printed. Otherwise it is ErrLinterFailed with the process output
// attached to the returned LinterError.
//
// # Usage
//
//	runner := linter.NewRunner(linter.Config{Bin: "robocop"}, logger)
//
//	diags, err := runner.Check(ctx, []string{"tests/"}, linter.CheckOptions{})
//	if err != nil {
//	    // robocop missing, timed out or crashed
//	}
package linter
