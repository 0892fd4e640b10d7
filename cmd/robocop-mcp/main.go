// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package main is the entry point for the robocop-mcp server and CLI.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/robocop-mcp/robocop-mcp/pkg/observability"
)

func main() {
	// Panic recovery
	defer func() {
		if r := recover(); r != nil {
			observability.GetLogger().Error("PANIC",
				zap.Any("error", r),
				zap.ByteString("stack", debug.Stack()),
			)
			os.Exit(2)
		}
	}()

	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
