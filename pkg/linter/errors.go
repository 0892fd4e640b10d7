// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package linter

import (
	"errors"
	"fmt"
)

// Sentinel errors for the linter package.
var (
	// ErrLinterNotInstalled indicates the robocop binary was not found.
	ErrLinterNotInstalled = errors.New("linter not installed")

	// ErrLinterTimeout indicates robocop exceeded the configured timeout.
	ErrLinterTimeout = errors.New("linter timeout")

	// ErrLinterFailed indicates robocop exited with an error and no output.
	ErrLinterFailed = errors.New("linter execution failed")

	// ErrParseOutput indicates a line of robocop output could not be parsed.
	ErrParseOutput = errors.New("failed to parse linter output")

	// ErrInvalidInput indicates invalid arguments to a runner method.
	ErrInvalidInput = errors.New("invalid input")
)

// LinterError wraps a failed robocop invocation.
//
// Thread Safety: Immutable after creation.
type LinterError struct {
	// Command is the binary that was executed.
	Command string

	// Operation is the robocop subcommand ("check", "format", ...).
	Operation string

	// Err is the underlying error.
	Err error

	// Output holds stderr of the process, if any.
	Output string
}

func (e *LinterError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("%s %s: %v: %s", e.Command, e.Operation, e.Err, e.Output)
	}
	return fmt.Sprintf("%s %s: %v", e.Command, e.Operation, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *LinterError) Unwrap() error {
	return e.Err
}

// NewLinterError creates a new LinterError.
func NewLinterError(command, operation string, err error) *LinterError {
	return &LinterError{
		Command:   command,
		Operation: operation,
		Err:       err,
	}
}

// WithOutput returns a copy of the error with stderr output attached.
func (e *LinterError) WithOutput(output string) *LinterError {
	return &LinterError{
		Command:   e.Command,
		Operation: e.Operation,
		Err:       e.Err,
		Output:    output,
	}
}
