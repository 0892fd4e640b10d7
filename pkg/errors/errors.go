// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package errors provides typed errors for robocop-mcp
package errors

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// ErrorType is the category of a ToolError.
type ErrorType int

const (
	// ErrConfig marks an unusable configuration file
	ErrConfig ErrorType = iota
	// ErrLinter marks a robocop check that could not run
	ErrLinter
	// ErrFormat marks a robocop format that could not run
	ErrFormat
	// ErrCatalog marks a builtin rule catalog that could not be loaded
	ErrCatalog
	// ErrValidation marks a rejected tool argument
	ErrValidation
	// ErrTimeout marks a robocop run that exceeded its timeout
	ErrTimeout
)

var typeNames = map[ErrorType]string{
	ErrConfig:     "CONFIG",
	ErrLinter:     "LINTER",
	ErrFormat:     "FORMAT",
	ErrCatalog:    "CATALOG",
	ErrValidation: "VALIDATION",
	ErrTimeout:    "TIMEOUT",
}

func (t ErrorType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// ToolError is a categorized failure of a tool operation.
type ToolError struct {
	Type    ErrorType
	Message string
	Cause   error
	// Context holds structured details logged alongside the error.
	Context map[string]any
}

func (e *ToolError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the cause.
func (e *ToolError) Unwrap() error {
	return e.Cause
}

// New creates a ToolError.
func New(errType ErrorType, message string, cause error) *ToolError {
	return &ToolError{Type: errType, Message: message, Cause: cause}
}

// WithContext records a detail and returns e.
func (e *ToolError) WithContext(key string, value any) *ToolError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// Reason is the message of the cause, or Message when there is none. It is
// the text shown to users, without the category prefix.
func (e *ToolError) Reason() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Message
}

// LogFields returns the error and its context as zap fields, context keys
// in sorted order.
func (e *ToolError) LogFields() []zap.Field {
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, len(keys)+1)
	fields = append(fields, zap.Error(e))
	for _, k := range keys {
		fields = append(fields, zap.Any(k, e.Context[k]))
	}
	return fields
}

// IsType reports whether err wraps a ToolError of errType.
func IsType(err error, errType ErrorType) bool {
	var toolErr *ToolError
	return errors.As(err, &toolErr) && toolErr.Type == errType
}

// IsRetryable reports whether the same call may succeed later: timeouts
// and catalog loads, which are retried on the next request.
func IsRetryable(err error) bool {
	return IsType(err, ErrTimeout) || IsType(err, ErrCatalog)
}

// Reason returns the user-facing text of err.
func Reason(err error) string {
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return toolErr.Reason()
	}
	return err.Error()
}

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *ToolError {
	return New(ErrConfig, message, cause)
}

// LinterError creates a lint execution error
func LinterError(message string, cause error) *ToolError {
	return New(ErrLinter, message, cause)
}

// FormatError creates a format execution error
func FormatError(message string, cause error) *ToolError {
	return New(ErrFormat, message, cause)
}

// CatalogError creates a rule catalog error
func CatalogError(message string, cause error) *ToolError {
	return New(ErrCatalog, message, cause)
}

// ValidationError creates a validation error
func ValidationError(message string, cause error) *ToolError {
	return New(ErrValidation, message, cause)
}

// TimeoutError creates a timeout error
func TimeoutError(message string, cause error) *ToolError {
	return New(ErrTimeout, message, cause)
}
