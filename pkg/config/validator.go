// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"fmt"
	"strings"
)

// Supported transports for the MCP server.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Validator validates server settings.
type Validator struct{}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates server settings.
func (v *Validator) Validate(s *Settings) error {
	if err := v.ValidateLog(&s.Log); err != nil {
		return err
	}
	if err := v.ValidateRobocop(&s.Robocop); err != nil {
		return err
	}
	return v.ValidateTransport(s)
}

// ValidateLog validates logger configuration.
func (v *Validator) ValidateLog(cfg *LoggerConfig) error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if cfg.Level != "" && !oneOf(cfg.Level, validLogLevels) {
		return &ValidationError{
			Field:   "log.level",
			Value:   cfg.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
		}
	}

	validFormats := []string{"json", "console"}
	if cfg.Format != "" && !oneOf(cfg.Format, validFormats) {
		return &ValidationError{
			Field:   "log.format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validFormats, ", ")),
		}
	}

	if cfg.MaxSize < 0 || cfg.MaxBackups < 0 || cfg.MaxAge < 0 {
		return &ValidationError{
			Field:   "log.max_size/max_backups/max_age",
			Message: "must be non-negative",
		}
	}

	return nil
}

// ValidateRobocop validates robocop execution settings.
func (v *Validator) ValidateRobocop(cfg *RobocopConfig) error {
	if strings.TrimSpace(cfg.Bin) == "" {
		return &ValidationError{
			Field:   "robocop.bin",
			Message: "must not be empty",
		}
	}

	if cfg.Timeout < 0 {
		return &ValidationError{
			Field:   "robocop.timeout",
			Value:   cfg.Timeout,
			Message: "must be positive",
		}
	}

	if cfg.DocsConcurrency < 0 {
		return &ValidationError{
			Field:   "robocop.docs_concurrency",
			Value:   cfg.DocsConcurrency,
			Message: "must be non-negative",
		}
	}

	return nil
}

// ValidateTransport validates the server transport selection.
func (v *Validator) ValidateTransport(s *Settings) error {
	if !oneOf(s.Transport, []string{TransportStdio, TransportHTTP}) {
		return &ValidationError{
			Field:   "transport",
			Value:   s.Transport,
			Message: fmt.Sprintf("must be one of: %s, %s", TransportStdio, TransportHTTP),
		}
	}
	if strings.EqualFold(s.Transport, TransportHTTP) && s.HTTPAddr == "" {
		return &ValidationError{
			Field:   "http_addr",
			Message: "must be set for http transport",
		}
	}
	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return true
		}
	}
	return false
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error for %s: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}
