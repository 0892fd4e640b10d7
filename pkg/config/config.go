// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config provides configuration management for robocop-mcp.
//
// Two layers exist:
//  1. Settings: process settings (logging, robocop binary, transport),
//     read once at startup from defaults, ROBOCOPMCP_* environment
//     variables and command line flags.
//  2. Config: the per-request snapshot derived from the project TOML file
//     named by ROBOCOPMCP_CONFIG_FILE, rebuilt on every tool call.
package config

import "github.com/robocop-mcp/robocop-mcp/pkg/rules"

// Config is the configuration snapshot for one request.
type Config struct {
	// ConfigFile is the primary TOML file, empty when it does not exist.
	ConfigFile string
	// RobocopConfigFile is the secondary robocop-native TOML file as
	// configured, whether or not it exists.
	RobocopConfigFile string
	// RobocopConfigured is true when the secondary file exists or the
	// primary file has a [tool.robocop] section.
	RobocopConfigured bool

	UserRules       *rules.Set
	PredefinedFixes *rules.Set
	RobocopRules    *rules.Set

	// ViolationCount caps the rendered cohort. Never negative.
	ViolationCount int
	RulePriority   []string
	RuleIgnore     []string

	// FormatReruns is passed to robocop format --reruns.
	FormatReruns int
	// FormatConfigFile is passed as --config to robocop check and format.
	// Empty means robocop discovers its own configuration.
	FormatConfigFile string
}
