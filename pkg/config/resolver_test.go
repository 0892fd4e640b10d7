// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/robocop-mcp/robocop-mcp/pkg/config"
	"github.com/robocop-mcp/robocop-mcp/pkg/rules"
)

type fakeCatalog struct {
	set *rules.Set
	err error
}

func (f fakeCatalog) Builtin(context.Context) (*rules.Set, error) {
	return f.set, f.err
}

func builtin() *rules.Set {
	s := rules.NewSet()
	s.Add(rules.Rule{RuleID: "DOC01", Name: "missing-doc-keyword", Instruction: "doc01 docs"})
	s.Add(rules.Rule{RuleID: "DOC02", Name: "missing-doc-test-case", Instruction: "doc02 docs"})
	s.Add(rules.Rule{RuleID: "ARG05", Name: "unused-argument-x", Instruction: "arg05 docs"})
	return s
}

func predefined() *rules.Set {
	s := rules.NewSet()
	s.Add(rules.Rule{RuleID: "DUP01", Name: "duplicated-test-case", Instruction: "add an index"})
	return s
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func newResolver(t *testing.T) *config.Resolver {
	return config.NewResolver(newEnv(), fakeCatalog{set: builtin()}, predefined(), zaptest.NewLogger(t))
}

// TestResolveDefaults verifies the configuration without a project file.
func TestResolveDefaults(t *testing.T) {
	t.Setenv("ROBOCOPMCP_CONFIG_FILE", "")
	t.Setenv("ROBOCOPMCP_ROBOCOP_CONFIG_FILE", "")

	cfg := newResolver(t).Resolve(context.Background())

	assert.Empty(t, cfg.ConfigFile)
	assert.Zero(t, cfg.UserRules.Len())
	assert.Equal(t, 1, cfg.PredefinedFixes.Len())
	assert.Equal(t, 3, cfg.RobocopRules.Len())
	assert.Equal(t, 20, cfg.ViolationCount)
	assert.Equal(t, 10, cfg.FormatReruns)
	assert.Equal(t, []string{}, cfg.RulePriority)
	assert.Equal(t, []string{}, cfg.RuleIgnore)
	assert.False(t, cfg.RobocopConfigured)
	assert.Empty(t, cfg.FormatConfigFile)
}

// TestResolveMissingFile verifies a configured but missing file is logged
// and replaced by defaults.
func TestResolveMissingFile(t *testing.T) {
	t.Setenv("ROBOCOPMCP_CONFIG_FILE", filepath.Join(t.TempDir(), "pyproject.toml"))

	core, logs := observer.New(zap.InfoLevel)
	r := config.NewResolver(newEnv(), fakeCatalog{set: builtin()}, predefined(), zap.New(core))
	cfg := r.Resolve(context.Background())

	assert.Empty(t, cfg.ConfigFile)
	assert.Equal(t, 20, cfg.ViolationCount)
	assert.Equal(t, 1, logs.FilterMessageSnippet("No configuration file").Len())
}

// TestResolveWithTOML verifies the [tool.robocop_mcp] section is applied.
func TestResolveWithTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "pyproject.toml", `
[tool.robocop_mcp]
DOC02 = "Missing documentation"
missing-doc-keyword = "Document the keyword"
violation_count = 5
reruns = "3"
rule_priority = ["NAME07"]
ignore = "DOC03"
`)
	t.Setenv("ROBOCOPMCP_CONFIG_FILE", path)
	t.Setenv("ROBOCOPMCP_ROBOCOP_CONFIG_FILE", "")

	cfg := newResolver(t).Resolve(context.Background())

	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, 5, cfg.ViolationCount)
	assert.Equal(t, 3, cfg.FormatReruns)
	assert.Equal(t, []string{"NAME07"}, cfg.RulePriority)
	assert.Equal(t, []string{"DOC03"}, cfg.RuleIgnore)

	doc02, ok := cfg.UserRules.Get("DOC02")
	require.True(t, ok)
	assert.Equal(t, "Missing documentation", doc02.Instruction)
	doc01, ok := cfg.UserRules.Get("DOC01")
	require.True(t, ok)
	assert.Equal(t, "Document the keyword", doc01.Instruction)
	assert.Equal(t, 2, cfg.UserRules.Len())

	assert.False(t, cfg.RobocopConfigured)
	assert.Empty(t, cfg.FormatConfigFile)
}

// TestResolveInvalidViolationCount verifies a malformed count falls back.
func TestResolveInvalidViolationCount(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pyproject.toml", "[tool.robocop_mcp]\nviolation_count = \"invalid_value\"\n")
	t.Setenv("ROBOCOPMCP_CONFIG_FILE", path)

	cfg := newResolver(t).Resolve(context.Background())
	assert.Equal(t, 20, cfg.ViolationCount)
}

// TestResolveWithoutToolSection verifies a file without tool tables.
func TestResolveWithoutToolSection(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pyproject.toml", "[project]\nname = \"suite\"\n")
	t.Setenv("ROBOCOPMCP_CONFIG_FILE", path)

	cfg := newResolver(t).Resolve(context.Background())
	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, 20, cfg.ViolationCount)
	assert.Zero(t, cfg.UserRules.Len())
	assert.False(t, cfg.RobocopConfigured)
}

// TestResolveUndecodableFile verifies a broken file yields defaults.
func TestResolveUndecodableFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pyproject.toml", "[tool.robocop_mcp\nviolation_count = ")
	t.Setenv("ROBOCOPMCP_CONFIG_FILE", path)

	core, logs := observer.New(zap.WarnLevel)
	r := config.NewResolver(newEnv(), fakeCatalog{set: builtin()}, predefined(), zap.New(core))
	cfg := r.Resolve(context.Background())

	assert.Empty(t, cfg.ConfigFile)
	assert.Equal(t, 20, cfg.ViolationCount)
	entries := logs.FilterMessageSnippet("Cannot decode").All()
	require.Len(t, entries, 1)
	assert.Equal(t, path, entries[0].ContextMap()["config_file"])
	assert.Contains(t, entries[0].ContextMap()["error"], "[CONFIG] cannot decode configuration file")
}

// TestResolveRobocopSection verifies [tool.robocop] in the primary file
// makes it the format configuration.
func TestResolveRobocopSection(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pyproject.toml", "[tool.robocop_mcp]\nviolation_count = 3\n\n[tool.robocop]\n")
	t.Setenv("ROBOCOPMCP_CONFIG_FILE", path)
	t.Setenv("ROBOCOPMCP_ROBOCOP_CONFIG_FILE", "")

	cfg := newResolver(t).Resolve(context.Background())
	assert.True(t, cfg.RobocopConfigured)
	assert.Equal(t, path, cfg.FormatConfigFile)
}

// TestResolveSecondaryFileWins verifies the robocop-native file takes
// precedence over the primary file.
func TestResolveSecondaryFileWins(t *testing.T) {
	dir := t.TempDir()
	primary := writeFile(t, dir, "pyproject.toml", "[tool.robocop]\n[tool.robocop.lint]\nselect = [\"DOC01\"]\n")
	secondary := writeFile(t, dir, "robocop.toml", "[tool.robocop.format]\n")
	t.Setenv("ROBOCOPMCP_CONFIG_FILE", primary)
	t.Setenv("ROBOCOPMCP_ROBOCOP_CONFIG_FILE", secondary)

	cfg := newResolver(t).Resolve(context.Background())
	assert.True(t, cfg.RobocopConfigured)
	assert.Equal(t, secondary, cfg.FormatConfigFile)
	assert.Equal(t, secondary, cfg.RobocopConfigFile)
}

// TestResolveSecondaryFileOnly verifies the secondary file is used without
// a primary file.
func TestResolveSecondaryFileOnly(t *testing.T) {
	secondary := writeFile(t, t.TempDir(), "robocop.toml", "[tool.robocop]\n")
	t.Setenv("ROBOCOPMCP_CONFIG_FILE", "")
	t.Setenv("ROBOCOPMCP_ROBOCOP_CONFIG_FILE", secondary)

	cfg := newResolver(t).Resolve(context.Background())
	assert.True(t, cfg.RobocopConfigured)
	assert.Equal(t, secondary, cfg.FormatConfigFile)
}

// TestResolveRelativePath verifies file paths are made absolute.
func TestResolveRelativePath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", "[tool.robocop_mcp]\n")
	t.Chdir(dir)
	t.Setenv("ROBOCOPMCP_CONFIG_FILE", "pyproject.toml")

	cfg := newResolver(t).Resolve(context.Background())
	assert.True(t, filepath.IsAbs(cfg.ConfigFile))
}

// TestResolveCatalogFailure verifies an unavailable catalog degrades to an
// empty builtin set.
func TestResolveCatalogFailure(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pyproject.toml", "[tool.robocop_mcp]\nDOC01 = \"fix\"\n")
	t.Setenv("ROBOCOPMCP_CONFIG_FILE", path)

	r := config.NewResolver(newEnv(), fakeCatalog{err: errors.New("robocop missing")}, predefined(), zaptest.NewLogger(t))
	cfg := r.Resolve(context.Background())

	assert.Zero(t, cfg.RobocopRules.Len())
	assert.Zero(t, cfg.UserRules.Len())
	assert.Equal(t, 1, cfg.PredefinedFixes.Len())
}
