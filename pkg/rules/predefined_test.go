// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package rules

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// TestEmbeddedFixes verifies the shipped library loads and excludes README.
func TestEmbeddedFixes(t *testing.T) {
	fixes, err := PredefinedFixes(EmbeddedFixes(), zaptest.NewLogger(t))
	require.NoError(t, err)

	_, ok := fixes.Get("README")
	assert.False(t, ok)

	dup, ok := fixes.Get("DUP01")
	require.True(t, ok)
	assert.Equal(t, "With a duplicate test names add a running index index in the test name with three digits.", dup.Instruction)
	assert.Equal(t, "duplicated-test-case", dup.Name)

	for _, id := range []string{"DOC01", "DOC02", "DOC03", "DOC04", "ARG01", "VAR02", "LEN01", "NAME02", "SPC01"} {
		r, ok := fixes.Get(id)
		if assert.True(t, ok, id) {
			assert.NotEmpty(t, r.Instruction, id)
			assert.NotContains(t, r.Instruction, "---", id)
		}
	}
}

// TestPredefinedFixesScan verifies stems, front matter and skipped entries.
func TestPredefinedFixesScan(t *testing.T) {
	fsys := fstest.MapFS{
		"doc01.md":        {Data: []byte("Add documentation.\n")},
		"ARG01.md":        {Data: []byte("---\nname: Unused Argument\n---\nRemove it.\n")},
		"custom.md":       {Data: []byte("---\nrule_id: len01\n---\nSplit it.")},
		"README.md":       {Data: []byte("# not a fix")},
		"readme-extra.md": {Data: []byte("# not a fix either")},
		"notes.txt":       {Data: []byte("ignored")},
		"nested/VAR02.md": {Data: []byte("ignored, not top level")},
	}

	fixes, err := PredefinedFixes(fsys, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Equal(t, 3, fixes.Len())

	doc, _ := fixes.Get("DOC01")
	assert.Equal(t, Rule{RuleID: "DOC01", Instruction: "Add documentation.", Name: "doc01"}, doc)

	arg, _ := fixes.Get("ARG01")
	assert.Equal(t, Rule{RuleID: "ARG01", Instruction: "Remove it.", Name: "unused-argument"}, arg)

	length, ok := fixes.Get("LEN01")
	require.True(t, ok)
	assert.Equal(t, "Split it.", length.Instruction)
	assert.Equal(t, "custom", length.Name)

	_, ok = fixes.Get("VAR02")
	assert.False(t, ok)
}

// TestPredefinedFixesBadFrontmatter verifies broken files are skipped.
func TestPredefinedFixesBadFrontmatter(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	fsys := fstest.MapFS{
		"DOC01.md": {Data: []byte("---\nname: [unterminated\n---\nbody")},
		"DOC02.md": {Data: []byte("---\nname: no closing delimiter\n")},
		"DOC03.md": {Data: []byte("---\nunknown: field\n---\nbody")},
		"DOC04.md": {Data: []byte("fine")},
	}

	fixes, err := PredefinedFixes(fsys, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, 1, fixes.Len())
	assert.Equal(t, 3, logs.Len())
}

// TestFixesFSDirectory verifies an on-disk directory replaces the embedded
// library.
func TestFixesFSDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "NAME02.md"), []byte("Rename it."), 0o600))

	fixes, err := PredefinedFixes(FixesFS(dir), zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, 1, fixes.Len())

	_, err = PredefinedFixes(FixesFS(filepath.Join(dir, "missing")), nil)
	assert.Error(t, err)
}

// TestParseFrontmatter verifies metadata parsing and body extraction.
func TestParseFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantMeta fixMetadata
		wantBody string
		wantErr  bool
	}{
		{"no front matter", "plain text", fixMetadata{}, "plain text", false},
		{"both fields", "---\nname: n\nrule_id: R01\n---\nbody\n", fixMetadata{Name: "n", RuleID: "R01"}, "body\n", false},
		{"empty block", "---\n---\nbody", fixMetadata{}, "body", false},
		{"crlf", "---\r\nname: n\r\n---\r\nbody", fixMetadata{Name: "n"}, "body", false},
		{"unterminated", "---\nname: n\n", fixMetadata{}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body, err := parseFrontmatter(tt.content)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFrontmatter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMeta, meta)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
