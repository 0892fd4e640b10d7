// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package rules

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const fixExt = ".md"

// FixesFS returns the fix library to scan: dir on disk when set, otherwise
// the library embedded in the binary.
func FixesFS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return EmbeddedFixes()
}

// PredefinedFixes loads the fix library at the root of fsys. Only top-level
// *.md files are read and README files are skipped. The file stem is the
// rule id (uppercased) and default name (lowercased); front matter may
// override both and is stripped from the instruction. Files with broken
// front matter are logged and skipped.
func PredefinedFixes(fsys fs.FS, logger *zap.Logger) (*Set, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading fixes directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	fixes := NewSet()
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.EqualFold(path.Ext(name), fixExt) {
			continue
		}
		stem := strings.TrimSuffix(name, path.Ext(name))
		if strings.HasPrefix(strings.ToUpper(stem), "README") {
			continue
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			logger.Warn("Skipping unreadable fix file", zap.String("file", name), zap.Error(err))
			continue
		}

		meta, body, err := parseFrontmatter(string(data))
		if err != nil {
			logger.Warn("Skipping fix file", zap.String("file", name), zap.Error(err))
			continue
		}

		rule := Rule{
			RuleID:      stem,
			Name:        stem,
			Instruction: strings.TrimSpace(body),
		}
		if meta.RuleID != "" {
			rule.RuleID = meta.RuleID
		}
		if meta.Name != "" {
			rule.Name = NormalizeName(meta.Name, rule.RuleID)
		}

		if !fixes.Add(rule) {
			logger.Warn("Duplicate predefined fix; keeping the first",
				zap.String("file", name),
				zap.String("rule_id", strings.ToUpper(rule.RuleID)),
			)
		}
	}
	return fixes, nil
}
