// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package rules

import (
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidFrontmatter is returned when a fix file starts a front matter
// block that cannot be parsed.
var ErrInvalidFrontmatter = errors.New("invalid front matter")

// fixMetadata is the optional front matter of a fix file.
type fixMetadata struct {
	Name   string `yaml:"name"`
	RuleID string `yaml:"rule_id"`
}

// parseFrontmatter splits content into metadata and body. Content without a
// leading "---" line has no metadata and is returned unchanged.
func parseFrontmatter(content string) (fixMetadata, string, error) {
	var meta fixMetadata

	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, "---\n") {
		return meta, content, nil
	}

	rest := normalized[len("---"):]
	end := strings.Index(rest, "\n---")
	if end == -1 {
		return meta, "", ErrInvalidFrontmatter
	}

	decoder := yaml.NewDecoder(strings.NewReader(rest[:end]))
	decoder.KnownFields(true)
	if err := decoder.Decode(&meta); err != nil && !errors.Is(err, io.EOF) {
		return meta, "", ErrInvalidFrontmatter
	}

	body := rest[end+len("\n---"):]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	} else {
		body = ""
	}
	body = strings.TrimLeft(body, "\n")
	return meta, body, nil
}
