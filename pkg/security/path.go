// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package security validates paths received from MCP clients before they
// reach the robocop command line.
package security

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrOptionLike is returned for paths robocop would parse as an option.
	ErrOptionLike = errors.New("path must not start with '-'")
	// ErrInvalidPath is returned for paths containing a NUL byte.
	ErrInvalidPath = errors.New("path contains a NUL byte")
	// ErrOutsideRoots is returned for paths outside the allowed roots.
	ErrOutsideRoots = errors.New("path is outside the allowed roots")
)

// PathValidator checks tool paths. With no allowed roots every directory is
// accepted. A nil *PathValidator accepts every well-formed path.
type PathValidator struct {
	roots []string
}

// NewPathValidator creates a validator restricted to roots. Relative roots
// are resolved against the working directory.
func NewPathValidator(roots []string) (*PathValidator, error) {
	v := &PathValidator{}
	for _, root := range roots {
		root = strings.TrimSpace(root)
		if root == "" {
			continue
		}
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("resolving allowed root %q: %w", root, err)
		}
		v.roots = append(v.roots, abs)
	}
	return v, nil
}

// Roots returns the absolute allowed roots.
func (v *PathValidator) Roots() []string {
	if v == nil {
		return nil
	}
	return append([]string(nil), v.roots...)
}

// Validate returns an error when path must not be passed to robocop.
func (v *PathValidator) Validate(path string) error {
	if strings.ContainsRune(path, 0) {
		return ErrInvalidPath
	}
	if strings.HasPrefix(path, "-") {
		return fmt.Errorf("%w: %q", ErrOptionLike, path)
	}
	if v == nil || len(v.roots) == 0 {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %q: %w", path, err)
	}
	for _, root := range v.roots {
		if within(root, abs) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrOutsideRoots, abs)
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
