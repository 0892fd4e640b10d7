// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package rules

import (
	"embed"
	"io/fs"
)

//go:embed fixes/*.md
var embedded embed.FS

// EmbeddedFixes returns the fix library shipped with the binary.
func EmbeddedFixes() fs.FS {
	sub, err := fs.Sub(embedded, "fixes")
	if err != nil {
		panic(err)
	}
	return sub
}
