// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package rules

import (
	"context"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	toolerrors "github.com/robocop-mcp/robocop-mcp/pkg/errors"
	"github.com/robocop-mcp/robocop-mcp/pkg/linter"
)

// Source lists the rules registered in robocop.
type Source interface {
	Rules(ctx context.Context) ([]linter.RuleInfo, error)
}

// Catalog holds the builtin robocop rules. The catalog is loaded on first
// use and then shared by every request.
//
// Thread Safety: Safe for concurrent use.
type Catalog struct {
	source Source
	logger *zap.Logger

	set   atomic.Pointer[Set]
	group singleflight.Group
}

// NewCatalog creates a catalog backed by source.
func NewCatalog(source Source, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{source: source, logger: logger}
}

// Builtin returns the builtin rule set. Concurrent first callers share one
// load. A failed load is not cached, so the next call retries.
func (c *Catalog) Builtin(ctx context.Context) (*Set, error) {
	if set := c.set.Load(); set != nil {
		return set, nil
	}

	// The load outlives a cancelled caller so other waiters still get it.
	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan("builtin", func() (any, error) {
		if set := c.set.Load(); set != nil {
			return set, nil
		}
		infos, err := c.source.Rules(loadCtx)
		if err != nil {
			cerr := toolerrors.CatalogError("loading builtin rules", err)
			c.logger.Warn("Builtin rule catalog load failed",
				zap.Error(cerr),
				zap.Bool("retryable", toolerrors.IsRetryable(cerr)),
			)
			return nil, cerr
		}
		set := BuildBuiltin(infos)
		c.set.Store(set)
		c.logger.Info("Builtin rule catalog loaded", zap.Int("rules", set.Len()))
		return set, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Set), nil
	}
}

// BuildBuiltin converts robocop rule listings into a Set. The instruction is
// the rule documentation, or its message when no documentation is known.
func BuildBuiltin(infos []linter.RuleInfo) *Set {
	set := NewSet()
	for _, info := range infos {
		instruction := strings.TrimSpace(info.Docs)
		if instruction == "" {
			instruction = info.Message
		}
		set.Add(Rule{
			RuleID:      info.ID,
			Instruction: instruction,
			Name:        NormalizeName(info.Name, info.ID),
		})
	}
	return set
}
