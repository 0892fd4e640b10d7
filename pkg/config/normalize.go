// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// intSetting reads a non-negative integer from section. Numeric strings are
// converted. Absent, invalid and negative values yield def.
func intSetting(section map[string]any, key string, def int, logger *zap.Logger) int {
	raw, ok := section[key]
	if !ok || raw == nil {
		return def
	}

	var n int
	switch v := raw.(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	case float64:
		if v != math.Trunc(v) {
			logger.Warn("Invalid integer setting, using default",
				zap.String("key", key), zap.Any("value", raw), zap.Int("default", def))
			return def
		}
		n = int(v)
	case string:
		logger.Info("Integer setting is a string, converting", zap.String("key", key))
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			logger.Warn("Invalid integer setting, using default",
				zap.String("key", key), zap.String("value", v), zap.Int("default", def))
			return def
		}
		n = parsed
	default:
		logger.Warn("Invalid integer setting, using default",
			zap.String("key", key), zap.Any("value", raw), zap.Int("default", def))
		return def
	}

	if n < 0 {
		logger.Warn("Negative integer setting, using default",
			zap.String("key", key), zap.Int("value", n), zap.Int("default", def))
		return def
	}
	return n
}

// stringList reads a list of strings from section. A bare string becomes a
// one-element list and non-string members are dropped. The result is never
// nil.
func stringList(section map[string]any, key string, logger *zap.Logger) []string {
	out := []string{}

	raw, ok := section[key]
	if !ok || raw == nil {
		return out
	}

	switch v := raw.(type) {
	case string:
		logger.Info("List setting is a string, converting to list", zap.String("key", key))
		return append(out, v)
	case []string:
		return append(out, v...)
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				logger.Warn("Dropping non-string list entry",
					zap.String("key", key), zap.Any("value", item))
				continue
			}
			out = append(out, s)
		}
		return out
	default:
		logger.Warn("Invalid list setting, using empty list",
			zap.String("key", key), zap.Any("value", raw))
		return out
	}
}
