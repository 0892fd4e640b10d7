// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package rules

import (
	"sort"

	"go.uber.org/zap"
)

// UserRuleFixes builds the user supplied fixes from the decoded
// [tool.robocop_mcp] section. Every key naming a builtin rule by id or by
// name becomes a rule with the configured value as instruction. Other keys
// are skipped.
//
// Keys are visited id keys first, then name keys, each group sorted. When
// a rule is addressed twice the first entry is kept and the later one is
// logged and ignored.
func UserRuleFixes(builtin *Set, section map[string]any, logger *zap.Logger) *Set {
	if logger == nil {
		logger = zap.NewNop()
	}
	fixes := NewSet()

	var idKeys, nameKeys []string
	for key := range section {
		if _, ok := builtin.Get(key); ok {
			idKeys = append(idKeys, key)
		} else if _, ok := builtin.Resolve(key); ok {
			nameKeys = append(nameKeys, key)
		}
	}
	sort.Strings(idKeys)
	sort.Strings(nameKeys)

	for _, key := range append(idKeys, nameKeys...) {
		value, ok := section[key].(string)
		if !ok {
			logger.Warn("Ignoring non-string fix instruction",
				zap.String("key", key),
				zap.Any("value", section[key]),
			)
			continue
		}

		rule, _ := builtin.Resolve(key)
		added := fixes.Add(Rule{
			RuleID:      rule.RuleID,
			Instruction: value,
			Name:        rule.Name,
		})
		if !added {
			logger.Warn("Rule fix configured more than once; keeping the first",
				zap.String("key", key),
				zap.String("rule_id", rule.RuleID),
			)
		}
	}
	return fixes
}
