// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package rules loads robocop rules and the fix instructions attached to
// them.
package rules

import "strings"

// Rule is a robocop rule with a remediation instruction.
type Rule struct {
	// RuleID is the uppercased rule id, e.g. "DOC01".
	RuleID string
	// Instruction is the remediation text, or a path to a file holding it.
	Instruction string
	// Name is the lowercase rule name, e.g. "missing-doc-keyword".
	Name string
}

// Set is an insertion-ordered collection of rules keyed by uppercased id,
// with a secondary index by lowercase name. A nil *Set is an empty set.
//
// Thread Safety: Not safe for concurrent mutation. Sets are built once and
// only read afterwards.
type Set struct {
	byID   map[string]Rule
	byName map[string]string
	order  []string
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{
		byID:   make(map[string]Rule),
		byName: make(map[string]string),
	}
}

// Add inserts r. The id is uppercased and the name lowercased. Add returns
// false and leaves the set unchanged when a rule with the same id exists.
func (s *Set) Add(r Rule) bool {
	id := strings.ToUpper(strings.TrimSpace(r.RuleID))
	if id == "" {
		return false
	}
	if _, ok := s.byID[id]; ok {
		return false
	}
	r.RuleID = id
	r.Name = strings.ToLower(strings.TrimSpace(r.Name))

	s.byID[id] = r
	s.order = append(s.order, id)
	if r.Name != "" {
		if _, taken := s.byName[r.Name]; !taken {
			s.byName[r.Name] = id
		}
	}
	return true
}

// Get returns the rule with the given id, compared case-insensitively.
func (s *Set) Get(id string) (Rule, bool) {
	if s == nil {
		return Rule{}, false
	}
	r, ok := s.byID[strings.ToUpper(strings.TrimSpace(id))]
	return r, ok
}

// Resolve looks key up as a rule id first, then as a rule name. Both
// lookups are case-insensitive.
func (s *Set) Resolve(key string) (Rule, bool) {
	if s == nil {
		return Rule{}, false
	}
	if r, ok := s.Get(key); ok {
		return r, true
	}
	if id, ok := s.byName[strings.ToLower(strings.TrimSpace(key))]; ok {
		return s.byID[id], true
	}
	return Rule{}, false
}

// NameOf returns the name of the rule with the given id, or "".
func (s *Set) NameOf(id string) string {
	r, _ := s.Get(id)
	return r.Name
}

// Len returns the number of rules.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Rules returns the rules in insertion order.
func (s *Set) Rules() []Rule {
	if s == nil {
		return nil
	}
	out := make([]Rule, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}
