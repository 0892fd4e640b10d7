// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	toolerrors "github.com/robocop-mcp/robocop-mcp/pkg/errors"
	"github.com/robocop-mcp/robocop-mcp/pkg/rules"
)

const (
	robocopMCPSection = "tool.robocop_mcp"
	robocopSection    = "tool.robocop"
)

// BuiltinCatalog provides the rules registered in robocop.
type BuiltinCatalog interface {
	Builtin(ctx context.Context) (*rules.Set, error)
}

// Resolver builds a Config for every request.
//
// Thread Safety: Safe for concurrent use. Resolve only reads shared state.
type Resolver struct {
	env        *viper.Viper
	catalog    BuiltinCatalog
	predefined *rules.Set
	logger     *zap.Logger
}

// NewResolver creates a resolver. env supplies the file locations
// (KeyConfigFile, KeyRobocopConfigFile) and is read on every call.
func NewResolver(env *viper.Viper, catalog BuiltinCatalog, predefined *rules.Set, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	if predefined == nil {
		predefined = rules.NewSet()
	}
	return &Resolver{
		env:        env,
		catalog:    catalog,
		predefined: predefined,
		logger:     logger,
	}
}

// Resolve returns the configuration for one request. Problems with the
// configuration files are logged and replaced by defaults; Resolve never
// fails.
func (r *Resolver) Resolve(ctx context.Context) *Config {
	builtin, err := r.catalog.Builtin(ctx)
	if err != nil {
		r.logger.Warn("Builtin rule catalog unavailable", zap.Error(err))
		builtin = rules.NewSet()
	}

	cfg := DefaultConfig(r.predefined, builtin)
	primary := absPath(r.env.GetString(KeyConfigFile))
	secondary := absPath(r.env.GetString(KeyRobocopConfigFile))
	cfg.RobocopConfigFile = secondary

	secondaryExists := isFile(secondary)
	robocopInPrimary := false

	switch {
	case !isFile(primary):
		r.logger.Info("No configuration file found, using default configuration",
			zap.String("config_file", primary))
	default:
		project, err := readTOML(primary)
		if err != nil {
			cerr := toolerrors.ConfigError("cannot decode configuration file", err).
				WithContext("config_file", primary)
			r.logger.Warn("Cannot decode configuration file, using default configuration", cerr.LogFields()...)
			break
		}

		section := project.GetStringMap(robocopMCPSection)
		cfg.ConfigFile = primary
		cfg.UserRules = rules.UserRuleFixes(builtin, section, r.logger)
		cfg.ViolationCount = intSetting(section, sectionViolationCount, DefaultViolationCount, r.logger)
		cfg.FormatReruns = intSetting(section, sectionReruns, DefaultReruns, r.logger)
		cfg.RulePriority = stringList(section, sectionRulePriority, r.logger)
		cfg.RuleIgnore = stringList(section, sectionIgnore, r.logger)
		robocopInPrimary = project.IsSet(robocopSection)
	}

	switch {
	case secondaryExists:
		r.logger.Debug("Robocop configuration found", zap.String("file", secondary))
		cfg.FormatConfigFile = secondary
	case robocopInPrimary:
		r.logger.Debug("Robocop configuration found", zap.String("file", primary))
		cfg.FormatConfigFile = primary
	}
	cfg.RobocopConfigured = secondaryExists || robocopInPrimary

	return cfg
}

// readTOML decodes a TOML file on a dedicated viper instance.
func readTOML(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return v, nil
}

func absPath(p string) string {
	if p == "" {
		return ""
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

func isFile(p string) bool {
	if p == "" {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
