// Copyright 2026 Robocop MCP Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix for all environment variables.
	EnvPrefix = "ROBOCOPMCP"

	// KeyConfigFile names the primary TOML file (ROBOCOPMCP_CONFIG_FILE).
	KeyConfigFile = "config_file"
	// KeyRobocopConfigFile names the Robocop-native TOML file
	// (ROBOCOPMCP_ROBOCOP_CONFIG_FILE).
	KeyRobocopConfigFile = "robocop_config_file"
	// KeyFixesDir overrides the embedded predefined fix library.
	KeyFixesDir = "fixes_dir"
	// KeyAllowedRoots restricts tool paths to these directories.
	KeyAllowedRoots = "allowed_roots"
)

// Settings holds process-level settings for the server itself. Unlike
// Config, which is rebuilt per request from the project TOML, Settings is
// read once at startup.
type Settings struct {
	Log       LoggerConfig  `mapstructure:"log"`
	Robocop   RobocopConfig `mapstructure:"robocop"`
	Transport string        `mapstructure:"transport"`
	HTTPAddr  string        `mapstructure:"http_addr"`
	FixesDir  string        `mapstructure:"fixes_dir"`

	AllowedRoots []string `mapstructure:"allowed_roots"`
}

// LoggerConfig configures the zap logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level"`
	Format      string      `mapstructure:"format"`
	ServiceName string      `mapstructure:"service_name"`
	LogFile     string      `mapstructure:"file"`
	MaxSize     int         `mapstructure:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups"`
	MaxAge      int         `mapstructure:"max_age"`
	Compress    bool        `mapstructure:"compress"`
	AddSource   bool        `mapstructure:"add_source"`
	Colors      ColorConfig `mapstructure:"colors"`
}

// ColorConfig maps log levels to terminal color names.
type ColorConfig struct {
	Debug  string `mapstructure:"debug"`
	Info   string `mapstructure:"info"`
	Warn   string `mapstructure:"warn"`
	Error  string `mapstructure:"error"`
	DPanic string `mapstructure:"dpanic"`
	Panic  string `mapstructure:"panic"`
	Fatal  string `mapstructure:"fatal"`
}

// RobocopConfig configures how the robocop binary is executed.
type RobocopConfig struct {
	Bin             string        `mapstructure:"bin"`
	Timeout         time.Duration `mapstructure:"timeout"`
	RuleDocs        bool          `mapstructure:"rule_docs"`
	DocsConcurrency int           `mapstructure:"docs_concurrency"`
}

// SetDefaults registers default values and environment binding on v.
func SetDefaults(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyConfigFile, "")
	v.SetDefault(KeyRobocopConfigFile, "")
	v.SetDefault(KeyFixesDir, "")
	v.SetDefault(KeyAllowedRoots, []string{})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.service_name", "robocop-mcp")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)
	v.SetDefault("log.add_source", false)
	v.SetDefault("log.colors.debug", "cyan")
	v.SetDefault("log.colors.info", "green")
	v.SetDefault("log.colors.warn", "yellow")
	v.SetDefault("log.colors.error", "red")
	v.SetDefault("log.colors.dpanic", "magenta")
	v.SetDefault("log.colors.panic", "magenta")
	v.SetDefault("log.colors.fatal", "magenta")

	v.SetDefault("robocop.bin", "robocop")
	v.SetDefault("robocop.timeout", 5*time.Minute)
	v.SetDefault("robocop.rule_docs", false)
	v.SetDefault("robocop.docs_concurrency", 8)

	v.SetDefault("transport", TransportStdio)
	v.SetDefault("http_addr", "127.0.0.1:8080")
}

// LoadSettings decodes and validates Settings from v.
func LoadSettings(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, err
	}
	if err := NewValidator().Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
