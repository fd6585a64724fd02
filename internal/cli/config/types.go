// Package config provides configuration management for the tritsys CLI.
//
// Configuration is merged from four layers, lowest to highest precedence:
// built-in defaults, a tritsys.yaml config file, TRITSYS_-prefixed
// environment variables, and command-line flags.
package config

import "github.com/tritstack/tritsys/internal/ternary"

// Config holds all CLI configuration options.
type Config struct {
	WorkspacePath string `koanf:"workspace_path"`
	Overflow      string `koanf:"overflow"`
	OutputFormat  string `koanf:"output"`
	HistoryFile   string `koanf:"history_file"`
	Verbose       bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultWorkspacePath = ".tritsys/workspace.db"
	DefaultOverflow      = "wrap"
	DefaultOutput        = "table"
	DefaultHistoryFile   = ".tritsys/history"
)

// OverflowMode parses the configured overflow policy.
func (c *Config) OverflowMode() (ternary.OverflowMode, error) {
	return ternary.ParseOverflowMode(c.Overflow)
}
