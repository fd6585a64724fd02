// Package commands implements the tritsys subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tritstack/tritsys/internal/cli/config"
	"github.com/tritstack/tritsys/internal/ternary"
	"github.com/tritstack/tritsys/internal/workspace"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Mode   ternary.OverflowMode
}

// NewCommandContext builds the shared command dependencies from the loaded
// configuration. The config placed in context by the root command wins;
// direct command construction (tests) falls back to the last loaded config,
// then to defaults.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := config.FromContext(cmd.Context())
	if cfg == nil {
		cfg = getConfig()
	}
	logger := config.GetLogger(cmd.Context())

	mode, err := cfg.OverflowMode()
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Cfg:    cfg,
		Logger: logger,
		Mode:   mode,
	}, nil
}

// OpenWorkspace opens the configured workspace store and initializes its
// schema. The returned cleanup function must be called (typically via
// defer).
func (c *CommandContext) OpenWorkspace() (*workspace.Store, func(), error) {
	path := c.Cfg.WorkspacePath
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return nil, nil, fmt.Errorf("failed to create workspace directory: %w", err)
			}
		}
	}

	store := workspace.NewStore()
	if err := store.Open(path); err != nil {
		return nil, nil, err
	}
	if err := store.InitSchema(); err != nil {
		store.Close()
		return nil, nil, err
	}

	c.Logger.Debug("workspace opened", slog.String("path", path))
	cleanup := func() { _ = store.Close() }
	return store, cleanup, nil
}

// getConfig returns the current configuration, falling back to defaults
// when no load has happened (direct command construction in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		WorkspacePath: config.DefaultWorkspacePath,
		Overflow:      config.DefaultOverflow,
		OutputFormat:  config.DefaultOutput,
		HistoryFile:   config.DefaultHistoryFile,
	}
}
