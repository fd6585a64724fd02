package commands

import (
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/tritstack/tritsys/internal/cli/config"
	"github.com/tritstack/tritsys/internal/ternary"
)

func TestNewCommandContextUsesContextConfig(t *testing.T) {
	config.ResetConfig()

	cfg := &config.Config{
		WorkspacePath: "ctx.db",
		Overflow:      "error",
		OutputFormat:  "json",
	}
	cmd := &cobra.Command{}
	cmd.SetContext(context.WithValue(context.Background(), config.ConfigKey(), cfg))

	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		t.Fatalf("NewCommandContext() error = %v", err)
	}

	if cmdCtx.Cfg != cfg {
		t.Error("CommandContext should use the config stored in the command context")
	}
	if cmdCtx.Mode != ternary.OverflowError {
		t.Errorf("Mode = %v, want the context config's overflow policy", cmdCtx.Mode)
	}
}

func TestNewCommandContextDefaults(t *testing.T) {
	config.ResetConfig()

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		t.Fatalf("NewCommandContext() error = %v", err)
	}

	if cmdCtx.Cfg.WorkspacePath != config.DefaultWorkspacePath {
		t.Errorf("WorkspacePath = %q, want default", cmdCtx.Cfg.WorkspacePath)
	}
	if cmdCtx.Mode != ternary.OverflowWrap {
		t.Errorf("Mode = %v, want wrap default", cmdCtx.Mode)
	}
}
