package commands

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent expression evaluations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			store, cleanup, err := cmdCtx.OpenWorkspace()
			if err != nil {
				return err
			}
			defer cleanup()

			evals, err := store.RecentEvals(limit)
			if err != nil {
				return err
			}

			if cmdCtx.Cfg.OutputFormat == "json" {
				type evalJSON struct {
					Expression  string `json:"expression"`
					Result      string `json:"result"`
					EvaluatedAt string `json:"evaluated_at"`
				}
				out := make([]evalJSON, len(evals))
				for i, ev := range evals {
					out[i] = evalJSON{
						Expression:  ev.Expression,
						Result:      ev.Result,
						EvaluatedAt: ev.EvaluatedAt.Format("2006-01-02T15:04:05Z07:00"),
					}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			if len(evals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No evaluations recorded")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Expression", "Result", "When"})
			for _, ev := range evals {
				t.AppendRow(table.Row{
					ev.Expression,
					ev.Result,
					ev.EvaluatedAt.Format("2006-01-02 15:04:05"),
				})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of evaluations to show")
	return cmd
}
