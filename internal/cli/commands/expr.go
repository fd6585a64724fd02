package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tritstack/tritsys/internal/expr"
	"github.com/tritstack/tritsys/internal/ternary"
)

// NewExprCommand creates the expr command.
func NewExprCommand() *cobra.Command {
	var noRecord bool

	cmd := &cobra.Command{
		Use:   "expr <expression>",
		Short: "Evaluate a ternary arithmetic expression",
		Long: `Evaluate an expression over ternary numbers and print the result in
ternary. Operands use digits 0, 1 and 2 only; the operators are + - * / with
the usual precedence and parentheses.`,
		Example: `  # 5 + 7, printed as 110 (twelve)
  tritsys expr "12+21"

  # precedence and parentheses
  tritsys expr "(1+1)*2"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			input := strings.Join(args, " ")
			result, err := expr.Eval(input, cmdCtx.Mode)
			if err != nil {
				return fmt.Errorf("failed to evaluate %q: %w", input, err)
			}

			if !noRecord {
				if err := recordEval(cmdCtx, input, result); err != nil {
					cmdCtx.Logger.Warn("could not record evaluation", "error", err)
				}
			}

			return renderResult(cmd.OutOrStdout(), result, cmdCtx.Cfg.OutputFormat, cmdCtx.Cfg.Verbose)
		},
	}

	cmd.Flags().BoolVar(&noRecord, "no-record", false, "Do not record the evaluation in the workspace history")
	return cmd
}

// recordEval appends the evaluation to the workspace history.
func recordEval(cmdCtx *CommandContext, input string, result int64) error {
	store, cleanup, err := cmdCtx.OpenWorkspace()
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = store.RecordEval(input, ternary.Format(result))
	return err
}
