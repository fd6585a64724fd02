package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tritstack/tritsys/internal/opcode"
	"github.com/tritstack/tritsys/internal/ternary"
)

// NewOpcodeCommand creates the opcode command and its exec subcommand.
func NewOpcodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "opcode <number>",
		Short: "Encode a number as a checksummed ternary opcode",
		Long: `Encode a decimal number as its ternary string plus a one-digit checksum
(the digit sum modulo 3), then verify the encoding.`,
		Example: `  # 5 encodes to 120
  tritsys opcode 5

  # apply an encoded opcode to two operands
  tritsys opcode exec 111 5 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid number %q: %w", args[0], err)
			}

			encoded := opcode.Encode(n)
			valid := opcode.Validate(encoded)

			if cmdCtx.Cfg.OutputFormat == "json" {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"number":  n,
					"ternary": ternary.Format(n),
					"encoded": encoded,
					"valid":   valid,
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Opcode %d encoded as: %s\n", n, encoded)
			if valid {
				fmt.Fprintln(cmd.OutOrStdout(), "Checksum valid")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Checksum invalid")
			}
			return nil
		},
	}

	cmd.AddCommand(newOpcodeExecCommand())
	return cmd
}

func newOpcodeExecCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <encoded> <a> <b>",
		Short: "Execute an encoded opcode against two decimal operands",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			a, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid operand %q: %w", args[1], err)
			}
			b, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid operand %q: %w", args[2], err)
			}

			result, err := opcode.Execute(args[0], a, b)
			if err != nil {
				return err
			}

			return renderResult(cmd.OutOrStdout(), result, cmdCtx.Cfg.OutputFormat, cmdCtx.Cfg.Verbose)
		},
	}
}
