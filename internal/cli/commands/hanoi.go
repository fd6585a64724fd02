package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tritstack/tritsys/internal/hanoi"
)

// NewHanoiCommand creates the hanoi command.
func NewHanoiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hanoi <disks>",
		Short: "Solve the Tower of Hanoi with ternary state tracking",
		Long: `Solve the Tower of Hanoi puzzle for the given number of disks, printing
every move. Peg positions are tracked as one ternary digit per disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid disk count %q: %w", args[0], err)
			}

			moves, err := hanoi.Solve(n, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Solved in %d moves\n", moves)
			return nil
		},
	}
}
