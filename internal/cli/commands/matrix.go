package commands

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tritstack/tritsys/internal/matrix"
	"github.com/tritstack/tritsys/internal/ternary"
)

// NewMatrixCommand creates the matrix command group.
func NewMatrixCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Matrix operations with ternary text serialization",
		Long: `Create, inspect and combine integer matrices. Matrix files use a plain
text format: a "rows cols" header line, then one line per row with each cell
written in ternary.

Matrices can also live in the workspace database under a name; serialize and
load move them between the workspace and files.`,
	}

	cmd.AddCommand(
		newMatrixNewCommand(),
		newMatrixShowCommand(),
		newMatrixSetCommand(),
		newMatrixAddCommand(),
		newMatrixMultiplyCommand(),
		newMatrixTransposeCommand(),
		newMatrixSerializeCommand(),
		newMatrixLoadCommand(),
		newMatrixListCommand(),
		newMatrixRemoveCommand(),
	)
	return cmd
}

func newMatrixNewCommand() *cobra.Command {
	var savePath string

	cmd := &cobra.Command{
		Use:   "new <rows> <cols>",
		Short: "Create a zero matrix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			rows, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid row count %q: %w", args[0], err)
			}
			cols, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid column count %q: %w", args[1], err)
			}

			m, err := matrix.New(rows, cols)
			if err != nil {
				return err
			}

			if savePath != "" {
				if err := matrix.Save(savePath, m); err != nil {
					return err
				}
			}
			return renderMatrix(cmd.OutOrStdout(), m, cmdCtx.Cfg.OutputFormat)
		},
	}

	cmd.Flags().StringVar(&savePath, "save", "", "Write the new matrix to this file")
	return cmd
}

func newMatrixShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Load a matrix file and render it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			m, err := matrix.Load(args[0])
			if err != nil {
				return err
			}
			return renderMatrix(cmd.OutOrStdout(), m, cmdCtx.Cfg.OutputFormat)
		},
	}
}

func newMatrixSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <row> <col> <value>",
		Short: "Set one cell of a matrix file",
		Long: `Load a matrix file, set the cell at the given row and column to a ternary
value, and save the file back.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			row, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid row %q: %w", args[1], err)
			}
			col, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid column %q: %w", args[2], err)
			}
			value, err := ternary.Parse(args[3])
			if err != nil {
				return fmt.Errorf("invalid ternary value %q: %w", args[3], err)
			}

			m, err := matrix.Load(args[0])
			if err != nil {
				return err
			}
			if err := m.Set(row, col, value); err != nil {
				return err
			}
			if err := matrix.Save(args[0], m); err != nil {
				return err
			}
			return renderMatrix(cmd.OutOrStdout(), m, cmdCtx.Cfg.OutputFormat)
		},
	}
}

// newMatrixBinopCommand builds the shared shape of add and multiply.
func newMatrixBinopCommand(use, short string, op func(a, b *matrix.Matrix, mode ternary.OverflowMode) (*matrix.Matrix, error)) *cobra.Command {
	var savePath string

	cmd := &cobra.Command{
		Use:   use + " <file-a> <file-b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			a, err := matrix.Load(args[0])
			if err != nil {
				return err
			}
			b, err := matrix.Load(args[1])
			if err != nil {
				return err
			}

			result, err := op(a, b, cmdCtx.Mode)
			if err != nil {
				return err
			}

			if savePath != "" {
				if err := matrix.Save(savePath, result); err != nil {
					return err
				}
			}
			return renderMatrix(cmd.OutOrStdout(), result, cmdCtx.Cfg.OutputFormat)
		},
	}

	cmd.Flags().StringVar(&savePath, "save", "", "Write the result to this file")
	return cmd
}

func newMatrixAddCommand() *cobra.Command {
	return newMatrixBinopCommand("add", "Add two matrix files cell by cell",
		func(a, b *matrix.Matrix, mode ternary.OverflowMode) (*matrix.Matrix, error) {
			return a.Add(b, mode)
		})
}

func newMatrixMultiplyCommand() *cobra.Command {
	return newMatrixBinopCommand("multiply", "Multiply two matrix files",
		func(a, b *matrix.Matrix, mode ternary.OverflowMode) (*matrix.Matrix, error) {
			return a.Mul(b, mode)
		})
}

func newMatrixTransposeCommand() *cobra.Command {
	var savePath string

	cmd := &cobra.Command{
		Use:   "transpose <file>",
		Short: "Transpose a matrix file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			m, err := matrix.Load(args[0])
			if err != nil {
				return err
			}
			result := m.Transpose()

			if savePath != "" {
				if err := matrix.Save(savePath, result); err != nil {
					return err
				}
			}
			return renderMatrix(cmd.OutOrStdout(), result, cmdCtx.Cfg.OutputFormat)
		},
	}

	cmd.Flags().StringVar(&savePath, "save", "", "Write the result to this file")
	return cmd
}

func newMatrixSerializeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serialize <name> <file>",
		Short: "Write a workspace matrix to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			store, cleanup, err := cmdCtx.OpenWorkspace()
			if err != nil {
				return err
			}
			defer cleanup()

			m, err := store.LoadMatrix(args[0])
			if err != nil {
				return err
			}
			if err := matrix.Save(args[1], m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Matrix %q serialized to %s\n", args[0], args[1])
			return nil
		},
	}
}

func newMatrixLoadCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Load a matrix file into the workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			m, err := matrix.Load(args[0])
			if err != nil {
				return err
			}

			if name == "" {
				base := filepath.Base(args[0])
				name = strings.TrimSuffix(base, filepath.Ext(base))
			}

			store, cleanup, err := cmdCtx.OpenWorkspace()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.SaveMatrix(name, m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Matrix %q loaded into workspace (%dx%d)\n",
				name, m.Rows(), m.Cols())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Workspace name for the matrix (default: file basename)")
	return cmd
}

func newMatrixListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List matrices stored in the workspace",
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

			infos, err := store.ListMatrices()
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matrices in workspace")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Name", "Size", "Updated"})
			for _, info := range infos {
				t.AppendRow(table.Row{
					info.Name,
					fmt.Sprintf("%dx%d", info.Rows, info.Cols),
					info.UpdatedAt.Format("2006-01-02 15:04:05"),
				})
			}
			t.Render()
			return nil
		},
	}
}

func newMatrixRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a matrix from the workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			store, cleanup, err := cmdCtx.OpenWorkspace()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.DeleteMatrix(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Matrix %q removed from workspace\n", args[0])
			return nil
		},
	}
}
