package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/tritstack/tritsys/internal/expr"
	"github.com/tritstack/tritsys/internal/hanoi"
	"github.com/tritstack/tritsys/internal/matrix"
	"github.com/tritstack/tritsys/internal/opcode"
	"github.com/tritstack/tritsys/internal/ternary"
	"github.com/tritstack/tritsys/internal/workspace"
)

// Session holds the state of one interactive run: the shared command
// dependencies, the open workspace store, and the current matrix. All
// handlers operate on the session they are handed; there is no ambient
// state.
type Session struct {
	cmdCtx  *CommandContext
	store   *workspace.Store
	current *matrix.Matrix
	out     io.Writer
	errOut  io.Writer
}

// errExit signals a clean exit from the REPL loop.
var errExit = errors.New("exit")

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive ternary shell",
		Long: `Start an interactive shell with expression evaluation, matrix operations,
opcode encoding and the Tower of Hanoi solver. The shell keeps one current
matrix; store and fetch move it in and out of the workspace database.`,
		Args: cobra.NoArgs,
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

			session := &Session{
				cmdCtx: cmdCtx,
				store:  store,
				out:    cmd.OutOrStdout(),
				errOut: cmd.ErrOrStderr(),
			}
			return session.run(cmdCtx.Cfg.HistoryFile)
		},
	}
}

func (s *Session) run(historyFile string) error {
	if dir := filepath.Dir(historyFile); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0750)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "tritsys> ",
		HistoryFile:     historyFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	fmt.Fprintln(s.out, styled("Tritsys interactive shell", termenv.ANSICyan))
	fmt.Fprintln(s.out, "Type help for commands, exit to quit")
	fmt.Fprintln(s.out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := s.dispatch(line); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			fmt.Fprintf(s.errOut, "%s %v\n", styled("Error:", termenv.ANSIRed), err)
		}
	}
}

func (s *Session) dispatch(line string) error {
	tokens := strings.Fields(line)
	switch tokens[0] {
	case "exit", "quit":
		return errExit
	case "help":
		s.printHelp()
		return nil
	case "expr":
		if len(tokens) < 2 {
			return fmt.Errorf("usage: expr <expression>")
		}
		return s.handleExpr(strings.TrimSpace(strings.TrimPrefix(line, "expr")))
	case "opcode":
		if len(tokens) != 2 {
			return fmt.Errorf("usage: opcode <number>")
		}
		return s.handleOpcode(tokens[1])
	case "hanoi":
		if len(tokens) != 2 {
			return fmt.Errorf("usage: hanoi <disks>")
		}
		return s.handleHanoi(tokens[1])
	case "matrix":
		if len(tokens) < 2 {
			return fmt.Errorf("usage: matrix <new|show|set|add|multiply|serialize|load|store|fetch|ls> ...")
		}
		return s.handleMatrix(tokens[1], tokens[2:])
	default:
		return fmt.Errorf("unknown command %q (type help for commands)", tokens[0])
	}
}

func (s *Session) handleExpr(input string) error {
	result, err := expr.Eval(input, s.cmdCtx.Mode)
	if err != nil {
		return err
	}
	if _, err := s.store.RecordEval(input, ternary.Format(result)); err != nil {
		s.cmdCtx.Logger.Warn("could not record evaluation", "error", err)
	}
	fmt.Fprintf(s.out, "Expression evaluated to (ternary): %s\n", ternary.Format(result))
	return nil
}

func (s *Session) handleOpcode(arg string) error {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", arg)
	}
	encoded := opcode.Encode(n)
	fmt.Fprintf(s.out, "Opcode %d encoded as: %s\n", n, encoded)
	if opcode.Validate(encoded) {
		fmt.Fprintln(s.out, "Checksum valid")
	} else {
		fmt.Fprintln(s.out, "Checksum invalid")
	}
	return nil
}

func (s *Session) handleHanoi(arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid disk count %q", arg)
	}
	moves, err := hanoi.Solve(n, s.out)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Solved in %d moves\n", moves)
	return nil
}

func (s *Session) handleMatrix(sub string, args []string) error {
	switch sub {
	case "new":
		if len(args) != 2 {
			return fmt.Errorf("usage: matrix new <rows> <cols>")
		}
		rows, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid row count %q", args[0])
		}
		cols, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid column count %q", args[1])
		}
		m, err := matrix.New(rows, cols)
		if err != nil {
			return err
		}
		s.current = m
		fmt.Fprintf(s.out, "Created %dx%d matrix\n", rows, cols)
		return nil

	case "show":
		if s.current == nil {
			return fmt.Errorf("no current matrix (use matrix new or matrix load)")
		}
		return renderMatrix(s.out, s.current, s.cmdCtx.Cfg.OutputFormat)

	case "set":
		if s.current == nil {
			return fmt.Errorf("no current matrix (use matrix new or matrix load)")
		}
		if len(args) != 3 {
			return fmt.Errorf("usage: matrix set <row> <col> <value>")
		}
		row, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid row %q", args[0])
		}
		col, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid column %q", args[1])
		}
		value, err := ternary.Parse(args[2])
		if err != nil {
			return fmt.Errorf("invalid ternary value %q: %w", args[2], err)
		}
		return s.current.Set(row, col, value)

	case "add", "multiply":
		if s.current == nil {
			return fmt.Errorf("no current matrix (use matrix new or matrix load)")
		}
		if len(args) != 1 {
			return fmt.Errorf("usage: matrix %s <file>", sub)
		}
		other, err := matrix.Load(args[0])
		if err != nil {
			return err
		}
		var result *matrix.Matrix
		if sub == "add" {
			result, err = s.current.Add(other, s.cmdCtx.Mode)
		} else {
			result, err = s.current.Mul(other, s.cmdCtx.Mode)
		}
		if err != nil {
			return err
		}
		s.current = result
		return renderMatrix(s.out, s.current, s.cmdCtx.Cfg.OutputFormat)

	case "serialize":
		if s.current == nil {
			return fmt.Errorf("no current matrix (use matrix new or matrix load)")
		}
		if len(args) != 1 {
			return fmt.Errorf("usage: matrix serialize <file>")
		}
		if err := matrix.Save(args[0], s.current); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Matrix serialized to %s\n", args[0])
		return nil

	case "load":
		if len(args) != 1 {
			return fmt.Errorf("usage: matrix load <file>")
		}
		m, err := matrix.Load(args[0])
		if err != nil {
			return err
		}
		s.current = m
		fmt.Fprintf(s.out, "Loaded %dx%d matrix from %s\n", m.Rows(), m.Cols(), args[0])
		return nil

	case "store":
		if s.current == nil {
			return fmt.Errorf("no current matrix (use matrix new or matrix load)")
		}
		if len(args) != 1 {
			return fmt.Errorf("usage: matrix store <name>")
		}
		if err := s.store.SaveMatrix(args[0], s.current); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Matrix stored in workspace as %q\n", args[0])
		return nil

	case "fetch":
		if len(args) != 1 {
			return fmt.Errorf("usage: matrix fetch <name>")
		}
		m, err := s.store.LoadMatrix(args[0])
		if err != nil {
			return err
		}
		s.current = m
		fmt.Fprintf(s.out, "Fetched %dx%d matrix %q from workspace\n", m.Rows(), m.Cols(), args[0])
		return nil

	case "ls":
		infos, err := s.store.ListMatrices()
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Fprintln(s.out, "No matrices in workspace")
			return nil
		}
		for _, info := range infos {
			fmt.Fprintf(s.out, "%s (%dx%d)\n", info.Name, info.Rows, info.Cols)
		}
		return nil

	default:
		return fmt.Errorf("unknown matrix command %q", sub)
	}
}

func (s *Session) printHelp() {
	help := `
Commands:
  expr <expression>              Evaluate a ternary expression
  opcode <number>                Encode and validate an opcode
  hanoi <n>                      Solve Tower of Hanoi for n disks
  matrix new <rows> <cols>       Create a new current matrix
  matrix show                    Display the current matrix
  matrix set <row> <col> <value> Set a cell of the current matrix
  matrix add <file>              Add a matrix file to the current matrix
  matrix multiply <file>         Multiply the current matrix by a file
  matrix serialize <file>        Save the current matrix to a file
  matrix load <file>             Load a matrix file as the current matrix
  matrix store <name>            Store the current matrix in the workspace
  matrix fetch <name>            Fetch a workspace matrix as current
  matrix ls                      List workspace matrices
  help                           Show this help
  exit                           Quit
`
	fmt.Fprintln(s.out, help)
}

func newREPLCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("expr"),
		readline.PcItem("opcode"),
		readline.PcItem("hanoi"),
		readline.PcItem("matrix",
			readline.PcItem("new"),
			readline.PcItem("show"),
			readline.PcItem("set"),
			readline.PcItem("add"),
			readline.PcItem("multiply"),
			readline.PcItem("serialize"),
			readline.PcItem("load"),
			readline.PcItem("store"),
			readline.PcItem("fetch"),
			readline.PcItem("ls"),
		),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}
