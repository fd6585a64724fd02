package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"

	"github.com/tritstack/tritsys/internal/matrix"
	"github.com/tritstack/tritsys/internal/ternary"
)

// matrixJSON is the JSON shape of a rendered matrix. Cells carry the
// ternary encoding; decimal values are derivable from it.
type matrixJSON struct {
	Rows  int        `json:"rows"`
	Cols  int        `json:"cols"`
	Cells [][]string `json:"cells"`
}

// renderMatrix writes m to w in the requested output format.
func renderMatrix(w io.Writer, m *matrix.Matrix, format string) error {
	switch format {
	case "json":
		return renderMatrixJSON(w, m)
	case "plain":
		return matrix.Write(w, m)
	default:
		return renderMatrixTable(w, m)
	}
}

func renderMatrixTable(w io.Writer, m *matrix.Matrix) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, m.Cols()+1)
	header[0] = ""
	for j := 0; j < m.Cols(); j++ {
		header[j+1] = fmt.Sprintf("c%d", j)
	}
	t.AppendHeader(header)

	for i := 0; i < m.Rows(); i++ {
		row := make(table.Row, m.Cols()+1)
		row[0] = fmt.Sprintf("r%d", i)
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			row[j+1] = ternary.Format(v)
		}
		t.AppendRow(row)
	}

	t.Render()
	fmt.Fprintf(w, "(%dx%d)\n", m.Rows(), m.Cols())
	return nil
}

func renderMatrixJSON(w io.Writer, m *matrix.Matrix) error {
	out := matrixJSON{
		Rows:  m.Rows(),
		Cols:  m.Cols(),
		Cells: make([][]string, m.Rows()),
	}
	for i := 0; i < m.Rows(); i++ {
		out.Cells[i] = make([]string, m.Cols())
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			out.Cells[i][j] = ternary.Format(v)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// renderResult prints an evaluation result: the ternary value, plus the
// decimal reading in verbose mode.
func renderResult(w io.Writer, value int64, format string, verbose bool) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		return enc.Encode(map[string]any{
			"ternary": ternary.Format(value),
			"decimal": value,
		})
	default:
		if verbose {
			_, err := fmt.Fprintf(w, "%s (decimal %d)\n", ternary.Format(value), value)
			return err
		}
		_, err := fmt.Fprintln(w, ternary.Format(value))
		return err
	}
}

// styled wraps s in the given termenv style when the terminal supports it.
func styled(s string, color termenv.ANSIColor) string {
	p := termenv.ColorProfile()
	return termenv.String(s).Foreground(p.Convert(color)).String()
}
