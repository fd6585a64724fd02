package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tritstack/tritsys/internal/ternary"
)

// Write renders m in the ternary matrix text format: a "rows cols" header
// line, then one line per row where every cell is a ternary number followed
// by a single space. The trailing space before the newline is part of the
// format.
func Write(w io.Writer, m *Matrix) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", m.rows, m.cols); err != nil {
		return err
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if _, err := bw.WriteString(ternary.Format(m.data[i][j]) + " "); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read parses the format produced by Write. It is strict about shape: the
// header dimensions must be non-negative, every row must hold exactly cols
// values, and the input must supply every promised row.
func Read(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, ErrInsufficientRows
	}
	rows, cols, err := parseHeader(sc.Text())
	if err != nil {
		return nil, err
	}
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: got %d of %d", ErrInsufficientRows, i, rows)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d",
				ErrRowLengthMismatch, i, len(fields), cols)
		}
		for j, f := range fields {
			v, err := ternary.Parse(f)
			if err != nil {
				return nil, fmt.Errorf("matrix: row %d col %d: %w", i, j, err)
			}
			m.data[i][j] = v
		}
	}
	return m, nil
}

// parseHeader parses the dimension line: exactly two non-negative decimal
// integers and nothing else.
func parseHeader(line string) (rows, cols int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: bad header %q", ErrInvalidDimensions, line)
	}
	rows, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad header %q", ErrInvalidDimensions, line)
	}
	cols, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad header %q", ErrInvalidDimensions, line)
	}
	return rows, cols, nil
}

// Save writes m to path, truncating any existing file.
func Save(path string, m *Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a matrix from path.
func Load(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
