// Package matrix provides a dense two-dimensional integer matrix with the
// arithmetic and the ternary text persistence format of the ternary system.
//
// All structural checks happen before any result is allocated; failed
// operations leave their operands untouched and never panic on
// caller-triggered conditions.
package matrix

import "github.com/tritstack/tritsys/internal/ternary"

// Matrix is a rows×cols grid of signed integers, row-major. Every row slice
// is exactly cols long for the lifetime of the value.
type Matrix struct {
	rows int
	cols int
	data [][]int64
}

// New returns a zero-filled rows×cols matrix. Negative dimensions fail with
// ErrInvalidDimensions; zero dimensions are allowed.
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([][]int64, rows)
	for i := range data {
		data[i] = make([]int64, cols)
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i][i] = 1
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at (r, c), or ErrOutOfRange.
func (m *Matrix) At(r, c int) (int64, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return 0, ErrOutOfRange
	}
	return m.data[r][c], nil
}

// Set stores v at (r, c), or returns ErrOutOfRange.
func (m *Matrix) Set(r, c int, v int64) error {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return ErrOutOfRange
	}
	m.data[r][c] = v
	return nil
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	out, _ := New(m.rows, m.cols)
	for i := range m.data {
		copy(out.data[i], m.data[i])
	}
	return out
}

// Equal reports whether m and other have the same shape and elements.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		for j := range m.data[i] {
			if m.data[i][j] != other.data[i][j] {
				return false
			}
		}
	}
	return true
}

// Add returns the cell-wise sum of m and other. Shapes must match exactly.
func (m *Matrix) Add(other *Matrix, mode ternary.OverflowMode) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, ErrDimensionMismatch
	}
	out, _ := New(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			sum, err := mode.Add(m.data[i][j], other.data[i][j])
			if err != nil {
				return nil, err
			}
			out.data[i][j] = sum
		}
	}
	return out, nil
}

// Mul returns the matrix product m×other. m.Cols must equal other.Rows; the
// result is m.Rows×other.Cols with standard dot-product cells, accumulated
// in the same fixed-width integers as the inputs.
func (m *Matrix) Mul(other *Matrix, mode ternary.OverflowMode) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, ErrDimensionMismatch
	}
	out, _ := New(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			var sum int64
			for k := 0; k < m.cols; k++ {
				prod, err := mode.Mul(m.data[i][k], other.data[k][j])
				if err != nil {
					return nil, err
				}
				sum, err = mode.Add(sum, prod)
				if err != nil {
					return nil, err
				}
			}
			out.data[i][j] = sum
		}
	}
	return out, nil
}

// Transpose returns the cols×rows transpose of m.
func (m *Matrix) Transpose() *Matrix {
	out, _ := New(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j][i] = m.data[i][j]
		}
	}
	return out
}
