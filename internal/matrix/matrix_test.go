package matrix

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tritstack/tritsys/internal/ternary"
)

func mustMatrix(t *testing.T, rows, cols int, values ...int64) *Matrix {
	t.Helper()
	m, err := New(rows, cols)
	require.NoError(t, err)
	require.Len(t, values, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, values[i*cols+j]))
		}
	}
	return m
}

func TestNew(t *testing.T) {
	m, err := New(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.Zero(t, v)
		}
	}

	_, err = New(-1, 3)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = New(3, -1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	// Zero dimensions are fine.
	z, err := New(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, z.Rows())
}

func TestAtSetBounds(t *testing.T) {
	m, err := New(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 1, 42))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(rc[0], rc[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "At(%d,%d)", rc[0], rc[1])
		assert.ErrorIs(t, m.Set(rc[0], rc[1], 1), ErrOutOfRange, "Set(%d,%d)", rc[0], rc[1])
	}
}

func TestAddCommutative(t *testing.T) {
	a := mustMatrix(t, 2, 2, 1, -2, 3, 4)
	b := mustMatrix(t, 2, 2, 5, 6, -7, 8)

	ab, err := a.Add(b, ternary.OverflowWrap)
	require.NoError(t, err)
	ba, err := b.Add(a, ternary.OverflowWrap)
	require.NoError(t, err)
	assert.True(t, ab.Equal(ba))

	want := mustMatrix(t, 2, 2, 6, 4, -4, 12)
	assert.True(t, ab.Equal(want))
}

func TestAddDimensionMismatch(t *testing.T) {
	a, _ := New(2, 3)
	b, _ := New(3, 2)
	_, err := a.Add(b, ternary.OverflowWrap)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestMul(t *testing.T) {
	a := mustMatrix(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := mustMatrix(t, 3, 2, 7, 8, 9, 10, 11, 12)

	got, err := a.Mul(b, ternary.OverflowWrap)
	require.NoError(t, err)
	want := mustMatrix(t, 2, 2, 58, 64, 139, 154)
	assert.True(t, got.Equal(want))

	// Inner dimensions must agree.
	_, err = a.Mul(a, ternary.OverflowWrap)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestMulIdentityFixedPoint(t *testing.T) {
	m := mustMatrix(t, 2, 2, 1, -2, 3, 4)
	id, err := Identity(2)
	require.NoError(t, err)

	got, err := m.Mul(id, ternary.OverflowWrap)
	require.NoError(t, err)
	assert.True(t, got.Equal(m))

	got, err = id.Mul(m, ternary.OverflowWrap)
	require.NoError(t, err)
	assert.True(t, got.Equal(m))
}

func TestMulAssociative(t *testing.T) {
	a := mustMatrix(t, 2, 2, 1, 2, 3, 4)
	b := mustMatrix(t, 2, 2, 0, 1, 1, 0)
	c := mustMatrix(t, 2, 2, 2, 0, 0, 2)

	ab, err := a.Mul(b, ternary.OverflowWrap)
	require.NoError(t, err)
	abc1, err := ab.Mul(c, ternary.OverflowWrap)
	require.NoError(t, err)

	bc, err := b.Mul(c, ternary.OverflowWrap)
	require.NoError(t, err)
	abc2, err := a.Mul(bc, ternary.OverflowWrap)
	require.NoError(t, err)

	assert.True(t, abc1.Equal(abc2))
}

func TestOverflowErrorMode(t *testing.T) {
	a := mustMatrix(t, 1, 1, math.MaxInt64)
	b := mustMatrix(t, 1, 1, 1)

	_, err := a.Add(b, ternary.OverflowError)
	assert.ErrorIs(t, err, ternary.ErrOverflow)

	// Wrap mode still produces a result.
	got, err := a.Add(b, ternary.OverflowWrap)
	require.NoError(t, err)
	v, _ := got.At(0, 0)
	assert.Equal(t, int64(math.MinInt64), v)
}

func TestTranspose(t *testing.T) {
	m := mustMatrix(t, 2, 3, 1, 2, 3, 4, 5, 6)
	tr := m.Transpose()
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	want := mustMatrix(t, 3, 2, 1, 4, 2, 5, 3, 6)
	assert.True(t, tr.Equal(want))

	assert.True(t, tr.Transpose().Equal(m))
}

func TestCloneIndependence(t *testing.T) {
	m := mustMatrix(t, 2, 2, 1, 2, 3, 4)
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 99))
	v, _ := m.At(0, 0)
	assert.Equal(t, int64(1), v)
}

func TestWriteFormat(t *testing.T) {
	// Cells are ternary, each followed by one space; the trailing space
	// before the newline is part of the format.
	m := mustMatrix(t, 2, 2, 0, 1, 5, -5)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m))
	assert.Equal(t, "2 2\n0 1 \n12 -12 \n", buf.String())
}

func TestReadWriteRoundTrip(t *testing.T) {
	m := mustMatrix(t, 3, 2, 0, -1, 42, 7, -100, 3)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m))

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.True(t, got.Equal(m))
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrInsufficientRows)

	// The header must be exactly two non-negative integers.
	_, err = Read(strings.NewReader("nonsense\n"))
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = Read(strings.NewReader("x y\n"))
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = Read(strings.NewReader("2\n"))
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = Read(strings.NewReader("2 2 junk\n1 1 \n1 1 \n"))
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = Read(strings.NewReader("-1 2\n"))
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	// Header promises 2 rows, input has 1.
	_, err = Read(strings.NewReader("2 2\n1 1 \n"))
	assert.ErrorIs(t, err, ErrInsufficientRows)

	// Row holds too few values.
	_, err = Read(strings.NewReader("2 2\n1 \n1 1 \n"))
	assert.ErrorIs(t, err, ErrRowLengthMismatch)

	// Cell is not ternary.
	_, err = Read(strings.NewReader("1 1\n9 \n"))
	assert.ErrorIs(t, err, ternary.ErrInvalidDigit)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.tmx")
	m := mustMatrix(t, 2, 2, 1, 2, 3, 4)

	require.NoError(t, Save(path, m))
	got, err := Load(path)
	require.NoError(t, err)
	assert.True(t, got.Equal(m))

	_, err = Load(filepath.Join(t.TempDir(), "missing.tmx"))
	assert.Error(t, err)
}
