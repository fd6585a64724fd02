package ternary

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{2, "2"},
		{3, "10"},
		{4, "11"},
		{5, "12"},
		{9, "100"},
		{26, "222"},
		{27, "1000"},
		{-1, "-1"},
		{-5, "-12"},
		{-27, "-1000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.n), "Format(%d)", tt.n)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		s    string
		want int64
	}{
		{"0", 0},
		{"1", 1},
		{"10", 3},
		{"222", 26},
		{"-12", -5},
		{"-0", 0},
		{"0012", 5}, // leading zeros tolerated on input
	}
	for _, tt := range tests {
		got, err := Parse(tt.s)
		require.NoError(t, err, "Parse(%q)", tt.s)
		assert.Equal(t, tt.want, got, "Parse(%q)", tt.s)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Parse("-")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Parse("3")
	require.ErrorIs(t, err, ErrInvalidDigit)
	var syn *SyntaxError
	require.ErrorAs(t, err, &syn)
	assert.Equal(t, '3', syn.Char)
	assert.Equal(t, 0, syn.Pos)

	_, err = Parse("12x0")
	require.ErrorIs(t, err, ErrInvalidDigit)
	require.ErrorAs(t, err, &syn)
	assert.Equal(t, 'x', syn.Char)
	assert.Equal(t, 2, syn.Pos)

	// Sign is only valid in the leading position.
	_, err = Parse("1-2")
	assert.ErrorIs(t, err, ErrInvalidDigit)
}

func TestRoundTrip(t *testing.T) {
	for n := int64(-2000); n <= 2000; n++ {
		got, err := Parse(Format(n))
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, n, got, "n=%d", n)
	}

	for _, n := range []int64{math.MaxInt64, math.MinInt64, math.MaxInt64 - 1, 1 << 40} {
		got, err := Parse(Format(n))
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, n, got, "n=%d", n)
	}
}

func TestOverflowMode(t *testing.T) {
	wrap := OverflowWrap
	strict := OverflowError

	got, err := wrap.Add(math.MaxInt64, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), got)

	_, err = strict.Add(math.MaxInt64, 1)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = strict.Sub(math.MinInt64, 1)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = strict.Mul(math.MaxInt64, 2)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = strict.Mul(-1, math.MinInt64)
	assert.ErrorIs(t, err, ErrOverflow)

	got, err = strict.Mul(1<<20, 1<<20)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<40), got)
}

func TestParseOverflowMode(t *testing.T) {
	m, err := ParseOverflowMode("")
	require.NoError(t, err)
	assert.Equal(t, OverflowWrap, m)

	m, err = ParseOverflowMode("error")
	require.NoError(t, err)
	assert.Equal(t, OverflowError, m)

	_, err = ParseOverflowMode("saturate")
	assert.Error(t, err)
}
