package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tritstack/tritsys/internal/matrix"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.Open(":memory:"))
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.InitSchema())
	return s
}

func testMatrix(t *testing.T) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(0, 1, -2))
	require.NoError(t, m.Set(1, 0, 3))
	require.NoError(t, m.Set(1, 1, 42))
	return m
}

func TestSaveLoadMatrix(t *testing.T) {
	s := newTestStore(t)
	m := testMatrix(t)

	require.NoError(t, s.SaveMatrix("a", m))
	got, err := s.LoadMatrix("a")
	require.NoError(t, err)
	assert.True(t, got.Equal(m))
}

func TestSaveMatrixOverwrites(t *testing.T) {
	s := newTestStore(t)
	m := testMatrix(t)
	require.NoError(t, s.SaveMatrix("a", m))

	m2 := m.Clone()
	require.NoError(t, m2.Set(0, 0, 99))
	require.NoError(t, s.SaveMatrix("a", m2))

	got, err := s.LoadMatrix("a")
	require.NoError(t, err)
	assert.True(t, got.Equal(m2))

	infos, err := s.ListMatrices()
	require.NoError(t, err)
	require.Len(t, infos, 1)
}

func TestLoadMissingMatrix(t *testing.T) {
	s := newTestStore(t)
	_, err := s.LoadMatrix("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMatrices(t *testing.T) {
	s := newTestStore(t)
	m := testMatrix(t)
	require.NoError(t, s.SaveMatrix("b", m))
	require.NoError(t, s.SaveMatrix("a", m))

	infos, err := s.ListMatrices()
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "a", infos[0].Name)
	assert.Equal(t, "b", infos[1].Name)
	assert.Equal(t, 2, infos[0].Rows)
	assert.Equal(t, 2, infos[0].Cols)
}

func TestDeleteMatrix(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveMatrix("a", testMatrix(t)))
	require.NoError(t, s.DeleteMatrix("a"))

	_, err := s.LoadMatrix("a")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.DeleteMatrix("a"), ErrNotFound)
}

func TestRecordAndRecentEvals(t *testing.T) {
	s := newTestStore(t)

	first, err := s.RecordEval("1+1", "2")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = s.RecordEval("2*2", "11")
	require.NoError(t, err)

	evals, err := s.RecentEvals(10)
	require.NoError(t, err)
	require.Len(t, evals, 2)

	// Newest first.
	assert.Equal(t, "2*2", evals[0].Expression)
	assert.Equal(t, "11", evals[0].Result)
	assert.Equal(t, "1+1", evals[1].Expression)

	limited, err := s.RecentEvals(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
}

func TestStoreNotOpened(t *testing.T) {
	s := NewStore()
	assert.Error(t, s.InitSchema())
	_, err := s.LoadMatrix("a")
	assert.Error(t, err)
	assert.NoError(t, s.Close())
}
