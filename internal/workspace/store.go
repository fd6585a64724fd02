// Package workspace persists named matrices and an evaluation history in a
// SQLite database. Matrices are stored in the same text encoding the
// serializer writes to files, so the store and the filesystem stay
// interchangeable.
package workspace

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/tritstack/tritsys/internal/matrix"
)

//go:embed schema.sql
var schemaSQL string

// ErrNotFound is returned when a named matrix does not exist in the store.
var ErrNotFound = errors.New("workspace: matrix not found")

// Evaluation is one recorded expression evaluation.
type Evaluation struct {
	ID          string
	Expression  string
	Result      string
	EvaluatedAt time.Time
}

// MatrixInfo describes a stored matrix without its body.
type MatrixInfo struct {
	Name      string
	Rows      int
	Cols      int
	UpdatedAt time.Time
}

// Store is a SQLite-backed workspace.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates an unopened workspace store.
func NewStore() *Store {
	return &Store{}
}

// Open opens the database at path. Use ":memory:" for an in-memory
// workspace.
func (s *Store) Open(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open workspace database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping workspace database: %w", err)
	}
	s.db = db
	s.path = path
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// InitSchema creates the workspace tables if they do not exist.
func (s *Store) InitSchema() error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// SaveMatrix stores m under name, replacing any previous matrix with that
// name.
func (s *Store) SaveMatrix(name string, m *matrix.Matrix) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	var body strings.Builder
	if err := matrix.Write(&body, m); err != nil {
		return fmt.Errorf("failed to encode matrix: %w", err)
	}

	_, err := s.db.Exec(
		`INSERT INTO matrices (name, rows, cols, body, updated_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET rows = excluded.rows, cols = excluded.cols,
		 body = excluded.body, updated_at = excluded.updated_at`,
		name, m.Rows(), m.Cols(), body.String(), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save matrix: %w", err)
	}
	return nil
}

// LoadMatrix retrieves the matrix stored under name.
func (s *Store) LoadMatrix(name string) (*matrix.Matrix, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	var body string
	err := s.db.QueryRow(`SELECT body FROM matrices WHERE name = ?`, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load matrix: %w", err)
	}

	m, err := matrix.Read(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to decode matrix %q: %w", name, err)
	}
	return m, nil
}

// ListMatrices returns metadata for every stored matrix, ordered by name.
func (s *Store) ListMatrices() ([]*MatrixInfo, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.Query(
		`SELECT name, rows, cols, updated_at FROM matrices ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matrices: %w", err)
	}
	defer rows.Close()

	var infos []*MatrixInfo
	for rows.Next() {
		info := &MatrixInfo{}
		if err := rows.Scan(&info.Name, &info.Rows, &info.Cols, &info.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan matrix info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// DeleteMatrix removes the matrix stored under name.
func (s *Store) DeleteMatrix(name string) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	result, err := s.db.Exec(`DELETE FROM matrices WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete matrix: %w", err)
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

// RecordEval appends an expression and its ternary result to the history.
func (s *Store) RecordEval(expression, result string) (*Evaluation, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	ev := &Evaluation{
		ID:          uuid.New().String(),
		Expression:  expression,
		Result:      result,
		EvaluatedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO evaluations (id, expression, result, evaluated_at) VALUES (?, ?, ?, ?)`,
		ev.ID, ev.Expression, ev.Result, ev.EvaluatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record evaluation: %w", err)
	}
	return ev, nil
}

// RecentEvals returns up to limit evaluations, newest first.
func (s *Store) RecentEvals(limit int) ([]*Evaluation, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.Query(
		`SELECT id, expression, result, evaluated_at FROM evaluations
		 ORDER BY evaluated_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	var evals []*Evaluation
	for rows.Next() {
		ev := &Evaluation{}
		if err := rows.Scan(&ev.ID, &ev.Expression, &ev.Result, &ev.EvaluatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		evals = append(evals, ev)
	}
	return evals, rows.Err()
}
