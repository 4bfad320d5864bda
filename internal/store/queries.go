package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

func (s *Store) CreateQuery(question string) (*Query, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("insert query: empty question")
	}
	now := timestamp()
	res, err := s.db.Exec(
		`INSERT INTO queries (question, created_at) VALUES (?, ?)`, question, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert query: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetQuery(id)
}

func (s *Store) GetQuery(id int64) (*Query, error) {
	q := &Query{}
	var createdAt string
	var resolvedAt sql.NullString
	var resolved int
	err := s.db.QueryRow(
		`SELECT id, question, answer, resolved, created_at, resolved_at FROM queries WHERE id = ?`, id,
	).Scan(&q.ID, &q.Question, &q.Answer, &resolved, &createdAt, &resolvedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get query %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get query %d: %w", id, err)
	}
	q.Resolved = resolved == 1
	q.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if resolvedAt.Valid {
		t, _ := time.Parse(time.RFC3339, resolvedAt.String)
		q.ResolvedAt = &t
	}
	return q, nil
}

// ListQueries returns queries oldest first; open ones only unless
// includeResolved is set.
func (s *Store) ListQueries(includeResolved bool) ([]Query, error) {
	query := `SELECT id, question, answer, resolved, created_at, resolved_at FROM queries`
	if !includeResolved {
		query += ` WHERE resolved = 0`
	}
	query += ` ORDER BY id`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list queries: %w", err)
	}
	defer rows.Close()

	var queries []Query
	for rows.Next() {
		var q Query
		var createdAt string
		var resolvedAt sql.NullString
		var resolved int
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &resolved, &createdAt, &resolvedAt); err != nil {
			return nil, err
		}
		q.Resolved = resolved == 1
		q.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if resolvedAt.Valid {
			t, _ := time.Parse(time.RFC3339, resolvedAt.String)
			q.ResolvedAt = &t
		}
		queries = append(queries, q)
	}
	return queries, rows.Err()
}

func (s *Store) ResolveQuery(id int64, answer string) error {
	now := timestamp()
	res, err := s.db.Exec(
		`UPDATE queries SET resolved = 1, answer = ?, resolved_at = ? WHERE id = ?`,
		strings.TrimSpace(answer), now, id,
	)
	if err != nil {
		return fmt.Errorf("resolve query %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("resolve query %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Store) DeleteQuery(id int64) error {
	_, err := s.db.Exec(`DELETE FROM queries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete query %d: %w", id, err)
	}
	return nil
}
