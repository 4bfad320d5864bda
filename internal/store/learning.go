package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

func (s *Store) CreateLearningItem(term, notes string) (*LearningItem, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("insert learning item: empty term")
	}
	now := timestamp()
	res, err := s.db.Exec(
		`INSERT INTO learning_items (term, notes, created_at) VALUES (?, ?, ?)`,
		term, strings.TrimSpace(notes), now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert learning item: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetLearningItem(id)
}

func (s *Store) GetLearningItem(id int64) (*LearningItem, error) {
	l := &LearningItem{}
	var createdAt string
	var done, archived int
	err := s.db.QueryRow(
		`SELECT id, term, notes, done, archived, created_at FROM learning_items WHERE id = ?`, id,
	).Scan(&l.ID, &l.Term, &l.Notes, &done, &archived, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get learning item %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get learning item %d: %w", id, err)
	}
	l.Done = done == 1
	l.Archived = archived == 1
	l.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return l, nil
}

func (s *Store) ListLearningItems(includeArchived bool) ([]LearningItem, error) {
	query := `SELECT id, term, notes, done, archived, created_at FROM learning_items`
	if !includeArchived {
		query += ` WHERE archived = 0`
	}
	query += ` ORDER BY id`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list learning items: %w", err)
	}
	defer rows.Close()

	var items []LearningItem
	for rows.Next() {
		var l LearningItem
		var createdAt string
		var done, archived int
		if err := rows.Scan(&l.ID, &l.Term, &l.Notes, &done, &archived, &createdAt); err != nil {
			return nil, err
		}
		l.Done = done == 1
		l.Archived = archived == 1
		l.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		items = append(items, l)
	}
	return items, rows.Err()
}

func (s *Store) ToggleLearningItem(id int64) (bool, error) {
	return s.toggle(`UPDATE learning_items SET done = 1 - done WHERE id = ? RETURNING done`, id)
}

func (s *Store) ArchiveLearningItem(id int64) error {
	_, err := s.db.Exec(`UPDATE learning_items SET archived = 1 WHERE id = ?`, id)
	return err
}
