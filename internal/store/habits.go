package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// CreateHabit adds a habit. Names are unique.
func (s *Store) CreateHabit(name string) (*Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("insert habit: empty name")
	}
	now := timestamp()
	res, err := s.db.Exec(
		`INSERT INTO habits (name, created_at, updated_at) VALUES (?, ?, ?)`,
		name, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert habit: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetHabit(id)
}

func (s *Store) GetHabit(id int64) (*Habit, error) {
	h := &Habit{}
	var createdAt, updatedAt string
	var done, archived int
	err := s.db.QueryRow(
		`SELECT id, name, done, archived, created_at, updated_at FROM habits WHERE id = ?`, id,
	).Scan(&h.ID, &h.Name, &done, &archived, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get habit %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get habit %d: %w", id, err)
	}
	h.Done = done == 1
	h.Archived = archived == 1
	h.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	h.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return h, nil
}

func (s *Store) ListHabits(includeArchived bool) ([]Habit, error) {
	query := `SELECT id, name, done, archived, created_at, updated_at FROM habits`
	if !includeArchived {
		query += ` WHERE archived = 0`
	}
	query += ` ORDER BY name`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	defer rows.Close()

	var habits []Habit
	for rows.Next() {
		var h Habit
		var createdAt, updatedAt string
		var done, archived int
		if err := rows.Scan(&h.ID, &h.Name, &done, &archived, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		h.Done = done == 1
		h.Archived = archived == 1
		h.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		h.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) ToggleHabit(id int64) (bool, error) {
	now := timestamp()
	return s.toggle(`UPDATE habits SET done = 1 - done, updated_at = ? WHERE id = ? RETURNING done`, now, id)
}

func (s *Store) ArchiveHabit(id int64) error {
	now := timestamp()
	_, err := s.db.Exec(
		`UPDATE habits SET archived = 1, updated_at = ? WHERE id = ?`, now, id,
	)
	return err
}
