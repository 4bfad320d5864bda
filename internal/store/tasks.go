package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

func (s *Store) CreateTask(title string) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("insert task: empty title")
	}
	now := timestamp()
	res, err := s.db.Exec(
		`INSERT INTO tasks (title, created_at, updated_at) VALUES (?, ?, ?)`,
		title, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetTask(id)
}

const taskColumns = `id, title, done, archived, created_at, updated_at`

func scanTask(row scanner) (Task, error) {
	var (
		t                    Task
		done, archived       int
		createdAt, updatedAt string
	)
	if err := row.Scan(&t.ID, &t.Title, &done, &archived, &createdAt, &updatedAt); err != nil {
		return Task{}, err
	}
	t.Done, t.Archived = done == 1, archived == 1
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return t, nil
}

func (s *Store) GetTask(id int64) (*Task, error) {
	t, err := scanTask(s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", id, err)
	}
	return &t, nil
}

// ListTasks returns tasks in creation order.
func (s *Store) ListTasks(includeArchived bool) ([]Task, error) {
	where := ` WHERE archived = 0`
	if includeArchived {
		where = ""
	}
	rows, err := s.db.Query(`SELECT ` + taskColumns + ` FROM tasks` + where + ` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// ToggleTask flips the done flag and returns the new value.
func (s *Store) ToggleTask(id int64) (bool, error) {
	return s.toggle(`UPDATE tasks SET done = 1 - done, updated_at = ? WHERE id = ? RETURNING done`, timestamp(), id)
}

func (s *Store) ArchiveTask(id int64) error {
	_, err := s.db.Exec(`UPDATE tasks SET archived = 1, updated_at = ? WHERE id = ?`, timestamp(), id)
	if err != nil {
		return fmt.Errorf("archive task %d: %w", id, err)
	}
	return nil
}

func (s *Store) toggle(query string, args ...any) (bool, error) {
	var done int
	err := s.db.QueryRow(query, args...).Scan(&done)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("toggle: %w", err)
	}
	return done == 1, nil
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
