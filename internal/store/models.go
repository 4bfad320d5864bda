package store

import "time"

// Task is a one-off item on the live day. Completed tasks are archived
// when the day is submitted; open ones carry over.
type Task struct {
	ID        int64
	Title     string
	Done      bool
	Archived  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Habit is a recurring item whose done flag resets on every submit.
type Habit struct {
	ID        int64
	Name      string
	Done      bool
	Archived  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type LearningItem struct {
	ID        int64
	Term      string
	Notes     string
	Done      bool
	Archived  bool
	CreatedAt time.Time
}

// Query is an open question; unresolved ones count as knowledge debt.
type Query struct {
	ID         int64
	Question   string
	Answer     string
	Resolved   bool
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

type Setting struct {
	Key   string
	Value string
}
