package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sadopc/compound/internal/growth"
)

const recordColumns = `date, cycle_day, tasks_completed, total_tasks, habits_completed, total_habits,
	learning_completed, total_learning, missed_days, reflection`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (growth.DailyRecord, error) {
	var r growth.DailyRecord
	err := row.Scan(&r.Date, &r.CycleDay, &r.TasksCompleted, &r.TotalTasks,
		&r.HabitsCompleted, &r.TotalHabits, &r.LearningItemsCompleted, &r.TotalLearningItems,
		&r.MissedDays, &r.Reflection)
	return r, err
}

// GetAllRecords returns every daily record, oldest first.
func (s *Store) GetAllRecords() ([]growth.DailyRecord, error) {
	rows, err := s.db.Query(`SELECT ` + recordColumns + ` FROM daily_records ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []growth.DailyRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *Store) GetRecord(date string) (*growth.DailyRecord, error) {
	r, err := scanRecord(s.db.QueryRow(`SELECT `+recordColumns+` FROM daily_records WHERE date = ?`, date))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get record %s: %w", date, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w", date, err)
	}
	return &r, nil
}

// SaveRecord inserts the record or replaces the one with the same date.
func (s *Store) SaveRecord(r growth.DailyRecord) error {
	if _, err := time.Parse(growth.DateLayout, r.Date); err != nil {
		return fmt.Errorf("save record: invalid date %q", r.Date)
	}
	now := timestamp()
	_, err := s.db.Exec(`
		INSERT INTO daily_records (`+recordColumns+`, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			cycle_day = excluded.cycle_day,
			tasks_completed = excluded.tasks_completed,
			total_tasks = excluded.total_tasks,
			habits_completed = excluded.habits_completed,
			total_habits = excluded.total_habits,
			learning_completed = excluded.learning_completed,
			total_learning = excluded.total_learning,
			missed_days = excluded.missed_days,
			reflection = excluded.reflection,
			updated_at = excluded.updated_at`,
		r.Date, r.CycleDay, r.TasksCompleted, r.TotalTasks, r.HabitsCompleted, r.TotalHabits,
		r.LearningItemsCompleted, r.TotalLearningItems, r.MissedDays, r.Reflection, now, now,
	)
	if err != nil {
		return fmt.Errorf("save record %s: %w", r.Date, err)
	}
	return nil
}

func (s *Store) DeleteRecord(date string) error {
	res, err := s.db.Exec(`DELETE FROM daily_records WHERE date = ?`, date)
	if err != nil {
		return fmt.Errorf("delete record %s: %w", date, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete record %s: %w", date, ErrNotFound)
	}
	return nil
}

func (s *Store) UpdateReflection(date, text string) error {
	now := timestamp()
	res, err := s.db.Exec(
		`UPDATE daily_records SET reflection = ?, updated_at = ? WHERE date = ?`, text, now, date,
	)
	if err != nil {
		return fmt.Errorf("update reflection %s: %w", date, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update reflection %s: %w", date, ErrNotFound)
	}
	return nil
}

// Backend names reported by OpenRecords.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Records is a growth.RecordStore that can also look up and annotate a
// single day. Both backends implement it.
type Records interface {
	growth.RecordStore
	GetRecord(date string) (*growth.DailyRecord, error)
	UpdateReflection(date, text string) error
}

var (
	_ Records = (*Store)(nil)
	_ Records = (*FileRecords)(nil)
)

// OpenRecords picks where daily records live. The sqlite store is used
// when it answers a ping; otherwise records go to the JSON file at
// fallbackPath. The choice is made once per process.
func OpenRecords(s *Store, fallbackPath string) (Records, string) {
	if s != nil {
		err := s.Ping()
		if err == nil {
			log.Info().Str("backend", BackendSQLite).Msg("record store selected")
			return s, BackendSQLite
		}
		log.Warn().Err(err).Msg("sqlite records unavailable")
	}
	log.Info().Str("backend", BackendFile).Str("path", fallbackPath).Msg("record store selected")
	return NewFileRecords(fallbackPath), BackendFile
}
