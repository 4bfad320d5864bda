package store

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sadopc/compound/internal/growth"
)

// LiveState assembles the in-progress day for the productivity scores.
func (s *Store) LiveState(now time.Time) (growth.LiveState, error) {
	live := growth.LiveState{CycleDay: s.CycleDay(now)}

	tasks, err := s.ListTasks(false)
	if err != nil {
		return live, err
	}
	for _, t := range tasks {
		live.Tasks = append(live.Tasks, growth.LiveItem{Title: t.Title, Done: t.Done})
	}

	habits, err := s.ListHabits(false)
	if err != nil {
		return live, err
	}
	for _, h := range habits {
		live.Habits = append(live.Habits, growth.LiveItem{Title: h.Name, Done: h.Done})
	}

	queries, err := s.ListQueries(true)
	if err != nil {
		return live, err
	}
	for _, q := range queries {
		live.Queries = append(live.Queries, growth.Query{Question: q.Question, Resolved: q.Resolved})
	}
	return live, nil
}

func (s *Store) countDone(table string) (done, total int, err error) {
	err = s.db.QueryRow(
		`SELECT COALESCE(SUM(done), 0), COUNT(*) FROM ` + table + ` WHERE archived = 0`,
	).Scan(&done, &total)
	if err != nil {
		return 0, 0, fmt.Errorf("count %s: %w", table, err)
	}
	return done, total, nil
}

// MissedDaysBefore is the number of calendar days between the latest
// record dated before today and today, exclusive. Zero when there is
// no earlier record.
func MissedDaysBefore(records []growth.DailyRecord, today string) int {
	var last string
	for _, r := range records {
		if r.Date < today && r.Date > last {
			last = r.Date
		}
	}
	if last == "" {
		return 0
	}
	gap := int(growth.ParseDate(today).Sub(growth.ParseDate(last)).Hours()/24) - 1
	return max(gap, 0)
}

// SubmitDay closes out the live day: it writes today's record to
// records, archives completed tasks and learning items, and clears habit
// flags. Submitting twice on one day replaces the earlier record.
func (s *Store) SubmitDay(records growth.RecordStore, now time.Time, reflection string) (growth.DailyRecord, error) {
	today := growth.FormatDate(now.UTC())
	rec := growth.DailyRecord{
		Date:       today,
		CycleDay:   s.CycleDay(now),
		Reflection: reflection,
	}

	var err error
	if rec.TasksCompleted, rec.TotalTasks, err = s.countDone("tasks"); err != nil {
		return rec, err
	}
	if rec.HabitsCompleted, rec.TotalHabits, err = s.countDone("habits"); err != nil {
		return rec, err
	}
	if rec.LearningItemsCompleted, rec.TotalLearningItems, err = s.countDone("learning_items"); err != nil {
		return rec, err
	}

	history, err := records.GetAllRecords()
	if err != nil {
		return rec, fmt.Errorf("load history: %w", err)
	}
	rec.MissedDays = MissedDaysBefore(history, today)

	if err := records.SaveRecord(rec); err != nil {
		return rec, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return rec, fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	stamp := now.UTC().Format(time.RFC3339)
	resets := []struct {
		query string
		args  []any
	}{
		{`UPDATE tasks SET archived = 1, updated_at = ? WHERE done = 1 AND archived = 0`, []any{stamp}},
		{`UPDATE learning_items SET archived = 1 WHERE done = 1 AND archived = 0`, nil},
		{`UPDATE habits SET done = 0, updated_at = ? WHERE done = 1`, []any{stamp}},
	}
	for _, r := range resets {
		if _, err := tx.Exec(r.query, r.args...); err != nil {
			return rec, fmt.Errorf("reset live day: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return rec, fmt.Errorf("commit reset: %w", err)
	}

	log.Info().
		Str("date", rec.Date).
		Int("cycle_day", rec.CycleDay).
		Int("missed_days", rec.MissedDays).
		Msg("day submitted")
	return rec, nil
}
