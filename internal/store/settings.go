package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sadopc/compound/internal/growth"
)

// Setting keys.
const (
	KeyBaseRate          = "growth_base_rate"
	KeyWeightTask        = "weight_task"
	KeyWeightHabit       = "weight_habit"
	KeyWeightLearning    = "weight_learning"
	KeyWeightConsistency = "weight_consistency"
	KeyCycleLength       = "cycle_length"
	KeyCycleStart        = "cycle_start"
)

const defaultCycleLength = 30

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("get setting %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *Store) GetAllSettings() ([]Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

func (s *Store) floatSetting(key string, fallback float64) float64 {
	v, err := s.GetSetting(key)
	if err != nil {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// GrowthConfig reads the engine weights. Missing or malformed values
// fall back to the engine defaults.
func (s *Store) GrowthConfig() growth.Config {
	def := growth.DefaultWeights()
	return growth.Weights{
		BaseGrowthRate:    s.floatSetting(KeyBaseRate, def.BaseGrowthRate),
		TaskWeight:        s.floatSetting(KeyWeightTask, def.TaskWeight),
		HabitWeight:       s.floatSetting(KeyWeightHabit, def.HabitWeight),
		LearningWeight:    s.floatSetting(KeyWeightLearning, def.LearningWeight),
		ConsistencyWeight: s.floatSetting(KeyWeightConsistency, def.ConsistencyWeight),
	}.Config()
}

// SetGrowthConfig stores every weight; unset fields are stored as their
// defaults.
func (s *Store) SetGrowthConfig(cfg growth.Config) error {
	w := cfg.Resolve()
	values := map[string]float64{
		KeyBaseRate:          w.BaseGrowthRate,
		KeyWeightTask:        w.TaskWeight,
		KeyWeightHabit:       w.HabitWeight,
		KeyWeightLearning:    w.LearningWeight,
		KeyWeightConsistency: w.ConsistencyWeight,
	}
	for k, v := range values {
		if err := s.SetSetting(k, strconv.FormatFloat(v, 'f', -1, 64)); err != nil {
			return fmt.Errorf("set %s: %w", k, err)
		}
	}
	return nil
}

func (s *Store) CycleLength() int {
	v, err := s.GetSetting(KeyCycleLength)
	if err != nil {
		return defaultCycleLength
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return defaultCycleLength
	}
	return n
}

// CycleDay is the 1-based position of now's date in the current cycle.
func (s *Store) CycleDay(now time.Time) int {
	start := time.Time{}
	if v, err := s.GetSetting(KeyCycleStart); err == nil {
		start = growth.ParseDate(v)
	}
	if start.IsZero() {
		return 1
	}
	today := growth.ParseDate(growth.FormatDate(now.UTC()))
	days := int(today.Sub(start).Hours() / 24)
	if days < 0 {
		return 1
	}
	return days%s.CycleLength() + 1
}
