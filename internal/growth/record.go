// Package growth turns a history of daily activity records into a
// compound-growth score, trend and streak analysis, period summaries and
// qualitative insights.
//
// Every function is a pure transformation over an immutable snapshot of
// records. Nothing here performs I/O or keeps state between calls; callers
// that render on every frame should memoize the results themselves.
package growth

import (
	"sort"
	"time"
)

// DateLayout is the calendar key format of a DailyRecord.
const DateLayout = "2006-01-02"

// DailyRecord is one calendar day's completion snapshot.
// Invariant completed <= total is the caller's responsibility.
type DailyRecord struct {
	Date                   string `json:"date"`
	CycleDay               int    `json:"cycleDay"`
	TasksCompleted         int    `json:"tasksCompleted"`
	TotalTasks             int    `json:"totalTasks"`
	HabitsCompleted        int    `json:"habitsCompleted"`
	TotalHabits            int    `json:"totalHabits"`
	LearningItemsCompleted int    `json:"learningItemsCompleted"`
	TotalLearningItems     int    `json:"totalLearningItems"`
	MissedDays             int    `json:"missedDays"`
	Reflection             string `json:"reflection,omitempty"`
}

// RecordStore is the contract of the record store feeding the engine.
// Records are keyed by Date; SaveRecord replaces an existing day.
type RecordStore interface {
	GetAllRecords() ([]DailyRecord, error)
	SaveRecord(r DailyRecord) error
	DeleteRecord(date string) error
}

// ParseDate parses a record date as UTC midnight. Unparsable input yields
// the zero time; validation belongs to the ingestion boundary.
func ParseDate(s string) time.Time {
	t, _ := time.Parse(DateLayout, s)
	return t
}

// FormatDate renders t as a record date key.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// sortedByDate returns a copy of records ordered oldest first.
func sortedByDate(records []DailyRecord) []DailyRecord {
	out := make([]DailyRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return ParseDate(out[i].Date).Before(ParseDate(out[j].Date))
	})
	return out
}

// CompletionRate is completed / max(total, 1).
func CompletionRate(completed, total int) float64 {
	if total < 1 {
		total = 1
	}
	return float64(completed) / float64(total)
}

// DayCompletion averages a record's task and habit completion rates.
func DayCompletion(r DailyRecord) float64 {
	taskRate := CompletionRate(r.TasksCompleted, r.TotalTasks)
	habitRate := CompletionRate(r.HabitsCompleted, r.TotalHabits)
	return (taskRate + habitRate) / 2
}

func avgCompletion(records []DailyRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += DayCompletion(r)
	}
	return sum / float64(len(records))
}
