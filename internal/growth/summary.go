package growth

import "time"

const (
	weekWindow  = 7 * 24 * time.Hour
	monthWindow = 30 * 24 * time.Hour
)

// PeriodSummary aggregates a window of records. A nil *PeriodSummary means
// the window holds no records.
type PeriodSummary struct {
	Days                   int     `json:"days"`
	TasksCompleted         int     `json:"tasksCompleted"`
	HabitsCompleted        int     `json:"habitsCompleted"`
	LearningItemsCompleted int     `json:"learningItemsCompleted"`
	AverageCompletion      float64 `json:"averageCompletion"` // percent
	TotalScore             int     `json:"totalScore"`
}

// Summaries holds the fixed reporting windows.
type Summaries struct {
	Week  *PeriodSummary `json:"week"`
	Month *PeriodSummary `json:"month"`
	All   *PeriodSummary `json:"all"`
}

// PeriodSummaries is PeriodSummariesAt evaluated against the current time.
func PeriodSummaries(records []DailyRecord) Summaries {
	return PeriodSummariesAt(records, time.Now())
}

// PeriodSummariesAt summarizes the last 7 days, the last 30 days and the
// whole history relative to now.
func PeriodSummariesAt(records []DailyRecord, now time.Time) Summaries {
	return Summaries{
		Week:  Summarize(since(records, now.Add(-weekWindow))),
		Month: Summarize(since(records, now.Add(-monthWindow))),
		All:   Summarize(records),
	}
}

func since(records []DailyRecord, cutoff time.Time) []DailyRecord {
	var out []DailyRecord
	for _, r := range records {
		if !ParseDate(r.Date).Before(cutoff) {
			out = append(out, r)
		}
	}
	return out
}

// Summarize totals a subset of records, or returns nil when it is empty.
func Summarize(records []DailyRecord) *PeriodSummary {
	if len(records) == 0 {
		return nil
	}

	s := &PeriodSummary{Days: len(records)}
	for _, r := range records {
		s.TasksCompleted += r.TasksCompleted
		s.HabitsCompleted += r.HabitsCompleted
		s.LearningItemsCompleted += r.LearningItemsCompleted
	}
	s.AverageCompletion = avgCompletion(records) * 100
	s.TotalScore = s.TasksCompleted + s.HabitsCompleted + s.LearningItemsCompleted
	return s
}
