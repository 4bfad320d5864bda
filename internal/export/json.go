package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sadopc/compound/internal/growth"
)

type recordExport struct {
	ExportedAt string      `json:"exported_at" yaml:"exported_at"`
	Count      int         `json:"count" yaml:"count"`
	Records    []recordRow `json:"records" yaml:"records"`
}

type recordRow struct {
	Date              string  `json:"date" yaml:"date"`
	CycleDay          int     `json:"cycle_day" yaml:"cycle_day"`
	TasksCompleted    int     `json:"tasks_completed" yaml:"tasks_completed"`
	TotalTasks        int     `json:"total_tasks" yaml:"total_tasks"`
	HabitsCompleted   int     `json:"habits_completed" yaml:"habits_completed"`
	TotalHabits       int     `json:"total_habits" yaml:"total_habits"`
	LearningCompleted int     `json:"learning_completed" yaml:"learning_completed"`
	TotalLearning     int     `json:"total_learning" yaml:"total_learning"`
	CompletionPercent float64 `json:"completion_percent" yaml:"completion_percent"`
	MissedDays        int     `json:"missed_days" yaml:"missed_days"`
	Reflection        string  `json:"reflection,omitempty" yaml:"reflection,omitempty"`
}

func buildExport(records []growth.DailyRecord) recordExport {
	export := recordExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(records),
		Records:    []recordRow{},
	}
	for _, r := range records {
		export.Records = append(export.Records, recordRow{
			Date:              r.Date,
			CycleDay:          r.CycleDay,
			TasksCompleted:    r.TasksCompleted,
			TotalTasks:        r.TotalTasks,
			HabitsCompleted:   r.HabitsCompleted,
			TotalHabits:       r.TotalHabits,
			LearningCompleted: r.LearningItemsCompleted,
			TotalLearning:     r.TotalLearningItems,
			CompletionPercent: completionPercent(r),
			MissedDays:        r.MissedDays,
			Reflection:        r.Reflection,
		})
	}
	return export
}

func ToJSON(records []growth.DailyRecord, path string) error {
	data, err := json.MarshalIndent(buildExport(records), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

// SnapshotJSON writes an analytics snapshot as indented JSON.
func SnapshotJSON(snap growth.Snapshot, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
