package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sadopc/compound/internal/growth"
)

var csvHeader = []string{
	"Date", "Cycle Day",
	"Tasks", "Total Tasks",
	"Habits", "Total Habits",
	"Learning", "Total Learning",
	"Completion %", "Missed Days", "Reflection",
}

func ToCSV(records []growth.DailyRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Date,
			strconv.Itoa(r.CycleDay),
			strconv.Itoa(r.TasksCompleted),
			strconv.Itoa(r.TotalTasks),
			strconv.Itoa(r.HabitsCompleted),
			strconv.Itoa(r.TotalHabits),
			strconv.Itoa(r.LearningItemsCompleted),
			strconv.Itoa(r.TotalLearningItems),
			formatPercent(completionPercent(r)),
			strconv.Itoa(r.MissedDays),
			r.Reflection,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func completionPercent(r growth.DailyRecord) float64 {
	return growth.DayCompletion(r) * 100
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64)
}
