package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/sadopc/compound/internal/growth"
)

// formatSnapshot renders the analytics snapshot as Metric/Value tables.
func formatSnapshot(w io.Writer, snap growth.Snapshot) error {
	rows := [][]string{
		{"Cycle day", strconv.Itoa(snap.ActiveDays)},
		{"Global", percent(snap.Global)},
		{"Planner", percent(snap.Planner)},
		{"Habits", percent(snap.Habits)},
		{"Knowledge debt", strconv.Itoa(snap.KnowledgeDebt)},
		{"Days tracked", strconv.Itoa(snap.TotalDaysTracked)},
		{"Growth", fmt.Sprintf("%.3fx (%+.1f%%)", snap.Growth.Total, snap.Growth.Percentage)},
		{"Daily rate", fmt.Sprintf("%+.2f%%", snap.Growth.Daily)},
		{"30-day projection", fmt.Sprintf("%.3fx (%+.1f%%)", snap.Growth.Projected, snap.Growth.ProjectedPercentage)},
		{"Trend", string(snap.Trends.Trend)},
	}
	if snap.Trends.Trend != growth.TrendInsufficientData {
		rows = append(rows,
			[]string{"Improvement", fmt.Sprintf("%+.1f%%", snap.Trends.Improvement)},
			[]string{"Consistency", fmt.Sprintf("%.0f%%", snap.Trends.Consistency)},
		)
	}
	rows = append(rows, []string{"Streak", fmt.Sprintf("%d (longest %d)", snap.Trends.Streaks.Current, snap.Trends.Streaks.Longest)})

	if err := renderTable(w, []any{"Metric", "Value"}, rows); err != nil {
		return err
	}

	if err := formatSummaries(w, snap.Summaries); err != nil {
		return err
	}

	for _, section := range []struct {
		title string
		items []string
	}{
		{"Strengths", snap.Insights.Strengths},
		{"To improve", snap.Insights.Improvements},
	} {
		if len(section.items) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", section.title)
		for _, it := range section.items {
			fmt.Fprintf(w, "  - %s\n", it)
		}
	}
	return nil
}

func formatSummaries(w io.Writer, sums growth.Summaries) error {
	fmt.Fprintln(w)
	var rows [][]string
	for _, p := range []struct {
		name string
		sum  *growth.PeriodSummary
	}{
		{"Last 7 days", sums.Week},
		{"Last 30 days", sums.Month},
		{"All time", sums.All},
	} {
		if p.sum == nil {
			rows = append(rows, []string{p.name, "-", "-", "-", "-", "-", "-"})
			continue
		}
		rows = append(rows, []string{
			p.name,
			strconv.Itoa(p.sum.Days),
			strconv.Itoa(p.sum.TasksCompleted),
			strconv.Itoa(p.sum.HabitsCompleted),
			strconv.Itoa(p.sum.LearningItemsCompleted),
			fmt.Sprintf("%.1f%%", p.sum.AverageCompletion),
			strconv.Itoa(p.sum.TotalScore),
		})
	}
	return renderTable(w, []any{"Period", "Days", "Tasks", "Habits", "Learning", "Avg", "Score"}, rows)
}

// formatRecords renders daily records oldest first.
func formatRecords(w io.Writer, records []growth.DailyRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Date,
			strconv.Itoa(r.CycleDay),
			ratio(r.TasksCompleted, r.TotalTasks),
			ratio(r.HabitsCompleted, r.TotalHabits),
			ratio(r.LearningItemsCompleted, r.TotalLearningItems),
			fmt.Sprintf("%.0f%%", growth.DayCompletion(r)*100),
			strconv.Itoa(r.MissedDays),
			truncate(r.Reflection, 40),
		})
	}
	return renderTable(w, []any{"Date", "Cycle", "Tasks", "Habits", "Learning", "Done", "Missed", "Reflection"}, rows)
}

func renderTable(w io.Writer, header []any, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(header...)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("build table: %w", err)
	}
	return table.Render()
}

func percent(n int) string {
	return strconv.Itoa(n) + "%"
}

func ratio(done, total int) string {
	return fmt.Sprintf("%d/%d", done, total)
}

// truncate shortens s to at most n runes on a single line.
func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
