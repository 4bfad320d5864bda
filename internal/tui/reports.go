package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/compound/internal/growth"
	"github.com/sadopc/compound/internal/store"
)

type reportMode int

const (
	reportCompletion reportMode = iota
	reportProjection
)

const (
	completionWindow = 14 // days per completion page
	projectionDays   = 30
	projectionStep   = 3
)

type reportsModel struct {
	store   *store.Store
	records growth.RecordStore
	now     func() time.Time
	width   int
	height  int

	mode    reportMode
	offset  int // completion pages back from today (0 = current)
	history []growth.DailyRecord
	cfg     growth.Config

	chart barchart.Model
}

func newReportsModel(s *store.Store, records growth.RecordStore, now func() time.Time) reportsModel {
	return reportsModel{
		store:   s,
		records: records,
		now:     now,
		chart:   barchart.New(60, 12),
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

type reportsDataMsg struct {
	history []growth.DailyRecord
	cfg     growth.Config
	err     error
}

func (r reportsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		history, err := r.records.GetAllRecords()
		if err != nil {
			return reportsDataMsg{err: err}
		}
		return reportsDataMsg{history: history, cfg: r.store.GrowthConfig()}
	}
}

// dateRange is the half-open [from, to) window of the completion chart.
func (r reportsModel) dateRange() (time.Time, time.Time) {
	today := growth.ParseDate(growth.FormatDate(r.now().UTC()))
	end := today.AddDate(0, 0, 1-completionWindow*r.offset)
	return end.AddDate(0, 0, -completionWindow), end
}

func (r reportsModel) update(msg tea.Msg) (reportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsDataMsg:
		if msg.err != nil {
			return r, errorStatus("Load error", msg.err)
		}
		r.history = msg.history
		r.cfg = msg.cfg
		r.buildChart()
		return r, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			if r.mode == reportCompletion {
				r.offset++
				r.buildChart()
			}
		case key.Matches(msg, keys.Right):
			if r.mode == reportCompletion && r.offset > 0 {
				r.offset--
				r.buildChart()
			}
		case key.Matches(msg, keys.Tab):
			if r.mode == reportCompletion {
				r.mode = reportProjection
			} else {
				r.mode = reportCompletion
			}
			r.offset = 0
			r.buildChart()
		}
	}
	return r, nil
}

func (r *reportsModel) buildChart() {
	chartWidth := max(r.width-8, 20)
	chartHeight := 12
	if r.height > 40 {
		chartHeight = 16
	}

	r.chart = barchart.New(chartWidth, chartHeight)
	if r.mode == reportProjection {
		r.chart.PushAll(r.projectionBars())
	} else {
		r.chart.PushAll(r.completionBars())
	}
	r.chart.Draw()
}

func (r reportsModel) completionBars() []barchart.BarData {
	byDate := make(map[string]growth.DailyRecord, len(r.history))
	for _, rec := range r.history {
		byDate[rec.Date] = rec
	}

	from, to := r.dateRange()
	var bars []barchart.BarData
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		value := barchart.BarValue{Style: lipgloss.NewStyle().Foreground(colorSubtle)}
		if rec, ok := byDate[growth.FormatDate(d)]; ok {
			pct := growth.DayCompletion(rec) * 100
			value = barchart.BarValue{Name: "completion", Value: pct, Style: completionBarStyle(pct)}
		}
		bars = append(bars, barchart.BarData{
			Label:  d.Format("02"),
			Values: []barchart.BarValue{value},
		})
	}
	return bars
}

func completionBarStyle(pct float64) lipgloss.Style {
	switch {
	case pct >= 70:
		return lipgloss.NewStyle().Foreground(colorSuccess)
	case pct >= 40:
		return lipgloss.NewStyle().Foreground(colorWarning)
	}
	return lipgloss.NewStyle().Foreground(colorError)
}

// projectionBars extends the current multiplier by the average daily rate.
func (r reportsModel) projectionBars() []barchart.BarData {
	g := growth.ActualGrowth(r.history, r.cfg)
	curve := growth.ProjectionCurve(projectionDays, g.TotalGrowth, g.AverageDailyRate/100)

	style := lipgloss.NewStyle().Foreground(colorSecondary)
	var bars []barchart.BarData
	for day := 0; day < len(curve); day += projectionStep {
		bars = append(bars, barchart.BarData{
			Label:  fmt.Sprintf("+%d", day),
			Values: []barchart.BarValue{{Name: "growth", Value: curve[day], Style: style}},
		})
	}
	return bars
}

func (r reportsModel) view() string {
	w := r.width - 4

	completionTab := inactiveTabStyle.Render("Completion")
	projectionTab := inactiveTabStyle.Render("Projection")
	var rangeLabel string
	if r.mode == reportCompletion {
		completionTab = activeTabStyle.Render("Completion")
		from, to := r.dateRange()
		rangeLabel = fmt.Sprintf("%s to %s", from.Format("Jan 02"), to.AddDate(0, 0, -1).Format("Jan 02, 2006"))
	} else {
		projectionTab = activeTabStyle.Render("Projection")
		rangeLabel = fmt.Sprintf("next %d days at the current average rate", projectionDays)
	}
	modeTabs := lipgloss.JoinHorizontal(lipgloss.Bottom, completionTab, projectionTab)

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Reports"), "  ", modeTabs, "  ", mutedStyle.Render(rangeLabel),
	)

	nav := mutedStyle.Render("  ←/→: navigate  tab: switch chart")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "",
			r.chart.View(), "",
			r.renderSummaryTable(w), "",
			r.renderInsights(), "",
			nav,
		),
	)
}

func (r reportsModel) renderSummaryTable(w int) string {
	if len(r.history) == 0 {
		return mutedStyle.Render("  No days submitted yet")
	}

	sums := growth.PeriodSummariesAt(r.history, r.now())
	rows := []string{
		mutedStyle.Render(fmt.Sprintf("  %-10s %5s %7s %7s %9s %8s %7s", "Period", "Days", "Tasks", "Habits", "Learning", "Avg", "Score")),
		mutedStyle.Render("  " + strings.Repeat("─", min(w-6, 60))),
	}
	for _, p := range []struct {
		name string
		sum  *growth.PeriodSummary
	}{
		{"Last 7d", sums.Week},
		{"Last 30d", sums.Month},
		{"All time", sums.All},
	} {
		if p.sum == nil {
			rows = append(rows, fmt.Sprintf("  %-10s %s", p.name, mutedStyle.Render("no records")))
			continue
		}
		rows = append(rows, fmt.Sprintf("  %-10s %5d %7d %7d %9d %7.1f%% %7d",
			p.name, p.sum.Days, p.sum.TasksCompleted, p.sum.HabitsCompleted,
			p.sum.LearningItemsCompleted, p.sum.AverageCompletion, p.sum.TotalScore,
		))
	}
	return strings.Join(rows, "\n")
}

func (r reportsModel) renderInsights() string {
	trends := growth.AnalyzeTrendsAt(r.history, r.now())
	insights := growth.IdentifyInsights(r.history)

	rows := []string{
		subtitleStyle.Render("  Trend ") + trendLabel(trends.Trend) +
			mutedStyle.Render(fmt.Sprintf("  recent %.0f%%  overall %.0f%%", trends.RecentAverage, trends.OverallAverage)),
	}
	if len(insights.Strengths) > 0 {
		rows = append(rows, subtitleStyle.Render("  Strengths"), bulletList(insights.Strengths, successStyle))
	}
	if len(insights.Improvements) > 0 {
		rows = append(rows, subtitleStyle.Render("  To improve"), bulletList(insights.Improvements, warningStyle))
	}
	return strings.Join(rows, "\n")
}
