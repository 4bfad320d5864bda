package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/compound/internal/growth"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewPlanner
	viewReports
	viewSettings
)

var viewNames = []string{"Dashboard", "Planner", "Reports", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type daySubmittedMsg struct {
	record growth.DailyRecord
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func errorStatus(prefix string, err error) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("%s: %v", prefix, err), isError: true}
	}
}

// progressBar renders pct (0-100) as a fixed-width bar.
func progressBar(pct, width int) string {
	if width < 1 {
		return ""
	}
	pct = min(max(pct, 0), 100)
	filled := pct * width / 100
	style := successStyle
	switch {
	case pct < 50:
		style = errorStyle
	case pct < 80:
		style = warningStyle
	}
	return style.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", width-filled))
}

func formatMultiplier(x float64) string {
	return fmt.Sprintf("%.3fx", x)
}

func formatSigned(pct float64) string {
	return fmt.Sprintf("%+.1f%%", pct)
}

func trendLabel(t growth.Trend) string {
	switch t {
	case growth.TrendImproving:
		return successStyle.Render("▲ improving")
	case growth.TrendDeclining:
		return errorStyle.Render("▼ declining")
	case growth.TrendStable:
		return highlightStyle.Render("● stable")
	}
	return mutedStyle.Render("… not enough data")
}

func bulletList(items []string, style lipgloss.Style) string {
	var rows []string
	for _, it := range items {
		rows = append(rows, style.Render("  • ")+it)
	}
	return strings.Join(rows, "\n")
}
