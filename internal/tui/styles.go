package tui

import "github.com/charmbracelet/lipgloss"

// Palette. Greens carry growth, amber carries debt and warnings.
var (
	colorPrimary   = lipgloss.Color("#5FAF87")
	colorSecondary = lipgloss.Color("#87AFD7")
	colorMuted     = lipgloss.Color("#6C7086")
	colorSuccess   = lipgloss.Color("#A6E3A1")
	colorWarning   = lipgloss.Color("#F9E2AF")
	colorError     = lipgloss.Color("#F38BA8")
	colorFg        = lipgloss.Color("#CDD6F4")
	colorSubtle    = lipgloss.Color("#45475A")
	colorHighlight = lipgloss.Color("#FAB387")
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func bordered(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Padding(1, 2)
}

var (
	activeTabStyle = fg(colorPrimary).Bold(true).
			Border(lipgloss.ThickBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2)
	inactiveTabStyle = fg(colorMuted).Padding(0, 2)

	panelStyle       = bordered(colorSubtle)
	activePanelStyle = bordered(colorPrimary)

	scoreStyle  = fg(colorPrimary).Bold(true)
	growthStyle = fg(colorSuccess).Bold(true)

	titleStyle     = fg(colorFg).Bold(true).Underline(true)
	subtitleStyle  = fg(colorSecondary)
	successStyle   = fg(colorSuccess)
	warningStyle   = fg(colorWarning)
	errorStyle     = fg(colorError).Bold(true)
	mutedStyle     = fg(colorMuted)
	highlightStyle = fg(colorHighlight)

	headerStyle = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = mutedStyle.Padding(0, 1)

	selectedItemStyle = fg(colorHighlight).Bold(true)
	normalItemStyle   = fg(colorFg)
	doneItemStyle     = mutedStyle.Strikethrough(true)
)
