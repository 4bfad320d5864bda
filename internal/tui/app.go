package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/sadopc/compound/internal/growth"
	"github.com/sadopc/compound/internal/store"
)

// App is the root Bubble Tea model.
type App struct {
	store   *store.Store
	records growth.RecordStore
	now     func() time.Time
	width   int
	height  int

	active   viewState
	showHelp bool
	export   exportPicker

	dashboard dashboardModel
	planner   plannerModel
	reports   reportsModel
	settings  settingsModel

	help   help.Model
	status string
}

// NewApp builds the TUI over the planner database and the record store
// daily submissions go to. Exports land in the home directory.
func NewApp(s *store.Store, records growth.RecordStore) App {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return newApp(s, records, time.Now, home)
}

func newApp(s *store.Store, records growth.RecordStore, now func() time.Time, exportDir string) App {
	return App{
		store:     s,
		records:   records,
		now:       now,
		active:    viewDashboard,
		export:    exportPicker{dir: exportDir},
		dashboard: newDashboardModel(s, records, now),
		planner:   newPlannerModel(s),
		reports:   newReportsModel(s, records, now),
		settings:  newSettingsModel(s),
		help:      help.New(),
	}
}

func (a App) Init() tea.Cmd {
	return a.dashboard.Init()
}

var tabKeys = []key.Binding{keys.Tab1, keys.Tab2, keys.Tab3, keys.Tab4}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if a.export.open {
			var cmd tea.Cmd
			a.export, cmd = a.export.update(msg, a.records, a.now())
			return a, cmd
		}
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}
		if next, cmd, ok := a.handleGlobalKey(msg); ok {
			return next, cmd
		}
		return a.updateActiveView(msg)

	case statusMsg:
		a.status = msg.text
		if msg.isError {
			log.Error().Msg(msg.text)
		}
		return a, nil

	case daySubmittedMsg:
		a.status = fmt.Sprintf("Day %d submitted (%.0f%% complete)", msg.record.CycleDay, growth.DayCompletion(msg.record)*100)
		return a, tea.Batch(a.dashboard.loadData(), a.planner.refresh(), a.reports.refresh())

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		return a, nil

	case dashboardDataMsg, plannerDataMsg, reportsDataMsg, settingsDataMsg:
		return a.routeData(msg)
	}

	return a.updateActiveView(msg)
}

func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	a.help.Width = w
	body := h - 4 // header + footer
	a.dashboard.setSize(w, body)
	a.planner.setSize(w, body)
	a.reports.setSize(w, body)
	a.settings.setSize(w, body)
}

// handleGlobalKey processes keys that apply in every view. ok is false
// when the key belongs to the active view.
func (a App) handleGlobalKey(msg tea.KeyMsg) (App, tea.Cmd, bool) {
	for i, b := range tabKeys {
		if key.Matches(msg, b) {
			next, cmd := a.switchView(viewState(i))
			return next, cmd, true
		}
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit, true
	case key.Matches(msg, keys.Help):
		a.showHelp = !a.showHelp
		a.help.ShowAll = a.showHelp
		return a, nil, true
	case key.Matches(msg, keys.Export):
		a.export.open = true
		a.export.cursor = 0
		return a, nil, true
	case key.Matches(msg, keys.Tab) && a.active != viewReports:
		// Reports keeps tab for its chart toggle.
		next, cmd := a.switchView((a.active + 1) % viewState(len(viewNames)))
		return next, cmd, true
	}
	return a, nil, false
}

// routeData delivers a loaded-data message to the view that asked for it,
// whichever view is active now.
func (a App) routeData(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.(type) {
	case dashboardDataMsg:
		a.dashboard, cmd = a.dashboard.update(msg)
	case plannerDataMsg:
		a.planner, cmd = a.planner.update(msg)
	case reportsDataMsg:
		a.reports, cmd = a.reports.update(msg)
	case settingsDataMsg:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) switchView(v viewState) (App, tea.Cmd) {
	a.active = v
	return a, a.refreshCurrentView()
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.active {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewPlanner:
		a.planner, cmd = a.planner.update(msg)
	case viewReports:
		a.reports, cmd = a.reports.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	return (a.active == viewDashboard && a.dashboard.formActive) ||
		(a.active == viewPlanner && a.planner.formActive) ||
		(a.active == viewSettings && a.settings.formActive)
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.active {
	case viewPlanner:
		return a.planner.refresh()
	case viewReports:
		return a.reports.refresh()
	case viewSettings:
		return a.settings.refresh()
	}
	return a.dashboard.loadData()
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header, footer := a.renderHeader(), a.renderFooter()
	bodyHeight := max(a.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)

	var body string
	switch {
	case a.export.open:
		body = a.export.view(a.width - 4)
	case a.active == viewPlanner:
		body = a.planner.view()
	case a.active == viewReports:
		body = a.reports.view()
	case a.active == viewSettings:
		body = a.settings.view()
	default:
		body = a.dashboard.view()
	}

	body = lipgloss.NewStyle().Width(a.width).Height(bodyHeight).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (a App) renderHeader() string {
	tabs := make([]string, len(viewNames))
	for i, name := range viewNames {
		style := inactiveTabStyle
		if viewState(i) == a.active {
			style = activeTabStyle
		}
		tabs[i] = style.Render(name)
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	brand := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("compound")
	gap := max(a.width-lipgloss.Width(brand)-lipgloss.Width(tabRow)-4, 1)

	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Bottom,
		brand, lipgloss.NewStyle().Width(gap).Render(""), tabRow,
	))
}

func (a App) renderFooter() string {
	helpLine := footerStyle.Render(a.help.View(keys))
	if a.status == "" {
		return helpLine
	}

	status := mutedStyle.Render(" " + a.status)
	gap := max(a.width-lipgloss.Width(helpLine)-lipgloss.Width(status)-2, 1)
	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		helpLine, lipgloss.NewStyle().Width(gap).Render(""), status,
	)
}
