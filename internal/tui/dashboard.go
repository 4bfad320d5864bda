package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/hashstructure/v2"

	"github.com/sadopc/compound/internal/growth"
	"github.com/sadopc/compound/internal/store"
)

type dashboardModel struct {
	store   *store.Store
	records growth.RecordStore
	now     func() time.Time
	width   int
	height  int

	snapshot growth.Snapshot
	cacheKey uint64
	computed int // number of snapshot recomputations
	loaded   bool

	formActive bool
	form       *huh.Form
	reflection *string
	confirm    *bool
}

func newDashboardModel(s *store.Store, records growth.RecordStore, now func() time.Time) dashboardModel {
	reflection, confirm := "", true
	return dashboardModel{
		store:      s,
		records:    records,
		now:        now,
		reflection: &reflection,
		confirm:    &confirm,
	}
}

func (d dashboardModel) Init() tea.Cmd {
	return d.loadData()
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

type dashboardDataMsg struct {
	live    growth.LiveState
	history []growth.DailyRecord
	cfg     growth.Config
	at      time.Time
	err     error
}

func (d dashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		at := d.now()
		live, err := d.store.LiveState(at)
		if err != nil {
			return dashboardDataMsg{err: err}
		}
		history, err := d.records.GetAllRecords()
		if err != nil {
			return dashboardDataMsg{err: err}
		}
		return dashboardDataMsg{live: live, history: history, cfg: d.store.GrowthConfig(), at: at}
	}
}

// snapshotKey hashes every input of a snapshot, so an edit to any
// record, not just the latest, invalidates it.
func snapshotKey(msg dashboardDataMsg) (uint64, error) {
	return hashstructure.Hash(struct {
		Date    string
		History []growth.DailyRecord
		Live    growth.LiveState
		Weights growth.Weights
	}{growth.FormatDate(msg.at), msg.history, msg.live, msg.cfg.Resolve()}, hashstructure.FormatV2, nil)
}

// applyData recomputes the analytics only when the inputs changed. A key
// that cannot be hashed always recomputes.
func (d dashboardModel) applyData(msg dashboardDataMsg) dashboardModel {
	d.loaded = true
	k, err := snapshotKey(msg)
	if err == nil && d.computed > 0 && k == d.cacheKey {
		return d
	}
	d.snapshot = growth.CalculateEnhancedProductivityAt(msg.live, msg.history, msg.cfg, msg.at)
	d.cacheKey = k
	d.computed++
	return d
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if d.formActive && d.form != nil {
		return d.updateForm(msg)
	}

	switch msg := msg.(type) {
	case dashboardDataMsg:
		if msg.err != nil {
			return d, errorStatus("Load error", msg.err)
		}
		return d.applyData(msg), nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Submit) {
			return d.showSubmitForm()
		}
	}
	return d, nil
}

func (d dashboardModel) showSubmitForm() (dashboardModel, tea.Cmd) {
	*d.reflection = ""
	*d.confirm = true

	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Reflection").
				Description("What moved you forward today? What will you change?").
				CharLimit(2000).
				Value(d.reflection),
			huh.NewConfirm().
				Title("Submit today's record?").
				Affirmative("Submit").
				Negative("Cancel").
				Value(d.confirm),
		),
	).WithShowHelp(true).WithShowErrors(true)

	d.formActive = true
	return d, d.form.Init()
}

func (d dashboardModel) updateForm(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			d.formActive = false
			d.form = nil
			return d, nil
		}
	}

	form, cmd := d.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.form = f
	}

	if d.form.State == huh.StateCompleted {
		d.formActive = false
		if !*d.confirm {
			return d, nil
		}
		return d, d.submit(strings.TrimSpace(*d.reflection))
	}
	return d, cmd
}

func (d dashboardModel) submit(reflection string) tea.Cmd {
	return func() tea.Msg {
		rec, err := d.store.SubmitDay(d.records, d.now(), reflection)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Submit error: %v", err), isError: true}
		}
		return daySubmittedMsg{record: rec}
	}
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}
	w := d.width - 4

	if d.formActive && d.form != nil {
		title := titleStyle.Render("Submit Day")
		return activePanelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", d.form.View()),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		d.renderTodayPanel(w),
		d.renderGrowthPanel(w),
		d.renderMomentumPanel(w),
	)
}

func (d dashboardModel) renderTodayPanel(w int) string {
	s := d.snapshot
	title := titleStyle.Render("Today") + "  " + mutedStyle.Render(fmt.Sprintf("cycle day %d", s.ActiveDays))

	barWidth := min(max(w-30, 10), 40)
	row := func(label string, pct int) string {
		return fmt.Sprintf("  %-10s %s %s", label, progressBar(pct, barWidth), scoreStyle.Render(fmt.Sprintf("%3d%%", pct)))
	}

	debt := mutedStyle.Render("  No open questions")
	if s.KnowledgeDebt > 0 {
		debt = warningStyle.Render(fmt.Sprintf("  Knowledge debt: %d open question(s)", s.KnowledgeDebt))
	}

	rows := []string{
		title,
		"",
		row("Global", s.Global),
		row("Planner", s.Planner),
		row("Habits", s.Habits),
		"",
		debt,
		"",
		mutedStyle.Render("  s: submit day   2: planner"),
	}
	return activePanelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderGrowthPanel(w int) string {
	g := d.snapshot.Growth
	title := titleStyle.Render("Growth")
	if d.snapshot.TotalDaysTracked == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title, mutedStyle.Render("No days submitted yet. Submit today to start compounding."),
		))
	}

	line := fmt.Sprintf("  %s %s   daily %s   30-day projection %s %s",
		growthStyle.Render(formatMultiplier(g.Total)),
		mutedStyle.Render("("+formatSigned(g.Percentage)+")"),
		highlightStyle.Render(formatSigned(g.Daily)),
		growthStyle.Render(formatMultiplier(g.Projected)),
		mutedStyle.Render("("+formatSigned(g.ProjectedPercentage)+")"),
	)
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, title, "", line))
}

func (d dashboardModel) renderMomentumPanel(w int) string {
	t := d.snapshot.Trends
	title := titleStyle.Render("Momentum")

	rows := []string{
		title,
		"",
		fmt.Sprintf("  Trend        %s", trendLabel(t.Trend)),
	}
	if t.Trend != growth.TrendInsufficientData {
		rows = append(rows,
			fmt.Sprintf("  Change       %s", highlightStyle.Render(formatSigned(t.Improvement))),
			fmt.Sprintf("  Consistency  %s", highlightStyle.Render(fmt.Sprintf("%.0f%%", t.Consistency))),
			fmt.Sprintf("  Streak       %s %s",
				scoreStyle.Render(fmt.Sprintf("%d", t.Streaks.Current)),
				mutedStyle.Render(fmt.Sprintf("(longest %d)", t.Streaks.Longest))),
		)
	}
	rows = append(rows, fmt.Sprintf("  Tracked      %d day(s)", d.snapshot.TotalDaysTracked))
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
