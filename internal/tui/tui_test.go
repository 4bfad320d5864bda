package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/compound/internal/growth"
	"github.com/sadopc/compound/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func fixedNow() time.Time {
	return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ============================================================
// Helpers
// ============================================================

func TestProgressBar(t *testing.T) {
	tests := []struct {
		pct, width   int
		filled, rest int
	}{
		{50, 10, 5, 5},
		{0, 10, 0, 10},
		{100, 8, 8, 0},
		{150, 10, 10, 0},
		{-5, 10, 0, 10},
	}
	for _, tt := range tests {
		bar := progressBar(tt.pct, tt.width)
		if got := strings.Count(bar, "█"); got != tt.filled {
			t.Errorf("progressBar(%d, %d) filled = %d, want %d", tt.pct, tt.width, got, tt.filled)
		}
		if got := strings.Count(bar, "░"); got != tt.rest {
			t.Errorf("progressBar(%d, %d) empty = %d, want %d", tt.pct, tt.width, got, tt.rest)
		}
	}

	if progressBar(50, 0) != "" {
		t.Fatal("zero width bar should be empty")
	}
}

func TestFormatters(t *testing.T) {
	if got := formatMultiplier(1.15346); got != "1.153x" {
		t.Fatalf("formatMultiplier = %q", got)
	}
	if got := formatSigned(15.34); got != "+15.3%" {
		t.Fatalf("formatSigned = %q", got)
	}
	if got := formatSigned(-2); got != "-2.0%" {
		t.Fatalf("formatSigned = %q", got)
	}
}

func TestTrendLabel(t *testing.T) {
	tests := map[growth.Trend]string{
		growth.TrendImproving:        "improving",
		growth.TrendDeclining:        "declining",
		growth.TrendStable:           "stable",
		growth.TrendInsufficientData: "not enough data",
	}
	for trend, want := range tests {
		if got := trendLabel(trend); !strings.Contains(got, want) {
			t.Errorf("trendLabel(%q) = %q, want it to contain %q", trend, got, want)
		}
	}
}

func TestViewNames(t *testing.T) {
	expected := []string{"Dashboard", "Planner", "Reports", "Settings"}
	if len(viewNames) != len(expected) {
		t.Fatalf("expected %d view names, got %d", len(expected), len(viewNames))
	}
	for i, name := range expected {
		if viewNames[i] != name {
			t.Fatalf("viewNames[%d] = %q, want %q", i, viewNames[i], name)
		}
	}
	if viewDashboard != 0 || viewPlanner != 1 || viewReports != 2 || viewSettings != 3 {
		t.Fatal("view state constants out of order")
	}
}

// ============================================================
// Dashboard model
// ============================================================

func TestDashboardLoadScores(t *testing.T) {
	s := newTestStore(t)
	a, _ := s.CreateTask("write tests")
	s.CreateTask("review")
	s.ToggleTask(a.ID)
	s.CreateHabit("run")
	s.CreateQuery("how does WAL work?")

	d := newDashboardModel(s, s, fixedNow)
	d, _ = d.update(d.loadData()())

	if !d.loaded {
		t.Fatal("dashboard should be loaded")
	}
	snap := d.snapshot
	if snap.Planner != 50 || snap.Habits != 0 || snap.Global != 25 {
		t.Fatalf("scores = %d/%d/%d, want 50/0/25", snap.Planner, snap.Habits, snap.Global)
	}
	if snap.KnowledgeDebt != 1 {
		t.Fatalf("knowledge debt = %d, want 1", snap.KnowledgeDebt)
	}
}

func TestDashboardMemoizesSnapshot(t *testing.T) {
	s := newTestStore(t)
	s.CreateTask("one")

	d := newDashboardModel(s, s, fixedNow)
	d, _ = d.update(d.loadData()())
	d, _ = d.update(d.loadData()())
	if d.computed != 1 {
		t.Fatalf("unchanged inputs recomputed %d times, want 1", d.computed)
	}

	s.CreateTask("two")
	d, _ = d.update(d.loadData()())
	if d.computed != 2 {
		t.Fatalf("changed inputs should recompute, computed = %d", d.computed)
	}
}

func TestDashboardRecomputesOnOlderRecordEdit(t *testing.T) {
	s := newTestStore(t)
	s.SaveRecord(growth.DailyRecord{Date: "2024-03-13", Reflection: "short"})
	s.SaveRecord(growth.DailyRecord{Date: "2024-03-14", Reflection: "also short"})

	d := newDashboardModel(s, s, fixedNow)
	d, _ = d.update(d.loadData()())

	if err := s.UpdateReflection("2024-03-13", "went back and wrote a much longer note about the day"); err != nil {
		t.Fatal(err)
	}
	d, _ = d.update(d.loadData()())
	if d.computed != 2 {
		t.Fatalf("editing an older record should recompute, computed = %d", d.computed)
	}
}

func TestDashboardSubmitForm(t *testing.T) {
	s := newTestStore(t)
	d := newDashboardModel(s, s, fixedNow)

	d, _ = d.update(runeKey("s"))
	if !d.formActive {
		t.Fatal("s should open the submit form")
	}

	d, _ = d.update(tea.KeyMsg{Type: tea.KeyEsc})
	if d.formActive {
		t.Fatal("esc should close the form")
	}
}

func TestDashboardSubmit(t *testing.T) {
	s := newTestStore(t)
	task, _ := s.CreateTask("ship")
	s.ToggleTask(task.ID)

	d := newDashboardModel(s, s, fixedNow)
	msg := d.submit("good day")()

	submitted, ok := msg.(daySubmittedMsg)
	if !ok {
		t.Fatalf("expected daySubmittedMsg, got %T: %v", msg, msg)
	}
	if submitted.record.Date != "2024-03-15" || submitted.record.TasksCompleted != 1 {
		t.Fatalf("unexpected record: %+v", submitted.record)
	}

	records, _ := s.GetAllRecords()
	if len(records) != 1 || records[0].Reflection != "good day" {
		t.Fatalf("record not persisted: %+v", records)
	}
}

func TestDashboardView(t *testing.T) {
	s := newTestStore(t)
	d := newDashboardModel(s, s, fixedNow)
	d.setSize(120, 40)
	d, _ = d.update(d.loadData()())

	out := d.view()
	for _, want := range []string{"Today", "Growth", "Momentum", "No days submitted yet"} {
		if !strings.Contains(out, want) {
			t.Fatalf("dashboard view missing %q", want)
		}
	}

	d.setSize(10, 40)
	if d.view() != "Terminal too small" {
		t.Fatal("narrow terminal should show a notice")
	}
}

// ============================================================
// Planner model
// ============================================================

func loadPlanner(t *testing.T, p plannerModel) plannerModel {
	t.Helper()
	p, _ = p.update(p.refresh()())
	return p
}

func TestPlannerRefresh(t *testing.T) {
	s := newTestStore(t)
	s.CreateTask("task")
	s.CreateHabit("habit")
	s.CreateLearningItem("channels", "buffered vs unbuffered")
	q, _ := s.CreateQuery("why?")
	s.ResolveQuery(q.ID, "because")

	p := loadPlanner(t, newPlannerModel(s))
	for sec := sectionTasks; sec < sectionCount; sec++ {
		if len(p.rows[sec]) != 1 {
			t.Fatalf("section %s has %d rows, want 1", sectionNames[sec], len(p.rows[sec]))
		}
	}
	if p.rows[sectionLearning][0].detail != "buffered vs unbuffered" {
		t.Fatalf("learning notes not shown: %+v", p.rows[sectionLearning][0])
	}
	if !p.rows[sectionQueries][0].done {
		t.Fatal("resolved query should render as done")
	}
}

func TestPlannerSectionNavigation(t *testing.T) {
	s := newTestStore(t)
	p := newPlannerModel(s)

	p, _ = p.update(tea.KeyMsg{Type: tea.KeyRight})
	if p.section != sectionHabits {
		t.Fatalf("right: section = %d, want habits", p.section)
	}
	p, _ = p.update(tea.KeyMsg{Type: tea.KeyLeft})
	p, _ = p.update(tea.KeyMsg{Type: tea.KeyLeft})
	if p.section != sectionQueries {
		t.Fatalf("left should wrap to queries, got %d", p.section)
	}
}

func TestPlannerToggle(t *testing.T) {
	s := newTestStore(t)
	task, _ := s.CreateTask("task")
	p := loadPlanner(t, newPlannerModel(s))

	p, cmd := p.update(runeKey("x"))
	if cmd == nil {
		t.Fatal("toggle should trigger a refresh")
	}
	p, _ = p.update(cmd())

	got, _ := s.GetTask(task.ID)
	if !got.Done || !p.rows[sectionTasks][0].done {
		t.Fatal("task should be done after toggle")
	}
}

func TestPlannerArchiveAndDelete(t *testing.T) {
	s := newTestStore(t)
	s.CreateHabit("meditate")
	s.CreateQuery("what is a rune?")

	p := loadPlanner(t, newPlannerModel(s))
	p.section = sectionHabits
	p, cmd := p.update(runeKey("d"))
	p, _ = p.update(cmd())
	if len(p.rows[sectionHabits]) != 0 {
		t.Fatal("archived habit should disappear")
	}

	p.section = sectionQueries
	p, cmd = p.update(runeKey("d"))
	p, _ = p.update(cmd())
	queries, _ := s.ListQueries(true)
	if len(queries) != 0 || len(p.rows[sectionQueries]) != 0 {
		t.Fatal("query should be deleted")
	}
}

func TestPlannerResolveQuery(t *testing.T) {
	s := newTestStore(t)
	q, _ := s.CreateQuery("what is a rune?")

	p := loadPlanner(t, newPlannerModel(s))
	p.section = sectionQueries
	p, _ = p.update(tea.KeyMsg{Type: tea.KeyEnter})
	if !p.formActive || p.formType != "resolve" || p.resolvingID != q.ID {
		t.Fatalf("enter on a query should open the resolve form (type %q)", p.formType)
	}

	*p.formText = "  an int32 code point "
	if err := p.saveForm(); err != nil {
		t.Fatal(err)
	}
	got, _ := s.GetQuery(q.ID)
	if !got.Resolved || got.Answer != "an int32 code point" {
		t.Fatalf("unexpected query: %+v", got)
	}
}

func TestPlannerCreateItems(t *testing.T) {
	s := newTestStore(t)
	p := newPlannerModel(s)

	p.section = sectionLearning
	p, _ = p.update(runeKey("n"))
	if !p.formActive || p.formType != "new" {
		t.Fatal("n should open the new item form")
	}
	*p.formText = "select"
	*p.formNotes = "blocks until one case can proceed"
	if err := p.saveForm(); err != nil {
		t.Fatal(err)
	}

	items, _ := s.ListLearningItems(false)
	if len(items) != 1 || items[0].Term != "select" || items[0].Notes == "" {
		t.Fatalf("unexpected learning items: %+v", items)
	}

	p.section = sectionTasks
	*p.formText = "  "
	if err := p.saveForm(); err == nil {
		t.Fatal("blank task title should be rejected")
	}
}

func TestNotBlank(t *testing.T) {
	if notBlank("  ") == nil {
		t.Fatal("blank input should fail")
	}
	if notBlank("x") != nil {
		t.Fatal("non-blank input should pass")
	}
}

// ============================================================
// Reports model
// ============================================================

func TestReportsDateRange(t *testing.T) {
	s := newTestStore(t)
	r := newReportsModel(s, s, fixedNow)

	from, to := r.dateRange()
	if growth.FormatDate(from) != "2024-03-02" || growth.FormatDate(to) != "2024-03-16" {
		t.Fatalf("range = %s..%s", growth.FormatDate(from), growth.FormatDate(to))
	}

	r.offset = 1
	from, to = r.dateRange()
	if growth.FormatDate(from) != "2024-02-17" || growth.FormatDate(to) != "2024-03-02" {
		t.Fatalf("offset range = %s..%s", growth.FormatDate(from), growth.FormatDate(to))
	}
}

func TestReportsCompletionBars(t *testing.T) {
	s := newTestStore(t)
	s.SaveRecord(growth.DailyRecord{Date: "2024-03-15", TasksCompleted: 1, TotalTasks: 2, HabitsCompleted: 1, TotalHabits: 1})

	r := newReportsModel(s, s, fixedNow)
	r.setSize(100, 40)
	r, _ = r.update(r.refresh()())

	bars := r.completionBars()
	if len(bars) != completionWindow {
		t.Fatalf("expected %d bars, got %d", completionWindow, len(bars))
	}
	last := bars[len(bars)-1]
	if last.Label != "15" || last.Values[0].Value != 75 {
		t.Fatalf("last bar = %s/%v, want 15/75", last.Label, last.Values[0].Value)
	}
	if bars[0].Values[0].Value != 0 {
		t.Fatal("days without a record should be empty bars")
	}
}

func TestReportsProjectionBars(t *testing.T) {
	s := newTestStore(t)
	r := newReportsModel(s, s, fixedNow)

	bars := r.projectionBars()
	if len(bars) != projectionDays/projectionStep+1 {
		t.Fatalf("expected %d bars, got %d", projectionDays/projectionStep+1, len(bars))
	}
	want := growth.ActualGrowth(nil, growth.Config{}).TotalGrowth
	if bars[0].Values[0].Value != want || bars[0].Label != "+0" {
		t.Fatalf("first bar = %s/%v, want +0/%v", bars[0].Label, bars[0].Values[0].Value, want)
	}
}

func TestReportsModeSwitch(t *testing.T) {
	s := newTestStore(t)
	r := newReportsModel(s, s, fixedNow)
	r.setSize(100, 40)

	r, _ = r.update(tea.KeyMsg{Type: tea.KeyLeft})
	if r.offset != 1 {
		t.Fatalf("left should page back, offset = %d", r.offset)
	}

	r, _ = r.update(tea.KeyMsg{Type: tea.KeyTab})
	if r.mode != reportProjection || r.offset != 0 {
		t.Fatal("tab should switch to projection and reset the offset")
	}

	r, _ = r.update(tea.KeyMsg{Type: tea.KeyLeft})
	if r.offset != 0 {
		t.Fatal("projection chart does not page")
	}
}

func TestReportsView(t *testing.T) {
	s := newTestStore(t)
	r := newReportsModel(s, s, fixedNow)
	r.setSize(120, 40)
	r, _ = r.update(r.refresh()())
	if !strings.Contains(r.view(), "No days submitted yet") {
		t.Fatal("empty history should show a notice")
	}

	s.SaveRecord(growth.DailyRecord{Date: "2024-03-14", TasksCompleted: 2, TotalTasks: 2})
	r, _ = r.update(r.refresh()())
	out := r.view()
	for _, want := range []string{"Last 7d", "Last 30d", "All time", "Trend"} {
		if !strings.Contains(out, want) {
			t.Fatalf("reports view missing %q", want)
		}
	}
}

// ============================================================
// Settings model
// ============================================================

func TestSettingsValidators(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) error
		in   string
		ok   bool
	}{
		{"rate", validateRate, "1", true},
		{"rate negative", validateRate, "-1", false},
		{"rate text", validateRate, "abc", false},
		{"weight", validateWeight, " 0.4 ", true},
		{"weight too big", validateWeight, "1.5", false},
		{"cycle", validateCycleLength, "30", true},
		{"cycle zero", validateCycleLength, "0", false},
		{"cycle float", validateCycleLength, "2.5", false},
		{"date", validateDate, "2024-03-01", true},
		{"date bad", validateDate, "03/01/2024", false},
	}
	for _, tt := range tests {
		err := tt.fn(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("%s(%q): err = %v, want ok=%v", tt.name, tt.in, err, tt.ok)
		}
	}
}

func TestFormatSettingValue(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{store.KeyBaseRate, "0.01", "1% / day"},
		{store.KeyBaseRate, "0.015", "1.5% / day"},
		{store.KeyCycleLength, "30", "30 days"},
		{store.KeyWeightTask, "0.4", "0.4"},
	}
	for _, tt := range tests {
		if got := formatSettingValue(tt.key, tt.value); got != tt.want {
			t.Errorf("formatSettingValue(%q, %q) = %q, want %q", tt.key, tt.value, got, tt.want)
		}
	}
}

func TestSettingsSave(t *testing.T) {
	s := newTestStore(t)
	m := newSettingsModel(s)

	m, _ = m.update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.formActive {
		t.Fatal("enter should open the settings form")
	}
	if *m.baseRate != "1" || *m.cycleLength != "30" {
		t.Fatalf("form not prefilled: rate %q, cycle %q", *m.baseRate, *m.cycleLength)
	}

	*m.baseRate = "2"
	*m.taskWeight = "0.5"
	*m.cycleLength = "20"
	*m.cycleStart = "2024-03-01"
	if err := m.saveSettings(); err != nil {
		t.Fatal(err)
	}

	cfg := s.GrowthConfig().Resolve()
	if cfg.BaseGrowthRate != 0.02 || cfg.TaskWeight != 0.5 || cfg.HabitWeight != 0.3 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if s.CycleLength() != 20 || s.CycleDay(fixedNow()) != 15 {
		t.Fatalf("cycle = %d/%d, want length 20 day 15", s.CycleLength(), s.CycleDay(fixedNow()))
	}
}

func TestSettingsViewWarnsOnWeightSum(t *testing.T) {
	s := newTestStore(t)
	s.SetSetting(store.KeyWeightTask, "0.9")

	m := newSettingsModel(s)
	m.setSize(120, 40)
	m, _ = m.update(m.refresh()())

	out := m.view()
	if !strings.Contains(out, "Base growth rate") {
		t.Fatal("settings should use readable labels")
	}
	if !strings.Contains(out, "Weights sum to 1.50") {
		t.Fatal("expected a weight sum warning")
	}
}

// ============================================================
// App model
// ============================================================

func newTestApp(t *testing.T) App {
	t.Helper()
	s := newTestStore(t)
	app := newApp(s, s, fixedNow, t.TempDir())
	app.width = 120
	app.height = 40
	return app
}

func TestNewApp(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s, s)

	if app.active != viewDashboard {
		t.Fatal("default view should be dashboard")
	}
	if app.showHelp || app.export.open {
		t.Fatal("help and export picker should be hidden by default")
	}
	if app.isFormActive() {
		t.Fatal("no forms should be active initially")
	}
}

func TestAppViewStates(t *testing.T) {
	app := newTestApp(t)

	for v := range viewNames {
		app.active = viewState(v)
		if app.View() == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppTabSwitching(t *testing.T) {
	app := newTestApp(t)

	model, cmd := app.Update(runeKey("2"))
	app = model.(App)
	if app.active != viewPlanner || cmd == nil {
		t.Fatal("2 should switch to the planner and refresh it")
	}

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(App)
	if app.active != viewReports {
		t.Fatal("tab should advance to reports")
	}

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(App)
	if app.active != viewReports || app.reports.mode != reportProjection {
		t.Fatal("tab on reports should flip the chart, not the view")
	}
}

func TestAppFormCapturesKeys(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(runeKey("s"))
	app = model.(App)
	if !app.isFormActive() {
		t.Fatal("s should open the submit form")
	}

	model, _ = app.Update(runeKey("2"))
	app = model.(App)
	if app.active != viewDashboard {
		t.Fatal("tab keys should go to the active form")
	}
}

func TestAppHeaderAndFooter(t *testing.T) {
	app := newTestApp(t)

	header := app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}

	app.status = "test status"
	if !strings.Contains(app.renderFooter(), "test status") {
		t.Fatal("footer should contain status message")
	}
}

func TestAppLoadingState(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s, s)
	if got := app.View(); got != "Loading..." {
		t.Fatalf("expected 'Loading...', got %q", got)
	}
}

func TestAppDaySubmitted(t *testing.T) {
	app := newTestApp(t)

	model, cmd := app.Update(daySubmittedMsg{record: growth.DailyRecord{Date: "2024-03-15", CycleDay: 3, TasksCompleted: 1, TotalTasks: 1}})
	app = model.(App)
	if !strings.Contains(app.status, "Day 3 submitted") {
		t.Fatalf("status = %q", app.status)
	}
	if cmd == nil {
		t.Fatal("submission should refresh the views")
	}
}

func TestAppExport(t *testing.T) {
	app := newTestApp(t)
	app.store.SaveRecord(growth.DailyRecord{Date: "2024-03-14", TasksCompleted: 1, TotalTasks: 1})

	for i, ext := range []string{".csv", ".json", ".yaml"} {
		msg := exportRecords(app.records, exportFormats[i], app.export.dir, fixedNow())()
		done, ok := msg.(exportDoneMsg)
		if !ok {
			t.Fatalf("format %d: expected exportDoneMsg, got %v", i, msg)
		}
		want := filepath.Join(app.export.dir, "compound-export-2024-03-15"+ext)
		if done.path != want {
			t.Fatalf("path = %q, want %q", done.path, want)
		}
		if _, err := os.Stat(done.path); err != nil {
			t.Fatalf("export file missing: %v", err)
		}
	}
}

func TestAppExportPicker(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(runeKey("e"))
	app = model.(App)
	if !app.export.open {
		t.Fatal("e should open the export picker")
	}

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.(App).Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.(App).Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(App)
	if app.export.cursor != len(exportFormats)-1 {
		t.Fatalf("cursor = %d, should stop at the last format", app.export.cursor)
	}

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(App)
	if app.export.open || cmd == nil {
		t.Fatal("enter should close the picker and start the export")
	}
}

// ============================================================
// Key bindings
// ============================================================

func TestKeyMapHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("full help should have groups")
	}
	for i, g := range groups {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

// ============================================================
// Styles
// ============================================================

func TestStylesRender(t *testing.T) {
	styles := []struct {
		name string
		fn   func() string
	}{
		{"activeTab", func() string { return activeTabStyle.Render("test") }},
		{"inactiveTab", func() string { return inactiveTabStyle.Render("test") }},
		{"panel", func() string { return panelStyle.Render("test") }},
		{"activePanel", func() string { return activePanelStyle.Render("test") }},
		{"score", func() string { return scoreStyle.Render("test") }},
		{"growth", func() string { return growthStyle.Render("test") }},
		{"doneItem", func() string { return doneItemStyle.Render("test") }},
		{"title", func() string { return titleStyle.Render("test") }},
		{"subtitle", func() string { return subtitleStyle.Render("test") }},
		{"success", func() string { return successStyle.Render("test") }},
		{"warning", func() string { return warningStyle.Render("test") }},
		{"error", func() string { return errorStyle.Render("test") }},
		{"muted", func() string { return mutedStyle.Render("test") }},
		{"highlight", func() string { return highlightStyle.Render("test") }},
		{"header", func() string { return headerStyle.Render("test") }},
		{"footer", func() string { return footerStyle.Render("test") }},
		{"selectedItem", func() string { return selectedItemStyle.Render("test") }},
		{"normalItem", func() string { return normalItemStyle.Render("test") }},
	}

	for _, s := range styles {
		if s.fn() == "" {
			t.Fatalf("style %q rendered empty", s.name)
		}
	}
}
