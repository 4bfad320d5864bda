package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/compound/internal/growth"
	"github.com/sadopc/compound/internal/store"
)

var settingLabels = map[string]string{
	store.KeyBaseRate:          "Base growth rate",
	store.KeyWeightTask:        "Task weight",
	store.KeyWeightHabit:       "Habit weight",
	store.KeyWeightLearning:    "Learning weight",
	store.KeyWeightConsistency: "Consistency weight",
	store.KeyCycleLength:       "Cycle length",
	store.KeyCycleStart:        "Cycle start",
}

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	settings   []store.Setting
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	baseRate          *string
	taskWeight        *string
	habitWeight       *string
	learningWeight    *string
	consistencyWeight *string
	cycleLength       *string
	cycleStart        *string
}

func newSettingsModel(s *store.Store) settingsModel {
	br, tw, hw, lw := "", "", "", ""
	cw, cl, cs := "", "", ""
	return settingsModel{
		store:             s,
		baseRate:          &br,
		taskWeight:        &tw,
		habitWeight:       &hw,
		learningWeight:    &lw,
		consistencyWeight: &cw,
		cycleLength:       &cl,
		cycleStart:        &cs,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings []store.Setting
	err      error
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, err := s.store.GetAllSettings()
		return settingsDataMsg{settings: settings, err: err}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		if msg.err != nil {
			return s, errorStatus("Load error", msg.err)
		}
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	cfg := s.store.GrowthConfig().Resolve()
	*s.baseRate = formatPercentValue(cfg.BaseGrowthRate)
	*s.taskWeight = formatFloat(cfg.TaskWeight)
	*s.habitWeight = formatFloat(cfg.HabitWeight)
	*s.learningWeight = formatFloat(cfg.LearningWeight)
	*s.consistencyWeight = formatFloat(cfg.ConsistencyWeight)
	*s.cycleLength = strconv.Itoa(s.store.CycleLength())
	*s.cycleStart = s.getVal(store.KeyCycleStart, "")

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Base growth rate (% per day)").Value(s.baseRate).Validate(validateRate),
			huh.NewInput().Title("Task weight").Value(s.taskWeight).Validate(validateWeight),
			huh.NewInput().Title("Habit weight").Value(s.habitWeight).Validate(validateWeight),
			huh.NewInput().Title("Learning weight").Value(s.learningWeight).Validate(validateWeight),
			huh.NewInput().Title("Consistency weight").Value(s.consistencyWeight).Validate(validateWeight),
		).Title("Growth"),
		huh.NewGroup(
			huh.NewInput().Title("Cycle length (days)").Value(s.cycleLength).Validate(validateCycleLength),
			huh.NewInput().Title("Cycle start (YYYY-MM-DD)").Value(s.cycleStart).Validate(validateDate),
		).Title("Cycle"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		if err := s.saveSettings(); err != nil {
			return s, errorStatus("Save error", err)
		}
		return s, tea.Batch(s.refresh(), func() tea.Msg {
			return statusMsg{text: "Settings saved"}
		})
	}

	return s, cmd
}

func (s settingsModel) saveSettings() error {
	rate, _ := strconv.ParseFloat(strings.TrimSpace(*s.baseRate), 64)
	cfg := growth.NewConfig(
		growth.WithBaseRate(rate/100),
		growth.WithTaskWeight(parseFloat(*s.taskWeight)),
		growth.WithHabitWeight(parseFloat(*s.habitWeight)),
		growth.WithLearningWeight(parseFloat(*s.learningWeight)),
		growth.WithConsistencyWeight(parseFloat(*s.consistencyWeight)),
	)
	if err := s.store.SetGrowthConfig(cfg); err != nil {
		return err
	}
	if err := s.store.SetSetting(store.KeyCycleLength, strings.TrimSpace(*s.cycleLength)); err != nil {
		return err
	}
	return s.store.SetSetting(store.KeyCycleStart, strings.TrimSpace(*s.cycleStart))
}

func (s settingsModel) getVal(k, fallback string) string {
	v, err := s.store.GetSetting(k)
	if err != nil {
		return fallback
	}
	return v
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		formView := s.form.View()
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", formView),
		)
	}

	title := titleStyle.Render("Settings")
	hint := mutedStyle.Render("Press enter to edit settings")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for _, setting := range s.settings {
		name, ok := settingLabels[setting.Key]
		if !ok {
			name = setting.Key
		}
		label := lipgloss.NewStyle().Width(24).Render(name)
		value := highlightStyle.Render(formatSettingValue(setting.Key, setting.Value))
		rows = append(rows, fmt.Sprintf("  %s %s", label, value))
	}

	cfg := s.store.GrowthConfig().Resolve()
	if sum := cfg.TaskWeight + cfg.HabitWeight + cfg.LearningWeight + cfg.ConsistencyWeight; sum < 0.999 || sum > 1.001 {
		rows = append(rows, "", warningStyle.Render(fmt.Sprintf("  Weights sum to %.2f; scores are usually calibrated for 1.00", sum)))
	}

	rows = append(rows, "")
	rows = append(rows, hint)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func formatSettingValue(k, v string) string {
	switch k {
	case store.KeyBaseRate:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return formatPercentValue(f) + "% / day"
		}
	case store.KeyCycleLength:
		return v + " days"
	}
	return v
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatPercentValue renders a fraction as a percentage without float noise.
func formatPercentValue(f float64) string {
	return strconv.FormatFloat(f*100, 'f', -1, 32)
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func validateRate(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if f < 0 || f > 100 {
		return fmt.Errorf("must be between 0 and 100")
	}
	return nil
}

func validateWeight(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if f < 0 || f > 1 {
		return fmt.Errorf("must be between 0 and 1")
	}
	return nil
}

func validateCycleLength(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fmt.Errorf("must be a whole number of days")
	}
	return nil
}

func validateDate(s string) error {
	if growth.ParseDate(strings.TrimSpace(s)).IsZero() {
		return fmt.Errorf("must be a date like 2024-03-01")
	}
	return nil
}
