package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/compound/internal/store"
)

type plannerSection int

const (
	sectionTasks plannerSection = iota
	sectionHabits
	sectionLearning
	sectionQueries
	sectionCount
)

var sectionNames = []string{"Tasks", "Habits", "Learning", "Queries"}

// plannerRow is the display form of a task, habit, learning item or query.
type plannerRow struct {
	id     int64
	label  string
	detail string
	done   bool
}

type plannerModel struct {
	store  *store.Store
	width  int
	height int

	section plannerSection
	rows    [sectionCount][]plannerRow
	cursor  [sectionCount]int

	formActive bool
	form       *huh.Form
	formType   string // "new" or "resolve"

	// Form field pointers (survive value copies)
	formText  *string
	formNotes *string

	resolvingID int64
}

func newPlannerModel(s *store.Store) plannerModel {
	text, notes := "", ""
	return plannerModel{
		store:     s,
		formText:  &text,
		formNotes: &notes,
	}
}

func (p *plannerModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

type plannerDataMsg struct {
	rows [sectionCount][]plannerRow
	err  error
}

func (p plannerModel) refresh() tea.Cmd {
	return func() tea.Msg {
		var msg plannerDataMsg

		tasks, err := p.store.ListTasks(false)
		if err != nil {
			return plannerDataMsg{err: err}
		}
		for _, t := range tasks {
			msg.rows[sectionTasks] = append(msg.rows[sectionTasks], plannerRow{id: t.ID, label: t.Title, done: t.Done})
		}

		habits, err := p.store.ListHabits(false)
		if err != nil {
			return plannerDataMsg{err: err}
		}
		for _, h := range habits {
			msg.rows[sectionHabits] = append(msg.rows[sectionHabits], plannerRow{id: h.ID, label: h.Name, done: h.Done})
		}

		items, err := p.store.ListLearningItems(false)
		if err != nil {
			return plannerDataMsg{err: err}
		}
		for _, it := range items {
			msg.rows[sectionLearning] = append(msg.rows[sectionLearning], plannerRow{id: it.ID, label: it.Term, detail: it.Notes, done: it.Done})
		}

		queries, err := p.store.ListQueries(true)
		if err != nil {
			return plannerDataMsg{err: err}
		}
		for _, q := range queries {
			msg.rows[sectionQueries] = append(msg.rows[sectionQueries], plannerRow{id: q.ID, label: q.Question, detail: q.Answer, done: q.Resolved})
		}
		return msg
	}
}

func (p plannerModel) update(msg tea.Msg) (plannerModel, tea.Cmd) {
	if p.formActive && p.form != nil {
		return p.updateForm(msg)
	}

	switch msg := msg.(type) {
	case plannerDataMsg:
		if msg.err != nil {
			return p, errorStatus("Load error", msg.err)
		}
		p.rows = msg.rows
		for s := range p.rows {
			if p.cursor[s] >= len(p.rows[s]) {
				p.cursor[s] = max(0, len(p.rows[s])-1)
			}
		}
		return p, nil

	case tea.KeyMsg:
		return p.updateList(msg)
	}
	return p, nil
}

func (p plannerModel) selected() (plannerRow, bool) {
	rows := p.rows[p.section]
	if len(rows) == 0 {
		return plannerRow{}, false
	}
	return rows[p.cursor[p.section]], true
}

func (p plannerModel) updateList(msg tea.KeyMsg) (plannerModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Left):
		p.section = (p.section + sectionCount - 1) % sectionCount
	case key.Matches(msg, keys.Right):
		p.section = (p.section + 1) % sectionCount
	case key.Matches(msg, keys.Up):
		if p.cursor[p.section] > 0 {
			p.cursor[p.section]--
		}
	case key.Matches(msg, keys.Down):
		if p.cursor[p.section] < len(p.rows[p.section])-1 {
			p.cursor[p.section]++
		}
	case key.Matches(msg, keys.New):
		return p.showNewForm()
	case key.Matches(msg, keys.Toggle), key.Matches(msg, keys.Enter):
		row, ok := p.selected()
		if !ok {
			return p, nil
		}
		if p.section == sectionQueries {
			if row.done {
				return p, nil
			}
			return p.showResolveForm(row)
		}
		return p, p.toggle(row.id)
	case key.Matches(msg, keys.Delete):
		row, ok := p.selected()
		if !ok {
			return p, nil
		}
		return p, p.remove(row.id)
	}
	return p, nil
}

func (p plannerModel) toggle(id int64) tea.Cmd {
	var err error
	switch p.section {
	case sectionTasks:
		_, err = p.store.ToggleTask(id)
	case sectionHabits:
		_, err = p.store.ToggleHabit(id)
	case sectionLearning:
		_, err = p.store.ToggleLearningItem(id)
	}
	if err != nil {
		return errorStatus("Toggle error", err)
	}
	return p.refresh()
}

func (p plannerModel) remove(id int64) tea.Cmd {
	var err error
	switch p.section {
	case sectionTasks:
		err = p.store.ArchiveTask(id)
	case sectionHabits:
		err = p.store.ArchiveHabit(id)
	case sectionLearning:
		err = p.store.ArchiveLearningItem(id)
	case sectionQueries:
		err = p.store.DeleteQuery(id)
	}
	if err != nil {
		return errorStatus("Delete error", err)
	}
	return p.refresh()
}

func (p plannerModel) showNewForm() (plannerModel, tea.Cmd) {
	*p.formText = ""
	*p.formNotes = ""
	p.formType = "new"

	titles := [sectionCount]string{"Task", "Habit name", "Term", "Question"}
	fields := []huh.Field{
		huh.NewInput().Title(titles[p.section]).Value(p.formText).Validate(notBlank),
	}
	if p.section == sectionLearning {
		fields = append(fields, huh.NewText().Title("Notes").Value(p.formNotes))
	}

	p.form = huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(true).WithShowErrors(true)
	p.formActive = true
	return p, p.form.Init()
}

func (p plannerModel) showResolveForm(row plannerRow) (plannerModel, tea.Cmd) {
	*p.formText = ""
	p.formType = "resolve"
	p.resolvingID = row.id

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().Title("Answer").Description(row.label).Value(p.formText),
		),
	).WithShowHelp(true).WithShowErrors(true)

	p.formActive = true
	return p, p.form.Init()
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func (p plannerModel) updateForm(msg tea.Msg) (plannerModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			p.formActive = false
			p.form = nil
			return p, nil
		}
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State == huh.StateCompleted {
		p.formActive = false
		if err := p.saveForm(); err != nil {
			return p, errorStatus("Save error", err)
		}
		return p, p.refresh()
	}

	return p, cmd
}

func (p plannerModel) saveForm() error {
	text := strings.TrimSpace(*p.formText)
	if p.formType == "resolve" {
		return p.store.ResolveQuery(p.resolvingID, text)
	}

	var err error
	switch p.section {
	case sectionTasks:
		_, err = p.store.CreateTask(text)
	case sectionHabits:
		_, err = p.store.CreateHabit(text)
	case sectionLearning:
		_, err = p.store.CreateLearningItem(text, strings.TrimSpace(*p.formNotes))
	case sectionQueries:
		_, err = p.store.CreateQuery(text)
	}
	return err
}

func (p plannerModel) view() string {
	w := p.width - 4
	if p.formActive && p.form != nil {
		title := "New " + strings.TrimSuffix(sectionNames[p.section], "s")
		if p.formType == "resolve" {
			title = "Resolve Query"
		}
		content := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), "", p.form.View())
		return panelStyle.Width(w).Render(content)
	}

	var tabs []string
	for i, name := range sectionNames {
		label := fmt.Sprintf("%s (%d)", name, len(p.rows[i]))
		if plannerSection(i) == p.section {
			tabs = append(tabs, highlightStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, mutedStyle.Render(" "+label+" "))
		}
	}

	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...),
		"",
	}

	items := p.rows[p.section]
	if len(items) == 0 {
		rows = append(rows, mutedStyle.Render("Nothing here yet. Press n to add one."))
	}
	for i, it := range items {
		cursor := "  "
		style := normalItemStyle
		if i == p.cursor[p.section] {
			cursor = "> "
			style = selectedItemStyle
		}
		check := "[ ]"
		if it.done {
			check = successStyle.Render("[x]")
			if i != p.cursor[p.section] {
				style = doneItemStyle
			}
		}
		line := cursor + check + " " + style.Render(it.label)
		if it.detail != "" {
			line += mutedStyle.Render(" - " + it.detail)
		}
		rows = append(rows, line)
	}

	hint := "  n: new  space: toggle  d: archive  ←/→: section"
	if p.section == sectionQueries {
		hint = "  n: new  enter: resolve  d: delete  ←/→: section"
	}
	rows = append(rows, "", mutedStyle.Render(hint))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
