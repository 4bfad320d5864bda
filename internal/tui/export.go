package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/sadopc/compound/internal/export"
	"github.com/sadopc/compound/internal/growth"
)

type exportFormat struct {
	name  string
	ext   string
	write func([]growth.DailyRecord, string) error
}

var exportFormats = []exportFormat{
	{"CSV", ".csv", export.ToCSV},
	{"JSON", ".json", export.ToJSON},
	{"YAML", ".yaml", export.ToYAML},
}

// exportPicker is the format menu shown over the active view.
type exportPicker struct {
	open   bool
	cursor int
	dir    string
}

// update handles a key while the picker is open. The returned command
// runs the export once a format is chosen.
func (e exportPicker) update(msg tea.KeyMsg, records growth.RecordStore, now time.Time) (exportPicker, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		e.cursor = max(e.cursor-1, 0)
	case key.Matches(msg, keys.Down):
		e.cursor = min(e.cursor+1, len(exportFormats)-1)
	case key.Matches(msg, keys.Enter):
		e.open = false
		return e, exportRecords(records, exportFormats[e.cursor], e.dir, now)
	case key.Matches(msg, keys.Back):
		e.open = false
	}
	return e, nil
}

func (e exportPicker) view(width int) string {
	rows := []string{titleStyle.Render("Export Records"), ""}
	for i, f := range exportFormats {
		if i == e.cursor {
			rows = append(rows, selectedItemStyle.Render("> "+f.name))
			continue
		}
		rows = append(rows, normalItemStyle.Render("  "+f.name))
	}
	rows = append(rows, "", mutedStyle.Render(fmt.Sprintf("  enter: export to %s  esc: cancel", e.dir)))
	return activePanelStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// exportRecords writes every record to compound-export-<date><ext> in dir.
func exportRecords(records growth.RecordStore, f exportFormat, dir string, now time.Time) tea.Cmd {
	return func() tea.Msg {
		all, err := records.GetAllRecords()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}

		path := filepath.Join(dir, "compound-export-"+growth.FormatDate(now)+f.ext)
		if err := f.write(all, path); err != nil {
			return statusMsg{text: fmt.Sprintf("%s export error: %v", f.name, err), isError: true}
		}

		log.Info().Str("path", path).Int("records", len(all)).Msg("records exported")
		return exportDoneMsg{path: path}
	}
}
