package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sadopc/compound/internal/growth"
	"github.com/sadopc/compound/internal/store"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
}

func newTestCLI(t *testing.T) (*CLI, *store.Store) {
	t.Helper()
	s, err := store.NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewWithStore(s, s, fixedNow), s
}

func run(t *testing.T, c *CLI, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.RootCmd.SetOut(&out)
	c.RootCmd.SetErr(&out)
	c.RootCmd.SetArgs(args)
	err := c.RootCmd.Execute()
	return out.String(), err
}

func seedRecords(t *testing.T, records growth.RecordStore) {
	t.Helper()
	for _, r := range []growth.DailyRecord{
		{Date: "2024-03-13", CycleDay: 13, TasksCompleted: 4, TotalTasks: 4, HabitsCompleted: 2, TotalHabits: 2},
		{Date: "2024-03-14", CycleDay: 14, TasksCompleted: 1, TotalTasks: 2, HabitsCompleted: 1, TotalHabits: 2, Reflection: "slow day"},
	} {
		require.NoError(t, records.SaveRecord(r))
	}
}

func TestRootCommandSetup(t *testing.T) {
	c, _ := newTestCLI(t)

	assert.Equal(t, "compound", c.RootCmd.Use)
	assert.True(t, c.RootCmd.SilenceUsage)
	assert.NotNil(t, c.RootCmd.PersistentFlags().Lookup("env-file"))

	names := map[string]bool{}
	for _, sub := range c.RootCmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"report", "export", "submit", "history", "reflect", "delete"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestNewWithStoreBackend(t *testing.T) {
	c, _ := newTestCLI(t)
	assert.Equal(t, store.BackendSQLite, c.backend)

	s, err := store.NewMemory()
	require.NoError(t, err)
	defer s.Close()
	fc := NewWithStore(s, store.NewFileRecords(filepath.Join(t.TempDir(), "r.json")), fixedNow)
	assert.Equal(t, store.BackendFile, fc.backend)
}

func TestReportJSON(t *testing.T) {
	c, s := newTestCLI(t)
	seedRecords(t, s)
	_, err := s.CreateQuery("what is a goroutine leak?")
	require.NoError(t, err)

	out, err := run(t, c, "report", "--format", "json")
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(2), m["totalDaysTracked"])
	assert.Equal(t, float64(1), m["knowledgeDebt"])
	assert.Contains(t, m, "growth")
	assert.Contains(t, m, "insights")
}

func TestReportYAML(t *testing.T) {
	c, s := newTestCLI(t)
	seedRecords(t, s)

	out, err := run(t, c, "report", "-f", "yaml")
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &m))
	assert.Equal(t, 2, m["totalDaysTracked"])
}

func TestReportTable(t *testing.T) {
	c, s := newTestCLI(t)
	seedRecords(t, s)

	out, err := run(t, c, "report")
	require.NoError(t, err)

	for _, want := range []string{"Knowledge debt", "30-day projection", "Last 7 days", "All time"} {
		assert.Contains(t, out, want)
	}
}

func TestReportUnknownFormat(t *testing.T) {
	c, _ := newTestCLI(t)
	_, err := run(t, c, "report", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestExportFormats(t *testing.T) {
	c, s := newTestCLI(t)
	seedRecords(t, s)
	dir := t.TempDir()

	for _, format := range []string{"csv", "json", "yaml"} {
		path := filepath.Join(dir, "records."+format)
		out, err := run(t, c, "export", "--format", format, "--out", path)
		require.NoError(t, err, format)
		assert.Contains(t, out, "Exported 2 records")

		info, err := os.Stat(path)
		require.NoError(t, err, format)
		assert.Positive(t, info.Size())
	}
}

func TestExportDefaultPath(t *testing.T) {
	c, _ := newTestCLI(t)
	t.Chdir(t.TempDir())

	out, err := run(t, c, "export", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "compound-export-2024-03-15.json")

	_, err = os.Stat("compound-export-2024-03-15.json")
	assert.NoError(t, err)
}

func TestExportUnknownFormat(t *testing.T) {
	c, _ := newTestCLI(t)
	_, err := run(t, c, "export", "--format", "xlsx")
	require.Error(t, err)
}

func TestSubmit(t *testing.T) {
	c, s := newTestCLI(t)
	seedRecords(t, s)
	task, err := s.CreateTask("write cli tests")
	require.NoError(t, err)
	_, err = s.ToggleTask(task.ID)
	require.NoError(t, err)

	out, err := run(t, c, "submit", "--reflection", "  steady  ")
	require.NoError(t, err)
	assert.Contains(t, out, "Submitted 2024-03-15")

	rec, err := s.GetRecord("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "steady", rec.Reflection)
	assert.Equal(t, 1, rec.TasksCompleted)
	assert.Equal(t, 0, rec.MissedDays)

	tasks, err := s.ListTasks(false)
	require.NoError(t, err)
	assert.Empty(t, tasks, "completed tasks are archived on submit")
}

func TestSubmitReportsMissedDays(t *testing.T) {
	c, s := newTestCLI(t)
	require.NoError(t, s.SaveRecord(growth.DailyRecord{Date: "2024-03-11"}))

	out, err := run(t, c, "submit")
	require.NoError(t, err)
	assert.Contains(t, out, "3 missed day(s)")
}

func TestSubmitWithoutPlanner(t *testing.T) {
	c := &CLI{records: store.NewFileRecords(filepath.Join(t.TempDir(), "r.json")), now: fixedNow, injected: true}
	c.setupRootCommand()
	c.setupCommands()

	_, err := run(t, c, "submit")
	assert.ErrorIs(t, err, errNoPlanner)
}

func TestReportWithoutPlanner(t *testing.T) {
	records := store.NewFileRecords(filepath.Join(t.TempDir(), "r.json"))
	seedRecords(t, records)
	c := &CLI{records: records, now: fixedNow, injected: true}
	c.setupRootCommand()
	c.setupCommands()

	out, err := run(t, c, "report", "--format", "json")
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(2), m["totalDaysTracked"])
	assert.Equal(t, float64(0), m["global"])
}

func TestHistory(t *testing.T) {
	c, s := newTestCLI(t)
	seedRecords(t, s)

	out, err := run(t, c, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-03-13")
	assert.Contains(t, out, "slow day")
	assert.Contains(t, out, "1/2")

	out, err = run(t, c, "history", "--limit", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "2024-03-13")
	assert.Contains(t, out, "2024-03-14")
}

func TestHistoryEmpty(t *testing.T) {
	c, _ := newTestCLI(t)
	out, err := run(t, c, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No records yet (sqlite backend)")
}

func TestReflect(t *testing.T) {
	c, s := newTestCLI(t)
	seedRecords(t, s)

	out, err := run(t, c, "reflect", "2024-03-14")
	require.NoError(t, err)
	assert.Contains(t, out, "slow day")

	out, err = run(t, c, "reflect", "2024-03-13", "--text", "  caught up on reviews  ")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated reflection for 2024-03-13")

	rec, err := s.GetRecord("2024-03-13")
	require.NoError(t, err)
	assert.Equal(t, "caught up on reviews", rec.Reflection)
	assert.Equal(t, 4, rec.TasksCompleted)

	_, err = run(t, c, "reflect", "2024-03-13", "--text", "")
	require.NoError(t, err)
	// Flag state sticks to a command tree, so read back through a fresh one.
	out, err = run(t, NewWithStore(s, s, fixedNow), "reflect", "2024-03-13")
	require.NoError(t, err)
	assert.Contains(t, out, "has no reflection")

	_, err = run(t, c, "reflect", "2024-01-01", "--text", "x")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestReflectFileBackend(t *testing.T) {
	s, err := store.NewMemory()
	require.NoError(t, err)
	defer s.Close()
	records := store.NewFileRecords(filepath.Join(t.TempDir(), "r.json"))
	seedRecords(t, records)
	c := NewWithStore(s, records, fixedNow)

	_, err = run(t, c, "reflect", "2024-03-14", "-t", "edited offline")
	require.NoError(t, err)
	rec, err := records.GetRecord("2024-03-14")
	require.NoError(t, err)
	assert.Equal(t, "edited offline", rec.Reflection)
}

func TestDelete(t *testing.T) {
	c, s := newTestCLI(t)
	seedRecords(t, s)

	out, err := run(t, c, "delete", "2024-03-13")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 2024-03-13")

	all, err := s.GetAllRecords()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "2024-03-14", all[0].Date)

	_, err = run(t, c, "delete", "2024-03-13")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = run(t, c, "delete")
	assert.Error(t, err)
}

func TestRenderTable(t *testing.T) {
	var out bytes.Buffer
	err := renderTable(&out, []any{"Date", "Note"}, [][]string{{"2024-03-13", "first"}, {"2024-03-14", "second"}})
	require.NoError(t, err)
	for _, want := range []string{"2024-03-13", "first", "2024-03-14", "second"} {
		assert.Contains(t, out.String(), want)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a b", truncate("a\n  b", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "ééé…", truncate("éééééé", 4))
}

func TestOpenFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("COMPOUND_DB", filepath.Join(dir, "compound.db"))
	t.Setenv("COMPOUND_RECORDS_FALLBACK", filepath.Join(dir, "records.json"))
	t.Setenv("COMPOUND_LOG_FILE", filepath.Join(dir, "compound.log"))
	t.Setenv("COMPOUND_LOG_LEVEL", "debug")

	c := New()
	c.envFile = filepath.Join(dir, "missing.env")
	require.NoError(t, c.open())
	defer c.Close()

	assert.NotNil(t, c.store)
	assert.Equal(t, store.BackendSQLite, c.backend)
	assert.FileExists(t, filepath.Join(dir, "compound.db"))
	assert.FileExists(t, filepath.Join(dir, "compound.log"))
}
