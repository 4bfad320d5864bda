package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sadopc/compound/internal/export"
	"github.com/sadopc/compound/internal/growth"
	"github.com/sadopc/compound/internal/tui"
)

func (c *CLI) runTUI(cmd *cobra.Command, args []string) error {
	if c.store == nil {
		return errNoPlanner
	}
	p := tea.NewProgram(tui.NewApp(c.store, c.records), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (c *CLI) createReportCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print productivity, growth and trend analytics",
		Long: `Print the analytics snapshot: today's productivity scores, compound
growth, trends and streaks, period summaries and insights.`,
		Example: `  compound report
  compound report --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := c.snapshot()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "json":
				return export.SnapshotJSON(snap, out)
			case "yaml", "yml":
				return export.SnapshotYAML(snap, out)
			case "table":
				return formatSnapshot(out, snap)
			default:
				return fmt.Errorf("unsupported report format %q (use table, json or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json, yaml)")
	return cmd
}

func (c *CLI) createExportCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export daily records to CSV, JSON or YAML",
		Example: `  compound export --format csv
  compound export --format yaml --out records.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(format)
			write, ok := map[string]func([]growth.DailyRecord, string) error{
				"csv":  export.ToCSV,
				"json": export.ToJSON,
				"yaml": export.ToYAML,
			}[format]
			if !ok {
				return fmt.Errorf("unsupported export format %q (use csv, json or yaml)", format)
			}

			records, err := c.records.GetAllRecords()
			if err != nil {
				return fmt.Errorf("load records: %w", err)
			}

			path := output
			if path == "" {
				path = fmt.Sprintf("compound-export-%s.%s", growth.FormatDate(c.now()), format)
			}
			path = filepath.Clean(path)
			if err := write(records, path); err != nil {
				return err
			}

			log.Info().Str("path", path).Int("records", len(records)).Msg("records exported")
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", len(records), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "Export format (csv, json, yaml)")
	cmd.Flags().StringVarP(&output, "out", "o", "", "Output file (default compound-export-<date>.<format>)")
	return cmd
}

func (c *CLI) createSubmitCommand() *cobra.Command {
	var reflection string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Close out today and store its record",
		Long: `Snapshot today's task, habit and learning completion into a daily
record. Completed tasks and learning items are archived and habits reset.
Submitting again on the same day replaces the record.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.store == nil {
				return errNoPlanner
			}
			rec, err := c.store.SubmitDay(c.records, c.now(), strings.TrimSpace(reflection))
			if err != nil {
				return fmt.Errorf("submit day: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Submitted %s (cycle day %d): %.0f%% complete",
				rec.Date, rec.CycleDay, growth.DayCompletion(rec)*100)
			if rec.MissedDays > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), ", %d missed day(s) before", rec.MissedDays)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVarP(&reflection, "reflection", "r", "", "Reflection to store with the record")
	return cmd
}

func (c *CLI) createHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List submitted daily records",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := c.records.GetAllRecords()
			if err != nil {
				return fmt.Errorf("load records: %w", err)
			}
			if limit > 0 && len(records) > limit {
				records = records[len(records)-limit:]
			}
			if len(records) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No records yet (%s backend)\n", c.backend)
				return nil
			}
			return formatRecords(cmd.OutOrStdout(), records)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 14, "Show only the most recent N records (0 for all)")
	return cmd
}

func (c *CLI) createReflectCommand() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "reflect <date>",
		Short: "Show or edit the reflection of a submitted day",
		Example: `  compound reflect 2024-03-14
  compound reflect 2024-03-14 --text "Paired on the parser, good day"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := args[0]
			if !cmd.Flags().Changed("text") {
				rec, err := c.records.GetRecord(date)
				if err != nil {
					return err
				}
				if rec.Reflection == "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s has no reflection\n", date)
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), rec.Reflection)
				return nil
			}

			if err := c.records.UpdateReflection(date, strings.TrimSpace(text)); err != nil {
				return err
			}
			log.Info().Str("date", date).Msg("reflection updated")
			fmt.Fprintf(cmd.OutOrStdout(), "Updated reflection for %s\n", date)
			return nil
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "New reflection text (empty clears it)")
	return cmd
}

func (c *CLI) createDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <date>",
		Short: "Delete the record of a submitted day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := args[0]
			if err := c.records.DeleteRecord(date); err != nil {
				return err
			}
			log.Info().Str("date", date).Msg("record deleted")
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", date)
			return nil
		},
	}
}
