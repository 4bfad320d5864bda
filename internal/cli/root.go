// Package cli wires configuration, logging and storage behind the compound
// command tree. The root command runs the terminal UI; subcommands cover
// scripting use: reports, exports, history and submitting the day.
package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sadopc/compound/internal/config"
	"github.com/sadopc/compound/internal/growth"
	"github.com/sadopc/compound/internal/logging"
	"github.com/sadopc/compound/internal/store"
)

var errNoPlanner = errors.New("planner database unavailable")

// CLI represents the command-line interface
type CLI struct {
	RootCmd *cobra.Command

	cfg     *config.Config
	store   *store.Store
	records store.Records
	backend string
	now     func() time.Time

	envFile   string
	logCloser io.Closer
	injected  bool
}

// New creates the command tree. Storage is opened lazily before the
// first command runs.
func New() *CLI {
	c := &CLI{now: time.Now}
	c.setupRootCommand()
	c.setupCommands()
	return c
}

// NewWithStore creates a CLI over already opened storage. Configuration
// and logging setup are skipped.
func NewWithStore(s *store.Store, records store.Records, now func() time.Time) *CLI {
	c := &CLI{
		store:    s,
		records:  records,
		backend:  store.BackendSQLite,
		now:      now,
		injected: true,
	}
	if _, ok := records.(*store.FileRecords); ok {
		c.backend = store.BackendFile
	}
	c.setupRootCommand()
	c.setupCommands()
	return c
}

func (c *CLI) setupRootCommand() {
	c.RootCmd = &cobra.Command{
		Use:   "compound",
		Short: "Compound - daily planner with compound growth analytics",
		Long: `compound tracks tasks, habits, learning items and open questions for
the current day. Submitting the day snapshots completion into a daily
record; the records drive growth, trend, streak and insight analytics.

Run without a subcommand to open the terminal UI.`,
		Version:           "0.1.0",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return c.open() },
		RunE:              c.runTUI,
		SilenceUsage:      true,
	}

	c.RootCmd.PersistentFlags().StringVar(&c.envFile, "env-file", ".env",
		"Optional dotenv file with COMPOUND_* settings")
}

func (c *CLI) setupCommands() {
	c.RootCmd.AddCommand(
		c.createReportCommand(),
		c.createExportCommand(),
		c.createSubmitCommand(),
		c.createHistoryCommand(),
		c.createReflectCommand(),
		c.createDeleteCommand(),
	)
}

// open loads configuration, starts logging and selects the record store.
// A planner database that fails to open leaves the record commands
// working from the JSON fallback.
func (c *CLI) open() error {
	if c.injected || c.records != nil {
		return nil
	}

	cfg, err := config.LoadConfig(c.envFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	c.cfg = cfg

	closer, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	c.logCloser = closer

	s, err := store.New(cfg.DBPath)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.DBPath).Msg("open planner database")
	} else {
		c.store = s
	}
	c.records, c.backend = store.OpenRecords(c.store, cfg.RecordsFallback)
	return nil
}

// Close releases the database and the log file.
func (c *CLI) Close() error {
	var errs []error
	if c.store != nil && !c.injected {
		errs = append(errs, c.store.Close())
	}
	if c.logCloser != nil {
		errs = append(errs, c.logCloser.Close())
	}
	return errors.Join(errs...)
}

// Execute runs the CLI
func (c *CLI) Execute() error {
	defer c.Close()
	if err := c.RootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		return err
	}
	return nil
}

// snapshot computes the analytics read model. Without a planner database
// the live day is empty and the default weights apply.
func (c *CLI) snapshot() (growth.Snapshot, error) {
	history, err := c.records.GetAllRecords()
	if err != nil {
		return growth.Snapshot{}, fmt.Errorf("load records: %w", err)
	}

	now := c.now()
	var live growth.LiveState
	cfg := growth.DefaultConfig()
	if c.store != nil {
		if live, err = c.store.LiveState(now); err != nil {
			return growth.Snapshot{}, fmt.Errorf("load live day: %w", err)
		}
		cfg = c.store.GrowthConfig()
	}
	return growth.CalculateEnhancedProductivityAt(live, history, cfg, now), nil
}
