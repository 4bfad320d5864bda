package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a keyed row does not exist.
var ErrNotFound = errors.New("not found")

type Store struct {
	db *sql.DB
}

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA foreign_keys=ON",
	"PRAGMA busy_timeout=5000",
}

// migrations[i] brings the schema from user_version i to i+1.
var migrations = []func(*Store) error{
	(*Store).migrateV1,
}

// New opens the SQLite database at dbPath, creating its directory and
// schema as needed.
func New(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection keeps :memory: databases shared and writes serialized.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	log.Debug().Str("path", dbPath).Msg("database ready")
	return s, nil
}

func (s *Store) init() error {
	for _, p := range pragmas {
		if _, err := s.db.Exec(p); err != nil {
			return fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}
	if err := s.migrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// NewMemory opens a throwaway in-memory store.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks that the records table is readable.
func (s *Store) Ping() error {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM daily_records`).Scan(&n); err != nil {
		return fmt.Errorf("ping records: %w", err)
	}
	return nil
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	for v := version; v < len(migrations); v++ {
		if err := migrations[v](s); err != nil {
			return fmt.Errorf("schema v%d: %w", v+1, err)
		}
		if _, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", v+1)); err != nil {
			return err
		}
		log.Info().Int("version", v+1).Msg("applied schema migration")
	}
	return nil
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS daily_records (
		date                  TEXT PRIMARY KEY,
		cycle_day             INTEGER NOT NULL DEFAULT 1,
		tasks_completed       INTEGER NOT NULL DEFAULT 0,
		total_tasks           INTEGER NOT NULL DEFAULT 0,
		habits_completed      INTEGER NOT NULL DEFAULT 0,
		total_habits          INTEGER NOT NULL DEFAULT 0,
		learning_completed    INTEGER NOT NULL DEFAULT 0,
		total_learning        INTEGER NOT NULL DEFAULT 0,
		missed_days           INTEGER NOT NULL DEFAULT 0,
		reflection            TEXT NOT NULL DEFAULT '',
		created_at            TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now')),
		updated_at            TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
	);

	CREATE TABLE IF NOT EXISTS tasks (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT NOT NULL,
		done        INTEGER NOT NULL DEFAULT 0,
		archived    INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now')),
		updated_at  TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
	);

	CREATE TABLE IF NOT EXISTS habits (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		name        TEXT NOT NULL UNIQUE,
		done        INTEGER NOT NULL DEFAULT 0,
		archived    INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now')),
		updated_at  TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
	);

	CREATE TABLE IF NOT EXISTS learning_items (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		term        TEXT NOT NULL,
		notes       TEXT NOT NULL DEFAULT '',
		done        INTEGER NOT NULL DEFAULT 0,
		archived    INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
	);

	CREATE TABLE IF NOT EXISTS queries (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		question    TEXT NOT NULL,
		answer      TEXT NOT NULL DEFAULT '',
		resolved    INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now')),
		resolved_at TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_active    ON tasks(archived);
	CREATE INDEX IF NOT EXISTS idx_learning_active ON learning_items(archived);

	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	INSERT OR IGNORE INTO settings (key, value) VALUES
		('growth_base_rate',   '0.01'),
		('weight_task',        '0.4'),
		('weight_habit',       '0.3'),
		('weight_learning',    '0.2'),
		('weight_consistency', '0.1'),
		('cycle_length',       '30'),
		('cycle_start',        date('now'));
	`
	_, err := s.db.Exec(ddl)
	return err
}
