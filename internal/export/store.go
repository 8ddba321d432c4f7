// Package export writes the canonical dataset and every derived view to a
// SQLite file. The file is a one-shot artefact; nothing reads it back as
// dashboard state.
package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"countryviz/internal/country"
	"countryviz/internal/metric"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const (
	// DriverPure is the pure-Go driver registered by modernc.org/sqlite.
	DriverPure = "sqlite"
	// DriverCgo is the cgo driver registered by mattn/go-sqlite3.
	DriverCgo = "sqlite3"
)

// timeLayout sorts lexically in creation order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrUnknownDriver is returned by Open for drivers other than the two above.
var ErrUnknownDriver = errors.New("unknown sqlite driver")

// Store is an open export database.
type Store struct {
	db     *sql.DB
	path   string
	driver string
	mu     sync.Mutex
	logger *zap.Logger
}

// Open creates or opens the export database at path.
func Open(driver, path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var dsn string
	switch driver {
	case DriverPure:
		dsn = path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	case DriverCgo:
		dsn = path + "?_busy_timeout=5000&_foreign_keys=on"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db, path: path, driver: driver, logger: logger}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Driver returns the database/sql driver name in use.
func (s *Store) Driver() string {
	return s.driver
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		source TEXT NOT NULL,
		valid INTEGER NOT NULL,
		skipped INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS countries (
		run_id TEXT NOT NULL,
		name TEXT NOT NULL,
		capital TEXT NOT NULL,
		region TEXT NOT NULL,
		population REAL NOT NULL,
		area REAL NOT NULL,
		borders_json TEXT NOT NULL,
		timezones_json TEXT NOT NULL,
		languages_json TEXT NOT NULL,
		FOREIGN KEY (run_id) REFERENCES runs(id)
	);
	CREATE INDEX IF NOT EXISTS idx_countries_run ON countries(run_id);

	CREATE TABLE IF NOT EXISTS metric_views (
		run_id TEXT NOT NULL,
		metric TEXT NOT NULL,
		rank INTEGER NOT NULL,
		label TEXT NOT NULL,
		value REAL NOT NULL,
		item_kind TEXT NOT NULL,
		PRIMARY KEY (run_id, metric, rank),
		FOREIGN KEY (run_id) REFERENCES runs(id)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// WRITE
// =============================================================================

// Write stores a snapshot in a single transaction. Either the whole run is
// written or nothing is.
func (s *Store) Write(ctx context.Context, snap *Snapshot) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin export: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, source, valid, skipped) VALUES (?, ?, ?, ?, ?)`,
		snap.RunID, snap.CreatedAt.UTC().Format(timeLayout), snap.Source, len(snap.Records), snap.Skipped); err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	if err = insertCountries(ctx, tx, snap.RunID, snap.Records); err != nil {
		return err
	}

	rows := 0
	for _, kind := range metric.Kinds() {
		n, ierr := insertView(ctx, tx, snap.RunID, kind, snap.Views[kind])
		if ierr != nil {
			err = ierr
			return err
		}
		rows += n
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit export: %w", err)
	}

	s.logger.Info("export written",
		zap.String("run_id", snap.RunID),
		zap.String("path", s.path),
		zap.String("driver", s.driver),
		zap.Int("countries", len(snap.Records)),
		zap.Int("view_rows", rows),
		zap.Duration("took", time.Since(start)))
	return nil
}

func insertCountries(ctx context.Context, tx *sql.Tx, runID string, records []country.Record) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO countries (run_id, name, capital, region, population, area,
			borders_json, timezones_json, languages_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare countries insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		bordersJSON, _ := json.Marshal(r.Borders)
		timezonesJSON, _ := json.Marshal(r.Timezones)
		languagesJSON, _ := json.Marshal(r.LanguageNames())
		if _, err := stmt.ExecContext(ctx, runID, r.Name, r.Capital, r.Region,
			r.Population, r.Area, string(bordersJSON), string(timezonesJSON), string(languagesJSON)); err != nil {
			return fmt.Errorf("failed to save country %q: %w", r.Name, err)
		}
	}
	return nil
}

func insertView(ctx context.Context, tx *sql.Tx, runID string, kind metric.Kind, items []metric.Item) (int, error) {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO metric_views (run_id, metric, rank, label, value, item_kind)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare %s view insert: %w", kind, err)
	}
	defer stmt.Close()

	for i, it := range items {
		if _, err := stmt.ExecContext(ctx, runID, string(kind), i+1, it.Label, it.Value, string(it.Kind)); err != nil {
			return i, fmt.Errorf("failed to save %s rank %d: %w", kind, i+1, err)
		}
	}
	return len(items), nil
}

// =============================================================================
// SUMMARY QUERIES
// =============================================================================

// Run is one row of the runs table.
type Run struct {
	ID        string
	CreatedAt time.Time
	Source    string
	Valid     int
	Skipped   int
}

// ViewRow is one stored rank of a derived view.
type ViewRow struct {
	Rank     int
	Label    string
	Value    float64
	ItemKind string
}

// Runs lists the export runs in the file, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, source, valid, skipped FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &created, &r.Source, &r.Valid, &r.Skipped); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if r.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("failed to parse run time %q: %w", created, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// View returns the stored ranking of one metric for a run, in rank order.
func (s *Store) View(ctx context.Context, runID string, kind metric.Kind) ([]ViewRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT rank, label, value, item_kind FROM metric_views
		WHERE run_id = ? AND metric = ? ORDER BY rank`, runID, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s view: %w", kind, err)
	}
	defer rows.Close()

	var out []ViewRow
	for rows.Next() {
		var v ViewRow
		if err := rows.Scan(&v.Rank, &v.Label, &v.Value, &v.ItemKind); err != nil {
			return nil, fmt.Errorf("failed to scan view row: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// CountryCount returns the number of countries stored for a run.
func (s *Store) CountryCount(ctx context.Context, runID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM countries WHERE run_id = ?`, runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count countries: %w", err)
	}
	return n, nil
}
