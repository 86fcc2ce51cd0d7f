package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists projection history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS projections (
			id                   INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp            INTEGER NOT NULL,
			source               TEXT,
			initial_balance      REAL,
			monthly_contribution REAL,
			annual_rate          REAL,
			total_months         INTEGER,
			total_value          REAL,
			total_contributions  REAL,
			total_gain           REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_projections_ts ON projections(timestamp)`,

		`CREATE TABLE IF NOT EXISTS projection_years (
			projection_id INTEGER NOT NULL REFERENCES projections(id) ON DELETE CASCADE,
			year          INTEGER NOT NULL,
			contributions REAL,
			total_value   REAL,
			gain          REAL,
			PRIMARY KEY (projection_id, year)
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordProjection stores the projection and its yearly rows in one transaction.
// rec.ID and rec.CreatedAt are filled in on success.
func (r *SQLiteRecorder) RecordProjection(rec *ProjectionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	in, res := rec.Input, rec.Result

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	out, err := tx.Exec(`INSERT INTO projections
		(timestamp, source, initial_balance, monthly_contribution, annual_rate, total_months,
		 total_value, total_contributions, total_gain)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		rec.CreatedAt.Unix(), string(rec.Source),
		in.InitialBalance, in.MonthlyContribution, in.AnnualRate, in.TotalMonths,
		res.TotalValue, res.TotalContributions, res.TotalGain,
	)
	if err != nil {
		return fmt.Errorf("insert projection: %w", err)
	}
	id, err := out.LastInsertId()
	if err != nil {
		return fmt.Errorf("projection id: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO projection_years
		(projection_id, year, contributions, total_value, gain) VALUES (?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare yearly insert: %w", err)
	}
	defer stmt.Close()
	for _, y := range res.Yearly {
		if _, err := stmt.Exec(id, y.Year, y.Contributions, y.TotalValue, y.Gain); err != nil {
			return fmt.Errorf("insert year %d: %w", y.Year, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	rec.ID = id
	return nil
}

func (r *SQLiteRecorder) RecentProjections(limit int) ([]ProjectionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT id, timestamp, source, initial_balance, monthly_contribution,
		annual_rate, total_months, total_value, total_contributions, total_gain
		FROM projections ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query projections: %w", err)
	}
	defer rows.Close()

	var out []ProjectionRecord
	for rows.Next() {
		var rec ProjectionRecord
		var ts int64
		var source string
		if err := rows.Scan(&rec.ID, &ts, &source,
			&rec.Input.InitialBalance, &rec.Input.MonthlyContribution, &rec.Input.AnnualRate, &rec.Input.TotalMonths,
			&rec.Result.TotalValue, &rec.Result.TotalContributions, &rec.Result.TotalGain,
		); err != nil {
			return nil, fmt.Errorf("scan projection: %w", err)
		}
		rec.CreatedAt = time.Unix(ts, 0)
		rec.Source = Source(source)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
