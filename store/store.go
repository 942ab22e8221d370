// SPDX-License-Identifier: MIT
// Package: mmseed/store
//
// store.go — SQLite persistence of seeding runs.

// Package store keeps a record of seeding runs in a SQLite database: the
// parameters of each run, its seat counts and the full unit assignment, so
// that a seed can be inspected or reused later without recomputing it.
//
// The driver is modernc.org/sqlite (pure Go). ":memory:" gives a private
// in-process database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ErrRunNotFound indicates GetRun or DeleteRun was given an unknown id.
var ErrRunNotFound = errors.New("store: run not found")

// ErrEmptyRun indicates SaveRun got a run without assignment.
var ErrEmptyRun = errors.New("store: run has no assignment")

const memoryPath = ":memory:"

// connPragmas run on every new pool connection; foreign_keys is a
// per-connection setting in SQLite.
const connPragmas = "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at  INTEGER NOT NULL,
	source      TEXT    NOT NULL,
	rand_seed   INTEGER NOT NULL,
	sizes       TEXT    NOT NULL,
	seat_target REAL    NOT NULL,
	attempts    INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS run_seats (
	run_id     INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	district   INTEGER NOT NULL,
	population REAL    NOT NULL,
	seats      INTEGER NOT NULL,
	PRIMARY KEY (run_id, district)
);
CREATE TABLE IF NOT EXISTS run_assignments (
	run_id   INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	unit     TEXT    NOT NULL,
	district INTEGER NOT NULL,
	PRIMARY KEY (run_id, unit)
);`

// Run is one persisted seeding run.
type Run struct {
	ID         int64
	CreatedAt  time.Time
	Source     string // dataset path or synthetic description
	RandSeed   int64
	Sizes      []int
	SeatTarget float64
	Attempts   int

	// Population and Seats are keyed by multi-member district.
	Population map[int]float64
	Seats      map[int]int

	// Assignment maps unit id to multi-member district.
	Assignment map[string]int
}

// Summary is the row ListRuns returns.
type Summary struct {
	ID        int64
	CreatedAt time.Time
	Source    string
	RandSeed  int64
	Sizes     []int
	Districts int
}

// DB wraps a SQLite database connection.
type DB struct {
	conn *sql.DB
	Path string
}

// OpenDB opens path with WAL mode and foreign keys enabled on every
// connection and creates the schema if needed.
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path+connPragmas)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == memoryPath {
		// Every connection to :memory: is a separate database.
		conn.SetMaxOpenConns(1)
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{conn: conn, Path: path}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.conn.Close()
}

// SaveRun inserts r in one transaction and returns its id. r.ID is ignored;
// a zero CreatedAt is replaced by the current time.
func (d *DB) SaveRun(ctx context.Context, r Run) (int64, error) {
	if len(r.Assignment) == 0 {
		return 0, ErrEmptyRun
	}
	created := r.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (created_at, source, rand_seed, sizes, seat_target, attempts)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		created.UnixNano(), r.Source, r.RandSeed, formatSizes(r.Sizes), r.SeatTarget, r.Attempts)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	seatStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_seats (run_id, district, population, seats) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing seats: %w", err)
	}
	defer seatStmt.Close()
	for district, seats := range r.Seats {
		if _, err := seatStmt.ExecContext(ctx, id, district, r.Population[district], seats); err != nil {
			return 0, fmt.Errorf("inserting seats for district %d: %w", district, err)
		}
	}

	unitStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_assignments (run_id, unit, district) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing assignment: %w", err)
	}
	defer unitStmt.Close()
	for unit, district := range r.Assignment {
		if _, err := unitStmt.ExecContext(ctx, id, unit, district); err != nil {
			return 0, fmt.Errorf("inserting unit %s: %w", unit, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}

	return id, nil
}

// GetRun loads run id with its seats and assignment.
func (d *DB) GetRun(ctx context.Context, id int64) (*Run, error) {
	r := &Run{ID: id, Population: map[int]float64{}, Seats: map[int]int{}, Assignment: map[string]int{}}
	var created int64
	var sizes string
	err := d.conn.QueryRowContext(ctx,
		`SELECT created_at, source, rand_seed, sizes, seat_target, attempts FROM runs WHERE id = ?`, id).
		Scan(&created, &r.Source, &r.RandSeed, &sizes, &r.SeatTarget, &r.Attempts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying run %d: %w", id, err)
	}
	r.CreatedAt = time.Unix(0, created)
	if r.Sizes, err = parseSizes(sizes); err != nil {
		return nil, fmt.Errorf("run %d: %w", id, err)
	}

	rows, err := d.conn.QueryContext(ctx,
		`SELECT district, population, seats FROM run_seats WHERE run_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("querying seats: %w", err)
	}
	for rows.Next() {
		var district, seats int
		var pop float64
		if err := rows.Scan(&district, &pop, &seats); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning seats: %w", err)
		}
		r.Population[district] = pop
		r.Seats[district] = seats
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading seats: %w", err)
	}

	rows, err = d.conn.QueryContext(ctx,
		`SELECT unit, district FROM run_assignments WHERE run_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("querying assignment: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var unit string
		var district int
		if err := rows.Scan(&unit, &district); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}
		r.Assignment[unit] = district
	}

	return r, rows.Err()
}

// DeleteRun removes run id; its seats and assignment go with it.
func (d *DB) DeleteRun(ctx context.Context, id int64) error {
	res, err := d.conn.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting run %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting run %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("run %d: %w", id, ErrRunNotFound)
	}

	return nil
}

// ListRuns returns up to limit runs, newest first. limit ≤ 0 means all.
func (d *DB) ListRuns(ctx context.Context, limit int) ([]Summary, error) {
	q := `SELECT r.id, r.created_at, r.source, r.rand_seed, r.sizes,
	             (SELECT COUNT(*) FROM run_seats s WHERE s.run_id = r.id)
	      FROM runs r ORDER BY r.id DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		var created int64
		var sizes string
		if err := rows.Scan(&s.ID, &created, &s.Source, &s.RandSeed, &sizes, &s.Districts); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		s.CreatedAt = time.Unix(0, created)
		if s.Sizes, err = parseSizes(sizes); err != nil {
			return nil, fmt.Errorf("run %d: %w", s.ID, err)
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

// formatSizes stores sizes sorted, comma separated; order carries no meaning.
func formatSizes(sizes []int) string {
	cp := append([]int(nil), sizes...)
	sort.Ints(cp)
	parts := make([]string, len(cp))
	for i, k := range cp {
		parts[i] = strconv.Itoa(k)
	}

	return strings.Join(parts, ",")
}

func parseSizes(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		k, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parsing sizes %q: %w", s, err)
		}
		out[i] = k
	}

	return out, nil
}
