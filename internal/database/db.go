// Package database provides a single query interface over the two
// supported storage backends: embedded SQLite (default) and networked
// Postgres (selected by a connection string at startup).
//
// Queries are written once with universal '?' placeholders; each backend
// translates them to its native binding syntax before dispatch, so the
// repositories and the rollup engine never know which backend is active.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	_ "github.com/jackc/pgx/v5/stdlib" // Postgres driver
	_ "modernc.org/sqlite"             // Pure Go SQLite driver
)

// Backend identifies which storage engine a DB talks to.
type Backend int

const (
	BackendSQLite Backend = iota
	BackendPostgres
)

func (b Backend) String() string {
	if b == BackendPostgres {
		return "postgres"
	}
	return "sqlite"
}

// Config selects and locates the backend. PostgresURL non-empty selects
// the networked backend; otherwise the embedded database at SQLitePath
// is opened (and its schema created if missing).
type Config struct {
	PostgresURL string
	SQLitePath  string
}

// DB wraps the backend connection pool
type DB struct {
	conn    *sql.DB
	backend Backend
	path    string
	log     zerolog.Logger
}

// New opens the configured backend and verifies connectivity.
// A connection or ping failure surfaces as ErrBackendUnavailable.
func New(cfg Config, log zerolog.Logger) (*DB, error) {
	log = log.With().Str("component", "database").Logger()

	if cfg.PostgresURL != "" {
		conn, err := sql.Open("pgx", cfg.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		if err := conn.Ping(); err != nil {
			conn.Close()
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}

		conn.SetMaxOpenConns(25)
		conn.SetMaxIdleConns(5)

		log.Info().Str("backend", "postgres").Msg("Database connected")

		// Postgres schema is managed by external migrations; connectivity
		// is all we verify here (matches the hosted deployment setup).
		return &DB{conn: conn, backend: BackendPostgres, log: log}, nil
	}

	dsn := cfg.SQLitePath
	if dsn != ":memory:" {
		// Ensure directory exists
		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		// Use WAL mode for better concurrency
		dsn += "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
	}

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)

	db := &DB{conn: conn, backend: BackendSQLite, path: cfg.SQLitePath, log: log}

	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	log.Info().Str("backend", "sqlite").Str("path", cfg.SQLitePath).Msg("Database connected")
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Backend returns which storage engine is active
func (db *DB) Backend() Backend {
	return db.backend
}

// Path returns the SQLite file path (empty on the Postgres backend)
func (db *DB) Path() string {
	return db.path
}

// Conn returns the underlying sql.DB connection
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Rebind translates universal '?' placeholders into the backend's native
// syntax: identity for SQLite, sequential $1..$n for Postgres. Question
// marks inside single-quoted literals are left alone.
func (db *DB) Rebind(query string) string {
	if db.backend == BackendSQLite {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inLiteral := false
	for _, r := range query {
		switch {
		case r == '\'':
			inLiteral = !inLiteral
			b.WriteRune(r)
		case r == '?' && !inLiteral:
			n++
			fmt.Fprintf(&b, "$%d", n)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Row is one result row keyed by column name.
type Row map[string]any

// Result is a fully materialized query result. Materializing up front
// guarantees the underlying rows/cursor are released on every exit path,
// including mid-scan failures.
type Result struct {
	Columns []string
	Rows    []Row
}

// Require checks that every named column came back from the query,
// returning SchemaMismatchError for the first one missing. It works on
// empty tables too, since column names are known even with zero rows.
func (res *Result) Require(table string, cols ...string) error {
	for _, want := range cols {
		found := false
		for _, have := range res.Columns {
			if strings.EqualFold(have, want) {
				found = true
				break
			}
		}
		if !found {
			return &SchemaMismatchError{Table: table, Column: want}
		}
	}
	return nil
}

// Query runs a parameterized read and returns the materialized result.
func (db *DB) Query(query string, args ...any) (*Result, error) {
	rows, err := db.conn.Query(db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	res := &Result{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			// Drivers disagree on text representation; normalize to string
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		res.Rows = append(res.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return res, nil
}

// QueryRow runs a parameterized read expected to return one row.
func (db *DB) QueryRow(query string, args ...any) *sql.Row {
	return db.conn.QueryRow(db.Rebind(query), args...)
}

// Exec runs a parameterized write.
func (db *DB) Exec(query string, args ...any) (sql.Result, error) {
	return db.conn.Exec(db.Rebind(query), args...)
}

// Insert runs an INSERT and returns the generated row id, papering over
// the drivers' divergence: SQLite reports it via LastInsertId, Postgres
// only via RETURNING.
func (db *DB) Insert(query string, args ...any) (int64, error) {
	if db.backend == BackendPostgres {
		var id int64
		err := db.conn.QueryRow(db.Rebind(query)+" RETURNING id", args...).Scan(&id)
		if err != nil {
			return 0, err
		}
		return id, nil
	}

	result, err := db.conn.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Begin starts a new transaction. Placeholders inside the transaction
// must be rebound by the caller via Rebind.
func (db *DB) Begin() (*sql.Tx, error) {
	return db.conn.Begin()
}
