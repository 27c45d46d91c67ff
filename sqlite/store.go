// Package sqlite executes adapter queries against an embedded SQLite database
// (modernc.org/sqlite, no cgo).
//
// The package only runs statements. Connections and transactions stay with
// the caller: Store owns the *sql.DB it opened, and WithTx binds an executor to
// a transaction the caller began and will commit or roll back.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// DBTX is the subset of *sql.DB and *sql.Tx an Executor needs.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Store owns one SQLite database handle.
type Store struct {
	sqlDB *sql.DB
	logFn func(messages ...any)
}

// Open opens the database at cfg.Path and checks that it is reachable.
func Open(cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cfg.Path = cleanPath(cfg.Path)

	sqlDB, err := sql.Open("sqlite", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// SetLog sets the log function for failed statements.
// If not set, messages are silently discarded.
func (s *Store) SetLog(fn func(messages ...any)) {
	s.logFn = fn
}

// DB returns the underlying handle, e.g. to begin a transaction.
func (s *Store) DB() *sql.DB { return s.sqlDB }

// Executor returns an executor running statements directly on the database.
func (s *Store) Executor() *Executor {
	e := NewExecutor(s.sqlDB)
	e.SetLog(s.logFn)
	return e
}

// WithTx returns an executor running statements inside tx.
func (s *Store) WithTx(tx *sql.Tx) *Executor {
	e := NewExecutor(tx)
	e.SetLog(s.logFn)
	return e
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}
