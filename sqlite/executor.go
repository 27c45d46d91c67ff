package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/tinywasm/adapter"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Executor implements adapter.Executor on a *sql.DB or *sql.Tx.
type Executor struct {
	db    DBTX
	logFn func(messages ...any)
}

// NewExecutor returns an executor bound to db.
func NewExecutor(db DBTX) *Executor {
	return &Executor{db: db}
}

// SetLog sets the log function for failed statements.
func (e *Executor) SetLog(fn func(messages ...any)) {
	e.logFn = fn
}

// Execute compiles q and runs it. Driver errors are wrapped, never replaced,
// so errors.As still reaches the *sqlite.Error.
func (e *Executor) Execute(ctx context.Context, q adapter.Query) (adapter.Result, error) {
	if err := ctx.Err(); err != nil {
		return adapter.Result{}, err
	}
	plan, err := Compile(q)
	if err != nil {
		return adapter.Result{}, err
	}

	res, err := e.db.ExecContext(ctx, plan.Query, plan.Args...)
	if err != nil {
		e.log("sqlite:", q.Action.String(), "failed:", plan.Query, err)
		return adapter.Result{}, fmt.Errorf("exec %s %s: %w", q.Action, q.Table, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return adapter.Result{}, fmt.Errorf("rows affected %s: %w", q.Table, err)
	}
	out := adapter.Result{RowsAffected: n}

	if q.Action == adapter.ActionInsert && q.AutoIncrement {
		id, err := res.LastInsertId()
		if err != nil {
			return out, fmt.Errorf("last insert id %s: %w", q.Table, err)
		}
		out.LastInsertID = id
	}
	return out, nil
}

func (e *Executor) log(messages ...any) {
	if e.logFn != nil {
		e.logFn(messages...)
	}
}

// IsConstraintViolation reports whether err was caused by a PRIMARY KEY,
// UNIQUE, NOT NULL, CHECK or FOREIGN KEY constraint.
func IsConstraintViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code()&0xff == sqlite3lib.SQLITE_CONSTRAINT
}
