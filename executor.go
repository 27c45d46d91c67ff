package adapter

import "context"

// Action represents the type of statement an Adapter asks for.
type Action int

const (
	ActionInsert Action = iota
	ActionUpdate
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionInsert:
		return "insert"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	}
	return "unknown"
}

// Query is a fully bound statement request handed to an Executor.
// Executors read these fields to build native statements.
type Query struct {
	Action     Action
	Table      string
	Binding    *Binding    // column values for insert/update, nil for delete
	Conditions []Condition // row selection for update/delete
	// AutoIncrement is set on inserts into tables whose key the store assigns;
	// the executor must then report the new key in Result.LastInsertID.
	AutoIncrement bool
}

// Result reports the outcome of one executed statement.
type Result struct {
	RowsAffected int64
	LastInsertID int64
}

// Executor runs bound statements against a store.
// The connection or transaction it runs on is owned by the caller; errors are
// returned to the Adapter's caller unchanged.
type Executor interface {
	Execute(ctx context.Context, q Query) (Result, error)
}

// ExecutorFunc adapts a plain function to the Executor interface.
type ExecutorFunc func(ctx context.Context, q Query) (Result, error)

func (f ExecutorFunc) Execute(ctx context.Context, q Query) (Result, error) {
	return f(ctx, q)
}
