package sqlite

import (
	"errors"
	"strings"

	"github.com/tinywasm/adapter"
)

// ErrUnsupportedAction is returned by Compile for actions it cannot express.
var ErrUnsupportedAction = errors.New("unsupported action")

// ErrNoConditions is returned when an update or delete would touch every row.
var ErrNoConditions = errors.New("update and delete require a row condition")

// ErrEmptyBinding is returned when an update has no column to set.
var ErrEmptyBinding = errors.New("empty binding")

// Plan is a compiled statement ready for execution.
type Plan struct {
	Query string
	Args  []any
}

// Compile translates an adapter query into SQLite SQL with positional
// parameters. Identifiers are always quoted.
func Compile(q adapter.Query) (Plan, error) {
	if q.Table == "" {
		return Plan{}, adapter.ErrEmptyTable
	}

	switch q.Action {
	case adapter.ActionInsert:
		return compileInsert(q), nil
	case adapter.ActionUpdate:
		return compileUpdate(q)
	case adapter.ActionDelete:
		return compileDelete(q)
	}
	return Plan{}, ErrUnsupportedAction
}

func compileInsert(q adapter.Query) Plan {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(quoteIdent(q.Table))

	if q.Binding == nil || q.Binding.Len() == 0 {
		sb.WriteString(" DEFAULT VALUES")
		return Plan{Query: sb.String()}
	}

	cols := q.Binding.Columns()
	sb.WriteString(" (")
	for i, c := range cols {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(quoteIdent(c))
	}
	sb.WriteString(") VALUES (")
	sb.WriteString(placeholders(len(cols)))
	sb.WriteString(")")

	return Plan{Query: sb.String(), Args: append([]any(nil), q.Binding.Args()...)}
}

func compileUpdate(q adapter.Query) (Plan, error) {
	if q.Binding == nil || q.Binding.Len() == 0 {
		return Plan{}, ErrEmptyBinding
	}
	if len(q.Conditions) == 0 {
		return Plan{}, ErrNoConditions
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(quoteIdent(q.Table))
	sb.WriteString(" SET ")
	for i, c := range q.Binding.Columns() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(quoteIdent(c))
		sb.WriteString(" = ?")
	}

	args := append([]any(nil), q.Binding.Args()...)
	args = appendWhere(&sb, q.Conditions, args)
	return Plan{Query: sb.String(), Args: args}, nil
}

func compileDelete(q adapter.Query) (Plan, error) {
	if len(q.Conditions) == 0 {
		return Plan{}, ErrNoConditions
	}

	var sb strings.Builder
	sb.WriteString("DELETE FROM ")
	sb.WriteString(quoteIdent(q.Table))
	args := appendWhere(&sb, q.Conditions, nil)
	return Plan{Query: sb.String(), Args: args}, nil
}

func appendWhere(sb *strings.Builder, conds []adapter.Condition, args []any) []any {
	sb.WriteString(" WHERE ")
	for i, c := range conds {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		sb.WriteString(quoteIdent(c.Field()))
		sb.WriteString(" ")
		sb.WriteString(c.Operator())
		sb.WriteString(" ?")
		args = append(args, c.Value())
	}
	return args
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
