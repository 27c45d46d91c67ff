package adapter

import (
	"errors"

	"github.com/tinywasm/fmt"
)

// ErrEmptyTable is returned when a Table has no name.
var ErrEmptyTable = errors.New("empty table name")

// ErrInvalidTable is returned by New when the table metadata is inconsistent.
var ErrInvalidTable = errors.New("invalid table")

// ErrBinding matches every *BindingError via errors.Is.
var ErrBinding = errors.New("binding error")

// ErrUnsupported matches every *UnsupportedOperationError via errors.Is.
var ErrUnsupported = errors.New("unsupported operation")

// ErrWriteBack matches every *WriteBackError via errors.Is.
var ErrWriteBack = errors.New("autoincrement write-back failed")

// BindingError reports a record value that cannot be written to its column:
// a required field is nil, the value does not fit the column type, or the
// record exposes the wrong number of values. The operation is aborted before
// anything reaches the executor.
type BindingError struct {
	Table  string
	Column string // empty when the error concerns the record as a whole
	Reason string
}

func (e *BindingError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s: %s: %s", ErrBinding.Error(), e.Table, e.Reason)
	}
	return fmt.Sprintf("%s: %s.%s: %s", ErrBinding.Error(), e.Table, e.Column, e.Reason)
}

func (e *BindingError) Unwrap() error { return ErrBinding }

// UnsupportedOperationError is returned when an operation does not apply to
// the adapter's table, e.g. UpdateAutoIncrement on a table whose key is
// supplied by the caller.
type UnsupportedOperationError struct {
	Table string
	Op    string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s: %s on table %s", ErrUnsupported.Error(), e.Op, e.Table)
}

func (e *UnsupportedOperationError) Unwrap() error { return ErrUnsupported }

// WriteBackError is returned by Insert when the row was stored but the key
// the store assigned could not be written into the record. The row exists;
// the record still holds its previous key.
type WriteBackError struct {
	Table  string
	Column string
	Err    error // cause reported by UpdateAutoIncrement
}

func (e *WriteBackError) Error() string {
	return fmt.Sprintf("%s: %s.%s: %s", ErrWriteBack.Error(), e.Table, e.Column, e.Err.Error())
}

func (e *WriteBackError) Unwrap() error { return ErrWriteBack }

func bindErr(table, column, reason string) error {
	return &BindingError{Table: table, Column: column, Reason: reason}
}
