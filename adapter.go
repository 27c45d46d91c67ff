// Package adapter maps caller-owned records to rows of one table.
//
// An Adapter is bound to a single Table and a single record type. It binds
// record values into statement slots in table column order, dispatches
// insert, update, delete and save requests to an Executor owned by the caller,
// writes store-assigned autoincrement keys back into records and derives the
// numeric key an identity cache uses to deduplicate live instances.
//
// Adapters hold no mutable state and never block; they are safe for
// concurrent use on independent records.
package adapter

import (
	"context"
	"reflect"
	"slices"

	"github.com/tinywasm/fmt"
)

// Option configures an Adapter.
type Option[T Record] func(*Adapter[T])

// WithCachingKey replaces the default caching key (the numeric primary key)
// with fn. Use it for tables whose key is not an integer.
func WithCachingKey[T Record](fn func(T) (int64, error)) Option[T] {
	return func(a *Adapter[T]) {
		a.cachingKey = fn
	}
}

// Adapter binds records of type T to the rows of one table.
// T is normally a pointer type so that UpdateAutoIncrement can write into it.
type Adapter[T Record] struct {
	table      Table
	columns    []string
	pk         Field
	pkIndex    int
	typ        reflect.Type
	cachingKey func(T) (int64, error)
}

// New validates table and returns an adapter bound to it and to T.
func New[T Record](table Table, opts ...Option[T]) (*Adapter[T], error) {
	if err := validate(table); err != nil {
		return nil, err
	}
	table.Fields = slices.Clone(table.Fields)
	pk, idx := table.PrimaryKey()

	a := &Adapter[T]{
		table:   table,
		columns: table.Columns(),
		pk:      pk,
		pkIndex: idx,
		typ:     reflect.TypeFor[T](),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// TableName returns the table this adapter writes to.
func (a *Adapter[T]) TableName() string { return a.table.Name }

// RecordType returns the record type this adapter is bound to.
func (a *Adapter[T]) RecordType() reflect.Type { return a.typ }

// Table returns a copy of the adapter's table metadata.
func (a *Adapter[T]) Table() Table {
	t := a.table
	t.Fields = slices.Clone(a.table.Fields)
	return t
}

// Columns returns the declared column names in table order.
func (a *Adapter[T]) Columns() []string { return slices.Clone(a.columns) }

// PrimaryKey returns the primary key field.
func (a *Adapter[T]) PrimaryKey() Field { return a.pk }

// AutoIncrement reports whether the store assigns the primary key on insert.
func (a *Adapter[T]) AutoIncrement() bool { return a.pk.IsAutoIncrement() }

// BindForExecution resets b and writes every declared column of r into it in
// table order. When includeAutoIncrement is false the autoincrement key column
// is left out of the binding entirely. On error b is left empty.
func (a *Adapter[T]) BindForExecution(b *Binding, r T, includeAutoIncrement bool) error {
	if b == nil {
		return bindErr(a.table.Name, "", "nil binding")
	}
	b.Reset()

	vals, err := a.values(r)
	if err != nil {
		return err
	}
	for i, f := range a.table.Fields {
		if !includeAutoIncrement && f.IsAutoIncrement() {
			continue
		}
		v, err := a.column(i, vals[i])
		if err != nil {
			b.Reset()
			return err
		}
		b.Bind(f.Name, v)
	}
	return nil
}

// BindToValues returns every column of r keyed by column name.
func (a *Adapter[T]) BindToValues(r T) (map[string]any, error) {
	return a.bindMap(r, true)
}

// BindToInsertValues returns the columns of r keyed by column name, leaving
// out the autoincrement key column.
func (a *Adapter[T]) BindToInsertValues(r T) (map[string]any, error) {
	return a.bindMap(r, false)
}

func (a *Adapter[T]) bindMap(r T, includeAutoIncrement bool) (map[string]any, error) {
	b := NewBinding(len(a.columns))
	if err := a.BindForExecution(b, r, includeAutoIncrement); err != nil {
		return nil, err
	}
	return b.Map(), nil
}

// Insert writes r as a new row. For autoincrement tables the key assigned by
// the store is written back into r. When that write-back fails the row has
// already been stored; Insert then returns a *WriteBackError, never a
// *BindingError.
func (a *Adapter[T]) Insert(ctx context.Context, exec Executor, r T) (Result, error) {
	b := NewBinding(len(a.columns))
	if err := a.BindForExecution(b, r, false); err != nil {
		return Result{}, err
	}
	q := Query{
		Action:        ActionInsert,
		Table:         a.table.Name,
		Binding:       b,
		AutoIncrement: a.AutoIncrement(),
	}
	res, err := exec.Execute(ctx, q)
	if err != nil {
		return res, err
	}
	if a.AutoIncrement() {
		if err := a.UpdateAutoIncrement(r, res.LastInsertID); err != nil {
			return res, &WriteBackError{Table: a.table.Name, Column: a.pk.Name, Err: err}
		}
	}
	return res, nil
}

// Update rewrites the row identified by r's primary key.
// A missing row is not an error; Result.RowsAffected is then zero.
func (a *Adapter[T]) Update(ctx context.Context, exec Executor, r T) (Result, error) {
	key, err := a.keyValue(r)
	if err != nil {
		return Result{}, err
	}
	b := NewBinding(len(a.columns))
	if err := a.BindForExecution(b, r, false); err != nil {
		return Result{}, err
	}
	q := Query{
		Action:     ActionUpdate,
		Table:      a.table.Name,
		Binding:    b,
		Conditions: []Condition{Eq(a.pk.Name, key)},
	}
	return exec.Execute(ctx, q)
}

// Delete removes the row identified by r's primary key.
// A missing row is not an error; Result.RowsAffected is then zero.
func (a *Adapter[T]) Delete(ctx context.Context, exec Executor, r T) (Result, error) {
	key, err := a.keyValue(r)
	if err != nil {
		return Result{}, err
	}
	q := Query{
		Action:     ActionDelete,
		Table:      a.table.Name,
		Conditions: []Condition{Eq(a.pk.Name, key)},
	}
	return exec.Execute(ctx, q)
}

// Save inserts r when it is not persisted yet and updates it otherwise.
//
// For autoincrement tables a zero key means "not persisted": Save is Insert
// for such records and Update for every other one. Caller-supplied keys are
// always set, so Save runs Update and falls back to Insert when no row was
// affected. The two key kinds therefore differ when the row is missing: an
// autoincrement record with a non-zero key ends as a zero-row update, while a
// caller-keyed record is inserted.
func (a *Adapter[T]) Save(ctx context.Context, exec Executor, r T) (Result, error) {
	if a.AutoIncrement() {
		id, err := a.AutoIncrementID(r)
		if err != nil {
			return Result{}, err
		}
		if id == 0 {
			return a.Insert(ctx, exec, r)
		}
		return a.Update(ctx, exec, r)
	}

	res, err := a.Update(ctx, exec, r)
	if err != nil || res.RowsAffected > 0 {
		return res, err
	}
	return a.Insert(ctx, exec, r)
}

// UpdateAutoIncrement stores id into r's autoincrement key.
// Tables whose key is supplied by the caller have no autoincrement column;
// for them it returns an *UnsupportedOperationError and leaves r untouched.
func (a *Adapter[T]) UpdateAutoIncrement(r T, id int64) error {
	if !a.AutoIncrement() {
		return &UnsupportedOperationError{Table: a.table.Name, Op: "UpdateAutoIncrement"}
	}
	if id <= 0 {
		return bindErr(a.table.Name, a.pk.Name, fmt.Sprintf("autoincrement id must be positive, got %d", id))
	}
	ptrs := r.Pointers()
	if len(ptrs) != len(a.table.Fields) {
		return a.countErr("pointers", len(ptrs))
	}
	if !assignInt(ptrs[a.pkIndex], id) {
		return bindErr(a.table.Name, a.pk.Name, fmt.Sprintf("cannot store id %d into the record", id))
	}
	return nil
}

// AutoIncrementID returns r's autoincrement key, or 0 when it is unset.
func (a *Adapter[T]) AutoIncrementID(r T) (int64, error) {
	if !a.AutoIncrement() {
		return 0, &UnsupportedOperationError{Table: a.table.Name, Op: "AutoIncrementID"}
	}
	vals, err := a.values(r)
	if err != nil {
		return 0, err
	}
	v, ok := normalize(TypeInt64, vals[a.pkIndex])
	if !ok {
		return 0, a.typeErr(a.pkIndex, vals[a.pkIndex])
	}
	if v == nil {
		return 0, nil
	}
	return v.(int64), nil
}

// HasValidKey reports whether r's primary key identifies a row. An
// autoincrement key is valid once it is positive; a caller-supplied key is
// valid whenever it is non-nil, so 0 and "" are usable keys.
func (a *Adapter[T]) HasValidKey(r T) bool {
	vals := r.Values()
	if len(vals) != len(a.table.Fields) {
		return false
	}
	v, ok := normalize(a.pk.Type, vals[a.pkIndex])
	return ok && validKey(v, a.AutoIncrement())
}

// CachingKey returns the numeric identity of the row r represents.
// By default it is the integer primary key; tables with other key types must
// configure WithCachingKey.
func (a *Adapter[T]) CachingKey(r T) (int64, error) {
	if a.cachingKey != nil {
		return a.cachingKey(r)
	}
	if a.pk.Type != TypeInt64 {
		return 0, &UnsupportedOperationError{Table: a.table.Name, Op: "CachingKey"}
	}
	key, err := a.keyValue(r)
	if err != nil {
		return 0, err
	}
	if !validKey(key, a.AutoIncrement()) {
		return 0, bindErr(a.table.Name, a.pk.Name, "primary key is not set")
	}
	return key.(int64), nil
}

func (a *Adapter[T]) keyValue(r T) (any, error) {
	vals, err := a.values(r)
	if err != nil {
		return nil, err
	}
	return a.column(a.pkIndex, vals[a.pkIndex])
}

func (a *Adapter[T]) values(r T) ([]any, error) {
	vals := r.Values()
	if len(vals) != len(a.table.Fields) {
		return nil, a.countErr("values", len(vals))
	}
	return vals, nil
}

func (a *Adapter[T]) column(i int, v any) (any, error) {
	f := a.table.Fields[i]
	out, ok := normalize(f.Type, v)
	if !ok {
		return nil, a.typeErr(i, v)
	}
	if out == nil && f.Required() {
		return nil, bindErr(a.table.Name, f.Name, "required value is missing")
	}
	return out, nil
}

func (a *Adapter[T]) typeErr(i int, v any) error {
	f := a.table.Fields[i]
	return bindErr(a.table.Name, f.Name, fmt.Sprintf("cannot bind %s as %s", reflect.TypeOf(v).String(), f.Type.String()))
}

func (a *Adapter[T]) countErr(what string, n int) error {
	return bindErr(a.table.Name, "", fmt.Sprintf("record has %d %s for %d columns", n, what, len(a.table.Fields)))
}
