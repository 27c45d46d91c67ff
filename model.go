package adapter

// Record represents one caller-owned row value.
// Values() and Pointers() MUST follow the Fields order of the Table the
// record is adapted to.
type Record interface {
	Values() []any
	Pointers() []any
}

// Table is the static metadata an Adapter is bound to.
type Table struct {
	Name   string
	Fields []Field
}

// Columns returns the column names in table order.
func (t Table) Columns() []string {
	cols := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		cols[i] = f.Name
	}
	return cols
}

// PrimaryKey returns the primary key field and its position.
// The position is -1 when the table declares no primary key.
func (t Table) PrimaryKey() (Field, int) {
	for i, f := range t.Fields {
		if f.IsPK() {
			return f, i
		}
	}
	return Field{}, -1
}

// AutoIncrement reports whether the table's primary key is assigned by the store.
func (t Table) AutoIncrement() bool {
	pk, i := t.PrimaryKey()
	return i >= 0 && pk.IsAutoIncrement()
}
