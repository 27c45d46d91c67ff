package adapter

// Binding is an ordered set of column/value slots prepared for one statement.
// It is filled by Adapter.BindForExecution and discarded after use.
type Binding struct {
	columns []string
	args    []any
}

// NewBinding returns an empty binding with room for n slots.
func NewBinding(n int) *Binding {
	return &Binding{
		columns: make([]string, 0, n),
		args:    make([]any, 0, n),
	}
}

// Bind appends one slot.
func (b *Binding) Bind(column string, value any) {
	b.columns = append(b.columns, column)
	b.args = append(b.args, value)
}

// Columns returns the bound column names in bind order.
func (b *Binding) Columns() []string { return b.columns }

// Args returns the bound values in bind order.
func (b *Binding) Args() []any { return b.args }

// Len returns the number of bound slots.
func (b *Binding) Len() int { return len(b.columns) }

// Value returns the value bound to column.
func (b *Binding) Value(column string) (any, bool) {
	for i, c := range b.columns {
		if c == column {
			return b.args[i], true
		}
	}
	return nil, false
}

// Map returns the content-values view of the binding.
func (b *Binding) Map() map[string]any {
	m := make(map[string]any, len(b.columns))
	for i, c := range b.columns {
		m[c] = b.args[i]
	}
	return m
}

// Reset empties the binding, keeping its capacity.
func (b *Binding) Reset() {
	b.columns = b.columns[:0]
	b.args = b.args[:0]
}
