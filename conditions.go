package adapter

// Condition selects rows for update and delete statements.
// It is a sealed value type constructed via Eq.
type Condition struct {
	field    string
	operator string
	value    any
}

func (c Condition) Field() string    { return c.field }
func (c Condition) Operator() string { return c.operator }
func (c Condition) Value() any       { return c.value }

// Eq creates a condition for checking equality.
func Eq(field string, value any) Condition {
	return Condition{
		field:    field,
		operator: "=",
		value:    value,
	}
}
