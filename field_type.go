package adapter

// FieldType represents the abstract storage type of a table column.
type FieldType int

const (
	TypeText FieldType = iota
	TypeInt64
	TypeFloat64
	TypeBool
	TypeBlob
)

func (t FieldType) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeInt64:
		return "int64"
	case TypeFloat64:
		return "float64"
	case TypeBool:
		return "bool"
	case TypeBlob:
		return "blob"
	}
	return "unknown"
}

// Constraint is a bitmask of column-level constraints.
// ConstraintNone = 0 is defined separately to avoid shifting iota off-by-one.
type Constraint int

const ConstraintNone Constraint = 0

const (
	ConstraintPK            Constraint = 1 << iota // 1: Primary Key
	ConstraintUnique                               // 2: UNIQUE
	ConstraintNotNull                              // 4: NOT NULL
	ConstraintAutoIncrement                        // 8: key assigned by the store on insert
)

// Field describes a single column of a table.
// A Table's Fields and a Record's Values() MUST always be in the same order.
type Field struct {
	Name        string
	Type        FieldType
	Constraints Constraint
}

// IsPK reports whether the field is the table's primary key.
func (f Field) IsPK() bool { return f.Constraints&ConstraintPK != 0 }

// IsAutoIncrement reports whether the store assigns the field's value on insert.
func (f Field) IsAutoIncrement() bool { return f.Constraints&ConstraintAutoIncrement != 0 }

// Required reports whether a nil value is rejected at bind time.
// Primary keys are always required.
func (f Field) Required() bool {
	return f.Constraints&(ConstraintNotNull|ConstraintPK) != 0
}
