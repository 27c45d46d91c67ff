package adapter

import "github.com/tinywasm/fmt"

func validate(t Table) error {
	if t.Name == "" {
		return ErrEmptyTable
	}
	if len(t.Fields) == 0 {
		return fmt.Err(ErrInvalidTable, t.Name, "has no fields")
	}

	seen := make(map[string]bool, len(t.Fields))
	pks := 0
	for _, f := range t.Fields {
		if f.Name == "" {
			return fmt.Err(ErrInvalidTable, t.Name, "has a field without name")
		}
		if seen[f.Name] {
			return fmt.Err(ErrInvalidTable, t.Name, "duplicate column", f.Name)
		}
		seen[f.Name] = true

		if f.IsPK() {
			pks++
		}
		if f.IsAutoIncrement() {
			if !f.IsPK() {
				return fmt.Err(ErrInvalidTable, t.Name, "autoincrement column", f.Name, "is not the primary key")
			}
			if f.Type != TypeInt64 {
				return fmt.Err(ErrInvalidTable, t.Name, "autoincrement not allowed on", f.Type.String())
			}
		}
	}

	if pks != 1 {
		return fmt.Err(ErrInvalidTable, t.Name, "must declare exactly one primary key")
	}
	return nil
}
