package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/tinywasm/adapter"
)

// CreateTable creates t if it does not exist yet. It never alters an
// existing table.
func (s *Store) CreateTable(ctx context.Context, t adapter.Table) error {
	ddl, err := CreateTableSQL(t)
	if err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create table %s: %w", t.Name, err)
	}
	return nil
}

// CreateTableSQL returns the CREATE TABLE IF NOT EXISTS statement for t.
func CreateTableSQL(t adapter.Table) (string, error) {
	if t.Name == "" {
		return "", adapter.ErrEmptyTable
	}
	if len(t.Fields) == 0 {
		return "", fmt.Errorf("table %s has no fields", t.Name)
	}

	defs := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		def := quoteIdent(f.Name) + " " + columnType(f.Type)
		switch {
		case f.IsPK() && f.IsAutoIncrement():
			def += " PRIMARY KEY AUTOINCREMENT"
		case f.IsPK():
			def += " PRIMARY KEY NOT NULL"
		default:
			if f.Constraints&adapter.ConstraintNotNull != 0 {
				def += " NOT NULL"
			}
			if f.Constraints&adapter.ConstraintUnique != 0 {
				def += " UNIQUE"
			}
		}
		defs = append(defs, def)
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n    %s\n)", quoteIdent(t.Name), strings.Join(defs, ",\n    ")), nil
}

func columnType(t adapter.FieldType) string {
	switch t {
	case adapter.TypeInt64, adapter.TypeBool:
		return "INTEGER"
	case adapter.TypeFloat64:
		return "REAL"
	case adapter.TypeBlob:
		return "BLOB"
	}
	return "TEXT"
}
