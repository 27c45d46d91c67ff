package adapter_test

import (
	"context"

	"github.com/tinywasm/adapter"
)

// MockExecutor captures executed queries and returns predefined results.
type MockExecutor struct {
	Queries      []adapter.Query
	ReturnResult adapter.Result
	ReturnErr    error
	// Results, when set, is consumed one entry per call before ReturnResult.
	Results []adapter.Result
}

func (m *MockExecutor) Execute(ctx context.Context, q adapter.Query) (adapter.Result, error) {
	m.Queries = append(m.Queries, q)
	if m.ReturnErr != nil {
		return adapter.Result{}, m.ReturnErr
	}
	if len(m.Results) > 0 {
		res := m.Results[0]
		m.Results = m.Results[1:]
		return res, nil
	}
	return m.ReturnResult, nil
}

func (m *MockExecutor) Last() adapter.Query {
	if len(m.Queries) == 0 {
		return adapter.Query{}
	}
	return m.Queries[len(m.Queries)-1]
}

// User has a store-assigned key.
type User struct {
	ID    int64
	Name  string
	Email *string
	Score float64
}

var userTable = adapter.Table{
	Name: "users",
	Fields: []adapter.Field{
		{Name: "id", Type: adapter.TypeInt64, Constraints: adapter.ConstraintPK | adapter.ConstraintAutoIncrement},
		{Name: "name", Type: adapter.TypeText, Constraints: adapter.ConstraintNotNull},
		{Name: "email", Type: adapter.TypeText, Constraints: adapter.ConstraintUnique},
		{Name: "score", Type: adapter.TypeFloat64},
	},
}

func (u *User) Values() []any   { return []any{u.ID, u.Name, u.Email, u.Score} }
func (u *User) Pointers() []any { return []any{&u.ID, &u.Name, &u.Email, &u.Score} }

// Setting has a caller-supplied text key.
type Setting struct {
	Key     string
	Value   []byte
	Enabled bool
}

var settingTable = adapter.Table{
	Name: "settings",
	Fields: []adapter.Field{
		{Name: "key", Type: adapter.TypeText, Constraints: adapter.ConstraintPK},
		{Name: "value", Type: adapter.TypeBlob},
		{Name: "enabled", Type: adapter.TypeBool, Constraints: adapter.ConstraintNotNull},
	},
}

func (s *Setting) Values() []any   { return []any{s.Key, s.Value, s.Enabled} }
func (s *Setting) Pointers() []any { return []any{&s.Key, &s.Value, &s.Enabled} }

// Order has a caller-supplied integer key.
type Order struct {
	Number uint32
	Total  int
}

var orderTable = adapter.Table{
	Name: "orders",
	Fields: []adapter.Field{
		{Name: "number", Type: adapter.TypeInt64, Constraints: adapter.ConstraintPK},
		{Name: "total", Type: adapter.TypeInt64},
	},
}

func (o *Order) Values() []any   { return []any{o.Number, o.Total} }
func (o *Order) Pointers() []any { return []any{&o.Number, &o.Total} }

// Broken reports fewer values than its table declares.
type Broken struct{ ID int64 }

func (b *Broken) Values() []any   { return []any{b.ID} }
func (b *Broken) Pointers() []any { return []any{&b.ID} }

func strPtr(s string) *string { return &s }
