package builder

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tobsdb/primdb/internal/parser"
	"github.com/tobsdb/primdb/internal/types"
)

// Table is the ordered column list of one table.
// It is stored as a bare JSON array of {name, type} objects; the name is the catalog key.
type Table struct {
	Name   string
	Fields []*Field
}

// BuildTable parses column specs into a schema headed by the ID column.
// A spec named id (any case) becomes the ID column in place; otherwise one is prepended.
func BuildTable(name string, specs []string) (*Table, error) {
	if err := parser.ValidateName("Table", name); err != nil {
		return nil, err
	}

	t := &Table{Name: name, Fields: make([]*Field, 0, len(specs)+1)}
	seen := map[string]bool{}
	has_primary_key := false

	for _, spec := range specs {
		data, err := parser.ParseColumnSpec(spec)
		if err != nil {
			return nil, err
		}

		field := NewField(data)
		if err := CheckFieldRules(field); err != nil {
			return nil, err
		}
		if seen[field.Name] {
			return nil, types.NewError(types.ErrorKindAlreadyExists, "duplicate column %s", field.Name)
		}
		seen[field.Name] = true

		if field.IsPrimaryKey() {
			has_primary_key = true
		}
		t.Fields = append(t.Fields, field)
	}

	if !has_primary_key {
		t.Fields = append([]*Field{{Name: SYS_PRIMARY_KEY, BuiltinType: types.FieldTypeInt}}, t.Fields...)
	}

	return t, nil
}

func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Fields)
}

func (t *Table) UnmarshalJSON(data []byte) error {
	var fields []*Field
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	seen := map[string]bool{}
	primary_keys := 0
	for _, field := range fields {
		if err := CheckFieldRules(field); err != nil {
			return err
		}
		if seen[field.Name] {
			return types.NewError(types.ErrorKindAlreadyExists, "duplicate column %s", field.Name)
		}
		seen[field.Name] = true
		if field.IsPrimaryKey() {
			primary_keys++
		}
	}
	if primary_keys != 1 {
		return types.NewError(types.ErrorKindFormat, "table must have an %s column", SYS_PRIMARY_KEY)
	}
	t.Fields = fields
	return nil
}

func (t *Table) Field(name string) *Field {
	for _, field := range t.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

func (t *Table) PrimaryKey() *Field {
	return t.Field(SYS_PRIMARY_KEY)
}

// DataFields are the columns filled by insert, in declared order.
func (t *Table) DataFields() []*Field {
	fields := make([]*Field, 0, len(t.Fields))
	for _, field := range t.Fields {
		if !field.IsPrimaryKey() {
			fields = append(fields, field)
		}
	}
	return fields
}

func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Fields))
	for i, field := range t.Fields {
		names[i] = field.Name
	}
	return names
}

// Summary renders the columns as "ID:int, name:str, ...".
func (t *Table) Summary() string {
	parts := make([]string, len(t.Fields))
	for i, field := range t.Fields {
		parts[i] = field.String()
	}
	return strings.Join(parts, ", ")
}

// CheckRow lists every way row disagrees with the table's columns.
func (t *Table) CheckRow(row Row) []error {
	problems := []error{}

	for _, field := range t.Fields {
		if !row.Has(field.Name) {
			problems = append(problems, fmt.Errorf("missing column %s", field.Name))
			continue
		}
		if !types.CheckValue(row.Get(field.Name), field.BuiltinType) {
			problems = append(problems, fmt.Errorf("column %s: %v is not of type %s",
				field.Name, row.Get(field.Name), field.BuiltinType))
		}
	}

	for _, key := range row.Keys() {
		if t.Field(key) == nil {
			problems = append(problems, fmt.Errorf("unknown column %s", key))
		}
	}

	if id, ok := row.Get(SYS_PRIMARY_KEY).(int); ok && id < 1 {
		problems = append(problems, fmt.Errorf("%s must be positive, got %d", SYS_PRIMARY_KEY, id))
	}

	return problems
}
