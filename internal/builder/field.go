package builder

import (
	"strings"

	"github.com/tobsdb/primdb/internal/parser"
	"github.com/tobsdb/primdb/internal/types"
)

const SYS_PRIMARY_KEY = "ID"

type Field struct {
	Name        string          `json:"name"`
	BuiltinType types.FieldType `json:"type"`
}

func NewField(data *parser.ColumnData) *Field {
	name := data.Name
	if strings.EqualFold(name, SYS_PRIMARY_KEY) {
		name = SYS_PRIMARY_KEY
	}
	return &Field{Name: name, BuiltinType: data.BuiltinType}
}

func (f *Field) IsPrimaryKey() bool { return f.Name == SYS_PRIMARY_KEY }

func (f *Field) String() string { return f.Name + ":" + string(f.BuiltinType) }

// field local rules:
// - primary key field must be type int
// - field type must be a builtin type
func CheckFieldRules(field *Field) error {
	if err := types.ValidateFieldType(field.BuiltinType); err != nil {
		return err
	}
	if field.IsPrimaryKey() && field.BuiltinType != types.FieldTypeInt {
		return types.NewError(types.ErrorKindInvalidType,
			"column %s must be of type %s", SYS_PRIMARY_KEY, types.FieldTypeInt)
	}
	return nil
}
