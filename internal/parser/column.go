package parser

import (
	"regexp"
	"strings"

	"github.com/tobsdb/primdb/internal/types"
)

var name_pattern = regexp.MustCompile(`^[\p{L}_][\p{L}\p{N}_]*$`)

type ColumnData struct {
	Name        string
	BuiltinType types.FieldType
}

// ParseColumnSpec parses a "name:kind" column declaration.
func ParseColumnSpec(spec string) (*ColumnData, error) {
	name, kind, found := strings.Cut(spec, ":")
	if !found {
		return nil, types.NewError(types.ErrorKindFormat,
			"Invalid column format '%s'. Use name:type", spec)
	}
	if err := ValidateName("Column", name); err != nil {
		return nil, err
	}

	builtin_type := types.FieldType(kind)
	if err := types.ValidateFieldType(builtin_type); err != nil {
		return nil, err
	}

	return &ColumnData{Name: name, BuiltinType: builtin_type}, nil
}

// ValidateName checks table and column names; what is "Table" or "Column".
func ValidateName(what, name string) error {
	if len(name) == 0 {
		return types.NewError(types.ErrorKindFormat, "%s name cannot be empty", what)
	}
	if !name_pattern.MatchString(name) {
		return types.NewError(types.ErrorKindFormat, "%s name contains invalid characters: %s", what, name)
	}
	return nil
}
