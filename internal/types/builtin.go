package types

import (
	"slices"
	"strings"
)

var VALID_BUILTIN_TYPES = []FieldType{
	FieldTypeInt, FieldTypeString, FieldTypeBool,
}

type FieldType string

const (
	FieldTypeInt    FieldType = "int"
	FieldTypeString FieldType = "str"
	FieldTypeBool   FieldType = "bool"
)

func (t FieldType) IsValid() bool {
	return slices.Contains(VALID_BUILTIN_TYPES, t)
}

// ValidTypesString lists the kind set for error messages, e.g. "{int, str, bool}".
func ValidTypesString() string {
	names := make([]string, len(VALID_BUILTIN_TYPES))
	for i, t := range VALID_BUILTIN_TYPES {
		names[i] = string(t)
	}
	return "{" + strings.Join(names, ", ") + "}"
}

func ValidateFieldType(t FieldType) error {
	if !t.IsValid() {
		return NewError(ErrorKindInvalidType,
			"Invalid field type '%s'. Allowed: %s", t, ValidTypesString())
	}
	return nil
}
