package generate

import (
	"fmt"

	"github.com/tobsdb/primdb/internal/types"
)

func SchemaToGo(s []ParsedTable) []byte {
	res := "package schema\n"

	for _, t := range s {
		table := fmt.Sprintf("\ntype %s struct {\n%s\n}\n",
			toPascalCase(t.Name), fieldsToGo(t.Fields))
		res += table
	}

	return []byte(res)
}

func fieldsToGo(fields []ParsedField) string {
	res := ""
	for i, f := range fields {
		res += fmt.Sprintf("\t%s %s `json:\"%s\"`", toPascalCase(f.Name),
			tdbTypeToGo(f.BuiltinType), f.Name)
		if i < len(fields)-1 {
			res += "\n"
		}
	}
	return res
}

func tdbTypeToGo(t types.FieldType) string {
	switch t {
	case types.FieldTypeInt:
		return "int"
	case types.FieldTypeString:
		return "string"
	case types.FieldTypeBool:
		return "bool"
	}
	return "any"
}
