package generate

import (
	"fmt"

	"github.com/tobsdb/primdb/internal/types"
)

func SchemaToTypescript(s []ParsedTable) []byte {
	res := "export type Schema = {\n"
	for _, t := range s {
		table := fmt.Sprintf("\t%s: {\n%s\n\t};\n", t.Name, fieldsToTypescript(t.Fields))
		res += table
	}
	res += "};\n"
	return []byte(res)
}

func fieldsToTypescript(fields []ParsedField) string {
	res := ""
	for i, f := range fields {
		res += fmt.Sprintf("\t\t%s: %s;", f.Name, tdbTypeToTypescript(f.BuiltinType))
		if i < len(fields)-1 {
			res += "\n"
		}
	}
	return res
}

func tdbTypeToTypescript(t types.FieldType) string {
	switch t {
	case types.FieldTypeInt:
		return "number"
	case types.FieldTypeString:
		return "string"
	case types.FieldTypeBool:
		return "boolean"
	}
	return "unknown"
}
