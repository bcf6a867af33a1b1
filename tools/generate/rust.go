package generate

import (
	"fmt"
	"strings"

	"github.com/tobsdb/primdb/internal/types"
)

func SchemaToRust(s []ParsedTable) []byte {
	res := "use serde::{Deserialize, Serialize};\n"

	for _, t := range s {
		table := fmt.Sprintf("\n#[derive(Serialize, Deserialize)]\npub struct %s {\n%s\n}\n",
			toPascalCase(t.Name), fieldsToRust(t.Fields))
		res += table
	}

	return []byte(res)
}

// rust fields are snake_case; a rename keeps the stored column name.
func fieldsToRust(fields []ParsedField) string {
	res := ""
	for i, f := range fields {
		name := strings.ToLower(f.Name)
		if name != f.Name {
			res += fmt.Sprintf("\t#[serde(rename = \"%s\")]\n", f.Name)
		}
		res += fmt.Sprintf("\tpub %s: %s,", name, tdbTypeToRust(f.BuiltinType))
		if i < len(fields)-1 {
			res += "\n"
		}
	}
	return res
}

func tdbTypeToRust(t types.FieldType) string {
	switch t {
	case types.FieldTypeInt:
		return "i64"
	case types.FieldTypeString:
		return "String"
	case types.FieldTypeBool:
		return "bool"
	}
	return "serde_json::Value"
}
