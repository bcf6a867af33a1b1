package generate

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/tobsdb/primdb/internal/builder"
	"github.com/tobsdb/primdb/internal/types"
)

// SchemaToJsonSchema describes each table's row document under $defs.
func SchemaToJsonSchema(s []ParsedTable) ([]byte, error) {
	root := &jsonschema.Schema{
		Version:     jsonschema.Version,
		Definitions: jsonschema.Definitions{},
	}

	for _, t := range s {
		row := &jsonschema.Schema{
			Title:                t.Name,
			Type:                 "object",
			Properties:           jsonschema.NewProperties(),
			AdditionalProperties: jsonschema.FalseSchema,
		}
		for _, f := range t.Fields {
			prop := &jsonschema.Schema{Type: tdbTypeToJsonSchema(f.BuiltinType)}
			if f.Name == builder.SYS_PRIMARY_KEY {
				prop.Minimum = json.Number("1")
			}
			row.Properties.Set(f.Name, prop)
			row.Required = append(row.Required, f.Name)
		}
		root.Definitions[t.Name] = row
	}

	return json.MarshalIndent(root, "", "  ")
}

func tdbTypeToJsonSchema(t types.FieldType) string {
	switch t {
	case types.FieldTypeInt:
		return "integer"
	case types.FieldTypeString:
		return "string"
	case types.FieldTypeBool:
		return "boolean"
	}
	return ""
}
