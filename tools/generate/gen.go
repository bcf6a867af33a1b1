package generate

import (
	"encoding/json"
	"fmt"

	"github.com/tobsdb/primdb/internal/builder"
)

var SUPPORTED_LANGS = []string{"go", "ts", "rust", "json", "jsonschema"}

func SchemaToLang(c *builder.Catalog, lang string) ([]byte, error) {
	s := catalogDestructure(c)
	switch lang {
	case "json":
		return SchemaToJson(s)
	case "jsonschema":
		return SchemaToJsonSchema(s)
	case "typescript":
		fallthrough
	case "ts":
		return SchemaToTypescript(s), nil
	case "rust":
		fallthrough
	case "rs":
		return SchemaToRust(s), nil
	case "golang":
		fallthrough
	case "go":
		return SchemaToGo(s), nil
	default:
		return nil, fmt.Errorf("Unsupported Language: %s", lang)
	}
}

func SchemaToJson(s []ParsedTable) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
