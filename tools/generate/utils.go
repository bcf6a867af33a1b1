package generate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tobsdb/primdb/internal/builder"
	"github.com/tobsdb/primdb/internal/types"
)

func toPascalCase(t string) string {
	res := ""
	for _, v := range strings.Split(t, "_") {
		if len(v) == 0 {
			continue
		}
		r, size := utf8.DecodeRuneInString(v)
		res += string(unicode.ToUpper(r)) + v[size:]
	}
	if len(res) == 0 {
		return "X"
	}
	return res
}

type (
	ParsedTable struct {
		Name   string        `json:"name"`
		Fields []ParsedField `json:"fields"`
	}

	ParsedField struct {
		Name        string          `json:"name"`
		BuiltinType types.FieldType `json:"type"`
	}
)

func catalogDestructure(c *builder.Catalog) []ParsedTable {
	res := []ParsedTable{}
	for name, t := range c.Tables.All() {
		fields := []ParsedField{}
		for _, f := range t.Fields {
			fields = append(fields, ParsedField{f.Name, f.BuiltinType})
		}
		res = append(res, ParsedTable{name, fields})
	}
	return res
}
