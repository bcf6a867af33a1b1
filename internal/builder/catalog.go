package builder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/tobsdb/primdb/internal/types"
	"github.com/tobsdb/primdb/pkg"
)

// Catalog maps table names to their schema, keeping creation order.
type Catalog struct {
	Tables *pkg.InsertSortMap[string, *Table]
}

func NewCatalog() *Catalog {
	return &Catalog{Tables: pkg.NewInsertSortMap[string, *Table]()}
}

func (c *Catalog) CreateTable(name string, specs []string) (*Table, error) {
	if c.Tables.Has(name) {
		return nil, types.NewError(types.ErrorKindAlreadyExists, "Table \"%s\" already exists", name)
	}

	t, err := BuildTable(name, specs)
	if err != nil {
		return nil, err
	}

	c.Tables.Push(name, t)
	return t, nil
}

func (c *Catalog) DropTable(name string) error {
	if !c.Tables.Has(name) {
		return tableNotFound(name)
	}
	c.Tables.Delete(name)
	return nil
}

func (c *Catalog) ListTables() iter.Seq[string] {
	return c.Tables.Keys()
}

func (c *Catalog) Table(name string) (*Table, error) {
	if !c.Tables.Has(name) {
		return nil, tableNotFound(name)
	}
	return c.Tables.Get(name), nil
}

func (c *Catalog) Len() int { return c.Tables.Len() }

func tableNotFound(name string) error {
	return types.NewError(types.ErrorKindNotFound, "Table \"%s\" does not exist", name)
}

func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for name, t := range c.Tables.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(t)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the catalog object token by token so table order survives.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("catalog must be a JSON object")
	}

	tables := pkg.NewInsertSortMap[string, *Table]()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name := tok.(string)

		t := &Table{Name: name}
		if err := dec.Decode(t); err != nil {
			return fmt.Errorf("table %s: %w", name, err)
		}
		tables.Push(name, t)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	c.Tables = tables
	return nil
}
