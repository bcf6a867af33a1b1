package storage

import (
	"encoding/json"

	"github.com/tobsdb/primdb/internal/builder"
	"github.com/tobsdb/primdb/pkg"
)

// MemStore holds encoded documents in memory so every load hands out fresh values,
// the same as reading files back.
type MemStore struct {
	catalog []byte
	rows    pkg.Map[string, []byte]
}

func NewMemStore() *MemStore {
	return &MemStore{rows: pkg.Map[string, []byte]{}}
}

func (s *MemStore) LoadCatalog() (*builder.Catalog, error) {
	c := builder.NewCatalog()
	if s.catalog == nil {
		return c, nil
	}
	if err := json.Unmarshal(s.catalog, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *MemStore) SaveCatalog(c *builder.Catalog) error {
	buf, err := json.Marshal(c)
	if err != nil {
		return err
	}
	s.catalog = buf
	return nil
}

func (s *MemStore) LoadRows(table string) ([]builder.Row, error) {
	rows := []builder.Row{}
	if !s.rows.Has(table) {
		return rows, nil
	}

	var raw []map[string]any
	if err := json.Unmarshal(s.rows.Get(table), &raw); err != nil {
		return nil, err
	}
	for _, r := range raw {
		row := builder.Row{}
		for k, v := range r {
			row.Set(k, pkg.NormalizeNumber(v))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *MemStore) SaveRows(table string, rows []builder.Row) error {
	if rows == nil {
		rows = []builder.Row{}
	}
	buf, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	s.rows.Set(table, buf)
	return nil
}

func (s *MemStore) DeleteRows(table string) error {
	s.rows.Delete(table)
	return nil
}
