package storage

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	sorted "github.com/tobshub/go-sortedmap"

	"github.com/tobsdb/primdb/internal/builder"
	"github.com/tobsdb/primdb/pkg"
)

const JSON_INDENT = "    "

// FileStore keeps the catalog in one JSON document and each table's rows
// in <data_dir>/<table>.json.
type FileStore struct {
	meta_path string
	data_dir  string
}

func NewFileStore(meta_path, data_dir string) *FileStore {
	return &FileStore{meta_path: meta_path, data_dir: data_dir}
}

func (s *FileStore) MetaPath() string { return s.meta_path }

func (s *FileStore) DataDir() string { return s.data_dir }

func (s *FileStore) RowsPath(table string) string {
	return filepath.Join(s.data_dir, table+".json")
}

func (s *FileStore) LoadCatalog() (*builder.Catalog, error) {
	c := builder.NewCatalog()
	buf, err := readIfExists(s.meta_path)
	if err != nil || buf == nil {
		return c, err
	}

	if err := json.Unmarshal(buf, c); err != nil {
		return nil, errors.Wrapf(err, "failed to decode catalog %s", s.meta_path)
	}
	slog.Debug("loaded catalog", "path", s.meta_path, "tables", c.Len())
	return c, nil
}

func (s *FileStore) SaveCatalog(c *builder.Catalog) error {
	return writeJSON(s.meta_path, c)
}

// LoadRows returns the table's rows ordered by ID. When a document holds
// the same ID twice the later row wins.
func (s *FileStore) LoadRows(table string) ([]builder.Row, error) {
	rows, err := s.ReadRows(table)
	if err != nil {
		return nil, err
	}
	rows = SortRows(rows)
	slog.Debug("loaded rows", "table", table, "count", len(rows))
	return rows, nil
}

// ReadRows decodes the table's document as stored, without reordering.
func (s *FileStore) ReadRows(table string) ([]builder.Row, error) {
	path := s.RowsPath(table)
	buf, err := readIfExists(path)
	if err != nil {
		return nil, err
	}
	if buf == nil {
		return []builder.Row{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.UseNumber()
	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrapf(err, "failed to decode rows %s", path)
	}

	rows := make([]builder.Row, len(raw))
	for i, r := range raw {
		row := builder.Row{}
		for k, v := range r {
			row.Set(k, pkg.NormalizeNumber(v))
		}
		rows[i] = row
	}
	return rows, nil
}

// Documents lists the table names that have a row document in the data directory.
func (s *FileStore) Documents() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.data_dir, "*.json"))
	if err != nil {
		return nil, err
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = strings.TrimSuffix(filepath.Base(m), ".json")
	}
	return names, nil
}

func (s *FileStore) SaveRows(table string, rows []builder.Row) error {
	if rows == nil {
		rows = []builder.Row{}
	}
	return writeJSON(s.RowsPath(table), rows)
}

func (s *FileStore) DeleteRows(table string) error {
	err := os.Remove(s.RowsPath(table))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to delete rows of %s", table)
	}
	return nil
}

// SortRows orders rows by primary key, collapsing duplicate keys.
// Rows without a positive int ID are kept after the sorted rows, in file order.
func SortRows(rows []builder.Row) []builder.Row {
	m := sorted.New[int, builder.Row](len(rows), func(a, b builder.Row) bool {
		return builder.GetPrimaryKey(a) < builder.GetPrimaryKey(b)
	})
	invalid := []builder.Row{}
	for _, row := range rows {
		key, ok := row.Get(builder.SYS_PRIMARY_KEY).(int)
		if !ok || key < 1 {
			slog.Warn("row has no valid id", "id", row.Get(builder.SYS_PRIMARY_KEY))
			invalid = append(invalid, row)
			continue
		}
		if !m.Insert(key, row) {
			slog.Warn("duplicate row id, keeping the last one", "id", key)
			m.Replace(key, row)
		}
	}

	sorted_rows := make([]builder.Row, 0, len(rows))
	iterCh, err := m.IterCh()
	if err == nil {
		for rec := range iterCh.Records() {
			sorted_rows = append(sorted_rows, rec.Val)
		}
	}
	return append(sorted_rows, invalid...)
}

func readIfExists(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	if len(bytes.TrimSpace(buf)) == 0 {
		return nil, nil
	}
	return buf, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}

	buf, err := json.MarshalIndent(v, "", JSON_INDENT)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", path)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	slog.Debug("saved document", "path", path)
	return nil
}
