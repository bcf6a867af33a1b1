package query

import (
	"iter"

	"github.com/tobsdb/primdb/internal/builder"
	"github.com/tobsdb/primdb/internal/types"
)

// Engine runs catalog and row operations against in-memory data.
// It never touches storage; callers load rows before a call and save them after.
type Engine struct {
	cache *Cache
}

func NewEngine(cache *Cache) *Engine {
	if cache == nil {
		cache = NewCache()
	}
	return &Engine{cache: cache}
}

func (e *Engine) Cache() *Cache { return e.cache }

func (e *Engine) CreateTable(c *builder.Catalog, name string, specs []string) (*builder.Table, error) {
	return c.CreateTable(name, specs)
}

func (e *Engine) DropTable(c *builder.Catalog, name string) error {
	if err := c.DropTable(name); err != nil {
		return err
	}
	e.cache.InvalidateAll()
	return nil
}

func (e *Engine) ListTables(c *builder.Catalog) iter.Seq[string] {
	return c.ListTables()
}

// Insert coerces values positionally into t's non-ID columns.
// The returned row has no ID yet; see NextID.
func (e *Engine) Insert(t *builder.Table, values []string) (builder.Row, error) {
	fields := t.DataFields()
	if len(values) != len(fields) {
		return nil, types.NewError(types.ErrorKindArity,
			"Expected %d values for table \"%s\", got %d", len(fields), t.Name, len(values))
	}

	row := builder.Row{}
	for i, field := range fields {
		v, err := types.Coerce(values[i], field.BuiltinType)
		if err != nil {
			return nil, err
		}
		row.Set(field.Name, v)
	}

	e.cache.InvalidateAll()
	return row, nil
}

// Select returns rows matching where. Without a predicate the input slice itself is returned.
func (e *Engine) Select(table string, rows []builder.Row, where QueryArg) []builder.Row {
	return e.cache.Get(CacheKey(table, where), func() []builder.Row {
		if len(where) == 0 {
			return rows
		}
		return filterRows(rows, where)
	})
}

// Update overwrites the set columns of every matching row in place
// and returns the IDs it touched in row order.
func (e *Engine) Update(rows []builder.Row, set, where QueryArg) ([]builder.Row, []int, error) {
	if err := RequireWhere("update", where); err != nil {
		return rows, nil, err
	}
	defer e.cache.InvalidateAll()

	updated := []int{}
	for _, row := range rows {
		if !Matches(row, where) {
			continue
		}
		for col, v := range set {
			row.Set(col, v)
		}
		updated = append(updated, builder.GetPrimaryKey(row))
	}
	return rows, updated, nil
}

// Delete splits rows into the ones kept and the IDs removed, both in original order.
func (e *Engine) Delete(rows []builder.Row, where QueryArg) ([]builder.Row, []int, error) {
	if err := RequireWhere("delete", where); err != nil {
		return rows, nil, err
	}
	defer e.cache.InvalidateAll()

	kept := make([]builder.Row, 0, len(rows))
	deleted := []int{}
	for _, row := range rows {
		if Matches(row, where) {
			deleted = append(deleted, builder.GetPrimaryKey(row))
		} else {
			kept = append(kept, row)
		}
	}
	return kept, deleted, nil
}

// RequireWhere rejects an empty predicate for action.
func RequireWhere(action string, where QueryArg) error {
	if len(where) == 0 {
		return types.NewError(types.ErrorKindMissingPredicate, "%s requires a where clause", action)
	}
	return nil
}
