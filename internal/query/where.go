package query

import (
	"encoding/json"
	"slices"

	"github.com/tobsdb/primdb/internal/builder"
	"github.com/tobsdb/primdb/internal/types"
	"github.com/tobsdb/primdb/pkg"
)

// QueryArg maps column names to values, used for both where and set clauses.
type QueryArg = pkg.Map[string, any]

const CACHE_KEY_ALL = "*"

// CacheKey identifies a select by table and predicate. Values are stringified,
// so predicates that match the same rows share a key.
func CacheKey(table string, where QueryArg) string {
	if len(where) == 0 {
		return table + "\x00" + CACHE_KEY_ALL
	}

	keys := where.Keys()
	slices.Sort(keys)
	pairs := make([][2]string, len(keys))
	for i, k := range keys {
		pairs[i] = [2]string{k, types.Stringify(where.Get(k))}
	}

	data, _ := json.Marshal(pairs)
	return table + "\x00" + string(data)
}

// Matches reports whether row loosely equals every constraint in where.
// A row without one of the constrained columns never matches.
func Matches(row builder.Row, where QueryArg) bool {
	for col, expected := range where {
		if !row.Has(col) {
			return false
		}
		if types.Stringify(row.Get(col)) != types.Stringify(expected) {
			return false
		}
	}
	return true
}

func filterRows(rows []builder.Row, where QueryArg) []builder.Row {
	return pkg.Filter(rows, func(row builder.Row) bool {
		return Matches(row, where)
	})
}

// NextID is one past the largest ID in rows, or 1 for an empty table.
// IDs of deleted rows are not handed out again unless they were the largest.
func NextID(rows []builder.Row) int {
	max_id := 0
	for _, row := range rows {
		if id := builder.GetPrimaryKey(row); id > max_id {
			max_id = id
		}
	}
	return max_id + 1
}

// BuildSetClause coerces raw assignment text to each column's type.
func BuildSetClause(t *builder.Table, raw map[string]string) (QueryArg, error) {
	set := QueryArg{}
	for col, value := range raw {
		field := t.Field(col)
		if field == nil {
			return nil, types.NewError(types.ErrorKindNotFound,
				"Column \"%s\" does not exist in table \"%s\"", col, t.Name)
		}
		if field.IsPrimaryKey() {
			return nil, types.NewError(types.ErrorKindFormat, "Column %s cannot be updated", col)
		}

		v, err := types.Coerce(value, field.BuiltinType)
		if err != nil {
			return nil, err
		}
		set.Set(col, v)
	}
	return set, nil
}
