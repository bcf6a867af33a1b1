package builder

import "github.com/tobsdb/primdb/pkg"

// Maps row field name to its saved data
type Row = pkg.Map[string, any]

func GetPrimaryKey(r Row) int {
	return pkg.NumToInt(r.Get(SYS_PRIMARY_KEY))
}

func SetPrimaryKey(r Row, key int) {
	r.Set(SYS_PRIMARY_KEY, key)
}

// RowIds collects the primary keys of rows, keeping their order.
func RowIds(rows []Row) []int {
	ids := make([]int, len(rows))
	for i, r := range rows {
		ids[i] = GetPrimaryKey(r)
	}
	return ids
}
