package storage

import "github.com/tobsdb/primdb/internal/builder"

// CatalogStore loads and saves the whole catalog document.
type CatalogStore interface {
	LoadCatalog() (*builder.Catalog, error)
	SaveCatalog(c *builder.Catalog) error
}

// RowStore loads and saves one table's rows at a time.
// A table that was never saved loads as an empty slice.
type RowStore interface {
	LoadRows(table string) ([]builder.Row, error)
	SaveRows(table string, rows []builder.Row) error
	DeleteRows(table string) error
}

type Store interface {
	CatalogStore
	RowStore
}
