package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/alecthomas/kong"

	"github.com/tobsdb/primdb/internal/builder"
	"github.com/tobsdb/primdb/internal/config"
	"github.com/tobsdb/primdb/internal/storage"
	"github.com/tobsdb/primdb/pkg"
)

var CLI struct {
	config.Flags `embed:""`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("primdb-validate"),
		kong.Description("Check that every stored row matches its table's columns."),
		kong.UsageOnError(),
	)

	cfg, err := CLI.Flags.Load()
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		os.Exit(1)
	}
	pkg.SetLogLevel(cfg.LogLevel)

	store := storage.NewFileStore(cfg.MetaFile, cfg.DataDir)
	fmt.Printf("Checking %s and %s for errors\n", cfg.MetaFile, cfg.DataDir)

	problems, err := Validate(store)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		os.Exit(1)
	}

	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Println(p)
		}
		fmt.Printf("Found %d problem(s)\n", len(problems))
		os.Exit(1)
	}

	fmt.Println("Data checks successful: data is valid")
}

// Validate lists every row that disagrees with the catalog, every duplicate ID
// and every row document without a table.
func Validate(store *storage.FileStore) ([]string, error) {
	catalog, err := store.LoadCatalog()
	if err != nil {
		return nil, err
	}

	problems := []string{}
	for name, table := range catalog.Tables.All() {
		rows, err := store.ReadRows(name)
		if err != nil {
			return nil, err
		}

		seen := map[int]bool{}
		for i, row := range rows {
			for _, p := range table.CheckRow(row) {
				problems = append(problems, fmt.Sprintf("%s: row %d: %s", name, i+1, p))
			}
			id := builder.GetPrimaryKey(row)
			if seen[id] {
				problems = append(problems, fmt.Sprintf("%s: row %d: duplicate %s %d", name, i+1, builder.SYS_PRIMARY_KEY, id))
			}
			seen[id] = true
		}
	}

	docs, err := store.Documents()
	if err != nil {
		return nil, err
	}
	tables := slices.Collect(catalog.ListTables())
	for _, doc := range docs {
		if !slices.Contains(tables, doc) {
			problems = append(problems, fmt.Sprintf("%s: no table for document %s", doc, store.RowsPath(doc)))
		}
	}

	return problems, nil
}
