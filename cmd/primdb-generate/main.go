package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/tobsdb/primdb/internal/config"
	"github.com/tobsdb/primdb/internal/storage"
	"github.com/tobsdb/primdb/pkg"
	"github.com/tobsdb/primdb/tools/generate"
)

var CLI struct {
	config.Flags `embed:""`

	Lang string `name:"lang" default:"json" enum:"go,golang,ts,typescript,rust,rs,json,jsonschema" help:"Output language (${enum})."`
	Out  string `name:"out" help:"Output file. Prints to stdout when empty."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("primdb-generate"),
		kong.Description("Generate type definitions for the stored tables."),
		kong.UsageOnError(),
	)

	cfg, err := CLI.Flags.Load()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	pkg.SetLogLevel(cfg.LogLevel)

	catalog, err := storage.NewFileStore(cfg.MetaFile, cfg.DataDir).LoadCatalog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	data, err := generate.SchemaToLang(catalog, CLI.Lang)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if CLI.Out == "" {
		fmt.Println(string(data))
		return
	}

	err = os.WriteFile(CLI.Out, data, 0644)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
