package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"github.com/tobsdb/primdb/internal/config"
	"github.com/tobsdb/primdb/internal/conn"
	"github.com/tobsdb/primdb/internal/storage"
	"github.com/tobsdb/primdb/pkg"
)

const version = "0.1.0"

var CLI struct {
	config.Flags `embed:""`

	Output   string   `name:"output" short:"o" help:"Output format (table, json)."`
	InMemory bool     `name:"in-memory" short:"m" help:"Don't persist anything."`
	Yes      bool     `name:"yes" short:"y" help:"Answer yes to every confirmation."`
	Watch    bool     `name:"watch" help:"Forget cached query results when data files change on disk."`
	Command  []string `name:"command" short:"c" sep:"none" help:"Run a command and exit. Repeatable."`

	Version kong.VersionFlag `name:"version" help:"Print version and exit."`
}

var errCommandFailed = errors.New("one or more commands failed")

func main() {
	if err := mainImpl(); err != nil {
		if !errors.Is(err, errCommandFailed) {
			fmt.Fprintf(os.Stderr, "primdb: %v\n", err)
		}
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := CLI.Flags.Load()
	if err != nil {
		return nil, err
	}
	if len(CLI.Output) > 0 {
		cfg.Output = config.OutputMode(CLI.Output)
	}
	cfg.InMemory = cfg.InMemory || CLI.InMemory
	cfg.AssumeYes = cfg.AssumeYes || CLI.Yes
	cfg.Watch = cfg.Watch || CLI.Watch
	return cfg, cfg.Validate()
}

func mainImpl() error {
	kong.Parse(&CLI,
		kong.Name("primdb"),
		kong.Description("A tiny file-backed table store driven by a command line."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pkg.SetLogLevel(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store storage.Store
	if cfg.InMemory {
		store = storage.NewMemStore()
	} else {
		store = storage.NewFileStore(cfg.MetaFile, cfg.DataDir)
	}

	stdin := bufio.NewReader(os.Stdin)
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	var confirmer conn.Confirmer = &conn.PromptConfirmer{In: stdin, Out: os.Stdout}
	if cfg.AssumeYes {
		confirmer = conn.AlwaysConfirm{}
	}

	s := conn.NewSession(store, confirmer)
	s.Log().Debug("session started", "data_dir", cfg.DataDir, "meta_file", cfg.MetaFile, "in_memory", cfg.InMemory)

	if fs, ok := store.(*storage.FileStore); ok && cfg.Watch {
		if err := fs.Watch(ctx, func(string) { s.Engine.Cache().InvalidateAll() }); err != nil {
			return fmt.Errorf("failed to watch %s: %w", cfg.DataDir, err)
		}
	}

	renderer := conn.NewRenderer(cfg.Output)

	if len(CLI.Command) > 0 {
		failed := false
		for _, line := range CLI.Command {
			res, exit := s.Exec(line)
			if err := renderer.Render(os.Stdout, res); err != nil {
				return err
			}
			failed = failed || res.IsError()
			if exit {
				break
			}
		}
		if failed {
			return errCommandFailed
		}
		return nil
	}

	if interactive {
		fmt.Println("primdb " + version + ". Type help for the list of commands.")
	}
	return s.Run(ctx, stdin, os.Stdout, renderer, interactive)
}
