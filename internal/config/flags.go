package config

import "github.com/tobsdb/primdb/pkg"

// Flags are the command line settings shared by every primdb command.
// Set values win over the config file.
type Flags struct {
	Config   string `name:"config" help:"Path to the YAML config file." default:"primdb.yaml"`
	DataDir  string `name:"data-dir" help:"Directory holding one JSON document per table."`
	MetaFile string `name:"meta-file" help:"Path of the catalog document."`
	LogLevel string `name:"log-level" help:"Log level (none, error, warn, info, debug)."`
}

func (f *Flags) Load() (*Config, error) {
	cfg, err := Load(f.Config, false)
	if err != nil {
		return nil, err
	}
	if len(f.DataDir) > 0 {
		cfg.DataDir = f.DataDir
	}
	if len(f.MetaFile) > 0 {
		cfg.MetaFile = f.MetaFile
	}
	if len(f.LogLevel) > 0 {
		cfg.LogLevel = pkg.LogLevel(f.LogLevel)
	}
	return cfg, cfg.Validate()
}
