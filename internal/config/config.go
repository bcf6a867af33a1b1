package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/tobsdb/primdb/pkg"
)

const DEFAULT_PATH = "primdb.yaml"

type OutputMode string

const (
	OutputTable OutputMode = "table"
	OutputJSON  OutputMode = "json"
)

var VALID_OUTPUT_MODES = []OutputMode{OutputTable, OutputJSON}

type Config struct {
	DataDir   string       `yaml:"data_dir"`
	MetaFile  string       `yaml:"meta_file"`
	InMemory  bool         `yaml:"in_memory,omitempty"`
	AssumeYes bool         `yaml:"assume_yes,omitempty"`
	Watch     bool         `yaml:"watch,omitempty"`
	LogLevel  pkg.LogLevel `yaml:"log_level"`
	Output    OutputMode   `yaml:"output"`
}

func Default() *Config {
	return &Config{
		DataDir:  "./data",
		MetaFile: "db_meta.json",
		LogLevel: pkg.LogLevelErrOnly,
		Output:   OutputTable,
	}
}

// Load reads path on top of the defaults. A missing file is not an error
// unless required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if !c.InMemory && len(c.DataDir) == 0 {
		return fmt.Errorf("data_dir is required unless in_memory is set")
	}
	if !c.InMemory && len(c.MetaFile) == 0 {
		return fmt.Errorf("meta_file is required unless in_memory is set")
	}
	if !c.LogLevel.IsValid() {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if !slices.Contains(VALID_OUTPUT_MODES, c.Output) {
		return fmt.Errorf("invalid output %q", c.Output)
	}
	if c.InMemory && c.Watch {
		return fmt.Errorf("watch cannot be used with in_memory")
	}
	return nil
}
