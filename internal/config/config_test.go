package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/tobsdb/primdb/internal/config"
	"github.com/tobsdb/primdb/pkg"
	"gotest.tools/assert"
)

func TestLoad(t *testing.T) {
	t.Run("missing file gives defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "primdb.yaml"), false)
		assert.NilError(t, err)
		assert.DeepEqual(t, cfg, Default())
	})

	t.Run("missing required file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "primdb.yaml"), true)
		assert.ErrorContains(t, err, "failed to read config")
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "primdb.yaml")
		doc := "data_dir: /var/lib/primdb\nassume_yes: true\nlog_level: debug\noutput: json\n"
		assert.NilError(t, os.WriteFile(path, []byte(doc), 0o644))

		cfg, err := Load(path, false)
		assert.NilError(t, err)
		assert.Equal(t, cfg.DataDir, "/var/lib/primdb")
		assert.Equal(t, cfg.MetaFile, "db_meta.json")
		assert.Assert(t, cfg.AssumeYes)
		assert.Equal(t, cfg.LogLevel, pkg.LogLevelDebug)
		assert.Equal(t, cfg.Output, OutputJSON)
	})
}

func TestParse(t *testing.T) {
	_, err := Parse([]byte("log_level: loud\n"))
	assert.ErrorContains(t, err, `invalid log_level "loud"`)

	_, err = Parse([]byte("output: xml\n"))
	assert.ErrorContains(t, err, `invalid output "xml"`)

	_, err = Parse([]byte("data_dir: ''\n"))
	assert.ErrorContains(t, err, "data_dir is required")

	_, err = Parse([]byte("in_memory: true\nwatch: true\n"))
	assert.ErrorContains(t, err, "watch cannot be used with in_memory")

	_, err = Parse([]byte("data_dir: [\n"))
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primdb.yaml")
	assert.NilError(t, os.WriteFile(path, []byte("data_dir: from_file\nmeta_file: meta.json\n"), 0o644))

	cfg, err := (&Flags{Config: path, DataDir: "from_flag"}).Load()
	assert.NilError(t, err)
	assert.Equal(t, cfg.DataDir, "from_flag")
	assert.Equal(t, cfg.MetaFile, "meta.json")

	_, err = (&Flags{Config: path, LogLevel: "chatty"}).Load()
	assert.ErrorContains(t, err, `invalid log_level "chatty"`)
}
