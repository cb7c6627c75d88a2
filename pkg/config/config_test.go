package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Contains(t, cfg.Walk.SkipDirs, ".git")
	assert.Contains(t, cfg.Walk.SkipDirs, "node_modules")
	assert.Contains(t, cfg.Walk.SkipDirs, "__pycache__")
	assert.Equal(t, 3, cfg.Report.TreeDepth)
	assert.Equal(t, 100, cfg.Report.TreeMaxItems)
	assert.Equal(t, 4, cfg.Report.MaxRecommend)
	assert.Equal(t, 5, cfg.Clone.TimeoutMinutes)
	assert.Equal(t, 1, cfg.Clone.Depth)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "en", cfg.Output.Language)
	assert.True(t, cfg.Output.Color)
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "repolens.toml", `
[report]
tree_depth = 5
top_languages = 20

[output]
format = "json"
language = "es"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Report.TreeDepth)
	assert.Equal(t, 20, cfg.Report.TopLanguages)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "es", cfg.Output.Language)
	// Untouched sections keep defaults.
	assert.Equal(t, 100, cfg.Report.TreeMaxItems)
	assert.Equal(t, 5, cfg.Clone.TimeoutMinutes)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "repolens.yaml", `
walk:
  skip_dirs:
    - .git
    - vendor
clone:
  timeout_minutes: 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{".git", "vendor"}, cfg.Walk.SkipDirs)
	assert.Equal(t, 10, cfg.Clone.TimeoutMinutes)
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "repolens.json", `{"output": {"verbose": true}}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Output.Verbose)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, DefaultConfig(), LoadOrDefault(dir), "no config file yields defaults")

	writeConfig(t, dir, ".repolens.toml", "[report]\ntree_depth = 7\n")
	cfg := LoadOrDefault(dir)
	assert.Equal(t, 7, cfg.Report.TreeDepth)
}

func TestSkipDirSet(t *testing.T) {
	cfg := DefaultConfig()
	set := cfg.SkipDirSet()
	_, ok := set[".git"]
	assert.True(t, ok)
	assert.Len(t, set, len(cfg.Walk.SkipDirs))
}
