package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for repolens.
type Config struct {
	// Walk settings control directory traversal
	Walk WalkConfig `koanf:"walk"`

	// Report settings control rendered artifacts
	Report ReportConfig `koanf:"report"`

	// Clone settings control remote repository acquisition
	Clone CloneConfig `koanf:"clone"`

	// Output settings
	Output OutputConfig `koanf:"output"`
}

// WalkConfig controls which files the analyzer visits.
type WalkConfig struct {
	SkipDirs         []string `koanf:"skip_dirs"`
	BinaryExtensions []string `koanf:"binary_extensions"`
}

// ReportConfig controls report rendering limits.
type ReportConfig struct {
	TreeDepth     int `koanf:"tree_depth"`
	TreeMaxItems  int `koanf:"tree_max_items"`
	TopLanguages  int `koanf:"top_languages"`
	TopFamilies   int `koanf:"top_families"`
	MaxRecommend  int `koanf:"max_recommendations"`
	TopExtensions int `koanf:"top_extensions"`
}

// CloneConfig controls git clone behavior.
type CloneConfig struct {
	TimeoutMinutes int `koanf:"timeout_minutes"`
	Depth          int `koanf:"depth"`
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format   string `koanf:"format"` // text, json, markdown, toon
	Color    bool   `koanf:"color"`
	Verbose  bool   `koanf:"verbose"`
	Language string `koanf:"language"` // en, es, ar
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Walk: WalkConfig{
			SkipDirs: []string{
				".git",
				"node_modules",
				"build",
				"dist",
				"__pycache__",
				".pytest_cache",
			},
			BinaryExtensions: nil, // extends the built-in set
		},
		Report: ReportConfig{
			TreeDepth:     3,
			TreeMaxItems:  100,
			TopLanguages:  15,
			TopFamilies:   8,
			MaxRecommend:  4,
			TopExtensions: 10,
		},
		Clone: CloneConfig{
			TimeoutMinutes: 5,
			Depth:          1,
		},
		Output: OutputConfig{
			Format:   "text",
			Color:    true,
			Verbose:  false,
			Language: "en",
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	// Determine parser based on extension
	var parser koanf.Parser
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault tries the standard config names under dir, falling back to
// defaults when none loads.
func LoadOrDefault(dir string) *Config {
	configNames := []string{
		"repolens.toml",
		"repolens.yaml",
		"repolens.yml",
		"repolens.json",
		".repolens.toml",
		".repolens.yaml",
		".repolens.yml",
		".repolens.json",
	}

	for _, name := range configNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			cfg, err := Load(path)
			if err == nil {
				return cfg
			}
		}
	}

	return DefaultConfig()
}

// SkipDirSet returns the walk skip directories as a lookup set.
func (c *Config) SkipDirSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Walk.SkipDirs))
	for _, d := range c.Walk.SkipDirs {
		set[d] = struct{}{}
	}
	return set
}
