package analyzer

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/repolens/repolens/pkg/config"
	"github.com/repolens/repolens/pkg/models"
)

// Analyzer walks a directory tree and aggregates per-extension statistics.
type Analyzer struct {
	skipDirs   map[string]struct{}
	binaryExts map[string]struct{}
	progress   func(path string)
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithProgress registers a callback invoked once per analyzed file.
func WithProgress(fn func(path string)) Option {
	return func(a *Analyzer) {
		a.progress = fn
	}
}

// New creates an analyzer from config. A nil config uses defaults.
func New(cfg *config.Config, opts ...Option) *Analyzer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	a := &Analyzer{
		skipDirs:   cfg.SkipDirSet(),
		binaryExts: make(map[string]struct{}, len(cfg.Walk.BinaryExtensions)),
	}
	for _, ext := range cfg.Walk.BinaryExtensions {
		a.binaryExts[strings.ToLower(ext)] = struct{}{}
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnalyzeFile counts lines and characters for a single file. The second
// return value is false for binary or unreadable files, which are skipped
// silently by the directory walk. Characters are runes, decoded permissively.
func (a *Analyzer) AnalyzeFile(path string) (models.FileStat, bool) {
	if a.IsBinary(path) {
		return models.FileStat{}, false
	}

	f, err := os.Open(path)
	if err != nil {
		return models.FileStat{}, false
	}
	defer f.Close()

	var stat models.FileStat
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			stat.Lines++
			stat.Characters += int64(utf8.RuneCount(line))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return models.FileStat{}, false
		}
	}
	return stat, true
}

// AnalyzeDir walks root recursively and aggregates statistics by extension
// key. A missing or non-directory root yields the empty result rather than
// an error; per-file failures never abort the walk. Totals are independent
// of traversal order.
func (a *Analyzer) AnalyzeDir(root string) *models.AnalysisResult {
	result := models.NewAnalysisResult()

	resolved := NormalizePath(root)
	info, err := os.Stat(resolved)
	if err != nil || !info.IsDir() {
		return result
	}

	filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != resolved {
				if _, skip := a.skipDirs[d.Name()]; skip {
					return filepath.SkipDir
				}
			}
			return nil
		}

		stat, ok := a.AnalyzeFile(path)
		if !ok {
			return nil
		}
		result.Add(ExtensionKey(path), stat)
		if a.progress != nil {
			a.progress(path)
		}
		return nil
	})

	return result
}

// NormalizePath expands a leading tilde and resolves the path to an absolute
// one, following symlinks. On any resolution failure the best effort so far
// is returned, leaving existence checks to the caller.
func NormalizePath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
