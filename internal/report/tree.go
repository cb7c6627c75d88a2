package report

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/repolens/repolens/internal/analyzer"
)

// TreeOptions bounds directory tree rendering.
type TreeOptions struct {
	MaxDepth         int
	MaxItemsPerLevel int
}

// DefaultTreeOptions mirrors the report defaults: three levels deep, at most
// a hundred entries per level.
func DefaultTreeOptions() TreeOptions {
	return TreeOptions{MaxDepth: 3, MaxItemsPerLevel: 100}
}

// treeSkipDirs extends the walk exclusions with build output and virtualenv
// directories that only add noise to the structure view.
var treeSkipDirs = map[string]struct{}{
	"__pycache__": {}, "node_modules": {}, ".git": {}, "build": {}, "dist": {},
	".pytest_cache": {}, "target": {}, "bin": {}, "obj": {}, ".venv": {}, "venv": {}, ".env": {},
}

// treeKeepHidden are dotfiles still worth showing.
var treeKeepHidden = map[string]struct{}{
	".gitignore": {}, ".env.example": {}, ".dockerignore": {},
}

// DirectoryTree renders a bounded view of the repository layout: directories
// before files, case-insensitive alphabetical within each group, truncated
// per level with a "... (N more items)" marker. displayName overrides the
// root label.
func DirectoryTree(path, displayName string, opts TreeOptions) string {
	if displayName == "" {
		displayName = "repository"
	}
	root := analyzer.NormalizePath(path)
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return displayName + "/\n (empty)"
	}

	lines := []string{displayName + "/"}
	lines = append(lines, collectTreeItems(root, 0, "", opts)...)
	return strings.Join(lines, "\n")
}

func treeSkip(name string) bool {
	if strings.HasPrefix(name, ".") {
		if _, keep := treeKeepHidden[name]; !keep {
			return true
		}
	}
	if strings.HasSuffix(name, ".egg-info") {
		return true
	}
	_, skip := treeSkipDirs[name]
	return skip
}

func collectTreeItems(dir string, depth int, prefix string, opts TreeOptions) []string {
	if depth > opts.MaxDepth {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var dirs, files []os.DirEntry
	for _, entry := range entries {
		if treeSkip(entry.Name()) {
			continue
		}
		if entry.IsDir() {
			dirs = append(dirs, entry)
		} else {
			files = append(files, entry)
		}
	}
	byName := func(list []os.DirEntry) {
		sort.Slice(list, func(i, j int) bool {
			return strings.ToLower(list[i].Name()) < strings.ToLower(list[j].Name())
		})
	}
	byName(dirs)
	byName(files)

	all := append(dirs, files...)
	truncated := len(all) > opts.MaxItemsPerLevel
	show := all
	if truncated {
		show = all[:opts.MaxItemsPerLevel]
	}

	var items []string
	for i, entry := range show {
		last := i == len(show)-1 && !truncated
		connector := "├── "
		childPrefix := prefix + "│   "
		if last {
			connector = "└── "
			childPrefix = prefix + "    "
		}
		if entry.IsDir() {
			items = append(items, prefix+connector+entry.Name()+"/")
			items = append(items, collectTreeItems(dir+string(os.PathSeparator)+entry.Name(), depth+1, childPrefix, opts)...)
		} else {
			items = append(items, prefix+connector+entry.Name())
		}
	}
	if truncated {
		items = append(items, fmt.Sprintf("%s└── ... (%d more items)", prefix, len(all)-opts.MaxItemsPerLevel))
	}
	return items
}
