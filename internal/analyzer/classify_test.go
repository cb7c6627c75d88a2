package analyzer

import (
	"path/filepath"
	"testing"

	"github.com/repolens/repolens/internal/testutil"
)

func TestIsBinaryEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	testutil.WriteFile(t, path, "")

	if New(nil).IsBinary(path) {
		t.Errorf("IsBinary(%q) = true, want false for an empty file", path)
	}
}

func TestExtensionKey(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.py", ".py"},
		{"src/app.JS", ".js"},
		{"archive.tar.gz", ".gz"},
		{"Makefile", "Makefile"},
		{"docs/LICENSE", "LICENSE"},
		{"Dockerfile", "Dockerfile"},
		{".bashrc", ".bashrc"},
		{".gitignore", ".gitignore"},
		{"trailing.", "trailing."},
		{"weird..py", ".py"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := ExtensionKey(tt.path); got != tt.want {
				t.Errorf("ExtensionKey(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestSuffix(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"main.py", ".py"},
		{"UPPER.RS", ".rs"},
		{".hidden", ""},
		{"noext", ""},
		{"dot.", ""},
		{"a.b.c", ".c"},
	}

	for _, tt := range tests {
		if got := suffix(tt.base); got != tt.want {
			t.Errorf("suffix(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}
