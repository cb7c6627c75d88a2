package analyzer

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// binaryProbeSize is how many leading bytes are checked for null bytes when
// the extension alone does not settle the question.
const binaryProbeSize = 8192

// binaryExtensions lists extensions that are always treated as binary.
var binaryExtensions = map[string]struct{}{
	".exe": {}, ".dll": {}, ".so": {}, ".dylib": {}, ".bin": {}, ".o": {}, ".a": {}, ".lib": {},
	".zip": {}, ".tar": {}, ".gz": {}, ".bz2": {}, ".xz": {}, ".7z": {}, ".rar": {},
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".bmp": {}, ".ico": {}, ".svg": {},
	".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {}, ".ppt": {}, ".pptx": {},
	".mp3": {}, ".mp4": {}, ".avi": {}, ".mov": {}, ".wmv": {}, ".flv": {},
	".woff": {}, ".woff2": {}, ".ttf": {}, ".eot": {}, ".otf": {},
	".db": {}, ".sqlite": {}, ".sqlite3": {},
}

// IsBinary reports whether a file should be excluded from line counting.
// Known binary extensions short-circuit; otherwise the first chunk of the
// file is probed for null bytes. Files that cannot be read count as binary.
func (a *Analyzer) IsBinary(path string) bool {
	ext := suffix(filepath.Base(path))
	if _, ok := binaryExtensions[ext]; ok {
		return true
	}
	if _, ok := a.binaryExts[ext]; ok {
		return true
	}

	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	buf := make([]byte, binaryProbeSize)
	n, err := f.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return true
	}
	return bytes.IndexByte(buf[:n], 0) >= 0
}

// ExtensionKey returns the bucket key for a path: the lowercased extension
// including the dot, or the bare filename when there is no extension. The
// filename fallback lets Makefile, Dockerfile, LICENSE and friends keep their
// identity through aggregation.
func ExtensionKey(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	if ext := suffix(base); ext != "" {
		return ext
	}
	return base
}

// suffix returns the lowercased extension of a filename, treating leading and
// trailing dots as no extension (".bashrc" and "foo." have none).
func suffix(base string) string {
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 || idx == len(base)-1 {
		return ""
	}
	return strings.ToLower(base[idx:])
}
