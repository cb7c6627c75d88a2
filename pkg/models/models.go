package models

import "sort"

// FileStat holds the counts for a single analyzable file.
type FileStat struct {
	Lines      int64 `json:"lines"`
	Characters int64 `json:"characters"`
}

// ExtensionBucket aggregates statistics for one extension key. The key is the
// lowercased extension including the dot (".py"), or the bare filename for
// extensionless files ("Makefile").
type ExtensionBucket struct {
	Files      int   `json:"files"`
	Lines      int64 `json:"lines"`
	Characters int64 `json:"characters"`
}

// AnalysisResult is the aggregate output of a directory walk. Totals always
// equal the sums over ByExtension.
type AnalysisResult struct {
	TotalFiles      int                         `json:"total_files"`
	TotalLines      int64                       `json:"total_lines"`
	TotalCharacters int64                       `json:"total_characters"`
	ByExtension     map[string]*ExtensionBucket `json:"by_extension"`
}

// NewAnalysisResult returns an empty result with an initialized bucket map.
func NewAnalysisResult() *AnalysisResult {
	return &AnalysisResult{ByExtension: map[string]*ExtensionBucket{}}
}

// Add records one file's stats under the given extension key.
func (r *AnalysisResult) Add(ext string, stat FileStat) {
	r.TotalFiles++
	r.TotalLines += stat.Lines
	r.TotalCharacters += stat.Characters

	bucket, ok := r.ByExtension[ext]
	if !ok {
		bucket = &ExtensionBucket{}
		r.ByExtension[ext] = bucket
	}
	bucket.Files++
	bucket.Lines += stat.Lines
	bucket.Characters += stat.Characters
}

// Extensions returns the bucket keys in ascending order. Map iteration is
// randomized, so every consumer that needs a stable order goes through this.
func (r *AnalysisResult) Extensions() []string {
	keys := make([]string, 0, len(r.ByExtension))
	for ext := range r.ByExtension {
		keys = append(keys, ext)
	}
	sort.Strings(keys)
	return keys
}

// Bucket returns the bucket for ext, or an empty bucket when absent.
func (r *AnalysisResult) Bucket(ext string) ExtensionBucket {
	if b, ok := r.ByExtension[ext]; ok {
		return *b
	}
	return ExtensionBucket{}
}
