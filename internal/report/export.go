package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/repolens/repolens/pkg/models"
)

// Exporter writes analysis artifacts into an output directory, creating it
// on first use. Filenames carry the repository name and a HHMMSS timestamp.
type Exporter struct {
	outputDir string
	now       func() time.Time
}

// NewExporter creates an exporter rooted at outputDir. An empty dir means
// the current working directory.
func NewExporter(outputDir string) *Exporter {
	return &Exporter{outputDir: outputDir, now: time.Now}
}

func (e *Exporter) filename(ext, repoName string) string {
	stamp := e.now().Format("150405")
	if repoName != "" && repoName != "unknown" {
		return fmt.Sprintf("%s_repolens_report_%s.%s", repoName, stamp, ext)
	}
	return fmt.Sprintf("repolens_report_%s.%s", stamp, ext)
}

func (e *Exporter) create(name string) (*os.File, string, error) {
	path := name
	if e.outputDir != "" {
		if err := os.MkdirAll(e.outputDir, 0755); err != nil {
			return nil, "", fmt.Errorf("failed to create output directory: %w", err)
		}
		path = filepath.Join(e.outputDir, name)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return f, path, nil
}

// JSON writes the raw analysis result, two-space indented. Returns the
// absolute path of the written file.
func (e *Exporter) JSON(result *models.AnalysisResult, repoPath string) (string, error) {
	f, path, err := e.create(e.filename("json", displayName(repoPath)))
	if err != nil {
		return "", err
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return "", fmt.Errorf("failed to write JSON export: %w", err)
	}
	return path, nil
}

// CSV writes the result in two sections: summary metric rows, a blank
// separator, then per-extension rows sorted by key.
func (e *Exporter) CSV(result *models.AnalysisResult, repoPath string) (string, error) {
	f, path, err := e.create(e.filename("csv", displayName(repoPath)))
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	records := [][]string{
		{"Metric", "Value"},
		{"Total Files", strconv.Itoa(result.TotalFiles)},
		{"Total Lines", strconv.FormatInt(result.TotalLines, 10)},
		{"Total Characters", strconv.FormatInt(result.TotalCharacters, 10)},
		{},
		{"Extension", "Files", "Lines", "Characters"},
	}
	for _, ext := range result.Extensions() {
		bucket := result.ByExtension[ext]
		label := ext
		if label == "" {
			label = "(no extension)"
		}
		records = append(records, []string{
			label,
			strconv.Itoa(bucket.Files),
			strconv.FormatInt(bucket.Lines, 10),
			strconv.FormatInt(bucket.Characters, 10),
		})
	}
	if err := w.WriteAll(records); err != nil {
		return "", fmt.Errorf("failed to write CSV export: %w", err)
	}
	return path, nil
}

// Markdown writes rendered report content.
func (e *Exporter) Markdown(content, repoPath string) (string, error) {
	f, path, err := e.create(e.filename("md", displayName(repoPath)))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return "", fmt.Errorf("failed to write Markdown export: %w", err)
	}
	return path, nil
}
