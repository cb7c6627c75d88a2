// Package report renders the Markdown intelligence report and exports
// analysis results as timestamped JSON, CSV, and Markdown artifacts.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/repolens/repolens/internal/ecosystem"
	"github.com/repolens/repolens/internal/insight"
	"github.com/repolens/repolens/internal/remote"
	"github.com/repolens/repolens/pkg/config"
	"github.com/repolens/repolens/pkg/models"
)

// Renderer assembles the Markdown report from an analysis result and its
// insight set.
type Renderer struct {
	cfg config.ReportConfig
}

// NewRenderer creates a renderer. A nil config uses the report defaults.
func NewRenderer(cfg *config.Config) *Renderer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Renderer{cfg: cfg.Report}
}

// Markdown renders the full report. repoPath names the repository (path or
// URL) and feeds the narrative seed; treePath is the directory actually
// analyzed, used for the structure section.
func (r *Renderer) Markdown(result *models.AnalysisResult, set *insight.Set, repoPath, treePath string) string {
	repoName := displayName(repoPath)

	if result.TotalFiles == 0 {
		return emptyReport(repoName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# RepoLens Report For %s.\n\n", repoName)
	b.WriteString(r.snapshotTable(result, set))
	b.WriteString("\n\n## Project Structure\n\n```\n")
	b.WriteString(DirectoryTree(treePath, repoName, TreeOptions{
		MaxDepth:         r.cfg.TreeDepth,
		MaxItemsPerLevel: r.cfg.TreeMaxItems,
	}))
	b.WriteString("\n```\n\n")
	b.WriteString(r.languageTable(result, set))
	b.WriteString("\n\n")
	b.WriteString(r.ecosystemTable(result))
	b.WriteString("\n\n## Insights\n\n")
	b.WriteString(Narrative(set, result, repoPath))
	b.WriteString("\n\n## Recommendations\n\n")
	recs := Recommendations(set, result, repoPath, r.cfg.MaxRecommend)
	if len(recs) == 0 {
		recs = []string{NeutralRecommendation}
	}
	for _, rec := range recs {
		fmt.Fprintf(&b, "- %s\n", rec)
	}
	b.WriteString("\n")
	b.WriteString(r.keyMetrics(result, set))
	b.WriteString("\n")
	return b.String()
}

func emptyReport(repoName string) string {
	return fmt.Sprintf(
		"# RepoLens Report For %s.\n\n"+
			"## Project Snapshot\n\n"+
			"| Metric | Value |\n"+
			"|--------|-------|\n"+
			"| Files | 0 |\n"+
			"| Lines | 0 |\n"+
			"| Characters | 0 |\n"+
			"| Dominant Language | N/A |\n"+
			"| Health Score | 0/10 |\n\n"+
			"No analyzable files found in repository.\n",
		repoName)
}

func (r *Renderer) snapshotTable(result *models.AnalysisResult, set *insight.Set) string {
	dominant := "N/A"
	if set.DominantLanguage != "" {
		dominant = ecosystem.LanguageName(set.DominantLanguage)
	}
	return fmt.Sprintf(
		"## Project Snapshot\n\n"+
			"| Metric | Value |\n"+
			"|--------|-------|\n"+
			"| Files | %s |\n"+
			"| Lines | %s |\n"+
			"| Characters | %s |\n"+
			"| Dominant Language | %s |\n"+
			"| Health Score | %d/10 |",
		groupDigits(int64(result.TotalFiles)),
		groupDigits(result.TotalLines),
		groupDigits(result.TotalCharacters),
		dominant,
		set.HealthScore)
}

func (r *Renderer) languageTable(result *models.AnalysisResult, set *insight.Set) string {
	top := r.cfg.TopLanguages
	if top <= 0 {
		top = 15
	}

	var b strings.Builder
	b.WriteString("## Language Breakdown\n\n")
	b.WriteString("| Language | Files | Lines | % |\n")
	b.WriteString("|----------|-------|-------|---|\n")

	count := 0
	for _, entry := range rankByLines(result) {
		if count == top {
			break
		}
		count++
		bucket := result.Bucket(entry)
		pct := set.PercentageByExtension[entry]
		fmt.Fprintf(&b, "| %s | %s | %s | %s %.1f%% |\n",
			ecosystem.LanguageName(entry),
			groupDigits(int64(bucket.Files)),
			groupDigits(bucket.Lines),
			bar(pct, 15),
			pct)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) ecosystemTable(result *models.AnalysisResult) string {
	breakdown := ecosystem.Breakdown(result)
	if len(breakdown) == 0 {
		return "## Ecosystem Breakdown\n\n(No ecosystem data)"
	}

	top := r.cfg.TopFamilies
	if top <= 0 {
		top = 8
	}

	var b strings.Builder
	b.WriteString("## Ecosystem Breakdown\n\n")
	b.WriteString("| Family | Files | Lines | % |\n")
	b.WriteString("|--------|-------|-------|---|\n")

	for i, family := range ecosystem.RankedFamilies(breakdown) {
		if i == top {
			break
		}
		stats := breakdown[family]
		fmt.Fprintf(&b, "| %s | %s | %s | %.1f%% |\n",
			family,
			groupDigits(int64(stats.Files)),
			groupDigits(stats.Lines),
			stats.Percentage)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) keyMetrics(result *models.AnalysisResult, set *insight.Set) string {
	var b strings.Builder
	b.WriteString("## Key Metrics\n\n")
	fmt.Fprintf(&b, "- Average lines per file: %d\n", int(set.AverageLinesPerFile))
	fmt.Fprintf(&b, "- Documentation ratio: %s\n", docRatioDisplay(result, set))
	fmt.Fprintf(&b, "- Largest file extension: %s\n", largestDisplay(result, set))
	fmt.Fprintf(&b, "- Complexity estimate: %s", set.ComplexityLevel)
	return b.String()
}

func docRatioDisplay(result *models.AnalysisResult, set *insight.Set) string {
	ratio := set.DocumentationRatio.Files
	if ratio <= 0 {
		return "0.000 (no documentation)"
	}
	md := result.Bucket(".md").Files
	code := result.TotalFiles - md
	if code > 0 && md > 0 {
		return fmt.Sprintf("%.3f (1:%d ratio)", ratio, code/md)
	}
	return fmt.Sprintf("%.3f", ratio)
}

func largestDisplay(result *models.AnalysisResult, set *insight.Set) string {
	ext := set.LargestFileExtension
	if ext == "" {
		return "N/A"
	}
	name := ecosystem.LanguageName(ext)
	bucket := result.Bucket(ext)
	if bucket.Files > 0 {
		avg := float64(bucket.Lines) / float64(bucket.Files)
		if avg > 200 {
			return fmt.Sprintf("%s (avg %d lines/file)", name, int(avg))
		}
	}
	return name
}

// rankByLines orders extensions by line count descending, ties by key.
func rankByLines(result *models.AnalysisResult) []string {
	exts := result.Extensions()
	sort.SliceStable(exts, func(i, j int) bool {
		return result.ByExtension[exts[i]].Lines > result.ByExtension[exts[j]].Lines
	})
	return exts
}

// bar renders a proportional block bar for a 0–100 percentage.
func bar(percentage float64, width int) string {
	blocks := int(percentage / 100 * float64(width))
	if blocks < 0 {
		blocks = 0
	}
	if blocks > width {
		blocks = width
	}
	return strings.Repeat("█", blocks)
}

// groupDigits formats an integer with thousands separators.
func groupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

func displayName(repoPath string) string {
	return remote.RepoName(repoPath)
}
