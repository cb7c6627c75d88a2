// Package ecosystem maps extension keys to display language names and groups
// languages into families for the report's breakdown section.
package ecosystem

import (
	"sort"
	"strings"

	"github.com/repolens/repolens/pkg/models"
)

// LanguageName resolves a bucket key (extension or bare filename) to a
// human-readable language name. Filename matches take precedence so Makefile,
// Dockerfile and LICENSE keep their identity; unknown extensions fall back to
// the capitalized extension text.
func LanguageName(key string) string {
	if key == "" {
		return "Unknown"
	}

	if name, ok := languageByFilename[key]; ok {
		return name
	}
	if name, ok := languageByFilename[strings.ToLower(key)]; ok {
		return name
	}

	ext := strings.ToLower(key)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if name, ok := languageByExtension[ext]; ok {
		return name
	}

	return capitalize(strings.TrimPrefix(ext, "."))
}

// Family classifies a language name into its family, "Other" when unlisted.
func Family(language string) string {
	for _, family := range familyOrder {
		for _, member := range languageFamilies[family] {
			if member == language {
				return family
			}
		}
	}
	return "Other"
}

// FamilyStats accumulates per-family counts for the ecosystem breakdown.
type FamilyStats struct {
	Files      int     `json:"files"`
	Lines      int64   `json:"lines"`
	Percentage float64 `json:"percentage"`
}

// Breakdown groups extensions by language family and computes each family's
// share of total lines. Empty when the result has no lines.
func Breakdown(result *models.AnalysisResult) map[string]FamilyStats {
	breakdown := map[string]FamilyStats{}
	if result == nil || result.TotalLines == 0 {
		return breakdown
	}

	for ext, bucket := range result.ByExtension {
		family := Family(LanguageName(ext))
		stats := breakdown[family]
		stats.Files += bucket.Files
		stats.Lines += bucket.Lines
		breakdown[family] = stats
	}

	for family, stats := range breakdown {
		stats.Percentage = float64(stats.Lines) / float64(result.TotalLines) * 100
		breakdown[family] = stats
	}
	return breakdown
}

// RankedFamilies orders a breakdown by percentage descending, ties by name.
func RankedFamilies(breakdown map[string]FamilyStats) []string {
	families := make([]string, 0, len(breakdown))
	for family := range breakdown {
		families = append(families, family)
	}
	sort.Slice(families, func(i, j int) bool {
		fi, fj := breakdown[families[i]], breakdown[families[j]]
		if fi.Percentage != fj.Percentage {
			return fi.Percentage > fj.Percentage
		}
		return families[i] < families[j]
	})
	return families
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
