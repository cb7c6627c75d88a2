package insight

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/repolens/repolens/pkg/models"
)

// Complexity tiers.
const (
	ComplexityLow    = "Low"
	ComplexityMedium = "Medium"
	ComplexityHigh   = "High"
)

const docExtension = ".md"

// RankEntry is one row of the language ranking.
type RankEntry struct {
	Extension  string  `json:"extension"`
	Percentage float64 `json:"percentage"`
}

// DocRatio holds documentation-to-code ratios by file count and line count.
type DocRatio struct {
	Files float64 `json:"files"`
	Lines float64 `json:"lines"`
}

// Set is the derived, read-only view computed from one AnalysisResult.
type Set struct {
	DominantLanguage           string             `json:"dominant_language"`
	LanguageRanking            []RankEntry        `json:"language_ranking"`
	PercentageByExtension      map[string]float64 `json:"percentage_by_extension"`
	DocumentationRatio         DocRatio           `json:"documentation_ratio"`
	AverageLinesPerFile        float64            `json:"average_lines_per_file"`
	LargestFileExtension       string             `json:"largest_file_extension"`
	ComplexityLevel            string             `json:"complexity_level"`
	StructuralBalanceScore     float64            `json:"structural_balance_score"`
	DocumentationQualitySignal bool               `json:"documentation_quality_signal"`
	HealthScore                int                `json:"health_score"`
}

// Compute derives the full insight set. An empty result short-circuits to the
// canonical zero set without invoking the per-metric functions.
func Compute(result *models.AnalysisResult) *Set {
	if result == nil || result.TotalFiles == 0 {
		return &Set{
			LanguageRanking:       []RankEntry{},
			PercentageByExtension: map[string]float64{},
			ComplexityLevel:       ComplexityLow,
		}
	}

	percentages := PercentageByExtension(result)
	set := &Set{
		DominantLanguage:           DominantLanguage(result),
		LanguageRanking:            LanguageRanking(percentages),
		PercentageByExtension:      percentages,
		DocumentationRatio:         DocumentationRatio(result),
		AverageLinesPerFile:        AverageLinesPerFile(result),
		LargestFileExtension:       LargestFileExtension(result),
		StructuralBalanceScore:     StructuralBalanceScore(percentages),
		DocumentationQualitySignal: result.Bucket(docExtension).Files > 0,
	}
	set.ComplexityLevel = ComplexityLevel(result.TotalFiles, set.AverageLinesPerFile)
	set.HealthScore = HealthScore(set, result)
	return set
}

// DominantLanguage returns the extension with the highest line count, or ""
// when there are no buckets. Ties resolve to the lexicographically first key.
func DominantLanguage(result *models.AnalysisResult) string {
	dominant := ""
	var best int64 = -1
	for _, ext := range result.Extensions() {
		lines := result.ByExtension[ext].Lines
		if lines > best {
			best = lines
			dominant = ext
		}
	}
	return dominant
}

// PercentageByExtension maps each extension to its share of total lines,
// 0–100. All zeros when there are no lines.
func PercentageByExtension(result *models.AnalysisResult) map[string]float64 {
	percentages := make(map[string]float64, len(result.ByExtension))
	for ext, bucket := range result.ByExtension {
		if result.TotalLines == 0 {
			percentages[ext] = 0
			continue
		}
		percentages[ext] = float64(bucket.Lines) / float64(result.TotalLines) * 100
	}
	return percentages
}

// LanguageRanking sorts extensions by percentage descending. Equal
// percentages order by extension for a stable result.
func LanguageRanking(percentages map[string]float64) []RankEntry {
	ranking := make([]RankEntry, 0, len(percentages))
	for ext, pct := range percentages {
		ranking = append(ranking, RankEntry{Extension: ext, Percentage: pct})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Percentage != ranking[j].Percentage {
			return ranking[i].Percentage > ranking[j].Percentage
		}
		return ranking[i].Extension < ranking[j].Extension
	})
	return ranking
}

// DocumentationRatio compares the .md bucket against everything else, by
// file count and by line count. A non-positive denominator yields 0.
func DocumentationRatio(result *models.AnalysisResult) DocRatio {
	md := result.Bucket(docExtension)
	codeFiles := result.TotalFiles - md.Files
	codeLines := result.TotalLines - md.Lines

	var ratio DocRatio
	if codeFiles > 0 {
		ratio.Files = float64(md.Files) / float64(codeFiles)
	}
	if codeLines > 0 {
		ratio.Lines = float64(md.Lines) / float64(codeLines)
	}
	return ratio
}

// AverageLinesPerFile returns total lines over total files, 0 for no files.
func AverageLinesPerFile(result *models.AnalysisResult) float64 {
	if result.TotalFiles == 0 {
		return 0
	}
	return float64(result.TotalLines) / float64(result.TotalFiles)
}

// LargestFileExtension returns the extension with the highest average lines
// per file. The comparison is strict, so an extension averaging zero lines
// never qualifies and ties keep the earlier key.
func LargestFileExtension(result *models.AnalysisResult) string {
	largest := ""
	maxAvg := 0.0
	for _, ext := range result.Extensions() {
		bucket := result.ByExtension[ext]
		if bucket.Files == 0 {
			continue
		}
		avg := float64(bucket.Lines) / float64(bucket.Files)
		if avg > maxAvg {
			maxAvg = avg
			largest = ext
		}
	}
	return largest
}

// ComplexityLevel classifies repository complexity. The Low check has
// precedence: a repository small on either axis is Low regardless of the
// other, everything outside the Medium band is High.
func ComplexityLevel(totalFiles int, avgLines float64) string {
	if totalFiles < 50 || avgLines < 100 {
		return ComplexityLow
	}
	if totalFiles <= 500 && avgLines <= 500 {
		return ComplexityMedium
	}
	return ComplexityHigh
}

// StructuralBalanceScore is the inverse Herfindahl index over line
// proportions: 1 minus the sum of squared proportions. 0 means one extension
// holds everything, values approach 1 as lines spread evenly.
func StructuralBalanceScore(percentages map[string]float64) float64 {
	if len(percentages) == 0 {
		return 0
	}
	values := make([]float64, 0, len(percentages))
	for _, pct := range percentages {
		values = append(values, pct)
	}
	total := floats.Sum(values)
	if total == 0 {
		return 0
	}
	floats.Scale(1/total, values)
	return 1 - floats.Dot(values, values)
}

// HealthScore grades the repository 0–10 from simple structural signals:
//
//	+2 documentation files present
//	+2 three or more non-doc extensions above 100 lines
//	+1 no oversized buckets (largest average under 5000 lines)
//	+2 balance score above 0.5
//	+2 moderate file count (50–500)
//	+1 reasonable average file size (50–500 lines)
func HealthScore(set *Set, result *models.AnalysisResult) int {
	score := 0

	if result.Bucket(docExtension).Files > 0 {
		score += 2
	}

	significant := 0
	for ext, bucket := range result.ByExtension {
		if ext != docExtension && bucket.Lines > 100 {
			significant++
		}
	}
	if significant >= 3 {
		score += 2
	}

	if largest := set.LargestFileExtension; largest != "" {
		bucket := result.Bucket(largest)
		avg := 0.0
		if bucket.Files > 0 {
			avg = float64(bucket.Lines) / float64(bucket.Files)
		}
		if avg < 5000 {
			score++
		}
	} else {
		// No bucket qualifies as largest, so no giant files exist either.
		score++
	}

	if set.StructuralBalanceScore > 0.5 {
		score += 2
	}
	if result.TotalFiles >= 50 && result.TotalFiles <= 500 {
		score += 2
	}
	if set.AverageLinesPerFile >= 50 && set.AverageLinesPerFile <= 500 {
		score++
	}

	if score > 10 {
		score = 10
	}
	return score
}
