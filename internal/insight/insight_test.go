package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repolens/repolens/pkg/models"
)

func resultWith(buckets map[string]models.ExtensionBucket) *models.AnalysisResult {
	result := models.NewAnalysisResult()
	for ext, bucket := range buckets {
		for i := 0; i < bucket.Files; i++ {
			lines := bucket.Lines / int64(bucket.Files)
			chars := bucket.Characters / int64(bucket.Files)
			if i == 0 {
				lines += bucket.Lines % int64(bucket.Files)
				chars += bucket.Characters % int64(bucket.Files)
			}
			result.Add(ext, models.FileStat{Lines: lines, Characters: chars})
		}
	}
	return result
}

func TestComputeEmpty(t *testing.T) {
	set := Compute(models.NewAnalysisResult())

	assert.Empty(t, set.DominantLanguage)
	assert.Empty(t, set.LanguageRanking)
	assert.Empty(t, set.PercentageByExtension)
	assert.Equal(t, ComplexityLow, set.ComplexityLevel)
	assert.Zero(t, set.StructuralBalanceScore)
	assert.Zero(t, set.HealthScore)
	assert.False(t, set.DocumentationQualitySignal)
}

func TestPercentageByExtension(t *testing.T) {
	result := resultWith(map[string]models.ExtensionBucket{
		".py": {Files: 2, Lines: 60},
		".js": {Files: 1, Lines: 30},
		".md": {Files: 1, Lines: 10},
	})

	percentages := PercentageByExtension(result)
	assert.InDelta(t, 60.0, percentages[".py"], 1e-9)
	assert.InDelta(t, 30.0, percentages[".js"], 1e-9)
	assert.InDelta(t, 10.0, percentages[".md"], 1e-9)
}

func TestDominantLanguage(t *testing.T) {
	result := resultWith(map[string]models.ExtensionBucket{
		".py": {Files: 1, Lines: 500},
		".go": {Files: 10, Lines: 300},
	})
	assert.Equal(t, ".py", DominantLanguage(result), "line count decides, not file count")

	tie := resultWith(map[string]models.ExtensionBucket{
		".rb": {Files: 1, Lines: 100},
		".go": {Files: 1, Lines: 100},
	})
	assert.Equal(t, ".go", DominantLanguage(tie), "ties resolve to the first sorted key")
}

func TestLanguageRanking(t *testing.T) {
	ranking := LanguageRanking(map[string]float64{
		".py": 60,
		".js": 30,
		".md": 10,
	})
	require.Len(t, ranking, 3)
	assert.Equal(t, ".py", ranking[0].Extension)
	assert.Equal(t, ".js", ranking[1].Extension)
	assert.Equal(t, ".md", ranking[2].Extension)

	tied := LanguageRanking(map[string]float64{".b": 50, ".a": 50})
	assert.Equal(t, ".a", tied[0].Extension)
}

func TestLanguageRankingPercentagesSumTo100(t *testing.T) {
	result := resultWith(map[string]models.ExtensionBucket{
		".py":      {Files: 7, Lines: 1237},
		".js":      {Files: 3, Lines: 411},
		".go":      {Files: 11, Lines: 2999},
		".md":      {Files: 2, Lines: 97},
		".toml":    {Files: 1, Lines: 13},
		"Makefile": {Files: 1, Lines: 41},
		".sh":      {Files: 4, Lines: 303},
	})

	set := Compute(result)
	require.NotEmpty(t, set.LanguageRanking)

	var sum float64
	for _, entry := range set.LanguageRanking {
		sum += entry.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.01)
}

func TestDocumentationRatio(t *testing.T) {
	result := resultWith(map[string]models.ExtensionBucket{
		".py": {Files: 4, Lines: 400},
		".md": {Files: 1, Lines: 100},
	})

	ratio := DocumentationRatio(result)
	assert.InDelta(t, 0.25, ratio.Files, 1e-9)
	assert.InDelta(t, 0.25, ratio.Lines, 1e-9)
}

func TestDocumentationRatioOnlyDocs(t *testing.T) {
	result := resultWith(map[string]models.ExtensionBucket{
		".md": {Files: 2, Lines: 50},
	})
	ratio := DocumentationRatio(result)
	assert.Zero(t, ratio.Files)
	assert.Zero(t, ratio.Lines)
}

func TestLargestFileExtension(t *testing.T) {
	result := resultWith(map[string]models.ExtensionBucket{
		".py": {Files: 10, Lines: 100}, // avg 10
		".sql": {Files: 1, Lines: 900}, // avg 900
	})
	assert.Equal(t, ".sql", LargestFileExtension(result))

	empty := models.NewAnalysisResult()
	assert.Empty(t, LargestFileExtension(empty))
}

func TestComplexityLevel(t *testing.T) {
	tests := []struct {
		name     string
		files    int
		avgLines float64
		want     string
	}{
		{"few_files", 100, 50, ComplexityLow},
		{"short_files", 10, 1000, ComplexityLow},
		{"both_small", 10, 10, ComplexityLow},
		{"medium", 100, 200, ComplexityMedium},
		{"medium_upper_bound", 500, 500, ComplexityMedium},
		{"many_files", 600, 200, ComplexityHigh},
		{"long_files", 100, 600, ComplexityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComplexityLevel(tt.files, tt.avgLines))
		})
	}
}

func TestStructuralBalanceScore(t *testing.T) {
	assert.Zero(t, StructuralBalanceScore(nil))
	assert.Zero(t, StructuralBalanceScore(map[string]float64{".py": 100}),
		"one extension holding everything scores zero")

	even := StructuralBalanceScore(map[string]float64{".a": 50, ".b": 50})
	assert.InDelta(t, 0.5, even, 1e-9)

	four := StructuralBalanceScore(map[string]float64{".a": 25, ".b": 25, ".c": 25, ".d": 25})
	assert.InDelta(t, 0.75, four, 1e-9)

	skewed := StructuralBalanceScore(map[string]float64{".a": 90, ".b": 10})
	assert.Greater(t, even, skewed)
}

func TestHealthScoreSignals(t *testing.T) {
	// Well-rounded repository: docs, several significant extensions, even
	// spread, moderate size, no giant files.
	result := resultWith(map[string]models.ExtensionBucket{
		".py": {Files: 30, Lines: 4500},
		".js": {Files: 30, Lines: 4500},
		".ts": {Files: 30, Lines: 4500},
		".md": {Files: 10, Lines: 1500},
	})
	set := Compute(result)
	assert.Equal(t, 10, set.HealthScore)
}

func TestHealthScoreEmptyRepo(t *testing.T) {
	set := Compute(models.NewAnalysisResult())
	assert.Zero(t, set.HealthScore)
}

func TestHealthScoreNoDocsOneLanguage(t *testing.T) {
	result := resultWith(map[string]models.ExtensionBucket{
		".py": {Files: 2, Lines: 20000},
	})
	set := Compute(result)
	// No docs, single extension, giant average, tiny file count: nothing
	// scores.
	assert.Zero(t, set.HealthScore)
}
