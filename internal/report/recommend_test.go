package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repolens/repolens/internal/insight"
	"github.com/repolens/repolens/pkg/models"
)

func TestRecommendationsMissingTestsRankFirst(t *testing.T) {
	result := sampleResult()
	set := insight.Compute(result)

	recs := Recommendations(set, result, "myrepo", 4)
	require.NotEmpty(t, recs)
	assert.Contains(t, testCoveragePhrases, recs[0], "absent tests outrank everything")
}

func TestRecommendationsHealthyRepo(t *testing.T) {
	// Docs above 10%, tests present, even spread, moderate sizes.
	result := models.NewAnalysisResult()
	for i := 0; i < 30; i++ {
		result.Add(".py", models.FileStat{Lines: 150})
		result.Add(".js", models.FileStat{Lines: 150})
		result.Add(".ts", models.FileStat{Lines: 150})
	}
	for i := 0; i < 10; i++ {
		result.Add(".md", models.FileStat{Lines: 150})
		result.Add(".test", models.FileStat{Lines: 150})
	}
	set := insight.Compute(result)

	recs := Recommendations(set, result, "myrepo", 4)
	assert.Empty(t, recs, "no threshold crossed means no advice")
}

func TestRecommendationsCap(t *testing.T) {
	// Everything wrong at once: no tests, no docs, giant skewed files.
	result := models.NewAnalysisResult()
	for i := 0; i < 600; i++ {
		result.Add(".py", models.FileStat{Lines: 2000})
	}
	set := insight.Compute(result)

	recs := Recommendations(set, result, "myrepo", 4)
	assert.Len(t, recs, 4)
	assert.Contains(t, testCoveragePhrases, recs[0])
}

func TestRecommendationsDeterministic(t *testing.T) {
	result := sampleResult()
	set := insight.Compute(result)

	assert.Equal(t,
		Recommendations(set, result, "myrepo", 4),
		Recommendations(set, result, "myrepo", 4))
}

func TestHasTestBuckets(t *testing.T) {
	none := models.NewAnalysisResult()
	none.Add(".py", models.FileStat{Lines: 10})
	assert.False(t, hasTestBuckets(none))

	specs := models.NewAnalysisResult()
	specs.Add(".spec", models.FileStat{Lines: 10})
	assert.True(t, hasTestBuckets(specs))

	tests := models.NewAnalysisResult()
	tests.Add("runtests", models.FileStat{Lines: 10})
	assert.True(t, hasTestBuckets(tests))
}
