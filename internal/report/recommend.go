package report

import (
	"sort"
	"strings"

	"github.com/repolens/repolens/internal/insight"
	"github.com/repolens/repolens/pkg/models"
)

// NeutralRecommendation is rendered when no threshold triggers.
const NeutralRecommendation = "Repository structure is well-maintained"

type scoredRec struct {
	weight int
	text   string
}

// Recommendations builds the prioritized advice list. Each crossed threshold
// contributes a seeded phrase with a fixed weight; duplicates keep their
// highest weight and the top entries win, capped at max.
func Recommendations(set *insight.Set, result *models.AnalysisResult, repoPath string, max int) []string {
	if max <= 0 {
		max = 4
	}
	seed := repoSeed(repoPath, result)

	var recs []scoredRec

	if !hasTestBuckets(result) {
		recs = append(recs, scoredRec{100, selectPhrase(testCoveragePhrases, seed, 0)})
	}

	switch docRatio := set.DocumentationRatio.Files; {
	case docRatio < 0.05:
		recs = append(recs, scoredRec{90, selectPhrase(documentationRecommendations, seed, 1)})
	case docRatio < 0.1:
		recs = append(recs, scoredRec{70, selectPhrase(documentationRecommendations, seed, 1)})
	}

	if largest := set.LargestFileExtension; largest != "" {
		bucket := result.Bucket(largest)
		avg := 0.0
		if bucket.Files > 0 {
			avg = float64(bucket.Lines) / float64(bucket.Files)
		}
		switch {
		case avg > 1000:
			recs = append(recs, scoredRec{80, selectPhrase(modularizationPhrases, seed, 2)})
		case avg > 500:
			recs = append(recs, scoredRec{60, selectPhrase(modularizationPhrases, seed, 2)})
		}
	}

	if set.ComplexityLevel == insight.ComplexityHigh {
		recs = append(recs, scoredRec{50, selectPhrase(structuralPhrases, seed, 3)})
	}

	switch {
	case set.StructuralBalanceScore < 0.2:
		recs = append(recs, scoredRec{55, selectPhrase(structuralPhrases, seed, 4)})
	case set.StructuralBalanceScore < 0.3:
		recs = append(recs, scoredRec{45, selectPhrase(structuralPhrases, seed, 4)})
	}

	switch {
	case set.HealthScore < 4:
		recs = append(recs, scoredRec{65, selectPhrase(healthImprovementPhrases, seed, 5)})
	case set.HealthScore < 6:
		recs = append(recs, scoredRec{40, selectPhrase(healthImprovementPhrases, seed, 5)})
	}

	// Dedupe by text, keeping the highest weight.
	best := map[string]int{}
	for _, r := range recs {
		if w, ok := best[r.text]; !ok || r.weight > w {
			best[r.text] = r.weight
		}
	}
	unique := make([]scoredRec, 0, len(best))
	for text, weight := range best {
		unique = append(unique, scoredRec{weight, text})
	}
	sort.Slice(unique, func(i, j int) bool {
		if unique[i].weight != unique[j].weight {
			return unique[i].weight > unique[j].weight
		}
		return unique[i].text < unique[j].text
	})

	if len(unique) > max {
		unique = unique[:max]
	}
	out := make([]string, len(unique))
	for i, r := range unique {
		out[i] = r.text
	}
	return out
}

// hasTestBuckets reports whether any bucket key looks test-related.
func hasTestBuckets(result *models.AnalysisResult) bool {
	for ext, bucket := range result.ByExtension {
		if bucket.Files == 0 {
			continue
		}
		lower := strings.ToLower(ext)
		if strings.Contains(lower, "test") || strings.Contains(lower, "spec") {
			return true
		}
	}
	return false
}
