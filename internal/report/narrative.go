package report

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"

	"github.com/repolens/repolens/internal/ecosystem"
	"github.com/repolens/repolens/internal/insight"
	"github.com/repolens/repolens/pkg/models"
)

// repoSeed derives a deterministic seed from the repository identity and its
// headline metrics, so a repository always yields the same narrative.
func repoSeed(repoPath string, result *models.AnalysisResult) int64 {
	key := fmt.Sprintf("%s_%d_%d", repoPath, result.TotalFiles, result.TotalLines)
	return int64(xxhash.Sum64String(key))
}

// selectPhrase picks from a phrase bank using the seed offset by index, so
// each narrative slot varies independently.
func selectPhrase(phrases []string, seed int64, index int) string {
	if len(phrases) == 0 {
		return ""
	}
	rng := rand.New(rand.NewSource(seed + int64(index)))
	return phrases[rng.Intn(len(phrases))]
}

// sentence is one candidate narrative component.
type sentence struct {
	text       string
	priority   int
	transition bool
}

// Narrative builds the insights paragraph: exactly three seeded sentences.
// The dominant-language sentence always leads when present; among the rest,
// health and complexity commentary win selection over documentation, balance
// and density.
func Narrative(set *insight.Set, result *models.AnalysisResult, repoPath string) string {
	seed := repoSeed(repoPath, result)

	dominant := "mixed languages"
	if set.DominantLanguage != "" {
		dominant = ecosystem.LanguageName(set.DominantLanguage)
	}

	topFamily := ""
	if families := ecosystem.RankedFamilies(ecosystem.Breakdown(result)); len(families) > 0 {
		topFamily = families[0]
	}

	var lead []sentence
	var candidates []sentence
	index := 0

	if dominant != "mixed languages" {
		phrase := selectPhrase(dominantLanguagePhrases, seed, index)
		lead = append(lead, sentence{text: fmt.Sprintf(phrase, dominant)})
		index++
	}

	docRatio := set.DocumentationRatio.Files
	var docBank []string
	switch {
	case docRatio > 0.1:
		docBank = documentationHighPhrases
	case docRatio > 0.05:
		docBank = documentationMediumPhrases
	case docRatio > 0:
		docBank = documentationLowPhrases
	default:
		docBank = documentationNonePhrases
	}
	candidates = append(candidates, sentence{text: selectPhrase(docBank, seed, index), priority: 1, transition: true})
	index++

	var complexityBank []string
	switch set.ComplexityLevel {
	case insight.ComplexityLow:
		complexityBank = complexityLowPhrases
	case insight.ComplexityMedium:
		complexityBank = complexityMediumPhrases
	default:
		complexityBank = complexityHighPhrases
	}
	candidates = append(candidates, sentence{text: selectPhrase(complexityBank, seed, index), priority: 2, transition: true})
	index++

	var densityBank []string
	switch {
	case set.AverageLinesPerFile >= 50 && set.AverageLinesPerFile <= 200:
		densityBank = densityReasonablePhrases
	case set.AverageLinesPerFile < 50:
		densityBank = densityLowPhrases
	default:
		densityBank = densityHighPhrases
	}
	candidates = append(candidates, sentence{text: selectPhrase(densityBank, seed, index), priority: 3, transition: true})
	index++

	var balanceBank []string
	switch {
	case set.StructuralBalanceScore > 0.6:
		balanceBank = balanceGoodPhrases
	case set.StructuralBalanceScore > 0.3:
		balanceBank = balanceModeratePhrases
	default:
		balanceBank = balancePoorPhrases
	}
	candidates = append(candidates, sentence{text: selectPhrase(balanceBank, seed, index), priority: 4, transition: true})
	index++

	if topFamily != "" && topFamily != "Other" {
		phrase := selectPhrase(ecosystemPhrases, seed, index)
		candidates = append(candidates, sentence{text: fmt.Sprintf(phrase, topFamily), priority: 5, transition: true})
		index++
	}

	var healthBank []string
	switch {
	case set.HealthScore >= 8:
		healthBank = healthHighPhrases
	case set.HealthScore >= 5:
		healthBank = healthMediumPhrases
	default:
		healthBank = healthLowPhrases
	}
	candidates = append(candidates, sentence{text: selectPhrase(healthBank, seed, index), priority: 6, transition: true})

	// Health and complexity commentary outrank the rest.
	relevance := func(s sentence) int {
		score := 100 - s.priority
		switch s.priority {
		case 6:
			score += 50
		case 2:
			score += 30
		}
		return score
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return relevance(candidates[i]) > relevance(candidates[j])
	})

	selected := lead
	for _, c := range candidates {
		if len(selected) == 3 {
			break
		}
		selected = append(selected, c)
	}

	sentences := make([]string, 0, len(selected))
	for i, s := range selected {
		text := strings.TrimSpace(s.text)
		if text == "" {
			continue
		}
		if i > 0 && s.transition {
			if t := selectPhrase(transitionPhrases, seed, i+200); t != "" {
				text = t + lowerFirst(text)
			}
		}
		text = upperFirst(text)
		if !strings.HasSuffix(text, ".") && !strings.HasSuffix(text, "!") && !strings.HasSuffix(text, "?") {
			text += "."
		}
		sentences = append(sentences, text)
	}

	return strings.Join(sentences, " ")
}

func upperFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func lowerFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
