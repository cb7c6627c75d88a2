package ecosystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repolens/repolens/pkg/models"
)

func TestLanguageName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{".py", "Python"},
		{".PY", "Python"},
		{"py", "Python"},
		{".js", "JavaScript"},
		{".rs", "Rust"},
		{"", "Unknown"},
		{"Makefile", "Makefile"},
		{"makefile", "Makefile"},
		{"Dockerfile", "Dockerfile"},
		{".zzz", "Zzz"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, LanguageName(tt.key))
		})
	}
}

func TestFamily(t *testing.T) {
	assert.Equal(t, "Systems", Family("Go"))
	assert.Equal(t, "Systems", Family("Rust"))
	assert.Equal(t, "Web", Family("JavaScript"))
	assert.Equal(t, "Scripting", Family("Python"))
	assert.Equal(t, "Other", Family("Made Up Language"))
}

func TestBreakdown(t *testing.T) {
	result := models.NewAnalysisResult()
	result.Add(".go", models.FileStat{Lines: 600})
	result.Add(".rs", models.FileStat{Lines: 200})
	result.Add(".js", models.FileStat{Lines: 200})

	breakdown := Breakdown(result)
	require.Len(t, breakdown, 2)

	systems := breakdown["Systems"]
	assert.Equal(t, 2, systems.Files)
	assert.Equal(t, int64(800), systems.Lines)
	assert.InDelta(t, 80.0, systems.Percentage, 1e-9)

	web := breakdown["Web"]
	assert.Equal(t, 1, web.Files)
	assert.InDelta(t, 20.0, web.Percentage, 1e-9)
}

func TestBreakdownEmpty(t *testing.T) {
	assert.Empty(t, Breakdown(models.NewAnalysisResult()))
	assert.Empty(t, Breakdown(nil))
}

func TestRankedFamilies(t *testing.T) {
	breakdown := map[string]FamilyStats{
		"Web":     {Percentage: 20},
		"Systems": {Percentage: 70},
		"Docs":    {Percentage: 10},
	}
	assert.Equal(t, []string{"Systems", "Web", "Docs"}, RankedFamilies(breakdown))

	tied := map[string]FamilyStats{
		"B": {Percentage: 50},
		"A": {Percentage: 50},
	}
	assert.Equal(t, []string{"A", "B"}, RankedFamilies(tied))
}
