package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/repolens/repolens/internal/i18n"
	"github.com/repolens/repolens/internal/insight"
	"github.com/repolens/repolens/pkg/models"
)

func summaryFixture(t *testing.T) (*models.AnalysisResult, *insight.Set, *i18n.Catalog) {
	t.Helper()
	result := models.NewAnalysisResult()
	for i := 0; i < 3; i++ {
		result.Add(".py", models.FileStat{Lines: 200, Characters: 5000})
	}
	result.Add(".js", models.FileStat{Lines: 150, Characters: 4000})
	result.Add(".md", models.FileStat{Lines: 80, Characters: 2000})

	msgs, err := i18n.Load("en")
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	return result, insight.Compute(result), msgs
}

func TestSummaryReportText(t *testing.T) {
	result, set, msgs := summaryFixture(t)
	rep := summaryReport(result, set, msgs, 10, false)

	var buf bytes.Buffer
	if err := rep.RenderText(&buf, false); err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Analysis Summary",
		"Top Extensions",
		"Insights",
		"Dominant Language: Python",
		"Health Score: ",
		"Complexity: Low",
		"Balance Score: 0.",
		"Documentation Ratio: 0.107",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("uncolored summary must not contain ANSI escapes")
	}
}

func TestSummaryReportMarkdown(t *testing.T) {
	result, set, msgs := summaryFixture(t)
	rep := summaryReport(result, set, msgs, 10, false)

	var buf bytes.Buffer
	if err := rep.RenderMarkdown(&buf); err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Analysis Summary",
		"## Top Extensions",
		"## Insights",
		"| Extension | Language | File Count | Line Count |",
		"| .py | Python | 3 | 600 |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown summary missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryReportDataPassthrough(t *testing.T) {
	result, set, msgs := summaryFixture(t)
	rep := summaryReport(result, set, msgs, 10, false)

	data, ok := rep.RenderData().(*analysisSummary)
	if !ok {
		t.Fatalf("RenderData() = %T, want *analysisSummary", rep.RenderData())
	}
	if data.Analysis != result || data.Insights != set {
		t.Error("serialized summary must wrap the original result and insights")
	}
	if len(data.Ecosystem) == 0 {
		t.Error("serialized summary missing the ecosystem breakdown")
	}
}

func TestSummaryTableTopN(t *testing.T) {
	result, set, msgs := summaryFixture(t)

	table := summaryTable(result, set, msgs, 2)
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}
	if table.Rows[0][0] != ".py" {
		t.Errorf("first row = %q, want .py (most files first)", table.Rows[0][0])
	}
	if table.Footer[1] != "Python" {
		t.Errorf("footer language = %q, want Python", table.Footer[1])
	}
}

func TestHealthSeverity(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "high"},
		{3, "high"},
		{4, "medium"},
		{5, "medium"},
		{6, "good"},
		{10, "good"},
	}
	for _, tt := range tests {
		if got := healthSeverity(tt.score); got != tt.want {
			t.Errorf("healthSeverity(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
