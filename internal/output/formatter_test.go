package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func statsTable() *Table {
	return NewTable(
		"Analysis Summary",
		[]string{"Extension", "Files", "Lines"},
		[][]string{
			{".py", "12", "1400"},
			{".js", "5", "600"},
		},
		[]string{"Total", "17", "2000"},
		nil,
	)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"text", FormatText},
		{"TEXT", FormatText},
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"markdown", FormatMarkdown},
		{"md", FormatMarkdown},
		{"toon", FormatTOON},
		{"TOON", FormatTOON},
		{"", FormatText},
		{"invalid", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewFormatter(t *testing.T) {
	f, err := NewFormatter(FormatJSON, "", false)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}
	defer f.Close()

	if f.Format() != FormatJSON {
		t.Errorf("Format() = %q, want %q", f.Format(), FormatJSON)
	}
	if f.Colored() {
		t.Error("Colored() = true, want false")
	}
	if f.Writer() != os.Stdout {
		t.Error("Writer() should default to stdout")
	}
}

func TestNewFormatterWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	f, err := NewFormatter(FormatText, path, true)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}
	if f.Colored() {
		t.Error("file output must disable color")
	}
	if err := f.Output(statsTable()); err != nil {
		t.Fatalf("Output() error: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !strings.Contains(string(content), "Analysis Summary") {
		t.Errorf("file output = %q, want table title", content)
	}
}

func TestNewFormatterInvalidPath(t *testing.T) {
	if _, err := NewFormatter(FormatText, filepath.Join(t.TempDir(), "no", "such", "dir", "f"), false); err == nil {
		t.Error("expected error for uncreatable output path")
	}
}

func TestTableRenderText(t *testing.T) {
	var buf bytes.Buffer
	if err := statsTable().RenderText(&buf, false); err != nil {
		t.Fatalf("RenderText() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Analysis Summary", "=", ".py", "1400", "Total"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTableRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := statsTable().RenderMarkdown(&buf); err != nil {
		t.Fatalf("RenderMarkdown() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"## Analysis Summary",
		"| Extension | Files | Lines |",
		"| --- | --- | --- |",
		"| .py | 12 | 1400 |",
		"| Total | 17 | 2000 |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTableRenderData(t *testing.T) {
	table := statsTable()
	rows, ok := table.RenderData().([]map[string]string)
	if !ok {
		t.Fatalf("RenderData() = %T, want []map[string]string", table.RenderData())
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0]["Extension"] != ".py" || rows[0]["Lines"] != "1400" {
		t.Errorf("row 0 = %v", rows[0])
	}

	wrapped := NewTable("t", nil, nil, nil, map[string]int{"total": 17})
	if data, ok := wrapped.RenderData().(map[string]int); !ok || data["total"] != 17 {
		t.Errorf("RenderData() should pass wrapped data through, got %v", wrapped.RenderData())
	}
}

func TestSectionRenderText(t *testing.T) {
	section := &Section{
		Title:   "Insights",
		Content: "Python dominates the repository.",
		Sections: []Section{
			{Title: "Health", Content: "Score 8/10."},
		},
	}

	var buf bytes.Buffer
	if err := section.RenderText(&buf, false); err != nil {
		t.Fatalf("RenderText() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Insights", "===", "Python dominates", "Health", "---", "Score 8/10."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSectionRenderMarkdown(t *testing.T) {
	section := &Section{
		Title:   "Insights",
		Content: "Narrative body.",
		Sections: []Section{
			{Title: "Health", Content: "Score 8/10."},
		},
	}

	var buf bytes.Buffer
	if err := section.RenderMarkdown(&buf); err != nil {
		t.Fatalf("RenderMarkdown() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "## Insights") {
		t.Errorf("missing top heading:\n%s", out)
	}
	if !strings.Contains(out, "### Health") {
		t.Errorf("missing nested heading:\n%s", out)
	}
}

func TestReportRender(t *testing.T) {
	report := &Report{
		Title: "RepoLens",
		Sections: []Renderable{
			statsTable(),
			&Section{Title: "Insights", Content: "Balanced structure."},
		},
	}

	var text bytes.Buffer
	if err := report.RenderText(&text, false); err != nil {
		t.Fatalf("RenderText() error: %v", err)
	}
	for _, want := range []string{"RepoLens", "Analysis Summary", "Insights"} {
		if !strings.Contains(text.String(), want) {
			t.Errorf("text output missing %q", want)
		}
	}

	var md bytes.Buffer
	if err := report.RenderMarkdown(&md); err != nil {
		t.Fatalf("RenderMarkdown() error: %v", err)
	}
	if !strings.Contains(md.String(), "# RepoLens") {
		t.Errorf("markdown output missing title:\n%s", md.String())
	}
}

func TestFormatterOutputRenderable(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		want   string
	}{
		{"text", FormatText, "Analysis Summary"},
		{"markdown", FormatMarkdown, "## Analysis Summary"},
		{"json", FormatJSON, `".py"`},
		{"toon", FormatTOON, ".py"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out")
			f, err := NewFormatter(tt.format, path, false)
			if err != nil {
				t.Fatalf("NewFormatter() error: %v", err)
			}
			if err := f.Output(statsTable()); err != nil {
				t.Fatalf("Output() error: %v", err)
			}
			f.Close()

			content, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile error: %v", err)
			}
			if !strings.Contains(string(content), tt.want) {
				t.Errorf("output = %q, want to contain %q", content, tt.want)
			}
		})
	}
}

func TestFormatterOutputRawJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	f, err := NewFormatter(FormatJSON, path, false)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}
	data := map[string]int{"total_files": 17}
	if err := f.Output(data); err != nil {
		t.Fatalf("Output() error: %v", err)
	}
	f.Close()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	var decoded map[string]int
	if err := json.Unmarshal(content, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["total_files"] != 17 {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestFormatterOutputRawMarkdownFence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	f, err := NewFormatter(FormatMarkdown, path, false)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}
	if err := f.Output(map[string]string{"language": "Python"}); err != nil {
		t.Fatalf("Output() error: %v", err)
	}
	f.Close()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	out := string(content)
	if !strings.Contains(out, "```json") || !strings.Contains(out, "```") {
		t.Errorf("raw markdown output should fence JSON:\n%s", out)
	}
}

func TestFormatterMessageMethods(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msgs")
	f, err := NewFormatter(FormatText, path, false)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}
	f.Success("saved %s", "report.md")
	f.Warning("nothing found")
	f.Error("clone failed")
	f.Info("analyzing")
	f.Close()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	out := string(content)
	for _, want := range []string{"saved report.md", "WARNING: nothing found", "ERROR: clone failed", "analyzing"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSeverityColor(t *testing.T) {
	for _, severity := range []string{"critical", "high", "medium", "moderate", "low", "good", "excellent", "unknown", ""} {
		if got := SeverityColor(severity, "text"); got == "" {
			t.Errorf("SeverityColor(%q) returned empty string", severity)
		}
	}
}

func TestFormatterEmptyRenderables(t *testing.T) {
	var buf bytes.Buffer

	empty := NewTable("", nil, nil, nil, nil)
	if err := empty.RenderText(&buf, false); err != nil {
		t.Errorf("empty table RenderText() error: %v", err)
	}
	if err := (&Section{}).RenderText(&buf, false); err != nil {
		t.Errorf("empty section RenderText() error: %v", err)
	}
	if err := (&Report{}).RenderMarkdown(&buf); err != nil {
		t.Errorf("empty report RenderMarkdown() error: %v", err)
	}
}
