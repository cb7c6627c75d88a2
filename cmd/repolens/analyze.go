package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/repolens/repolens/internal/ecosystem"
	"github.com/repolens/repolens/internal/i18n"
	"github.com/repolens/repolens/internal/insight"
	"github.com/repolens/repolens/internal/output"
	"github.com/repolens/repolens/internal/report"
	"github.com/repolens/repolens/pkg/models"
)

func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Aliases:   []string{"an"},
		Usage:     "Analyze a repository and print summary statistics",
		ArgsUsage: "[path|github-url]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "repo",
				Usage: "GitHub repository URL to clone and analyze",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, markdown, toon",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write output to file instead of stdout",
			},
			&cli.StringFlag{
				Name:  "export",
				Usage: "Also export raw results: json or csv",
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Value: ".",
				Usage: "Directory for exported files",
			},
		},
		Action: runAnalyzeCmd,
	}
}

func runAnalyzeCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	msgs := loadCatalog(cfg)

	formatter, err := newFormatter(c, cfg, output.FormatText)
	if err != nil {
		return err
	}
	defer formatter.Close()

	analysisPath, repoPath, cleanup, err := resolveSource(c, cfg, msgs)
	if err != nil {
		return err
	}
	defer cleanup()

	result := analyzeSource(cfg, msgs, analysisPath)
	set := insight.Compute(result)

	if result.TotalFiles == 0 {
		formatter.Warning("%s", msgs.Lookup("no_files_found"))
		return nil
	}

	colored := formatter.Colored() && formatter.Format() == output.FormatText
	rep := summaryReport(result, set, msgs, cfg.Report.TopExtensions, colored)
	if err := formatter.Output(rep); err != nil {
		return err
	}

	if exportFmt := c.String("export"); exportFmt != "" {
		exporter := report.NewExporter(c.String("output-dir"))
		var path string
		switch exportFmt {
		case "json":
			path, err = exporter.JSON(result, repoPath)
		case "csv":
			path, err = exporter.CSV(result, repoPath)
		default:
			return fmt.Errorf("unsupported export format: %s (use json or csv)", exportFmt)
		}
		if err != nil {
			return err
		}
		formatter.Success("%s %s", msgs.Lookup("exported_to"), path)
	}
	return nil
}

type analysisSummary struct {
	Analysis  *models.AnalysisResult           `json:"analysis"`
	Insights  *insight.Set                     `json:"insights"`
	Ecosystem map[string]ecosystem.FamilyStats `json:"ecosystem"`
}

// summaryReport assembles the analyze output: the extension table plus an
// insight section, with the full result attached for JSON/TOON serialization.
func summaryReport(result *models.AnalysisResult, set *insight.Set, msgs *i18n.Catalog, topN int, colored bool) *output.Report {
	return &output.Report{
		Title: msgs.Lookup("summary"),
		Sections: []output.Renderable{
			summaryTable(result, set, msgs, topN),
			insightSection(set, msgs, colored),
		},
		Data: &analysisSummary{
			Analysis:  result,
			Insights:  set,
			Ecosystem: ecosystem.Breakdown(result),
		},
	}
}

// insightSection renders the headline insight values. Severity coloring is
// applied only for colored terminal text, never for files or markdown.
func insightSection(set *insight.Set, msgs *i18n.Catalog, colored bool) *output.Section {
	health := fmt.Sprintf("%d/10", set.HealthScore)
	complexity := set.ComplexityLevel
	if colored {
		health = output.SeverityColor(healthSeverity(set.HealthScore), health)
		complexity = output.SeverityColor(set.ComplexityLevel, complexity)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", msgs.Lookup("dominant_language"), ecosystem.LanguageName(set.DominantLanguage))
	fmt.Fprintf(&b, "%s: %s\n", msgs.Lookup("health_score"), health)
	fmt.Fprintf(&b, "%s: %s\n", msgs.Lookup("complexity"), complexity)
	fmt.Fprintf(&b, "%s: %.2f\n", msgs.Lookup("balance_score"), set.StructuralBalanceScore)
	fmt.Fprintf(&b, "%s: %.3f", msgs.Lookup("doc_ratio"), set.DocumentationRatio.Lines)

	return &output.Section{
		Title:   msgs.Lookup("insights"),
		Content: b.String(),
	}
}

func healthSeverity(score int) string {
	switch {
	case score < 4:
		return "high"
	case score < 6:
		return "medium"
	default:
		return "good"
	}
}

func summaryTable(result *models.AnalysisResult, set *insight.Set, msgs *i18n.Catalog, topN int) *output.Table {
	exts := result.Extensions()
	sort.SliceStable(exts, func(i, j int) bool {
		a, b := result.ByExtension[exts[i]], result.ByExtension[exts[j]]
		if a.Files != b.Files {
			return a.Files > b.Files
		}
		return exts[i] < exts[j]
	})
	if topN > 0 && len(exts) > topN {
		exts = exts[:topN]
	}

	rows := make([][]string, 0, len(exts))
	for _, ext := range exts {
		bucket := result.ByExtension[ext]
		label := ext
		if label == "" {
			label = "(no extension)"
		}
		rows = append(rows, []string{
			label,
			ecosystem.LanguageName(ext),
			strconv.Itoa(bucket.Files),
			strconv.FormatInt(bucket.Lines, 10),
		})
	}

	footer := []string{
		msgs.Lookup("total"),
		ecosystem.LanguageName(set.DominantLanguage),
		strconv.Itoa(result.TotalFiles),
		strconv.FormatInt(result.TotalLines, 10),
	}

	headers := []string{
		msgs.Lookup("extension"),
		msgs.Lookup("language"),
		msgs.Lookup("file_count"),
		msgs.Lookup("line_count"),
	}
	return output.NewTable(msgs.Lookup("top_extensions"), headers, rows, footer, nil)
}
