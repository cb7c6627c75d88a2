package main

import (
	"fmt"
	"strings"

	"github.com/sourcegraph/conc"
	"github.com/urfave/cli/v2"

	"github.com/repolens/repolens/internal/insight"
	"github.com/repolens/repolens/internal/output"
	"github.com/repolens/repolens/internal/report"
)

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:      "report",
		Aliases:   []string{"rep"},
		Usage:     "Generate a full repository report",
		ArgsUsage: "[path|github-url]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "repo",
				Usage: "GitHub repository URL to clone and analyze",
			},
			&cli.StringFlag{
				Name:    "report",
				Aliases: []string{"formats"},
				Value:   "md",
				Usage:   "Comma-separated report formats: md, json, csv",
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Value: ".",
				Usage: "Directory for generated report files",
			},
			&cli.BoolFlag{
				Name:  "stdout",
				Usage: "Print the Markdown report instead of writing files",
			},
		},
		Action: runReportCmd,
	}
}

func runReportCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	msgs := loadCatalog(cfg)

	formatter, err := output.NewFormatter(output.FormatText, "", cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	formats, err := parseReportFormats(c.String("report"))
	if err != nil {
		return err
	}

	analysisPath, repoPath, cleanup, err := resolveSource(c, cfg, msgs)
	if err != nil {
		return err
	}
	defer cleanup()

	result := analyzeSource(cfg, msgs, analysisPath)
	set := insight.Compute(result)

	renderer := report.NewRenderer(cfg)
	markdown := renderer.Markdown(result, set, repoPath, analysisPath)

	if c.Bool("stdout") {
		fmt.Fprintln(formatter.Writer(), markdown)
		return nil
	}

	exporter := report.NewExporter(c.String("output-dir"))
	paths := make([]string, len(formats))
	errs := make([]error, len(formats))

	var wg conc.WaitGroup
	for i, format := range formats {
		wg.Go(func() {
			switch format {
			case "md":
				paths[i], errs[i] = exporter.Markdown(markdown, repoPath)
			case "json":
				paths[i], errs[i] = exporter.JSON(result, repoPath)
			case "csv":
				paths[i], errs[i] = exporter.CSV(result, repoPath)
			}
		})
	}
	wg.Wait()

	for i, format := range formats {
		if errs[i] != nil {
			return fmt.Errorf("writing %s report: %w", format, errs[i])
		}
		formatter.Success("%s %s", msgs.Lookup("report_saved_to"), paths[i])
	}
	return nil
}

func parseReportFormats(raw string) ([]string, error) {
	seen := make(map[string]bool)
	var formats []string
	for _, part := range strings.Split(raw, ",") {
		format := strings.ToLower(strings.TrimSpace(part))
		if format == "" {
			continue
		}
		switch format {
		case "md", "markdown":
			format = "md"
		case "json", "csv":
		default:
			return nil, fmt.Errorf("unsupported report format: %s (use md, json, or csv)", format)
		}
		if seen[format] {
			continue
		}
		seen[format] = true
		formats = append(formats, format)
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("no report formats given")
	}
	return formats, nil
}
