package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/repolens/repolens/internal/output"
	"github.com/repolens/repolens/internal/report"
)

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Aliases:   []string{"ex"},
		Usage:     "Export raw analysis results to a file",
		ArgsUsage: "[path|github-url]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "repo",
				Usage: "GitHub repository URL to clone and analyze",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "json",
				Usage:   "Export format: json or csv",
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Value: ".",
				Usage: "Directory for the exported file",
			},
		},
		Action: runExportCmd,
	}
}

func runExportCmd(c *cli.Context) error {
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

	format := c.String("format")
	if format != "json" && format != "csv" {
		return fmt.Errorf("unsupported export format: %s (use json or csv)", format)
	}

	analysisPath, repoPath, cleanup, err := resolveSource(c, cfg, msgs)
	if err != nil {
		return err
	}
	defer cleanup()

	result := analyzeSource(cfg, msgs, analysisPath)

	exporter := report.NewExporter(c.String("output-dir"))
	var path string
	if format == "json" {
		path, err = exporter.JSON(result, repoPath)
	} else {
		path, err = exporter.CSV(result, repoPath)
	}
	if err != nil {
		return err
	}
	formatter.Success("%s %s", msgs.Lookup("exported_to"), path)
	return nil
}
