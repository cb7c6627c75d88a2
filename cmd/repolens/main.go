package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// version is set via ldflags at release time.
var version = "dev"

func main() {
	app := &cli.App{
		Name:    "repolens",
		Usage:   "Repository statistics and intelligence reports",
		Version: version,
		Description: `RepoLens walks a local directory or a freshly cloned GitHub repository,
counts files, lines and characters per extension, and derives structural
insights: dominant language, balance score, health score, complexity tier
and an ecosystem breakdown, rendered as Markdown, JSON or CSV reports.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (TOML, YAML, or JSON)",
				EnvVars: []string{"REPOLENS_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "lang",
				Value: "en",
				Usage: "Interface language: en, es, ar",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output",
			},
		},
		Commands: []*cli.Command{
			analyzeCmd(),
			reportCmd(),
			exportCmd(),
			treeCmd(),
			validateCmd(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
