package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/repolens/repolens/internal/remote"
	"github.com/repolens/repolens/internal/report"
)

func treeCmd() *cli.Command {
	return &cli.Command{
		Name:      "tree",
		Usage:     "Print the repository directory structure",
		ArgsUsage: "[path|github-url]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "repo",
				Usage: "GitHub repository URL to clone and inspect",
			},
			&cli.IntFlag{
				Name:    "depth",
				Aliases: []string{"d"},
				Usage:   "Maximum tree depth",
			},
			&cli.IntFlag{
				Name:  "max-items",
				Usage: "Maximum entries shown per directory",
			},
		},
		Action: runTreeCmd,
	}
}

func runTreeCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	msgs := loadCatalog(cfg)

	analysisPath, repoPath, cleanup, err := resolveSource(c, cfg, msgs)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := report.TreeOptions{
		MaxDepth:         cfg.Report.TreeDepth,
		MaxItemsPerLevel: cfg.Report.TreeMaxItems,
	}
	if depth := c.Int("depth"); depth > 0 {
		opts.MaxDepth = depth
	}
	if maxItems := c.Int("max-items"); maxItems > 0 {
		opts.MaxItemsPerLevel = maxItems
	}

	fmt.Println(report.DirectoryTree(analysisPath, remote.RepoName(repoPath), opts))
	return nil
}
