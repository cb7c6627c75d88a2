package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/repolens/repolens/internal/output"
	"github.com/repolens/repolens/internal/report"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate an exported JSON result against the analysis schema",
		ArgsUsage: "FILE",
		Action:    runValidateCmd,
	}
}

func runValidateCmd(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("validate requires exactly one JSON file argument")
	}
	path := c.Args().First()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	formatter, err := output.NewFormatter(output.FormatText, "", cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if err := report.ValidateExport(path); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	formatter.Success("%s is a valid analysis export", path)
	return nil
}
