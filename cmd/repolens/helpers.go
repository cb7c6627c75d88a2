package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/repolens/repolens/internal/analyzer"
	"github.com/repolens/repolens/internal/i18n"
	"github.com/repolens/repolens/internal/output"
	"github.com/repolens/repolens/internal/progress"
	"github.com/repolens/repolens/internal/remote"
	"github.com/repolens/repolens/pkg/config"
	"github.com/repolens/repolens/pkg/models"
)

// getPath returns the first positional argument, defaulting to the
// current directory.
func getPath(c *cli.Context) string {
	if c.Args().Len() > 0 {
		return c.Args().First()
	}
	return "."
}

// loadConfig resolves configuration from --config or the default search
// list, then layers the global CLI flags on top.
func loadConfig(c *cli.Context) (*config.Config, error) {
	var cfg *config.Config
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.LoadOrDefault(".")
	}

	if c.Bool("no-color") {
		cfg.Output.Color = false
	}
	if c.Bool("verbose") {
		cfg.Output.Verbose = true
	}
	if lang := c.String("lang"); lang != "" {
		cfg.Output.Language = lang
	}
	return cfg, nil
}

func newFormatter(c *cli.Context, cfg *config.Config, defaultFormat output.Format) (*output.Formatter, error) {
	format := defaultFormat
	if raw := c.String("format"); raw != "" {
		format = output.ParseFormat(raw)
	} else if cfg.Output.Format != "" {
		format = output.ParseFormat(cfg.Output.Format)
	}
	return output.NewFormatter(format, c.String("output"), cfg.Output.Color)
}

func loadCatalog(cfg *config.Config) *i18n.Catalog {
	msgs, err := i18n.Load(cfg.Output.Language)
	if err != nil {
		return &i18n.Catalog{}
	}
	return msgs
}

// resolveSource turns the command input into a local directory to
// analyze. Remote sources are cloned into a temp dir; the returned
// cleanup removes it and is always safe to call.
func resolveSource(c *cli.Context, cfg *config.Config, msgs *i18n.Catalog) (analysisPath, repoPath string, cleanup func(), err error) {
	cleanup = func() {}

	var src *remote.Source
	if repoURL := strings.TrimSpace(c.String("repo")); repoURL != "" {
		if err := remote.ValidateURL(repoURL); err != nil {
			return "", "", cleanup, err
		}
		src = &remote.Source{URL: strings.TrimRight(repoURL, "/")}
	} else {
		parsed, perr := remote.Parse(getPath(c))
		if perr != nil {
			return "", "", cleanup, perr
		}
		src = parsed
	}

	if src != nil {
		dir, cl, cerr := cloneSource(c, cfg, msgs, src)
		if cerr != nil {
			return "", "", cleanup, cerr
		}
		return dir, src.URL, cl, nil
	}

	resolved := analyzer.NormalizePath(getPath(c))
	info, serr := os.Stat(resolved)
	if serr != nil {
		return "", "", cleanup, fmt.Errorf("directory not found: %s", resolved)
	}
	if !info.IsDir() {
		return "", "", cleanup, fmt.Errorf("path is not a directory: %s", resolved)
	}
	return resolved, resolved, cleanup, nil
}

func cloneSource(c *cli.Context, cfg *config.Config, msgs *i18n.Catalog, src *remote.Source) (string, func(), error) {
	spinner := progress.NewSpinner(fmt.Sprintf("%s %s", msgs.Lookup("cloning"), src.URL))
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				spinner.Tick()
			}
		}
	}()

	cloner := remote.NewCloner(
		time.Duration(cfg.Clone.TimeoutMinutes)*time.Minute,
		cfg.Clone.Depth,
	)
	dir, cleanup, err := cloner.Clone(c.Context, src)
	close(done)
	if err != nil {
		spinner.FinishError(err)
		if c.Context.Err() != nil {
			err = fmt.Errorf("%s: %w", msgs.Lookup("interrupted"), err)
		}
		return "", func() {}, err
	}
	spinner.FinishSuccess()
	return dir, cleanup, nil
}

// analyzeSource runs the walk with spinner feedback.
func analyzeSource(cfg *config.Config, msgs *i18n.Catalog, path string) *models.AnalysisResult {
	spinner := progress.NewSpinner(msgs.Lookup("analyzing"))
	a := analyzer.New(cfg, analyzer.WithProgress(func(string) {
		spinner.Tick()
	}))
	result := a.AnalyzeDir(path)
	spinner.FinishSuccess()
	return result
}
