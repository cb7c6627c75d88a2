// Package remote acquires GitHub repositories for analysis: URL recognition,
// shallow cloning into a temp directory, and repository name extraction.
package remote

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
)

// Categorized clone failures, checked by the CLI with errors.Is.
var (
	ErrRepoNotFound = errors.New("repository not found")
	ErrAuthDenied   = errors.New("permission denied, check your git authentication")
	ErrCloneTimeout = errors.New("repository clone timed out")
)

// Source represents a remote repository to analyze.
type Source struct {
	URL string // normalized git URL
	Ref string // branch, tag, or SHA (empty = default branch)
}

var (
	httpsURLPattern = regexp.MustCompile(`^https?://(www\.)?github\.com/[\w\-.]+/[\w\-.]+(\.git)?$`)
	sshURLPattern   = regexp.MustCompile(`^git@github\.com:[\w\-.]+/[\w\-.]+(\.git)?$`)
	repoNamePattern = regexp.MustCompile(`github\.com[/:]([\w\-.]+)/([\w\-.]+)`)
)

// Parse detects whether input names a remote repository. Existing local
// paths take precedence and return nil. Recognized forms are the
// owner/repo[@ref] GitHub shorthand and full HTTPS or SSH GitHub URLs.
func Parse(input string) (*Source, error) {
	input = strings.TrimRight(strings.TrimSpace(input), "/")
	if input == "" {
		return nil, nil
	}
	if _, err := os.Stat(input); err == nil {
		return nil, nil
	}

	if httpsURLPattern.MatchString(input) || sshURLPattern.MatchString(input) {
		return &Source{URL: input}, nil
	}

	// Extract ref from path@ref syntax
	ref := ""
	path := input
	if idx := strings.LastIndex(path, "@"); idx != -1 {
		ref = path[idx+1:]
		path = path[:idx]
	}
	if isGitHubShorthand(path) {
		return &Source{URL: "https://github.com/" + path, Ref: ref}, nil
	}

	return nil, nil
}

// ValidateURL checks that a string is a well-formed GitHub repository URL.
func ValidateURL(url string) error {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if url == "" {
		return errors.New("URL cannot be empty")
	}
	if httpsURLPattern.MatchString(url) || sshURLPattern.MatchString(url) {
		return nil
	}
	return errors.New("invalid GitHub URL, expected https://github.com/user/repo or git@github.com:user/repo.git")
}

// isGitHubShorthand returns true if path matches the owner/repo pattern.
func isGitHubShorthand(path string) bool {
	slashIdx := strings.Index(path, "/")
	if slashIdx == -1 {
		return false
	}
	// Must have exactly one slash
	if strings.Count(path, "/") != 1 {
		return false
	}
	// No dots before the slash (would indicate a domain)
	if strings.Contains(path[:slashIdx], ".") {
		return false
	}
	return slashIdx > 0 && slashIdx < len(path)-1
}

// Cloner shallow-clones sources into temp directories.
type Cloner struct {
	timeout time.Duration
	depth   int
}

// NewCloner creates a cloner. Non-positive arguments fall back to a 5 minute
// timeout and depth 1.
func NewCloner(timeout time.Duration, depth int) *Cloner {
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	if depth <= 0 {
		depth = 1
	}
	return &Cloner{timeout: timeout, depth: depth}
}

// Clone fetches src into a fresh temp directory and returns its path along
// with an idempotent cleanup func. On any failure the temp directory is
// removed before the error returns, so cleanup is only non-trivial on
// success; callers should still defer it on every path.
func (c *Cloner) Clone(ctx context.Context, src *Source) (string, func(), error) {
	dir, err := os.MkdirTemp("", "repolens-*")
	if err != nil {
		return "", func() {}, fmt.Errorf("failed to create temp directory: %w", err)
	}
	cleanup := func() { os.RemoveAll(dir) }

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	opts := &git.CloneOptions{
		URL:   src.URL,
		Depth: c.depth,
	}
	if src.Ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(src.Ref)
		opts.SingleBranch = true
	}

	if _, err := git.PlainCloneContext(ctx, dir, false, opts); err != nil {
		cleanup()
		return "", func() {}, categorize(err, src.URL, ctx)
	}

	return dir, cleanup, nil
}

// categorize maps go-git failures onto the package sentinel errors.
func categorize(err error, url string, ctx context.Context) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %s", ErrCloneTimeout, url)
	case errors.Is(ctx.Err(), context.Canceled):
		return fmt.Errorf("clone interrupted: %s", url)
	case errors.Is(err, transport.ErrRepositoryNotFound):
		return fmt.Errorf("%w: %s", ErrRepoNotFound, url)
	case errors.Is(err, transport.ErrAuthenticationRequired),
		errors.Is(err, transport.ErrAuthorizationFailed):
		return fmt.Errorf("%w: %s", ErrAuthDenied, url)
	default:
		return fmt.Errorf("failed to clone repository: %w", err)
	}
}

// RepoName extracts a display name from a GitHub URL or local path and
// sanitizes it for use in filenames. Local directories that are git
// repositories report the name from their origin URL. "unknown" when nothing
// usable remains.
func RepoName(pathOrURL string) string {
	if pathOrURL == "" {
		return "unknown"
	}

	if m := repoNamePattern.FindStringSubmatch(pathOrURL); m != nil {
		return SanitizeName(strings.TrimSuffix(m[2], ".git"))
	}

	if origin := originURL(pathOrURL); origin != "" {
		if m := repoNamePattern.FindStringSubmatch(origin); m != nil {
			return SanitizeName(strings.TrimSuffix(m[2], ".git"))
		}
	}

	name := filepath.Base(filepath.Clean(pathOrURL))
	if name == "." || name == string(filepath.Separator) {
		if abs, err := filepath.Abs(pathOrURL); err == nil {
			name = filepath.Base(abs)
		}
	}
	return SanitizeName(name)
}

var invalidNameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// originURL reports the first origin remote URL of the repository at dir,
// or "" when dir is not a git repository or has no origin remote.
func originURL(dir string) string {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return ""
	}
	rem, err := repo.Remote("origin")
	if err != nil || len(rem.Config().URLs) == 0 {
		return ""
	}
	return rem.Config().URLs[0]
}

// SanitizeName makes a string safe for filenames: invalid characters become
// underscores, surrounding spaces and dots are trimmed, length caps at 100.
func SanitizeName(name string) string {
	sanitized := invalidNameChars.ReplaceAllString(name, "_")
	sanitized = strings.Trim(sanitized, " .")
	if len(sanitized) > 100 {
		sanitized = sanitized[:100]
	}
	if sanitized == "" {
		return "unknown"
	}
	return sanitized
}
