package main

import (
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/repolens/repolens/internal/i18n"
	"github.com/repolens/repolens/internal/remote"
	"github.com/repolens/repolens/pkg/config"
)

func testContext(t *testing.T, ctx context.Context) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	c := cli.NewContext(cli.NewApp(), set, nil)
	c.Context = ctx
	return c
}

func TestCloneSourceFailureReturnsSafeCleanup(t *testing.T) {
	c := testContext(t, context.Background())
	msgs, err := i18n.Load("en")
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}

	src := &remote.Source{URL: filepath.Join(t.TempDir(), "no-such-repo")}
	dir, cleanup, cerr := cloneSource(c, config.DefaultConfig(), msgs, src)
	if cerr == nil {
		t.Fatal("cloning a missing repository must fail")
	}
	if dir != "" {
		t.Errorf("dir = %q, want empty on failure", dir)
	}
	if cleanup == nil {
		t.Fatal("cleanup must never be nil")
	}
	cleanup()
}

func TestCloneSourceCanceledReportsInterrupt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := testContext(t, ctx)
	msgs, err := i18n.Load("en")
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}

	src := &remote.Source{URL: filepath.Join(t.TempDir(), "no-such-repo")}
	_, cleanup, cerr := cloneSource(c, config.DefaultConfig(), msgs, src)
	if cerr == nil {
		t.Fatal("a canceled clone must fail")
	}
	if !strings.Contains(cerr.Error(), "Interrupted by user") {
		t.Errorf("error = %q, want the interrupt message", cerr)
	}
	cleanup()
}
