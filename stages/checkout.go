package stages

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/slipway-ci/slipway/pipeline"
)

// SourceControl checks release sources out of version control.
type SourceControl interface {
	Checkout(ctx context.Context, repoURL, branch, dir string) error
}

// Checkout clones the release sources into a per-run directory and records
// it on the run for the stages that follow.
type Checkout struct {
	SCM SourceControl

	// Workspace is the parent directory for checkouts. Empty means a fresh
	// directory under the OS temp dir.
	Workspace string
}

func (c *Checkout) Name() string { return "checkout" }

func (c *Checkout) Policy() pipeline.FailurePolicy { return pipeline.Strict }

func (c *Checkout) Execute(ctx context.Context, run *pipeline.Run) error {
	dir, err := c.checkoutDir(run)
	if err != nil {
		return err
	}
	if err := c.SCM.Checkout(ctx, run.Params.RepoURL, run.Params.Branch, dir); err != nil {
		return err
	}
	run.CheckoutDir = dir
	return nil
}

// checkoutDir creates and returns the directory the clone lands in. It must
// be empty: go-git refuses to clone into a populated directory.
func (c *Checkout) checkoutDir(run *pipeline.Run) (string, error) {
	if c.Workspace == "" {
		dir, err := os.MkdirTemp("", "slipway-"+run.Project+"-")
		if err != nil {
			return "", fmt.Errorf("creating checkout dir: %w", err)
		}
		return dir, nil
	}

	dir := filepath.Join(c.Workspace, run.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating checkout dir: %w", err)
	}
	return dir, nil
}
