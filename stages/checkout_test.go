package stages

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/slipway-ci/slipway/config"
)

func TestCheckoutUsesWorkspace(t *testing.T) {
	run := stageRun(t, config.EnvQA)
	ws := t.TempDir()
	scm := &fakeSCM{}

	c := &Checkout{SCM: scm, Workspace: ws}
	if err := c.Execute(context.Background(), run); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := filepath.Join(ws, run.ID)
	if run.CheckoutDir != want {
		t.Errorf("CheckoutDir = %q, want %q", run.CheckoutDir, want)
	}
	if scm.dir != want {
		t.Errorf("clone dir = %q, want %q", scm.dir, want)
	}
	if scm.repoURL != run.Params.RepoURL || scm.branch != "main" {
		t.Errorf("cloned %s@%s, want %s@main", scm.repoURL, scm.branch, run.Params.RepoURL)
	}

	info, err := os.Stat(want)
	if err != nil || !info.IsDir() {
		t.Errorf("checkout dir was not created: %v", err)
	}
}

func TestCheckoutDefaultsToTempDir(t *testing.T) {
	run := stageRun(t, config.EnvQA)
	scm := &fakeSCM{}

	c := &Checkout{SCM: scm}
	if err := c.Execute(context.Background(), run); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(run.CheckoutDir) })

	if !strings.HasPrefix(filepath.Base(run.CheckoutDir), "slipway-hello-world-nodejs-") {
		t.Errorf("CheckoutDir = %q, want a slipway temp dir", run.CheckoutDir)
	}
	if _, err := os.Stat(run.CheckoutDir); err != nil {
		t.Errorf("checkout dir was not created: %v", err)
	}
}

func TestCheckoutFailureLeavesRunUntouched(t *testing.T) {
	run := stageRun(t, config.EnvQA)
	wantErr := errors.New("repository not found")

	c := &Checkout{SCM: &fakeSCM{err: wantErr}, Workspace: t.TempDir()}
	if err := c.Execute(context.Background(), run); !errors.Is(err, wantErr) {
		t.Fatalf("Execute() error = %v, want %v", err, wantErr)
	}
	if run.CheckoutDir != "" {
		t.Errorf("CheckoutDir = %q after failed checkout, want empty", run.CheckoutDir)
	}
}
