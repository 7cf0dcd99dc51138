package tools

import (
	"context"
	"path/filepath"
	"slices"
	"testing"

	"github.com/slipway-ci/slipway/config"
)

func TestTrivyScanArgs(t *testing.T) {
	bin, argsFile := fakeTool(t, "trivy", 0)
	dir := t.TempDir()
	trivy := &Trivy{Cfg: config.ScanRef{
		Binary:   bin,
		Template: "html.tpl",
		Report:   "trivy-report.html",
		Severity: "HIGH,CRITICAL",
	}}

	report, err := trivy.Scan(context.Background(), dir, "dev-hello-world-nodejs:1.2.3")
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if report != filepath.Join(dir, "trivy-report.html") {
		t.Errorf("report path = %q, want it under the scan dir", report)
	}

	args := recordedArgs(t, argsFile)
	for _, w := range []string{
		"image",
		"--severity", "HIGH,CRITICAL",
		"--format", "template",
		"--template", "@html.tpl",
		"--output", report,
		"dev-hello-world-nodejs:1.2.3",
	} {
		if !slices.Contains(args, w) {
			t.Errorf("args %v missing %q", args, w)
		}
	}
	if args[len(args)-1] != "dev-hello-world-nodejs:1.2.3" {
		t.Errorf("image ref must be the final argument, got %v", args)
	}
}

func TestTrivyScanFailureReturnsNoReport(t *testing.T) {
	bin, _ := fakeTool(t, "trivy", 1)
	trivy := &Trivy{Cfg: config.ScanRef{Binary: bin}}

	report, err := trivy.Scan(context.Background(), t.TempDir(), "app:1.0.0")
	if err == nil {
		t.Fatal("Scan() succeeded, want error")
	}
	if report != "" {
		t.Errorf("report = %q, want empty on failure", report)
	}
}
