package tools

import (
	"context"
	"path/filepath"

	"github.com/slipway-ci/slipway/config"
)

// Trivy scans a built image for vulnerabilities and renders an HTML report.
type Trivy struct {
	Cfg    config.ScanRef
	Runner Runner
}

func (t *Trivy) bin() string {
	if t.Cfg.Binary == "" {
		return "trivy"
	}
	return t.Cfg.Binary
}

// Scan scans imageRef and writes the configured report file under dir. It
// returns the absolute report path on success.
func (t *Trivy) Scan(ctx context.Context, dir, imageRef string) (string, error) {
	report := t.Cfg.Report
	if report == "" {
		report = "trivy-report.html"
	}
	if !filepath.IsAbs(report) {
		report = filepath.Join(dir, report)
	}

	args := []string{"image"}
	if t.Cfg.Severity != "" {
		args = append(args, "--severity", t.Cfg.Severity)
	}
	if t.Cfg.Template != "" {
		args = append(args, "--format", "template", "--template", "@"+t.Cfg.Template)
	}
	args = append(args, "--output", report, imageRef)

	if _, err := t.Runner.Run(ctx, dir, t.bin(), args...); err != nil {
		return "", err
	}
	return report, nil
}
