package stages

import (
	"context"

	"github.com/slipway-ci/slipway/pipeline"
)

// VulnerabilityScanner scans a built image and renders a report file,
// returning its path.
type VulnerabilityScanner interface {
	Scan(ctx context.Context, dir, imageRef string) (string, error)
}

// Scan checks the built image for vulnerabilities. The stage is tolerant: on
// scanner failure the report is simply absent and the run status is
// untouched.
type Scan struct {
	Scanner VulnerabilityScanner
}

func (s *Scan) Name() string { return "vulnerability-scan" }

func (s *Scan) Policy() pipeline.FailurePolicy { return pipeline.Tolerant }

func (s *Scan) Execute(ctx context.Context, run *pipeline.Run) error {
	report, err := s.Scanner.Scan(ctx, run.CheckoutDir, run.ImageRef())
	if err != nil {
		return err
	}
	run.ReportPath = report
	return nil
}
