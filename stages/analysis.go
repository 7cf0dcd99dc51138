package stages

import (
	"context"

	"github.com/slipway-ci/slipway/pipeline"
)

// StaticAnalyzer runs static analysis over a checkout.
type StaticAnalyzer interface {
	Analyze(ctx context.Context, dir string) error
}

// Analysis submits the checked-out sources for static analysis.
type Analysis struct {
	Analyzer StaticAnalyzer
}

func (a *Analysis) Name() string { return "static-analysis" }

func (a *Analysis) Policy() pipeline.FailurePolicy { return pipeline.Strict }

func (a *Analysis) Execute(ctx context.Context, run *pipeline.Run) error {
	return a.Analyzer.Analyze(ctx, run.CheckoutDir)
}
