package stages

import (
	"context"

	"github.com/slipway-ci/slipway/pipeline"
)

// TestRunner executes the application test suite in a checkout.
type TestRunner interface {
	Test(ctx context.Context, dir string) error
}

// Test runs the application test suite against the checked-out sources.
type Test struct {
	Tester TestRunner
}

func (t *Test) Name() string { return "test" }

func (t *Test) Policy() pipeline.FailurePolicy { return pipeline.Strict }

func (t *Test) Execute(ctx context.Context, run *pipeline.Run) error {
	return t.Tester.Test(ctx, run.CheckoutDir)
}
