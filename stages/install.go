package stages

import (
	"context"

	"github.com/slipway-ci/slipway/pipeline"
)

// PackageManager restores application dependencies in a checkout.
type PackageManager interface {
	Install(ctx context.Context, dir string) error
}

// Install restores the dependencies of the checked-out sources.
type Install struct {
	PM PackageManager
}

func (i *Install) Name() string { return "install" }

func (i *Install) Policy() pipeline.FailurePolicy { return pipeline.Strict }

func (i *Install) Execute(ctx context.Context, run *pipeline.Run) error {
	return i.PM.Install(ctx, run.CheckoutDir)
}
