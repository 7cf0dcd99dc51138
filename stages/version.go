// Package stages implements the ordered units of work of a release run.
package stages

import (
	"context"

	"github.com/slipway-ci/slipway/pipeline"
	"github.com/slipway-ci/slipway/validate"
)

// VersionCheck gates the run on a well-formed release version. It runs first
// and is pure, so a malformed version aborts the run before any external
// collaborator is touched.
type VersionCheck struct{}

func (VersionCheck) Name() string { return "version-check" }

func (VersionCheck) Policy() pipeline.FailurePolicy { return pipeline.Strict }

func (VersionCheck) Execute(_ context.Context, run *pipeline.Run) error {
	return validate.ReleaseVersion(run.Params.ReleaseVersion)
}
