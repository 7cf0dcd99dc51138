package stages

import (
	"context"
	"errors"
	"testing"

	"github.com/slipway-ci/slipway/config"
	"github.com/slipway-ci/slipway/validate"
)

func TestVersionCheckPasses(t *testing.T) {
	run := stageRun(t, config.EnvDev)

	if err := (VersionCheck{}).Execute(context.Background(), run); err != nil {
		t.Fatalf("Execute() with version 1.2.3 error = %v", err)
	}
}

func TestVersionCheckRejectsMalformedVersion(t *testing.T) {
	run := stageRun(t, config.EnvDev)
	run.Params.ReleaseVersion = "1.2"

	err := (VersionCheck{}).Execute(context.Background(), run)
	if err == nil {
		t.Fatal("Execute() accepted version 1.2")
	}

	var verr *validate.InvalidVersionError
	if !errors.As(err, &verr) {
		t.Fatalf("Execute() error = %T, want *validate.InvalidVersionError", err)
	}
	if verr.Given != "1.2" {
		t.Errorf("InvalidVersionError.Given = %q, want 1.2", verr.Given)
	}
}
