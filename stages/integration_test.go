package stages

import (
	"context"
	"errors"
	"testing"

	"github.com/slipway-ci/slipway/config"
	"github.com/slipway-ci/slipway/pipeline"
)

// Full stage sequence over fake collaborators, driven by the real runner.

func releasePipeline(scm *fakeSCM, npm *fakeNPM, analyzer *fakeAnalyzer, builder *fakeBuilder, scanner *fakeScanner, ws string) []pipeline.Stage {
	return []pipeline.Stage{
		VersionCheck{},
		&Checkout{SCM: scm, Workspace: ws},
		&Install{PM: npm},
		&Test{Tester: npm},
		&Analysis{Analyzer: analyzer},
		&ImageBuild{Builder: builder, Dockerfile: "Dockerfile"},
		&Scan{Scanner: scanner},
	}
}

func TestRunSucceedsDespiteScannerFailure(t *testing.T) {
	run := stageRun(t, config.EnvDev)
	scanner := &fakeScanner{err: errors.New("scanner crashed")}
	seq := releasePipeline(&fakeSCM{}, &fakeNPM{}, &fakeAnalyzer{}, &fakeBuilder{}, scanner, t.TempDir())

	status := pipeline.NewRunner(seq, nil, nil, nil).Execute(context.Background(), run)

	if status != pipeline.StatusSuccess {
		t.Fatalf("status = %s, want %s", status, pipeline.StatusSuccess)
	}
	if run.ReportPath != "" {
		t.Errorf("ReportPath = %q after failed scan, want empty", run.ReportPath)
	}
	if run.ImageName != "dev-hello-world-nodejs" {
		t.Errorf("ImageName = %q, want dev-hello-world-nodejs", run.ImageName)
	}
	if len(run.Outcomes) != len(seq) {
		t.Fatalf("got %d outcomes, want %d", len(run.Outcomes), len(seq))
	}
	last := run.Outcomes[len(run.Outcomes)-1]
	if last.Stage != "vulnerability-scan" || last.Result != pipeline.StageSoftFailure {
		t.Errorf("last outcome = %s/%s, want vulnerability-scan/%s", last.Stage, last.Result, pipeline.StageSoftFailure)
	}
}

func TestMalformedVersionAbortsBeforeCheckout(t *testing.T) {
	run := stageRun(t, config.EnvDev)
	run.Params.ReleaseVersion = "1.2"

	scm := &fakeSCM{}
	npm := &fakeNPM{}
	seq := releasePipeline(scm, npm, &fakeAnalyzer{}, &fakeBuilder{}, &fakeScanner{}, t.TempDir())

	status := pipeline.NewRunner(seq, nil, nil, nil).Execute(context.Background(), run)

	if status != pipeline.StatusFailure {
		t.Fatalf("status = %s, want %s", status, pipeline.StatusFailure)
	}
	if scm.dir != "" {
		t.Error("checkout ran despite malformed version")
	}
	if npm.installDir != "" {
		t.Error("install ran despite malformed version")
	}
	if len(run.Outcomes) != 1 {
		t.Fatalf("got %d outcomes, want 1", len(run.Outcomes))
	}
	if run.Outcomes[0].Stage != "version-check" || !run.Outcomes[0].Hard() {
		t.Errorf("outcome = %s/%s, want a hard version-check failure", run.Outcomes[0].Stage, run.Outcomes[0].Result)
	}
}
