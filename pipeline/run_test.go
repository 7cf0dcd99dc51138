package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slipway-ci/slipway/config"
)

func TestNewRunResolvesImageNameOnce(t *testing.T) {
	tests := []struct {
		env  config.Environment
		want string
	}{
		{config.EnvDev, "dev-hello-world-nodejs"},
		{config.EnvQA, "qa-hello-world-nodejs"},
		{config.EnvStaging, "staging-hello-world-nodejs"},
		{config.EnvProd, "hello-world-nodejs"},
	}

	for _, tt := range tests {
		t.Run(string(tt.env), func(t *testing.T) {
			run := testRun(tt.env)
			if run.ImageName != tt.want {
				t.Errorf("ImageName = %q, want %q", run.ImageName, tt.want)
			}
			if got := run.ImageRef(); got != tt.want+":1.2.3" {
				t.Errorf("ImageRef() = %q, want %q", got, tt.want+":1.2.3")
			}
		})
	}
}

func TestNewRunAssignsUniqueIDs(t *testing.T) {
	a, b := testRun(config.EnvDev), testRun(config.EnvDev)
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("run IDs not unique: %q vs %q", a.ID, b.ID)
	}
}

func TestFinalStatus(t *testing.T) {
	run := testRun(config.EnvDev)
	if run.FinalStatus() != StatusSuccess {
		t.Error("empty run should be SUCCESS")
	}

	run.Record(Success("checkout", time.Second))
	run.Record(SoftFailure("vulnerability-scan", "scanner offline", time.Second))
	if run.FinalStatus() != StatusSuccess {
		t.Error("soft failures must not fail the run")
	}

	run.Record(HardFailure("image-build", "docker build failed", time.Second))
	if run.FinalStatus() != StatusFailure {
		t.Error("hard failure must fail the run")
	}
}

func TestWriteSummary(t *testing.T) {
	run := testRun(config.EnvDev)
	run.Record(Success("checkout", 1500*time.Millisecond))
	run.Record(SoftFailure("vulnerability-scan", "scanner offline", time.Second))
	run.Image = &ImageRecord{Name: run.ImageName, Tag: "1.2.3", Ref: run.ImageRef(), Builder: "docker"}
	run.ReportURL = "file:///tmp/artifacts/trivy-report.html"

	path := filepath.Join(t.TempDir(), "summary.json")
	if err := WriteSummary(path, run); err != nil {
		t.Fatalf("WriteSummary() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("summary is not valid JSON: %v", err)
	}

	if s.RunID != run.ID {
		t.Errorf("RunID = %q, want %q", s.RunID, run.ID)
	}
	if s.Status != StatusSuccess {
		t.Errorf("Status = %v, want SUCCESS", s.Status)
	}
	if s.Environment != "dev" || s.Version != "1.2.3" {
		t.Errorf("Environment/Version = %q/%q", s.Environment, s.Version)
	}
	if len(s.Stages) != 2 {
		t.Fatalf("got %d stage rows, want 2", len(s.Stages))
	}
	if s.Stages[0].DurationMS != 1500 {
		t.Errorf("checkout duration = %dms, want 1500", s.Stages[0].DurationMS)
	}
	if s.Stages[1].Reason != "scanner offline" {
		t.Errorf("scan reason = %q", s.Stages[1].Reason)
	}
	if s.Image == nil || s.Image.Builder != "docker" {
		t.Errorf("image record missing or wrong: %+v", s.Image)
	}
}
