package stages

import (
	"context"
	"errors"
	"testing"

	"github.com/slipway-ci/slipway/config"
)

func TestImageBuildRecordsImage(t *testing.T) {
	run := stageRun(t, config.EnvDev)
	run.CheckoutDir = "/work/checkout"

	builder := &fakeBuilder{}
	b := &ImageBuild{Builder: builder, Dockerfile: "Dockerfile"}
	if err := b.Execute(context.Background(), run); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if builder.opts.ContextDir != "/work/checkout" {
		t.Errorf("ContextDir = %q, want /work/checkout", builder.opts.ContextDir)
	}
	if builder.opts.Dockerfile != "Dockerfile" {
		t.Errorf("Dockerfile = %q, want Dockerfile", builder.opts.Dockerfile)
	}
	if want := "dev-hello-world-nodejs:1.2.3"; builder.opts.Tag != want {
		t.Errorf("Tag = %q, want %q", builder.opts.Tag, want)
	}
	if got := builder.opts.Labels["org.opencontainers.image.version"]; got != "1.2.3" {
		t.Errorf("version label = %q, want 1.2.3", got)
	}
	if got := builder.opts.Labels["org.opencontainers.image.source"]; got != run.Params.RepoURL {
		t.Errorf("source label = %q, want %q", got, run.Params.RepoURL)
	}

	if run.Image == nil {
		t.Fatal("run.Image not recorded")
	}
	if run.Image.Name != "dev-hello-world-nodejs" || run.Image.Tag != "1.2.3" {
		t.Errorf("ImageRecord = %s:%s, want dev-hello-world-nodejs:1.2.3", run.Image.Name, run.Image.Tag)
	}
	if run.Image.Ref != "dev-hello-world-nodejs:1.2.3" {
		t.Errorf("ImageRecord.Ref = %q", run.Image.Ref)
	}
	if run.Image.Builder != "docker" {
		t.Errorf("ImageRecord.Builder = %q, want docker", run.Image.Builder)
	}
	if run.Image.BuiltAt.IsZero() {
		t.Error("ImageRecord.BuiltAt is zero")
	}
}

func TestImageBuildFailure(t *testing.T) {
	run := stageRun(t, config.EnvDev)
	run.CheckoutDir = t.TempDir()
	wantErr := errors.New("build failed: exit status 1")

	b := &ImageBuild{Builder: &fakeBuilder{err: wantErr}}
	if err := b.Execute(context.Background(), run); !errors.Is(err, wantErr) {
		t.Fatalf("Execute() error = %v, want %v", err, wantErr)
	}
	if run.Image != nil {
		t.Error("run.Image recorded despite build failure")
	}
}
