package stages

import (
	"context"
	"time"

	"github.com/slipway-ci/slipway/container"
	"github.com/slipway-ci/slipway/pipeline"
)

// ImageBuild builds the release container image from the checkout and records
// it on the run.
type ImageBuild struct {
	Builder    container.Builder
	Dockerfile string
}

func (b *ImageBuild) Name() string { return "image-build" }

func (b *ImageBuild) Policy() pipeline.FailurePolicy { return pipeline.Strict }

func (b *ImageBuild) Execute(ctx context.Context, run *pipeline.Run) error {
	_, err := b.Builder.Build(ctx, container.BuildOptions{
		ContextDir: run.CheckoutDir,
		Dockerfile: b.Dockerfile,
		Tag:        run.ImageRef(),
		Labels: map[string]string{
			"org.opencontainers.image.version": run.Params.ReleaseVersion,
			"org.opencontainers.image.source":  run.Params.RepoURL,
		},
	})
	if err != nil {
		return err
	}

	run.Image = &pipeline.ImageRecord{
		Name:    run.ImageName,
		Tag:     run.Params.ReleaseVersion,
		Ref:     run.ImageRef(),
		Builder: b.Builder.Name(),
		BuiltAt: time.Now().UTC(),
	}
	return nil
}
