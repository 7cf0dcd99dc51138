package container

import (
	"context"
	"os/exec"
	"time"

	"github.com/slipway-ci/slipway/tools"
)

// BuildahBuilder builds container images using the buildah CLI.
type BuildahBuilder struct {
	Binary string // defaults to "buildah"
	Runner tools.Runner
}

func (b *BuildahBuilder) bin() string {
	if b.Binary == "" {
		return "buildah"
	}
	return b.Binary
}

func (b *BuildahBuilder) Name() string { return "buildah" }

func (b *BuildahBuilder) Available() bool {
	return exec.Command(b.bin(), "version").Run() == nil
}

func (b *BuildahBuilder) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	started := time.Now()
	res, err := b.Runner.Run(ctx, "", b.bin(), cliArgs("bud", opts)...)
	if err != nil {
		return nil, err
	}
	return &BuildResult{
		ImageID:  lastLine(res.Stdout),
		Tag:      opts.Tag,
		Duration: time.Since(started),
	}, nil
}
