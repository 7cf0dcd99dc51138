package container

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/slipway-ci/slipway/tools"
)

// PodmanBuilder builds container images using the podman CLI.
type PodmanBuilder struct {
	Binary string // defaults to "podman"
	Runner tools.Runner
}

func (b *PodmanBuilder) bin() string {
	if b.Binary == "" {
		return "podman"
	}
	return b.Binary
}

func (b *PodmanBuilder) Name() string { return "podman" }

func (b *PodmanBuilder) Available() bool {
	return exec.Command(b.bin(), "info").Run() == nil
}

func (b *PodmanBuilder) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	started := time.Now()
	res, err := b.Runner.Run(ctx, "", b.bin(), cliArgs("build", opts)...)
	if err != nil {
		return nil, err
	}
	return &BuildResult{
		ImageID:  lastLine(res.Stdout),
		Tag:      opts.Tag,
		Duration: time.Since(started),
	}, nil
}

// lastLine returns the final non-empty output line; podman and buildah print
// the image ID there.
func lastLine(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
