package container

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/slipway-ci/slipway/tools"
)

// DockerBuilder builds container images using the docker CLI.
type DockerBuilder struct {
	Binary string // defaults to "docker"
	Runner tools.Runner
}

func (b *DockerBuilder) bin() string {
	if b.Binary == "" {
		return "docker"
	}
	return b.Binary
}

func (b *DockerBuilder) Name() string { return "docker" }

func (b *DockerBuilder) Available() bool {
	return exec.Command(b.bin(), "info").Run() == nil
}

func (b *DockerBuilder) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	started := time.Now()
	res, err := b.Runner.Run(ctx, "", b.bin(), cliArgs("build", opts)...)
	if err != nil {
		return nil, err
	}
	return &BuildResult{
		ImageID:  parseImageID(res.Stdout),
		Tag:      opts.Tag,
		Duration: time.Since(started),
	}, nil
}

// parseImageID extracts the image ID from docker build output. The classic
// builder prints "Successfully built <id>"; BuildKit may print nothing useful
// on stdout, in which case the ID stays empty.
func parseImageID(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "Successfully built ") {
			return strings.TrimPrefix(line, "Successfully built ")
		}
		if strings.HasPrefix(line, "sha256:") {
			return line
		}
	}
	if len(lines) == 1 {
		return strings.TrimSpace(lines[0])
	}
	return ""
}
