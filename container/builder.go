// Package container provides container image building via docker, podman, or
// buildah.
package container

import (
	"context"
	"sort"
	"time"
)

// Builder is the interface for container image builders.
type Builder interface {
	// Build produces an image tagged opts.Tag from opts.ContextDir.
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
	// Available reports whether the underlying tool is usable on this host.
	Available() bool
	Name() string
}

// BuildOptions configures a container image build.
type BuildOptions struct {
	ContextDir string
	Dockerfile string
	Tag        string
	BuildArgs  map[string]string
	Labels     map[string]string
}

// BuildResult holds the result of a container image build.
type BuildResult struct {
	ImageID  string
	Tag      string
	Duration time.Duration
}

// Detect returns the first available container builder in order: docker,
// podman, buildah. It returns nil if no builder is available.
func Detect() Builder {
	builders := []Builder{
		&DockerBuilder{},
		&PodmanBuilder{},
		&BuildahBuilder{},
	}
	for _, b := range builders {
		if b.Available() {
			return b
		}
	}
	return nil
}

// Get returns a builder by name, or nil if the name is unknown.
func Get(name string) Builder {
	switch name {
	case "docker":
		return &DockerBuilder{}
	case "podman":
		return &PodmanBuilder{}
	case "buildah":
		return &BuildahBuilder{}
	default:
		return nil
	}
}

// cliArgs assembles the build arguments shared by all three CLIs. Maps are
// emitted in sorted key order so invocations are reproducible.
func cliArgs(subcommand string, opts BuildOptions) []string {
	args := []string{subcommand}

	if opts.Tag != "" {
		args = append(args, "-t", opts.Tag)
	}
	if opts.Dockerfile != "" {
		args = append(args, "-f", opts.Dockerfile)
	}
	for _, k := range sortedKeys(opts.BuildArgs) {
		args = append(args, "--build-arg", k+"="+opts.BuildArgs[k])
	}
	for _, k := range sortedKeys(opts.Labels) {
		args = append(args, "--label", k+"="+opts.Labels[k])
	}

	contextDir := opts.ContextDir
	if contextDir == "" {
		contextDir = "."
	}
	return append(args, contextDir)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
