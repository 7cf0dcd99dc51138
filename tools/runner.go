// Package tools wraps the external command-line tools a release run drives.
package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Result holds the captured output of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// ToolError reports an external tool that could not be started or exited
// unsuccessfully. It wraps the underlying exec error and keeps the stderr
// output for diagnostics.
type ToolError struct {
	Tool   string
	Stderr string
	Err    error
}

func (e *ToolError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
	}
	return fmt.Sprintf("%s failed: %s: %v", e.Tool, e.Stderr, e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }

// Runner executes external tools with captured output. The zero value is
// ready to use. Env entries are appended to the inherited environment.
type Runner struct {
	Env []string
}

// Run executes program with args in dir. A spawn failure or non-zero exit is
// returned as a *ToolError; the partial Result is returned alongside it.
func (r Runner) Run(ctx context.Context, dir, program string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Dir = dir
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode(err),
	}
	if err != nil {
		return res, &ToolError{Tool: program, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}
	return res, nil
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
