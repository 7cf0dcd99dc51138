package tools

import "context"

// NPM drives the npm CLI for dependency installation and test execution.
type NPM struct {
	Binary string // defaults to "npm"
	Runner Runner
}

func (n *NPM) bin() string {
	if n.Binary == "" {
		return "npm"
	}
	return n.Binary
}

// Install restores project dependencies with a clean, lockfile-exact install.
func (n *NPM) Install(ctx context.Context, dir string) error {
	_, err := n.Runner.Run(ctx, dir, n.bin(), "ci")
	return err
}

// Test runs the project test suite.
func (n *NPM) Test(ctx context.Context, dir string) error {
	_, err := n.Runner.Run(ctx, dir, n.bin(), "test")
	return err
}
