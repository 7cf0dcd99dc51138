// Package scm checks release sources out of version control.
package scm

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Git clones release sources with go-git. The zero value is ready to use.
type Git struct {
	// Depth limits clone history; 0 means a full clone.
	Depth int
}

// Checkout clones repoURL at branch into dir. The clone is single-branch: a
// release run never needs any other ref.
func (g *Git) Checkout(ctx context.Context, repoURL, branch, dir string) error {
	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:           repoURL,
		ReferenceName: plumbing.NewBranchReferenceName(branch),
		SingleBranch:  true,
		Depth:         g.Depth,
	})
	if err != nil {
		return fmt.Errorf("cloning %s@%s: %w", repoURL, branch, err)
	}
	return nil
}
