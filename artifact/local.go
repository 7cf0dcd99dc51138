package artifact

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore archives reports into a directory on the local filesystem and
// links them with file:// URLs.
type LocalStore struct {
	Dir string
}

func (s *LocalStore) Archive(ctx context.Context, src, key string) (string, error) {
	dst := filepath.Join(s.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("creating archive dir: %w", err)
	}
	if err := copyFile(src, dst); err != nil {
		return "", fmt.Errorf("archiving %s: %w", filepath.Base(src), err)
	}

	abs, err := filepath.Abs(dst)
	if err != nil {
		return "", fmt.Errorf("resolving archive path: %w", err)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
