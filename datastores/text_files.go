package datastores

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// TextFiles implements [TextStore] with one file per blob under Root.
// An empty Root means the working directory.
type TextFiles struct {
	Root string
	Perm fs.FileMode
}

var _ TextStore = (*TextFiles)(nil)

// path keeps name inside Root.
func (s *TextFiles) path(name string) string {
	root := s.Root
	if root == "" {
		root = "."
	}
	return filepath.Join(root, filepath.Clean("/"+name))
}

func (s *TextFiles) Exists(_ context.Context, name string) bool {
	info, err := os.Stat(s.path(name))
	return err == nil && info.Mode().IsRegular()
}

func (s *TextFiles) ReadAllText(_ context.Context, name string) (string, error) {
	b, err := os.ReadFile(s.path(name))
	switch {
	case err == nil:
		return string(b), nil
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %s", ErrObjectNotFound, name)
	default:
		return "", fmt.Errorf("%w: read %s: %w", ErrIO, name, err)
	}
}

func (s *TextFiles) WriteAllText(_ context.Context, name, text string) error {
	perm := s.Perm
	if perm == 0 {
		perm = 0o600
	}
	err := os.WriteFile(s.path(name), []byte(text), perm)
	if err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, name, err)
	}
	return nil
}
