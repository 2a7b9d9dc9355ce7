package datastores

import (
	"context"
	"errors"
)

// TextStore is a store of named text blobs.
// Blobs are always read and written whole.
type TextStore interface {
	// Exists reports whether a blob with that name is present.
	// It never fails: an underlying error reports false.
	Exists(ctx context.Context, name string) bool
	// ReadAllText returns the blob contents or [ErrObjectNotFound].
	ReadAllText(ctx context.Context, name string) (string, error)
	// WriteAllText creates or overwrites the blob. Failures wrap [ErrIO].
	WriteAllText(ctx context.Context, name, text string) error
}

var (
	ErrObjectNotFound = errors.New("store: object not found")
	ErrIO             = errors.New("store: i/o failure")
)
