package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Get when no object exists at the given key.
var ErrNotFound = errors.New("object not found")

// ObjectStore is a keyed blob store supporting get-by-key and put-by-key.
// The bucket or container is fixed at construction; Put overwrites.
type ObjectStore interface {
	// Get returns a reader for the object at key plus its size if known.
	Get(ctx context.Context, key string) (io.ReadCloser, int64, error)
	// Put writes body to key, replacing any existing object.
	Put(ctx context.Context, key string, body io.Reader) error
}
