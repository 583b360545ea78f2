package object

import (
	"context"
	"io"
)

// ObjectStore is a flat key/value store for serialized records.
type ObjectStore interface {
	// Put writes r under key, replacing any existing object.
	Put(ctx context.Context, key string, contentType string, r io.Reader) (sizeBytes int64, err error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
