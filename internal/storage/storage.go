// Package storage abstracts the object store holding image blobs. Blobs are
// keyed by image id, written once and treated as immutable thereafter.
package storage

import "context"

// BlobStore writes and reads image binaries.
type BlobStore interface {
	// Put writes data under key and returns the public URL of the blob.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
