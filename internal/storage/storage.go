// Package storage abstracts the object store that receives uploaded cover
// images. The service layer only depends on Store; the disk implementation
// below is what runs in a single-node deployment.
package storage

import "context"

type Store interface {
	// Put writes the object under key and returns its public URL.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
