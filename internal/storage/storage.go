// Package storage provides blob storage for uploaded document files. It
// defines a System interface and includes a filesystem implementation
// suitable for development and single-node deployments.
package storage

import (
	"context"
	"errors"
)

// Storage errors returned by System implementations.
var (
	// ErrNotFound indicates the requested key does not exist in storage.
	ErrNotFound = errors.New("storage: key not found")

	// ErrInvalidKey indicates the key is malformed. This includes empty
	// keys and path traversal attempts.
	ErrInvalidKey = errors.New("storage: invalid key")
)

// System defines blob storage operations. Implementations handle the
// underlying mechanism while providing a consistent API for storing and
// retrieving binary data.
type System interface {
	// Store saves data at the specified key, overwriting any existing
	// contents. Returns ErrInvalidKey for empty or traversing keys.
	Store(ctx context.Context, key string, data []byte) error

	// Retrieve returns the data stored at the specified key.
	// Returns ErrNotFound if the key does not exist.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Delete removes the data at the specified key. Deleting a missing
	// key is a no-op.
	Delete(ctx context.Context, key string) error
}
