// Package storage bridges the record store to a keyed byte store and
// repairs the type loss inherent to JSON round-tripping of date fields.
package storage

import "context"

// KV is the byte-store boundary the snapshot codec writes through.
type KV interface {
	// Get returns the value at key, or ErrNoState when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set writes the value as-is at key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
