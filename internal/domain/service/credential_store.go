// Package service defines interfaces for the collaborators the client core depends on.
// Concrete implementations live under internal/infra.
package service

import "context"

// CredentialStore is a durable key-value store for the cached password.
type CredentialStore interface {
	// Get returns the value under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
