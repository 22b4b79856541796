package store

import "context"

// Store is the portal state store: a flat namespace of named entries, each
// holding an independently serialized JSON document or a plain scalar.
// Entries are loaded and saved whole; there are no cross-entry transactions.
// A missing entry is reported through the found flag, never as an error, so
// callers can treat absence as "empty collection".
type Store interface {
	GetJSON(ctx context.Context, key string, out interface{}) (found bool, err error)
	SetJSON(ctx context.Context, key string, value interface{}) error
	GetString(ctx context.Context, key string) (value string, found bool, err error)
	SetString(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
