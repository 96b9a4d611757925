// Package credentials persists the client's credential record (bearer token
// plus cached user profile) in the local SQLite database.
package credentials

import "context"

// Repository is a small key/value surface over the credentials table.
// Get returns (nil, nil) when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
