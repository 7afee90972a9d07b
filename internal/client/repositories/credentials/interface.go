// Package credentials persists the bearer token across client restarts.
// The store is the durable side of the session: one well-known key in a
// small local SQLite database.
package credentials

import "context"

// Repository is the durable credential store. An absent token reads back
// as an empty string, which means the client is anonymous.
type Repository interface {
	Token(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
