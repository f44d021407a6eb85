package ports

import "context"

// TokenStore persists the bearer token between requests. An empty token with
// a nil error means no session.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	RemoveToken(ctx context.Context) error
}
