package httpapi

import (
	"context"
	"fmt"
)

// TokenSource yields the bearer token of the signed-in user, refreshing it
// when needed. An empty token means the request goes out anonymously.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

type tokenSourceKey struct{}

// WithTokenSource attaches ts to ctx. Requests made with the returned context
// carry the user's bearer token, so row-level security applies to them.
func WithTokenSource(ctx context.Context, ts TokenSource) context.Context {
	return context.WithValue(ctx, tokenSourceKey{}, ts)
}

// StaticToken is a TokenSource that always returns the same token.
type StaticToken string

func (t StaticToken) AccessToken(context.Context) (string, error) { return string(t), nil }

func tokenFromContext(ctx context.Context) (string, error) {
	ts, ok := ctx.Value(tokenSourceKey{}).(TokenSource)
	if !ok || ts == nil {
		return "", nil
	}
	token, err := ts.AccessToken(ctx)
	if err != nil {
		return "", fmt.Errorf("httpapi: access token: %w", err)
	}
	return token, nil
}
