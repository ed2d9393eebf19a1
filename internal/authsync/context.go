package authsync

import (
	"context"

	"github.com/heartmarshall/learnhub/internal/domain"
)

type ctxKey struct{}

// WithSynchronizer scopes s to ctx.
func WithSynchronizer(ctx context.Context, s *Synchronizer) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the synchronizer scoped to ctx, or an error wrapping
// domain.ErrNoAuthScope when ctx carries none.
func FromContext(ctx context.Context) (*Synchronizer, error) {
	s, ok := ctx.Value(ctxKey{}).(*Synchronizer)
	if !ok || s == nil {
		return nil, domain.ErrNoAuthScope
	}
	return s, nil
}

// MustFromContext is like FromContext but panics outside an auth scope.
func MustFromContext(ctx context.Context) *Synchronizer {
	s, err := FromContext(ctx)
	if err != nil {
		panic("authsync: " + err.Error())
	}
	return s
}
