package authsync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/heartmarshall/learnhub/internal/auth"
)

// TokenSource yields the bearer token of the session's user.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Entry is the auth scope of one browser session.
type Entry struct {
	ID     string
	Sync   *Synchronizer
	Tokens TokenSource
}

// Factory builds the synchronizer and token source of a new browser session.
type Factory func() (*Synchronizer, TokenSource)

// Registry maps opaque browser session ids to their auth scope. Entries idle
// for longer than the TTL, or pushed out when the registry is full, are
// closed.
type Registry struct {
	log     *slog.Logger
	factory Factory
	entries *expirable.LRU[string, *Entry]
}

// NewRegistry creates a Registry holding at most size sessions.
func NewRegistry(logger *slog.Logger, size int, idleTTL time.Duration, factory Factory) *Registry {
	log := logger.With("service", "authsync.registry")
	onEvict := func(_ string, e *Entry) {
		e.Sync.Close()
		log.Debug("session closed")
	}
	return &Registry{
		log:     log,
		factory: factory,
		entries: expirable.NewLRU(size, onEvict, idleTTL),
	}
}

// Create starts a new browser session and initializes its synchronizer.
func (r *Registry) Create(ctx context.Context) (*Entry, error) {
	id, err := auth.NewSessionID()
	if err != nil {
		return nil, fmt.Errorf("authsync.Create: %w", err)
	}
	s, tokens := r.factory()
	e := &Entry{ID: id, Sync: s, Tokens: tokens}
	if err := s.Initialize(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("authsync.Create: %w", err)
	}
	r.entries.Add(id, e)
	return e, nil
}

// Get returns the session with the given id and restarts its idle timer.
// A session closed by expiry is never handed out or re-inserted.
func (r *Registry) Get(id string) (*Entry, bool) {
	e, ok := r.entries.Get(id)
	if !ok {
		return nil, false
	}
	if e.Sync.Closed() {
		r.entries.Remove(id)
		return nil, false
	}
	r.entries.Add(id, e)
	// Expiry may have closed it between Get and Add.
	if e.Sync.Closed() {
		r.entries.Remove(id)
		return nil, false
	}
	return e, true
}

// Remove closes and forgets a session.
func (r *Registry) Remove(id string) {
	r.entries.Remove(id)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	return r.entries.Len()
}

// Close closes every session.
func (r *Registry) Close() {
	r.entries.Purge()
}
