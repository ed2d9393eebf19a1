// Package authsync keeps the authentication state of one browser session in
// step with its session store.
//
// A Synchronizer owns {User, Profile, Loading, IsAdmin, IsAuthenticated}.
// Session events from the store replace the state; the profile is refetched
// for every signed-in or token-refreshed event. Every state-replacing
// transition bumps an epoch, and a profile result is applied only if the
// epoch it was requested under is still current, so a slow fetch for a user
// who has since signed out can never resurrect that user.
package authsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/domain"
)

// DefaultFetchTimeout bounds a profile fetch started by a session event.
const DefaultFetchTimeout = 10 * time.Second

// sessionStore is the hosted session store of one browser session.
type sessionStore interface {
	CurrentSession(ctx context.Context) (*domain.Session, error)
	SignInWithPassword(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
	Subscribe(fn func(domain.SessionEvent)) (unsubscribe func())
}

// profileRepo fetches the profile of the signed-in user under row-level security.
type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

// State is an immutable snapshot of the authentication state.
//
// IsAdmin implies IsAuthenticated. IsAuthenticated with a nil Profile is a
// valid state: the session exists but the profile could not be loaded.
type State struct {
	User            *domain.SessionUser
	Profile         *domain.Profile
	Loading         bool
	IsAdmin         bool
	IsAuthenticated bool
}

// UserID returns the id of the session user, or uuid.Nil when signed out.
func (s State) UserID() uuid.UUID {
	if s.User == nil {
		return uuid.Nil
	}
	return s.User.ID
}

// clone copies the pointed-to values so subscribers cannot alias internal state.
func (s State) clone() State {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	if s.Profile != nil {
		p := *s.Profile
		s.Profile = &p
	}
	return s
}

// Synchronizer is the auth state holder of one browser session. All state
// transitions are serialized; subscribers see whole snapshots in order.
// Subscribers must not call SignIn, SignOut or RefreshProfile from the callback.
type Synchronizer struct {
	log          *slog.Logger
	store        sessionStore
	profiles     profileRepo
	fetchTimeout time.Duration

	// base is detached from request cancellation; it ends on Close.
	base   context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	state       State
	epoch       uint64
	initialized bool
	closed      bool
	unsubscribe func()
	subs        map[uint64]func(State)
	nextSub     uint64
	version     uint64

	// notifyMu serializes deliveries; delivered is the newest version sent.
	notifyMu  sync.Mutex
	delivered uint64
}

// New creates a Synchronizer in the loading state. Call Initialize before use.
func New(logger *slog.Logger, store sessionStore, profiles profileRepo, fetchTimeout time.Duration) *Synchronizer {
	if fetchTimeout <= 0 {
		fetchTimeout = DefaultFetchTimeout
	}
	base, cancel := context.WithCancel(context.Background())
	return &Synchronizer{
		log:          logger.With("service", "authsync"),
		store:        store,
		profiles:     profiles,
		fetchTimeout: fetchTimeout,
		base:         base,
		cancel:       cancel,
		state:        State{Loading: true},
		subs:         make(map[uint64]func(State)),
	}
}

// State returns the current snapshot.
func (s *Synchronizer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn for every state change until the returned function is called.
func (s *Synchronizer) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Initialize subscribes to the session store and loads the current session
// and its profile. Loading is false when it returns, whatever the outcome.
// Calling it again is a no-op.
func (s *Synchronizer) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errors.New("authsync.Initialize: synchronizer closed")
	}
	if s.initialized {
		s.mu.Unlock()
		return nil
	}
	s.initialized = true
	s.mu.Unlock()

	unsubscribe := s.store.Subscribe(s.HandleSessionEvent)
	s.mu.Lock()
	s.unsubscribe = unsubscribe
	startEpoch := s.epoch
	s.mu.Unlock()

	sess, err := s.store.CurrentSession(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "read current session", slog.String("error", err.Error()))
	}

	s.mu.Lock()
	if s.epoch != startEpoch {
		// A session event arrived meanwhile and already settled the state.
		s.mu.Unlock()
		return nil
	}
	if sess == nil {
		s.epoch++
		s.state = State{}
		s.deliverLocked()
		return nil
	}
	s.mu.Unlock()

	s.loadProfile(ctx, sess.User, true)
	return nil
}

// Closed reports whether Close has been called.
func (s *Synchronizer) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close unsubscribes from the session store and drops all subscribers.
// In-flight profile fetches are cancelled and their results discarded.
func (s *Synchronizer) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.epoch++
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	clear(s.subs)
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	s.cancel()
}

// HandleSessionEvent applies a session store event. Signed-in and
// token-refreshed refetch the profile for the event's user; signed-out resets
// the state to its zero value.
func (s *Synchronizer) HandleSessionEvent(ev domain.SessionEvent) {
	switch ev.Kind {
	case domain.SessionSignedOut:
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return
		}
		s.epoch++
		s.state = State{}
		s.deliverLocked()

	case domain.SessionSignedIn, domain.SessionTokenRefreshed:
		if ev.Session == nil {
			s.log.Warn("session event without session", slog.String("kind", ev.Kind.String()))
			return
		}
		ctx, cancel := context.WithTimeout(s.base, s.fetchTimeout)
		defer cancel()
		s.loadProfile(ctx, ev.Session.User, ev.Kind == domain.SessionSignedIn)

	default:
		s.log.Warn("unknown session event", slog.String("kind", ev.Kind.String()))
	}
}

// loadProfile fetches the profile of user and replaces the state with both
// if no newer transition happened in between. A fetch failure is logged and
// leaves the user authenticated without a profile.
//
// User and Profile change together. While the fetch runs the previous state
// of the same user keeps serving, marked Loading when showLoading is set or
// no profile is held. A different user is never published before its profile.
func (s *Synchronizer) loadProfile(ctx context.Context, user domain.SessionUser, showLoading bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.epoch++
	epoch := s.epoch

	var next State
	if s.state.User != nil && s.state.User.ID == user.ID {
		next = s.state
		next.Loading = showLoading || s.state.Profile == nil
	} else {
		next = State{Loading: true}
	}
	if next != s.state {
		s.state = next
		s.deliverLocked()
	} else {
		s.mu.Unlock()
	}

	profile, err := s.profiles.GetByID(ctx, user.ID)
	if err != nil {
		s.log.WarnContext(ctx, "fetch profile",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()),
		)
		profile = nil
	}

	s.mu.Lock()
	if s.epoch != epoch || s.closed {
		s.mu.Unlock()
		s.log.DebugContext(ctx, "discard stale profile result", slog.String("user_id", user.ID.String()))
		return
	}
	s.epoch++
	s.state = State{
		User:            &user,
		Profile:         profile,
		IsAdmin:         profile.IsAdmin(),
		IsAuthenticated: true,
	}
	s.deliverLocked()
}

// SignIn signs in with a password. The user and profile are set by the
// signed-in event the store emits, not here. Rejected credentials yield
// *domain.CredentialError.
func (s *Synchronizer) SignIn(ctx context.Context, email, password string) error {
	s.setLoading(true)

	if err := s.store.SignInWithPassword(ctx, email, password); err != nil {
		s.setLoading(false)
		var credErr *domain.CredentialError
		if errors.As(err, &credErr) {
			return credErr
		}
		return fmt.Errorf("authsync.SignIn: %w", err)
	}
	return nil
}

// SignOut signs out. The state is reset by the signed-out event the store emits.
func (s *Synchronizer) SignOut(ctx context.Context) error {
	s.setLoading(true)

	if err := s.store.SignOut(ctx); err != nil {
		s.setLoading(false)
		return fmt.Errorf("authsync.SignOut: %w", err)
	}
	return nil
}

// RefreshProfile refetches the profile of the current user, for example after
// the user edited it. It never toggles Loading and is a no-op when signed out.
// On failure the previous profile is kept and the error returned.
func (s *Synchronizer) RefreshProfile(ctx context.Context) error {
	s.mu.Lock()
	if s.state.User == nil || s.closed {
		s.mu.Unlock()
		return nil
	}
	user := *s.state.User
	epoch := s.epoch
	s.mu.Unlock()

	profile, err := s.profiles.GetByID(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("authsync.RefreshProfile: %w", err)
	}

	s.mu.Lock()
	if s.epoch != epoch || s.closed {
		s.mu.Unlock()
		return nil
	}
	s.epoch++
	s.state.Profile = profile
	s.state.IsAdmin = profile.IsAdmin()
	s.deliverLocked()
	return nil
}

func (s *Synchronizer) setLoading(loading bool) {
	s.mu.Lock()
	if s.closed || s.state.Loading == loading {
		s.mu.Unlock()
		return
	}
	s.state.Loading = loading
	s.deliverLocked()
}

// deliverLocked snapshots the state, releases mu and notifies subscribers.
// It must be called with mu held. A snapshot older than one already
// delivered is dropped, so subscribers never see the state go backwards.
func (s *Synchronizer) deliverLocked() {
	s.version++
	version := s.version
	snap := s.state.clone()
	fns := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	if version <= s.delivered {
		return
	}
	s.delivered = version
	for _, fn := range fns {
		fn(snap)
	}
}
