// Package gotrue is the session store backed by the hosted auth service.
//
// A Store holds the session of one browser. It signs in with a password,
// refreshes the access token before it expires and signs out, and reports
// every change to its subscribers as a domain.SessionEvent.
package gotrue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/heartmarshall/learnhub/internal/adapter/httpapi"
	"github.com/heartmarshall/learnhub/internal/auth"
	"github.com/heartmarshall/learnhub/internal/domain"
)

type api interface {
	JSON(ctx context.Context, req httpapi.Request, out any) (*httpapi.Response, error)
}

type tokenParser interface {
	Parse(token string) (auth.TokenClaims, error)
}

// Store is the session store of one browser session. It is safe for concurrent use.
type Store struct {
	api           api
	parser        tokenParser
	log           *slog.Logger
	refreshMargin time.Duration
	now           func() time.Time

	// refreshMu serializes token refreshes.
	refreshMu sync.Mutex

	mu       sync.Mutex
	session  *domain.Session
	issuedAt time.Time
	subs    map[uint64]func(domain.SessionEvent)
	nextSub uint64
}

// NewStore creates an empty Store.
func NewStore(logger *slog.Logger, client api, parser tokenParser, refreshMargin time.Duration) *Store {
	return &Store{
		api:           client,
		parser:        parser,
		log:           logger.With("service", "session_store"),
		refreshMargin: refreshMargin,
		now:           time.Now,
		subs:          make(map[uint64]func(domain.SessionEvent)),
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// Subscribe registers fn for session events until the returned function is called.
func (s *Store) Subscribe(fn func(domain.SessionEvent)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	id := s.nextSub
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// CurrentSession returns the held session, refreshing it first when it is
// about to expire. It returns nil when there is no session or the refresh
// token was rejected.
func (s *Store) CurrentSession(ctx context.Context) (*domain.Session, error) {
	sess := s.snapshot()
	if sess == nil {
		return nil, nil
	}
	if !s.needsRefresh(sess) {
		return sess, nil
	}
	if err := s.Refresh(ctx); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, nil
		}
		return nil, err
	}
	return s.snapshot(), nil
}

// AccessToken returns the bearer token for data API requests. It satisfies
// httpapi.TokenSource. An empty token means there is no session.
func (s *Store) AccessToken(ctx context.Context) (string, error) {
	sess, err := s.CurrentSession(ctx)
	if err != nil {
		return "", err
	}
	if sess == nil {
		return "", nil
	}
	return sess.AccessToken, nil
}

// SignInWithPassword exchanges credentials for a session and emits SessionSignedIn.
// Rejected credentials yield *domain.CredentialError.
func (s *Store) SignInWithPassword(ctx context.Context, email, password string) error {
	var resp tokenResponse
	_, err := s.api.JSON(ctx, httpapi.Request{
		Method:    http.MethodPost,
		Path:      "/auth/v1/token",
		Query:     url.Values{"grant_type": {"password"}},
		Body:      map[string]string{"email": email, "password": password},
		Anonymous: true,
	}, &resp)
	if err != nil {
		var apiErr *httpapi.APIError
		if errors.As(err, &apiErr) && isCredentialStatus(apiErr.Status) {
			return &domain.CredentialError{Message: apiErr.Message}
		}
		return fmt.Errorf("gotrue.SignInWithPassword: %w", err)
	}

	sess, err := s.sessionFrom(resp)
	if err != nil {
		return fmt.Errorf("gotrue.SignInWithPassword: %w", err)
	}

	s.replace(sess)
	s.log.InfoContext(ctx, "signed in", slog.String("user_id", sess.User.ID.String()))
	s.emit(domain.SessionEvent{Kind: domain.SessionSignedIn, Session: sess})
	return nil
}

// Refresh exchanges the refresh token for a new session and emits
// SessionTokenRefreshed. A rejected refresh token clears the session, emits
// SessionSignedOut and returns an error wrapping domain.ErrUnauthorized.
//
// Events are emitted after refreshMu is released, so subscribers may ask the
// store for a token again.
func (s *Store) Refresh(ctx context.Context) error {
	ev, err := s.refresh(ctx)
	if ev != nil {
		s.emit(*ev)
	}
	return err
}

func (s *Store) refresh(ctx context.Context) (*domain.SessionEvent, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	cur := s.snapshot()
	if cur == nil {
		return nil, fmt.Errorf("gotrue.Refresh: %w", domain.ErrUnauthorized)
	}
	// Another caller may have refreshed while this one waited.
	if !s.needsRefresh(cur) {
		return nil, nil
	}

	var resp tokenResponse
	_, err := s.api.JSON(ctx, httpapi.Request{
		Method:    http.MethodPost,
		Path:      "/auth/v1/token",
		Query:     url.Values{"grant_type": {"refresh_token"}},
		Body:      map[string]string{"refresh_token": cur.RefreshToken},
		Anonymous: true,
	}, &resp)
	if err != nil {
		var apiErr *httpapi.APIError
		if errors.As(err, &apiErr) && isCredentialStatus(apiErr.Status) {
			s.log.WarnContext(ctx, "refresh token rejected", slog.String("user_id", cur.User.ID.String()))
			s.drop()
			return &domain.SessionEvent{Kind: domain.SessionSignedOut},
				fmt.Errorf("gotrue.Refresh: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("gotrue.Refresh: %w", err)
	}

	sess, err := s.sessionFrom(resp)
	if err != nil {
		return nil, fmt.Errorf("gotrue.Refresh: %w", err)
	}

	s.replace(sess)
	return &domain.SessionEvent{Kind: domain.SessionTokenRefreshed, Session: sess}, nil
}

// minSessionAge keeps a session that was just issued from being refreshed
// again, whatever its reported expiry.
const minSessionAge = 5 * time.Second

// needsRefresh reports whether sess expires within the refresh margin. The
// margin is capped at half of the token lifetime, so a short-lived token is
// not refreshed as soon as it is received.
func (s *Store) needsRefresh(sess *domain.Session) bool {
	s.mu.Lock()
	issued := s.issuedAt
	s.mu.Unlock()

	now := s.now()
	if now.Sub(issued) < minSessionAge {
		return false
	}
	margin := s.refreshMargin
	if lifetime := sess.ExpiresAt.Sub(issued); lifetime > 0 && margin > lifetime/2 {
		margin = lifetime / 2
	}
	return sess.NeedsRefresh(now, margin)
}

// SignOut revokes the session and emits SessionSignedOut. A session the auth
// service no longer knows is cleared locally as well.
func (s *Store) SignOut(ctx context.Context) error {
	cur := s.snapshot()
	if cur == nil {
		s.emit(domain.SessionEvent{Kind: domain.SessionSignedOut})
		return nil
	}

	_, err := s.api.JSON(ctx, httpapi.Request{
		Method: http.MethodPost,
		Path:   "/auth/v1/logout",
		Query:  url.Values{"scope": {"local"}},
		Token:  cur.AccessToken,
	}, nil)
	if err != nil {
		var apiErr *httpapi.APIError
		if !errors.As(err, &apiErr) || !isCredentialStatus(apiErr.Status) {
			return fmt.Errorf("gotrue.SignOut: %w", err)
		}
	}

	s.log.InfoContext(ctx, "signed out", slog.String("user_id", cur.User.ID.String()))
	s.clear()
	return nil
}

func (s *Store) sessionFrom(resp tokenResponse) (*domain.Session, error) {
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		return nil, fmt.Errorf("token response without tokens")
	}

	claims, err := s.parser.Parse(resp.AccessToken)
	if err != nil {
		return nil, err
	}
	if resp.User.ID != "" && resp.User.ID != claims.UserID.String() {
		return nil, fmt.Errorf("token subject %s does not match user %s", claims.UserID, resp.User.ID)
	}

	email := resp.User.Email
	if email == "" {
		email = claims.Email
	}

	// expires_in is relative to the local clock and immune to skew with the
	// auth server, so it wins over the absolute expires_at.
	expiresAt := claims.ExpiresAt
	switch {
	case resp.ExpiresIn > 0:
		expiresAt = s.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	case resp.ExpiresAt > 0:
		expiresAt = time.Unix(resp.ExpiresAt, 0)
	}

	return &domain.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    expiresAt.UTC(),
		User:         domain.SessionUser{ID: claims.UserID, Email: email},
	}, nil
}

func (s *Store) snapshot() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	cp := *s.session
	return &cp
}

func (s *Store) replace(sess *domain.Session) {
	s.mu.Lock()
	cp := *sess
	s.session = &cp
	s.issuedAt = s.now()
	s.mu.Unlock()
}

func (s *Store) drop() {
	s.mu.Lock()
	s.session = nil
	s.issuedAt = time.Time{}
	s.mu.Unlock()
}

func (s *Store) clear() {
	s.drop()
	s.emit(domain.SessionEvent{Kind: domain.SessionSignedOut})
}

// emit delivers ev to the subscribers in the caller's goroutine.
func (s *Store) emit(ev domain.SessionEvent) {
	s.mu.Lock()
	fns := make([]func(domain.SessionEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func isCredentialStatus(status int) bool {
	switch status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden,
		http.StatusNotFound, http.StatusUnprocessableEntity:
		return true
	}
	return false
}
