package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionUser is the read-only mirror of the session owner.
type SessionUser struct {
	ID    uuid.UUID
	Email string
}

// Session is the proof of authentication issued by the hosted auth service.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         SessionUser
}

// IsExpired reports whether the access token has expired relative to now.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// NeedsRefresh reports whether the access token expires within margin of now.
func (s *Session) NeedsRefresh(now time.Time, margin time.Duration) bool {
	return !s.ExpiresAt.After(now.Add(margin))
}

// SessionEvent is a change notification emitted by the session store.
// Session is nil for SessionSignedOut.
type SessionEvent struct {
	Kind    SessionEventKind
	Session *Session
}
