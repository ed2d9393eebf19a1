package rest

//go:generate moq -out learning_service_mock_test.go -pkg rest . learningService
//go:generate moq -out rewards_service_mock_test.go -pkg rest . rewardsService
//go:generate moq -out booking_service_mock_test.go -pkg rest . bookingService
//go:generate moq -out booking_admin_service_mock_test.go -pkg rest . bookingAdminService
//go:generate moq -out notification_service_mock_test.go -pkg rest . notificationService
//go:generate moq -out profile_service_mock_test.go -pkg rest . profileService
//go:generate moq -out admin_service_mock_test.go -pkg rest . adminService
//go:generate moq -out reminder_runner_mock_test.go -pkg rest . reminderRunner
//go:generate moq -out session_registry_mock_test.go -pkg rest . sessionRegistry
//go:generate moq -out cache_purger_mock_test.go -pkg rest . cachePurger

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/learnhub/internal/authsync"
	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/i18n"
	"github.com/heartmarshall/learnhub/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func localizer(t *testing.T) *i18n.Localizer {
	t.Helper()
	loc, err := i18n.New("en-US")
	require.NoError(t, err)
	return loc
}

// call runs fn for a request. pattern is the mux pattern so path values are
// populated the way the router does it.
func call(t *testing.T, fn http.HandlerFunc, pattern, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	return callCtx(t, context.Background(), fn, pattern, method, target, body)
}

func callCtx(t *testing.T, ctx context.Context, fn http.HandlerFunc, pattern, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, fn)
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, target, rd).WithContext(ctx))
	return rec
}

// asMember returns a context admitted the way the guards admit a member.
func asMember(userID uuid.UUID) context.Context {
	ctx := ctxutil.WithUserID(context.Background(), userID)
	return ctxutil.WithUserRole(ctx, domain.UserRoleMember.String())
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func decodeInto[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

// ---------------------------------------------------------------------------
// Session fakes
// ---------------------------------------------------------------------------

// memoryStore is a session store that signs in one fixed account.
type memoryStore struct {
	email, password string
	user            domain.SessionUser

	mu   sync.Mutex
	sess *domain.Session
	subs []func(domain.SessionEvent)
}

func (s *memoryStore) CurrentSession(context.Context) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess, nil
}

func (s *memoryStore) SignInWithPassword(_ context.Context, email, password string) error {
	if email != s.email || password != s.password {
		return &domain.CredentialError{Message: "Invalid login credentials"}
	}
	sess := &domain.Session{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour), User: s.user}
	s.mu.Lock()
	s.sess = sess
	subs := append([]func(domain.SessionEvent){}, s.subs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(domain.SessionEvent{Kind: domain.SessionSignedIn, Session: sess})
	}
	return nil
}

func (s *memoryStore) SignOut(context.Context) error {
	s.mu.Lock()
	s.sess = nil
	subs := append([]func(domain.SessionEvent){}, s.subs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(domain.SessionEvent{Kind: domain.SessionSignedOut})
	}
	return nil
}

func (s *memoryStore) Subscribe(fn func(domain.SessionEvent)) func() {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
	return func() {}
}

type staticProfiles struct{ p *domain.Profile }

func (f staticProfiles) GetByID(context.Context, uuid.UUID) (*domain.Profile, error) {
	if f.p == nil {
		return nil, domain.ErrNotFound
	}
	return f.p, nil
}

// newSession returns an initialized synchronizer over store for profile p.
func newSession(t *testing.T, store *memoryStore, p *domain.Profile) *authsync.Synchronizer {
	t.Helper()
	s := authsync.New(discard(), store, staticProfiles{p: p}, time.Second)
	t.Cleanup(s.Close)
	require.NoError(t, s.Initialize(context.Background()))
	return s
}

// lookup adapts a map to the session middleware's registry.
type lookup map[string]*authsync.Entry

func (l lookup) Get(id string) (*authsync.Entry, bool) {
	e, ok := l[id]
	return e, ok
}

func serveRecorder(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
