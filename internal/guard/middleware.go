package guard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/learnhub/internal/authsync"
	"github.com/heartmarshall/learnhub/internal/i18n"
	"github.com/heartmarshall/learnhub/pkg/ctxutil"
)

// RetryAfter is sent with the loading placeholder.
const RetryAfter = time.Second

// Guard turns Decisions into HTTP responses.
type Guard struct {
	log  *slog.Logger
	i18n *i18n.Localizer
}

// New creates a Guard.
func New(logger *slog.Logger, loc *i18n.Localizer) *Guard {
	return &Guard{log: logger.With("component", "guard"), i18n: loc}
}

// RequireAuth admits signed-in members with an active or missing profile.
func (g *Guard) RequireAuth(next http.Handler) http.Handler {
	return g.wrap(MemberOnly, next)
}

// RequireAdmin additionally requires the admin role.
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return g.wrap(AdminOnly, next)
}

func (g *Guard) wrap(policy Policy, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		// A request without a session handle is treated as signed out.
		var state authsync.State
		if s, err := authsync.FromContext(ctx); err == nil {
			state = s.State()
		}

		d := Evaluate(state, r.URL.RequestURI(), policy)
		switch d.Outcome {
		case Admitted:
			ctx = ctxutil.WithUserID(ctx, state.UserID())
			if state.Profile != nil {
				ctx = ctxutil.WithUserRole(ctx, string(state.Profile.Role))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		case Pending:
			w.Header().Set("Retry-After", strconv.Itoa(int(RetryAfter.Seconds())))
			g.notice(w, r, http.StatusServiceUnavailable, d, i18n.MsgLoading)
		case RedirectLogin:
			g.redirect(w, r, d, i18n.MsgSignInRequired)
		case RedirectHome:
			g.redirect(w, r, d, i18n.MsgForbidden)
		case Suspended:
			g.log.InfoContext(ctx, "suspended profile blocked", slog.String("user_id", state.UserID().String()))
			g.notice(w, r, http.StatusForbidden, d, i18n.MsgSuspended)
		}
	})
}

type noticeBody struct {
	State    string `json:"state"`
	Message  string `json:"message"`
	Location string `json:"location,omitempty"`
	From     string `json:"from,omitempty"`
}

func (g *Guard) redirect(w http.ResponseWriter, r *http.Request, d Decision, key string) {
	w.Header().Set("Location", d.Location)
	g.notice(w, r, http.StatusSeeOther, d, key)
}

func (g *Guard) notice(w http.ResponseWriter, r *http.Request, status int, d Decision, key string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(noticeBody{ //nolint:errcheck
		State:    d.Outcome.String(),
		Message:  g.i18n.Sprintf(r.Context(), key),
		Location: d.Location,
		From:     d.From,
	})
}
