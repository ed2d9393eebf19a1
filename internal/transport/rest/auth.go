package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/adapter/httpapi"
	"github.com/heartmarshall/learnhub/internal/authsync"
	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/guard"
	"github.com/heartmarshall/learnhub/internal/i18n"
	"github.com/heartmarshall/learnhub/internal/querycache"
	"github.com/heartmarshall/learnhub/internal/transport/middleware"
	"github.com/heartmarshall/learnhub/internal/validate"
)

// sessionRegistry creates and drops browser sessions.
type sessionRegistry interface {
	Create(ctx context.Context) (*authsync.Entry, error)
	Remove(id string)
}

// avatarResolver turns a profile's avatar path into a URL the browser can load.
type avatarResolver interface {
	AvatarURL(ctx context.Context, p *domain.Profile) *string
}

// cachePurger drops cached queries under a key prefix.
type cachePurger interface {
	Purge(prefix querycache.Key) int
}

// AuthHandler serves sign-in, sign-out and the current user.
type AuthHandler struct {
	responder
	sessions sessionRegistry
	avatars  avatarResolver
	cache    cachePurger
	cookie   middleware.SessionCookie
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(logger *slog.Logger, loc *i18n.Localizer, sessions sessionRegistry, avatars avatarResolver, cache cachePurger, cookie middleware.SessionCookie) *AuthHandler {
	return &AuthHandler{
		responder: responder{log: logger.With("handler", "auth"), i18n: loc},
		sessions:  sessions,
		avatars:   avatars,
		cache:     cache,
		cookie:    cookie,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginPage struct {
	From string `json:"from"`
}

type loginResponse struct {
	Location string     `json:"location"`
	Me       meResponse `json:"me"`
}

type meResponse struct {
	Authenticated bool         `json:"authenticated"`
	Loading       bool         `json:"loading"`
	IsAdmin       bool         `json:"is_admin"`
	UserID        string       `json:"user_id,omitempty"`
	Email         string       `json:"email,omitempty"`
	Profile       *profileView `json:"profile"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// LoginPage handles GET /login. A signed-in user is sent on to the page they
// came from.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	from := guard.SafeFrom(r.URL.Query().Get("from"))
	if s, err := authsync.FromContext(r.Context()); err == nil && s.State().IsAuthenticated {
		http.Redirect(w, r, from, http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, loginPage{From: from})
}

// Login handles POST /login. A browser without a session gets one first.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := validate.Struct(req); err != nil {
		h.fail(w, r, err)
		return
	}

	ctx := r.Context()
	sync, err := authsync.FromContext(ctx)
	if err != nil {
		entry, err := h.sessions.Create(ctx)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.cookie.Set(w, entry.ID)
		sync = entry.Sync
		ctx = httpapi.WithTokenSource(ctx, entry.Tokens)
	}

	if err := sync.SignIn(ctx, req.Email, req.Password); err != nil {
		h.fail(w, r, err)
		return
	}

	state := sync.State()
	h.log.InfoContext(ctx, "signed in", slog.String("user_id", state.UserID().String()))
	writeJSON(w, http.StatusOK, loginResponse{
		Location: guard.SafeFrom(r.URL.Query().Get("from")),
		Me:       h.me(ctx, state),
	})
}

// Logout handles POST /logout. It always clears the session cookie and drops
// the cached queries of the user who signed out.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if sync, err := authsync.FromContext(ctx); err == nil {
		userID := sync.State().UserID()
		if err := sync.SignOut(ctx); err != nil {
			h.log.WarnContext(ctx, "sign out", slog.String("error", err.Error()))
		}
		if userID != uuid.Nil {
			n := h.cache.Purge(querycache.UserScope(userID))
			h.log.DebugContext(ctx, "purged user queries",
				slog.String("user_id", userID.String()),
				slog.Int("entries", n),
			)
		}
	}
	if id, ok := middleware.SessionIDFromCtx(ctx); ok {
		h.sessions.Remove(id)
	}
	h.cookie.Clear(w)
	writeJSON(w, http.StatusOK, messageResponse{Message: h.i18n.Sprintf(ctx, i18n.MsgSignedOut)})
}

// Me handles GET /me. It never fails: a browser without a session is simply
// not authenticated.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	var state authsync.State
	if sync, err := authsync.FromContext(r.Context()); err == nil {
		state = sync.State()
	}
	writeJSON(w, http.StatusOK, h.me(r.Context(), state))
}

func (h *AuthHandler) me(ctx context.Context, state authsync.State) meResponse {
	resp := meResponse{
		Authenticated: state.IsAuthenticated,
		Loading:       state.Loading,
		IsAdmin:       state.IsAdmin,
	}
	if state.User != nil {
		resp.UserID = state.User.ID.String()
		resp.Email = state.User.Email
	}
	if state.Profile != nil {
		view := toProfileView(state.Profile, h.avatars.AvatarURL(ctx, state.Profile))
		resp.Profile = &view
	}
	return resp
}
