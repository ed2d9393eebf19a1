package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/learnhub/internal/adapter/httpapi"
	"github.com/heartmarshall/learnhub/internal/authsync"
)

type sessionRegistry interface {
	Get(id string) (*authsync.Entry, bool)
}

// SessionCookie describes the browser session cookie. Its value is an opaque
// registry id; tokens never leave the server.
type SessionCookie struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

// Read returns the session id carried by r.
func (c SessionCookie) Read(r *http.Request) (string, bool) {
	ck, err := r.Cookie(c.Name)
	if err != nil || ck.Value == "" {
		return "", false
	}
	return ck.Value, true
}

// Set writes the session cookie.
func (c SessionCookie) Set(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    id,
		Path:     "/",
		MaxAge:   int(c.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie.
func (c SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

type sessionIDKey struct{}

// SessionIDFromCtx returns the id of the browser session scoped to ctx.
func SessionIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey{}).(string)
	return id, ok && id != ""
}

// Session scopes the request to its browser session: the synchronizer for
// guards and handlers, and the token source so backend calls run as the
// user. A known session has its cookie re-issued, so the browser keeps it as
// long as the registry does. Unknown or expired sessions get their cookie
// cleared and continue signed out.
func Session(reg sessionRegistry, cookie SessionCookie) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := cookie.Read(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			e, ok := reg.Get(id)
			if !ok {
				cookie.Clear(w)
				next.ServeHTTP(w, r)
				return
			}
			cookie.Set(w, e.ID)

			ctx := authsync.WithSynchronizer(r.Context(), e.Sync)
			ctx = httpapi.WithTokenSource(ctx, e.Tokens)
			ctx = context.WithValue(ctx, sessionIDKey{}, e.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
