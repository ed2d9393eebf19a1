// Package guard decides whether a navigation may proceed given the auth
// state of the browser session.
//
// Every evaluation resolves to exactly one Outcome; a guard never fails.
package guard

import (
	"net/url"
	"strings"

	"github.com/heartmarshall/learnhub/internal/authsync"
)

// Outcome is the resolved state of one navigation attempt.
type Outcome int

const (
	// Pending means the session is still loading; show a placeholder.
	Pending Outcome = iota
	Admitted
	RedirectLogin
	RedirectHome
	// Suspended is terminal: no further navigation is offered.
	Suspended
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending_auth"
	case Admitted:
		return "admitted"
	case RedirectLogin:
		return "redirect_login"
	case RedirectHome:
		return "redirect_home"
	case Suspended:
		return "suspended_notice"
	default:
		return "unknown"
	}
}

// Policy selects which guard is applied.
type Policy int

const (
	MemberOnly Policy = iota
	AdminOnly
)

const (
	LoginPath = "/login"
	HomePath  = "/"
)

// Decision is the result of Evaluate. Location is set for redirects;
// From is the path to return to after signing in.
type Decision struct {
	Outcome  Outcome
	Location string
	From     string
}

// Evaluate resolves the navigation to path under policy.
func Evaluate(state authsync.State, path string, policy Policy) Decision {
	switch {
	case state.Loading:
		return Decision{Outcome: Pending}
	case !state.IsAuthenticated:
		from := SafeFrom(path)
		return Decision{Outcome: RedirectLogin, Location: LoginLocation(from), From: from}
	case state.Profile != nil && !state.Profile.IsActive:
		return Decision{Outcome: Suspended}
	case policy == AdminOnly && !state.IsAdmin:
		return Decision{Outcome: RedirectHome, Location: HomePath}
	default:
		return Decision{Outcome: Admitted}
	}
}

// LoginLocation returns the login URL carrying from, if any.
func LoginLocation(from string) string {
	if from == "" || from == HomePath {
		return LoginPath
	}
	return LoginPath + "?" + url.Values{"from": {from}}.Encode()
}

// SafeFrom returns path if it is a local absolute path, otherwise "/".
// Scheme-relative ("//host") and backslash forms are rejected so a crafted
// from value cannot redirect off-site after sign-in.
func SafeFrom(path string) string {
	if path == "" || !strings.HasPrefix(path, "/") ||
		strings.HasPrefix(path, "//") || strings.ContainsAny(path, "\\\r\n") {
		return HomePath
	}
	u, err := url.Parse(path)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return HomePath
	}
	if strings.HasPrefix(u.Path, LoginPath) {
		return HomePath
	}
	return path
}
