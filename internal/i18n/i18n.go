// Package i18n localizes user-facing notices and error messages.
// Supported languages are en-US and ko-KR.
package i18n

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "lh_lang"
)

var (
	english = language.MustParse("en-US")
	korean  = language.MustParse("ko-KR")

	supportedTags = []language.Tag{english, korean}
	tagMatcher    = language.NewMatcher(supportedTags)
)

// Localizer resolves the request language and formats messages in it.
type Localizer struct {
	def     language.Tag
	catalog catalog.Catalog
}

// New creates a Localizer falling back to defaultLang, which must be supported.
func New(defaultLang string) (*Localizer, error) {
	def, ok := parseTag(defaultLang)
	if !ok {
		return nil, fmt.Errorf("i18n: unsupported default language %q", defaultLang)
	}

	b := catalog.NewBuilder(catalog.Fallback(english))
	for _, key := range allKeys() {
		if err := b.SetString(english, key, key); err != nil {
			return nil, fmt.Errorf("i18n: en-US %q: %w", key, err)
		}
	}
	for key, msg := range koKR {
		if err := b.SetString(korean, key, msg); err != nil {
			return nil, fmt.Errorf("i18n: ko-KR %q: %w", key, err)
		}
	}
	return &Localizer{def: def, catalog: b}, nil
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the fallback language.
func (l *Localizer) Default() language.Tag {
	return l.def
}

// Printer returns a message printer for tag.
func (l *Localizer) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(l.catalog))
}

// Sprintf formats key in the language carried by ctx.
func (l *Localizer) Sprintf(ctx context.Context, key string, args ...any) string {
	return l.Printer(l.tagFrom(ctx)).Sprintf(key, args...)
}

// ResolveTag determines the best language tag for the request: the lang query
// parameter, then the language cookie, then Accept-Language.
// The bool indicates whether the lang query param should be persisted as a cookie.
func (l *Localizer) ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return l.def, false
	}

	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if tag, ok := parseTag(v); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := parseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, conf := tagMatcher.Match(tags...)
			if conf != language.No {
				return supportedTags[idx], false
			}
		}
	}

	return l.def, false
}

// Middleware stores the resolved language in the request context and
// persists an explicit choice as a cookie.
func (l *Localizer) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag, persist := l.ResolveTag(r)
		if persist {
			SetLanguageCookie(w, tag)
		}
		next.ServeHTTP(w, r.WithContext(WithTag(r.Context(), tag)))
	})
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

type tagKey struct{}

// WithTag stores tag in ctx.
func WithTag(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, tagKey{}, tag)
}

// TagFromContext returns the language stored in ctx, if any.
func TagFromContext(ctx context.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(tagKey{}).(language.Tag)
	return tag, ok
}

func (l *Localizer) tagFrom(ctx context.Context) language.Tag {
	if tag, ok := TagFromContext(ctx); ok {
		return tag
	}
	return l.def
}

func parseTag(value string) (language.Tag, bool) {
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	for _, tag := range supportedTags {
		if tag == parsed {
			return tag, true
		}
	}
	return language.Tag{}, false
}

func allKeys() []string {
	keys := make([]string, 0, len(koKR))
	for key := range koKR {
		keys = append(keys, key)
	}
	return keys
}
