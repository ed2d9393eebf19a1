package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/learnhub/internal/authsync"
	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/i18n"
	"github.com/heartmarshall/learnhub/internal/service/profile"
)

type profileService interface {
	AvatarURL(ctx context.Context, p *domain.Profile) *string
	UploadAvatar(ctx context.Context, body io.Reader) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, input profile.UpdateProfileInput) (*domain.Profile, error)
}

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	responder
	svc            profileService
	maxAvatarBytes int64
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(logger *slog.Logger, loc *i18n.Localizer, svc profileService, maxAvatarBytes int64) *ProfileHandler {
	return &ProfileHandler{
		responder:      responder{log: logger.With("handler", "profile"), i18n: loc},
		svc:            svc,
		maxAvatarBytes: maxAvatarBytes,
	}
}

// Update handles PATCH /profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input profile.UpdateProfileInput
	if err := decode(r, &input); err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := h.svc.UpdateProfile(r.Context(), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.saved(w, r, p)
}

// UploadAvatar handles PUT /profile/avatar with the image as the raw body.
func (h *ProfileHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.UploadAvatar(r.Context(), r.Body)
	if err != nil {
		h.fail(w, r, err, explainUpload("avatar", h.maxAvatarBytes))
		return
	}
	h.saved(w, r, p)
}

// saved refreshes the profile held by the session so guards and /me see the
// change, then writes the new profile.
func (h *ProfileHandler) saved(w http.ResponseWriter, r *http.Request, p *domain.Profile) {
	ctx := r.Context()
	if sync, err := authsync.FromContext(ctx); err == nil {
		if err := sync.RefreshProfile(ctx); err != nil {
			h.log.WarnContext(ctx, "refresh session profile", slog.String("error", err.Error()))
		}
	}
	writeJSON(w, http.StatusOK, toProfileView(p, h.svc.AvatarURL(ctx, p)))
}
