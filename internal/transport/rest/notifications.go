package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/i18n"
)

type notificationService interface {
	List(ctx context.Context, unreadOnly bool, limit int) ([]domain.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// NotificationHandler serves the caller's notifications.
type NotificationHandler struct {
	responder
	svc notificationService
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(logger *slog.Logger, loc *i18n.Localizer, svc notificationService) *NotificationHandler {
	return &NotificationHandler{
		responder: responder{log: logger.With("handler", "notification"), i18n: loc},
		svc:       svc,
	}
}

type unreadResponse struct {
	Unread int `json:"unread"`
}

// List handles GET /notifications?unread=true&limit=n.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	unreadOnly := false
	if raw := r.URL.Query().Get("unread"); raw != "" {
		if unreadOnly, err = strconv.ParseBool(raw); err != nil {
			h.fail(w, r, domain.NewValidationError("unread", "must be true or false"))
			return
		}
	}
	list, err := h.svc.List(r.Context(), unreadOnly, limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toNotificationView))
}

// Unread handles GET /notifications/unread.
func (h *NotificationHandler) Unread(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.UnreadCount(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, unreadResponse{Unread: n})
}

// MarkRead handles POST /notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.svc.MarkRead(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeNoContent(w)
}

// MarkAllRead handles POST /notifications/read.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.MarkAllRead(r.Context()); err != nil {
		h.fail(w, r, err)
		return
	}
	writeNoContent(w)
}

// Delete handles DELETE /notifications/{id}.
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeNoContent(w)
}
