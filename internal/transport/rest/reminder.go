package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/learnhub/internal/service/reminder"
)

type reminderRunner interface {
	Run(ctx context.Context) (reminder.Result, error)
}

// ReminderHandler triggers one booking-reminder run per request. It is the
// only route of the reminder function and is called by a scheduler.
type ReminderHandler struct {
	log *slog.Logger
	svc reminderRunner
}

// NewReminderHandler creates a ReminderHandler.
func NewReminderHandler(logger *slog.Logger, svc reminderRunner) *ReminderHandler {
	return &ReminderHandler{log: logger.With("handler", "reminder"), svc: svc}
}

type reminderResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Count   int    `json:"count"`
	Sent    int    `json:"sent"`
	Skipped int    `json:"skipped"`
	Failed  int    `json:"failed"`
}

type reminderFailure struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// ServeHTTP answers preflights with 204 and runs the reminders on GET and POST.
func (h *ReminderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		writeNoContent(w)
		return
	case http.MethodGet, http.MethodPost:
	default:
		w.Header().Set("Allow", "GET, POST, OPTIONS")
		writeJSON(w, http.StatusMethodNotAllowed, reminderFailure{Error: "method not allowed"})
		return
	}

	res, err := h.svc.Run(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "reminder run failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, reminderFailure{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, reminderResponse{
		OK:      true,
		Message: res.Message,
		Count:   res.Count,
		Sent:    res.Sent,
		Skipped: res.Skipped,
		Failed:  res.Failed,
	})
}
