package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/i18n"
	"github.com/heartmarshall/learnhub/internal/service/booking"
)

type bookingService interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
	RoomSchedule(ctx context.Context, roomID uuid.UUID, day time.Time) ([]domain.RoomBooking, error)
	ListMyBookings(ctx context.Context) ([]domain.RoomBooking, error)
	CreateBooking(ctx context.Context, input booking.CreateBookingInput) (*domain.RoomBooking, error)
	CancelBooking(ctx context.Context, id uuid.UUID) (*domain.RoomBooking, error)
}

// BookingHandler serves rooms and the caller's room bookings.
type BookingHandler struct {
	responder
	svc bookingService
	now func() time.Time
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(logger *slog.Logger, loc *i18n.Localizer, svc bookingService) *BookingHandler {
	return &BookingHandler{
		responder: responder{log: logger.With("handler", "booking"), i18n: loc},
		svc:       svc,
		now:       time.Now,
	}
}

// Rooms handles GET /rooms.
func (h *BookingHandler) Rooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.svc.ListRooms(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(rooms, toRoomView))
}

// Schedule handles GET /rooms/{id}/schedule?day=2006-01-02&tz=Area/City.
// Without day it shows today; without tz the day is in UTC.
func (h *BookingHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	day, err := h.parseDay(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	list, err := h.svc.RoomSchedule(r.Context(), id, day)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toBookingView))
}

// MyBookings handles GET /bookings.
func (h *BookingHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListMyBookings(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toBookingView))
}

// Create handles POST /bookings.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input booking.CreateBookingInput
	if err := decode(r, &input); err != nil {
		h.fail(w, r, err)
		return
	}
	b, err := h.svc.CreateBooking(r.Context(), input)
	if err != nil {
		h.fail(w, r, err, explainBooking)
		return
	}
	writeJSON(w, http.StatusCreated, toBookingView(*b))
}

// Cancel handles DELETE /bookings/{id}.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	b, err := h.svc.CancelBooking(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingView(*b))
}

func (h *BookingHandler) parseDay(r *http.Request) (time.Time, error) {
	q := r.URL.Query()
	loc := time.UTC
	if tz := strings.TrimSpace(q.Get("tz")); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return time.Time{}, domain.NewValidationError("tz", "unknown time zone")
		}
		loc = l
	}
	raw := strings.TrimSpace(q.Get("day"))
	if raw == "" {
		return h.now().In(loc), nil
	}
	day, err := time.ParseInLocation(time.DateOnly, raw, loc)
	if err != nil {
		return time.Time{}, domain.NewValidationError("day", "expected YYYY-MM-DD")
	}
	return day, nil
}

func explainBooking(err error) (string, []any, bool) {
	if errors.Is(err, domain.ErrConflict) {
		return i18n.MsgBookingOverlap, nil, true
	}
	if _, ok := fieldMessage(err, "starts_at"); ok {
		return i18n.MsgBookingPast, nil, true
	}
	if msg, ok := fieldMessage(err, "ends_at"); ok && strings.HasPrefix(msg, "max") {
		return i18n.MsgBookingTooLong, []any{int(booking.MaxDuration.Hours())}, true
	}
	return "", nil, false
}
