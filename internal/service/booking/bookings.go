package booking

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	bookingrepo "github.com/heartmarshall/learnhub/internal/adapter/postgrest/booking"
	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/querycache"
	"github.com/heartmarshall/learnhub/internal/validate"
	"github.com/heartmarshall/learnhub/pkg/ctxutil"
)

// ListMyBookings returns the caller's bookings that have not ended yet.
func (s *Service) ListMyBookings(ctx context.Context) ([]domain.RoomBooking, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	res, err := querycache.Get(ctx, s.cache, querycache.Request[[]domain.RoomBooking]{
		Key: querycache.ForUser(userID, "bookings"),
		Fetch: func(ctx context.Context) ([]domain.RoomBooking, error) {
			return s.bookings.ListByUser(ctx, userID, s.now())
		},
	})
	if err != nil {
		return nil, fmt.Errorf("booking.ListMyBookings: %w", err)
	}
	return res.Value, nil
}

// CreateBooking reserves a room for the caller. The booking starts pending
// until an admin confirms it. Overlapping a non-cancelled booking of the same
// room is domain.ErrConflict.
func (s *Service) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.RoomBooking, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	var errs []domain.FieldError
	if !input.StartsAt.After(s.now()) {
		errs = append(errs, domain.FieldError{Field: "starts_at", Message: "must be in the future"})
	}
	if input.EndsAt.Sub(input.StartsAt) > MaxDuration {
		errs = append(errs, domain.FieldError{Field: "ends_at", Message: fmt.Sprintf("max %d hours", int(MaxDuration.Hours()))})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	room, err := s.bookings.GetRoom(ctx, input.RoomID)
	if err != nil {
		return nil, fmt.Errorf("booking.CreateBooking: room: %w", err)
	}
	if !room.IsActive {
		return nil, domain.NewValidationError("room_id", "room unavailable")
	}

	existing, err := s.bookings.ListByRoomBetween(ctx, input.RoomID, input.StartsAt, input.EndsAt)
	if err != nil {
		return nil, fmt.Errorf("booking.CreateBooking: overlap: %w", err)
	}
	for _, b := range existing {
		if b.Overlaps(input.StartsAt, input.EndsAt) {
			return nil, fmt.Errorf("booking.CreateBooking: %w", domain.ErrConflict)
		}
	}

	created, err := s.bookings.Create(ctx, domain.RoomBooking{
		RoomID:   input.RoomID,
		UserID:   userID,
		StartsAt: input.StartsAt,
		EndsAt:   input.EndsAt,
		Purpose:  strings.TrimSpace(input.Purpose),
		Status:   domain.BookingPending,
	})
	if err != nil {
		return nil, fmt.Errorf("booking.CreateBooking: %w", err)
	}

	s.invalidate(userID, input.RoomID)

	s.log.InfoContext(ctx, "booking created",
		slog.String("user_id", userID.String()),
		slog.String("booking_id", created.ID.String()),
		slog.String("room_id", input.RoomID.String()),
		slog.Time("starts_at", input.StartsAt),
	)
	return created, nil
}

// CancelBooking cancels one of the caller's bookings.
func (s *Service) CancelBooking(ctx context.Context, id uuid.UUID) (*domain.RoomBooking, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("booking_id", "required")
	}

	current, err := s.bookings.GetBooking(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("booking.CancelBooking: %w", err)
	}
	if current.UserID != userID && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if current.Status == domain.BookingCancelled {
		return current, nil
	}

	b, err := s.bookings.UpdateStatus(ctx, id, domain.BookingCancelled)
	if err != nil {
		return nil, fmt.Errorf("booking.CancelBooking: %w", err)
	}

	s.invalidate(b.UserID, b.RoomID)
	s.log.InfoContext(ctx, "booking cancelled",
		slog.String("user_id", userID.String()),
		slog.String("booking_id", id.String()),
	)
	return b, nil
}

// ListAllBookings returns bookings of all users. Admin only.
func (s *Service) ListAllBookings(ctx context.Context, input ListAllInput) ([]domain.RoomBooking, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	if input.Limit == 0 {
		input.Limit = DefaultListLimit
	}
	out, err := s.bookings.ListAll(ctx, bookingrepo.AllFilter{
		Status: input.Status,
		From:   input.From,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("booking.ListAllBookings: %w", err)
	}
	return out, nil
}

// SetStatus confirms or cancels a booking. Admin only.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (*domain.RoomBooking, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid")
	}

	b, err := s.bookings.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("booking.SetStatus: %w", err)
	}

	s.invalidate(b.UserID, b.RoomID)
	s.log.InfoContext(ctx, "booking status changed",
		slog.String("booking_id", id.String()),
		slog.String("status", status.String()),
	)
	return b, nil
}

func (s *Service) invalidate(userID, roomID uuid.UUID) {
	s.cache.InvalidatePrefix(querycache.UserScope(userID))
	s.cache.InvalidatePrefix(roomPrefix(roomID))
}
