package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/querycache"
)

// ListRooms returns the bookable rooms.
func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	res, err := querycache.Get(ctx, s.cache, querycache.Request[[]domain.Room]{
		Key: roomsKey(),
		Fetch: func(ctx context.Context) ([]domain.Room, error) {
			return s.bookings.ListRooms(ctx, false)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("booking.ListRooms: %w", err)
	}
	return res.Value, nil
}

// RoomSchedule returns the non-cancelled bookings of a room on the day
// containing day, in day's location.
func (s *Service) RoomSchedule(ctx context.Context, roomID uuid.UUID, day time.Time) ([]domain.RoomBooking, error) {
	if roomID == uuid.Nil {
		return nil, domain.NewValidationError("room_id", "required")
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	res, err := querycache.Get(ctx, s.cache, querycache.Request[[]domain.RoomBooking]{
		Key: scheduleKey(roomID, start),
		Fetch: func(ctx context.Context) ([]domain.RoomBooking, error) {
			return s.bookings.ListByRoomBetween(ctx, roomID, start, end)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("booking.RoomSchedule: %w", err)
	}
	return res.Value, nil
}
