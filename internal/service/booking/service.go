// Package booking reserves study rooms for members and lets admins review
// and confirm reservations.
package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	bookingrepo "github.com/heartmarshall/learnhub/internal/adapter/postgrest/booking"
	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/querycache"
)

// MaxDuration is the longest booking a member may make.
const MaxDuration = 4 * time.Hour

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type bookingRepo interface {
	ListRooms(ctx context.Context, includeInactive bool) ([]domain.Room, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*domain.Room, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*domain.RoomBooking, error)
	ListByUser(ctx context.Context, userID uuid.UUID, from time.Time) ([]domain.RoomBooking, error)
	ListByRoomBetween(ctx context.Context, roomID uuid.UUID, start, end time.Time) ([]domain.RoomBooking, error)
	ListAll(ctx context.Context, f bookingrepo.AllFilter) ([]domain.RoomBooking, error)
	Create(ctx context.Context, b domain.RoomBooking) (*domain.RoomBooking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (*domain.RoomBooking, error)
}

// Service provides booking operations.
type Service struct {
	log      *slog.Logger
	bookings bookingRepo
	cache    *querycache.Client
	now      func() time.Time
}

// NewService creates a booking Service.
func NewService(logger *slog.Logger, bookings bookingRepo, cache *querycache.Client) *Service {
	return &Service{
		log:      logger.With("service", "booking"),
		bookings: bookings,
		cache:    cache,
		now:      time.Now,
	}
}

func roomsKey() querycache.Key {
	return querycache.NewKey("rooms", "active")
}

func roomPrefix(roomID uuid.UUID) querycache.Key {
	return querycache.NewKey("room", roomID.String()).Prefix()
}

func scheduleKey(roomID uuid.UUID, day time.Time) querycache.Key {
	return querycache.NewKey("room", roomID.String(), "schedule", day.Format(time.DateOnly))
}
