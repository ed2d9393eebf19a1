// Package booking reads rooms and reads/writes room bookings.
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/adapter/postgrest"
	"github.com/heartmarshall/learnhub/internal/domain"
)

const (
	roomsTable    = "rooms"
	bookingsTable = "room_bookings"
)

type db interface {
	Select(ctx context.Context, q *postgrest.Query, out any) error
	SelectOne(ctx context.Context, q *postgrest.Query, out any) error
	Insert(ctx context.Context, table string, rows any, out any) error
	Update(ctx context.Context, q *postgrest.Query, patch any, out any) error
}

// Repo provides room and booking persistence through the data API.
type Repo struct {
	db db
}

// New creates a new booking repository.
func New(client db) *Repo {
	return &Repo{db: client}
}

type roomRow struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
	Capacity int       `json:"capacity"`
	IsActive bool      `json:"is_active"`
}

type bookingRow struct {
	ID        uuid.UUID `json:"id,omitzero"`
	RoomID    uuid.UUID `json:"room_id"`
	UserID    uuid.UUID `json:"user_id"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Purpose   string    `json:"purpose"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

func (r bookingRow) toDomain() domain.RoomBooking {
	return domain.RoomBooking{
		ID:        r.ID,
		RoomID:    r.RoomID,
		UserID:    r.UserID,
		StartsAt:  r.StartsAt,
		EndsAt:    r.EndsAt,
		Purpose:   r.Purpose,
		Status:    domain.BookingStatus(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func bookings(rows []bookingRow) []domain.RoomBooking {
	out := make([]domain.RoomBooking, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}

// ListRooms returns bookable rooms by name.
func (r *Repo) ListRooms(ctx context.Context, includeInactive bool) ([]domain.Room, error) {
	q := postgrest.From(roomsTable).Select("*")
	if !includeInactive {
		q = q.Eq("is_active", true)
	}
	var rows []roomRow
	if err := r.db.Select(ctx, q.Order("name", true), &rows); err != nil {
		return nil, fmt.Errorf("booking.ListRooms: %w", err)
	}
	out := make([]domain.Room, 0, len(rows))
	for _, rw := range rows {
		out = append(out, domain.Room(rw))
	}
	return out, nil
}

// GetRoom returns one room.
func (r *Repo) GetRoom(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	var row roomRow
	if err := r.db.SelectOne(ctx, postgrest.From(roomsTable).Select("*").Eq("id", id), &row); err != nil {
		return nil, fmt.Errorf("booking.GetRoom: %w", err)
	}
	room := domain.Room(row)
	return &room, nil
}

// GetBooking returns one booking.
func (r *Repo) GetBooking(ctx context.Context, id uuid.UUID) (*domain.RoomBooking, error) {
	var row bookingRow
	if err := r.db.SelectOne(ctx, postgrest.From(bookingsTable).Select("*").Eq("id", id), &row); err != nil {
		return nil, fmt.Errorf("booking.GetBooking: %w", err)
	}
	b := row.toDomain()
	return &b, nil
}

// ListByUser returns the user's bookings ending at or after from, soonest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, from time.Time) ([]domain.RoomBooking, error) {
	q := postgrest.From(bookingsTable).Select("*").
		Eq("user_id", userID).Gte("ends_at", from).Order("starts_at", true)
	var rows []bookingRow
	if err := r.db.Select(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("booking.ListByUser: %w", err)
	}
	return bookings(rows), nil
}

// ListByRoomBetween returns the non-cancelled bookings of a room that
// intersect [start, end).
func (r *Repo) ListByRoomBetween(ctx context.Context, roomID uuid.UUID, start, end time.Time) ([]domain.RoomBooking, error) {
	q := postgrest.From(bookingsTable).Select("*").
		Eq("room_id", roomID).
		Neq("status", domain.BookingCancelled).
		Lt("starts_at", end).
		Gt("ends_at", start).
		Order("starts_at", true)
	var rows []bookingRow
	if err := r.db.Select(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("booking.ListByRoomBetween: %w", err)
	}
	return bookings(rows), nil
}

// AllFilter selects bookings for the admin booking list.
type AllFilter struct {
	Status domain.BookingStatus
	From   time.Time
	Limit  int
	Offset int
}

// ListAll returns bookings across all users, soonest first.
func (r *Repo) ListAll(ctx context.Context, f AllFilter) ([]domain.RoomBooking, error) {
	q := postgrest.From(bookingsTable).Select("*")
	if f.Status != "" {
		q = q.Eq("status", f.Status)
	}
	if !f.From.IsZero() {
		q = q.Gte("starts_at", f.From)
	}
	q = q.Order("starts_at", true).Limit(f.Limit).Offset(f.Offset)

	var rows []bookingRow
	if err := r.db.Select(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("booking.ListAll: %w", err)
	}
	return bookings(rows), nil
}

// Create inserts a booking.
func (r *Repo) Create(ctx context.Context, b domain.RoomBooking) (*domain.RoomBooking, error) {
	in := bookingRow{
		RoomID:   b.RoomID,
		UserID:   b.UserID,
		StartsAt: b.StartsAt.UTC(),
		EndsAt:   b.EndsAt.UTC(),
		Purpose:  b.Purpose,
		Status:   b.Status.String(),
	}
	var out []bookingRow
	if err := r.db.Insert(ctx, bookingsTable, in, &out); err != nil {
		return nil, fmt.Errorf("booking.Create: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("booking.Create: no row returned")
	}
	res := out[0].toDomain()
	return &res, nil
}

// UpdateStatus changes the status of a booking.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (*domain.RoomBooking, error) {
	var out []bookingRow
	patch := map[string]any{"status": status.String()}
	if err := r.db.Update(ctx, postgrest.From(bookingsTable).Eq("id", id), patch, &out); err != nil {
		return nil, fmt.Errorf("booking.UpdateStatus: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("booking.UpdateStatus: %w", domain.ErrNotFound)
	}
	res := out[0].toDomain()
	return &res, nil
}
