package domain

import (
	"time"

	"github.com/google/uuid"
)

// Room is a bookable study room.
type Room struct {
	ID       uuid.UUID
	Name     string
	Location string
	Capacity int
	IsActive bool
}

// RoomBooking is a reservation of a room for a time range.
type RoomBooking struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	UserID    uuid.UUID
	StartsAt  time.Time
	EndsAt    time.Time
	Purpose   string
	Status    BookingStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overlaps reports whether the booking intersects [start, end).
// Cancelled bookings never overlap.
func (b *RoomBooking) Overlaps(start, end time.Time) bool {
	if b.Status == BookingCancelled {
		return false
	}
	return b.StartsAt.Before(end) && start.Before(b.EndsAt)
}

// BookingReminder is a confirmed booking due for a reminder, joined with
// what a message needs to address the booker.
type BookingReminder struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
	Email     string
	FullName  string
	RoomName  string
	StartsAt  time.Time
	EndsAt    time.Time
	Link      string
}
