package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/learnhub/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedProfile creates an active member profile.
func SeedProfile(t *testing.T, pool *pgxpool.Pool) domain.Profile {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Profile{
		ID:        uuid.New(),
		Role:      domain.UserRoleMember,
		IsActive:  true,
		FullName:  "Test Member " + suffix,
		Email:     "member-" + suffix + "@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO profiles (id, role, is_active, full_name, email, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Role.String(), p.IsActive, p.FullName, p.Email, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}
	return p
}

// SeedRoom creates an active room.
func SeedRoom(t *testing.T, pool *pgxpool.Pool) domain.Room {
	t.Helper()

	room := domain.Room{
		ID:       uuid.New(),
		Name:     "Room " + uniqueSuffix(),
		Location: "2F",
		Capacity: 4,
		IsActive: true,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO rooms (id, name, location, capacity, is_active) VALUES ($1, $2, $3, $4, $5)`,
		room.ID, room.Name, room.Location, room.Capacity, room.IsActive,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRoom: %v", err)
	}
	return room
}

// SeedBooking creates a one-hour booking of room by user starting at startsAt.
func SeedBooking(t *testing.T, pool *pgxpool.Pool, roomID, userID uuid.UUID, startsAt time.Time, status domain.BookingStatus) domain.RoomBooking {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	b := domain.RoomBooking{
		ID:        uuid.New(),
		RoomID:    roomID,
		UserID:    userID,
		StartsAt:  startsAt.UTC(),
		EndsAt:    startsAt.UTC().Add(time.Hour),
		Purpose:   "study group",
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO room_bookings (id, room_id, user_id, starts_at, ends_at, purpose, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID, b.RoomID, b.UserID, b.StartsAt, b.EndsAt, b.Purpose, b.Status.String(), b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBooking: %v", err)
	}
	return b
}
