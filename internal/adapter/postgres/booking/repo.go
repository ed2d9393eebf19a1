// Package booking queries room bookings directly in PostgreSQL with the
// service credential. It is used by the reminder function only.
package booking

import (
	"context"
	"net/url"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/learnhub/internal/adapter/postgres"
	"github.com/heartmarshall/learnhub/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides reminder queries backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new booking repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListUpcomingReminders returns confirmed bookings starting in [from, to),
// soonest first, joined with the booker and the room. Link points to the
// booking page under siteURL.
func (r *Repo) ListUpcomingReminders(ctx context.Context, from, to time.Time, limit uint64, siteURL string) ([]domain.BookingReminder, error) {
	query, args, err := psql.
		Select(
			"b.id", "b.user_id", "p.email", "COALESCE(p.full_name, '')",
			"r.name", "b.starts_at", "b.ends_at",
		).
		From("room_bookings b").
		Join("profiles p ON p.id = b.user_id").
		Join("rooms r ON r.id = b.room_id").
		Where(sq.Eq{"b.status": domain.BookingConfirmed.String()}).
		Where(sq.GtOrEq{"b.starts_at": from}).
		Where(sq.Lt{"b.starts_at": to}).
		OrderBy("b.starts_at ASC", "b.id ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "booking.ListUpcomingReminders: build")
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "booking.ListUpcomingReminders")
	}

	reminders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BookingReminder, error) {
		var rem domain.BookingReminder
		err := row.Scan(&rem.BookingID, &rem.UserID, &rem.Email, &rem.FullName, &rem.RoomName, &rem.StartsAt, &rem.EndsAt)
		rem.StartsAt, rem.EndsAt = rem.StartsAt.UTC(), rem.EndsAt.UTC()
		rem.Link = bookingLink(siteURL, rem)
		return rem, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "booking.ListUpcomingReminders: scan")
	}
	return reminders, nil
}

func bookingLink(siteURL string, rem domain.BookingReminder) string {
	link, err := url.JoinPath(siteURL, "bookings", rem.BookingID.String())
	if err != nil {
		return siteURL
	}
	return link
}
