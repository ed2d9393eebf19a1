package reminder

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/learnhub/internal/domain"
)

// NoopDispatcher logs each reminder and delivers nothing.
type NoopDispatcher struct {
	log *slog.Logger
}

// NewNoopDispatcher creates a NoopDispatcher.
func NewNoopDispatcher(logger *slog.Logger) *NoopDispatcher {
	return &NoopDispatcher{log: logger.With("dispatcher", "noop")}
}

func (d *NoopDispatcher) Dispatch(ctx context.Context, rem domain.BookingReminder) error {
	d.log.InfoContext(ctx, "booking reminder not sent",
		slog.String("booking_id", rem.BookingID.String()),
		slog.String("email", rem.Email),
		slog.String("room", rem.RoomName),
		slog.Time("starts_at", rem.StartsAt),
		slog.String("link", rem.Link),
	)
	return ErrDispatchDisabled
}
