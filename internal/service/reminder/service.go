// Package reminder finds confirmed bookings that start soon and hands them
// to a Dispatcher. Selecting bookings and delivering messages are separate
// so a real delivery backend can replace NoopDispatcher without touching
// the query.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/learnhub/internal/domain"
)

// ErrDispatchDisabled is returned by dispatchers that deliver nothing.
var ErrDispatchDisabled = errors.New("reminder dispatch disabled")

// Dispatcher delivers one booking reminder.
type Dispatcher interface {
	Dispatch(ctx context.Context, rem domain.BookingReminder) error
}

type reminderRepo interface {
	ListUpcomingReminders(ctx context.Context, from, to time.Time, limit uint64, siteURL string) ([]domain.BookingReminder, error)
}

type txManager interface {
	RunReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config selects which bookings get reminders.
type Config struct {
	SiteURL string
	Window  time.Duration
	Limit   uint64
}

// Result summarizes one run.
type Result struct {
	// Count is the number of bookings due for a reminder.
	Count   int
	Sent    int
	Skipped int
	Failed  int
	Message string
}

// Service runs the reminder job.
type Service struct {
	log        *slog.Logger
	tx         txManager
	bookings   reminderRepo
	dispatcher Dispatcher
	cfg        Config
	now        func() time.Time
}

// NewService creates a reminder Service.
func NewService(logger *slog.Logger, tx txManager, bookings reminderRepo, dispatcher Dispatcher, cfg Config) *Service {
	if cfg.Window <= 0 {
		cfg.Window = 24 * time.Hour
	}
	return &Service{
		log:        logger.With("service", "reminder"),
		tx:         tx,
		bookings:   bookings,
		dispatcher: dispatcher,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Run selects confirmed bookings starting within the window and dispatches a
// reminder for each. A failed delivery is counted and does not stop the run.
func (s *Service) Run(ctx context.Context) (Result, error) {
	from := s.now().UTC()
	to := from.Add(s.cfg.Window)

	var due []domain.BookingReminder
	err := s.tx.RunReadOnly(ctx, func(ctx context.Context) error {
		var err error
		due, err = s.bookings.ListUpcomingReminders(ctx, from, to, s.cfg.Limit, s.cfg.SiteURL)
		return err
	})
	if err != nil {
		return Result{}, fmt.Errorf("reminder.Run: %w", err)
	}

	res := Result{Count: len(due)}
	for _, rem := range due {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("reminder.Run: %w", err)
		}
		switch err := s.dispatcher.Dispatch(ctx, rem); {
		case err == nil:
			res.Sent++
		case errors.Is(err, ErrDispatchDisabled):
			res.Skipped++
		default:
			res.Failed++
			s.log.ErrorContext(ctx, "reminder dispatch failed",
				slog.String("booking_id", rem.BookingID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
	res.Message = summary(res)

	s.log.InfoContext(ctx, "reminder run finished",
		slog.Time("from", from),
		slog.Time("to", to),
		slog.Int("count", res.Count),
		slog.Int("sent", res.Sent),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", res.Failed),
	)
	return res, nil
}

func summary(r Result) string {
	switch {
	case r.Count == 0:
		return "No upcoming bookings need reminders"
	case r.Skipped == r.Count:
		return fmt.Sprintf("Found %d upcoming bookings; reminder delivery is disabled", r.Count)
	case r.Failed > 0:
		return fmt.Sprintf("Sent %d of %d reminders; %d failed", r.Sent, r.Count, r.Failed)
	default:
		return fmt.Sprintf("Sent %d of %d reminders", r.Sent, r.Count)
	}
}
