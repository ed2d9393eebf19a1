// Package notification lists and updates the signed-in user's notifications.
// Notifications are created by backend triggers; members only read, mark read
// and delete them.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/querycache"
	"github.com/heartmarshall/learnhub/pkg/ctxutil"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type notificationRepo interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID, at time.Time) error
	MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Service provides notification operations.
type Service struct {
	log           *slog.Logger
	notifications notificationRepo
	cache         *querycache.Client
	now           func() time.Time
}

// NewService creates a notification Service.
func NewService(logger *slog.Logger, notifications notificationRepo, cache *querycache.Client) *Service {
	return &Service{
		log:           logger.With("service", "notification"),
		notifications: notifications,
		cache:         cache,
		now:           time.Now,
	}
}

func scope(userID uuid.UUID) querycache.Key {
	return querycache.ForUser(userID, "notifications").Prefix()
}

// List returns the caller's notifications, newest first.
func (s *Service) List(ctx context.Context, unreadOnly bool, limit int) ([]domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	limit = min(limit, MaxLimit)

	res, err := querycache.Get(ctx, s.cache, querycache.Request[[]domain.Notification]{
		Key: querycache.ForUser(userID, "notifications", "list", strconv.FormatBool(unreadOnly), strconv.Itoa(limit)),
		Fetch: func(ctx context.Context) ([]domain.Notification, error) {
			return s.notifications.List(ctx, userID, unreadOnly, limit)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("notification.List: %w", err)
	}
	return res.Value, nil
}

// UnreadCount returns how many of the caller's notifications are unread.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	res, err := querycache.Get(ctx, s.cache, querycache.Request[int]{
		Key: querycache.ForUser(userID, "notifications", "unread"),
		Fetch: func(ctx context.Context) (int, error) {
			return s.notifications.CountUnread(ctx, userID)
		},
	})
	if err != nil {
		return 0, fmt.Errorf("notification.UnreadCount: %w", err)
	}
	return res.Value, nil
}

// MarkRead marks one notification read. Marking an already read
// notification keeps its original read time.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("notification_id", "required")
	}
	if err := s.notifications.MarkRead(ctx, userID, id, s.now()); err != nil {
		return fmt.Errorf("notification.MarkRead: %w", err)
	}
	s.cache.InvalidatePrefix(scope(userID))
	return nil
}

// MarkAllRead marks every unread notification of the caller read.
func (s *Service) MarkAllRead(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.notifications.MarkAllRead(ctx, userID, s.now()); err != nil {
		return fmt.Errorf("notification.MarkAllRead: %w", err)
	}
	s.cache.InvalidatePrefix(scope(userID))
	return nil
}

// Delete removes one of the caller's notifications.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("notification_id", "required")
	}
	if err := s.notifications.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("notification.Delete: %w", err)
	}
	s.cache.InvalidatePrefix(scope(userID))
	s.log.DebugContext(ctx, "notification deleted",
		slog.String("user_id", userID.String()),
		slog.String("notification_id", id.String()),
	)
	return nil
}
