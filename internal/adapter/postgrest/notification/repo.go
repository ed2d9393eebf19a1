// Package notification reads the user's notifications and updates their read state.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/adapter/postgrest"
	"github.com/heartmarshall/learnhub/internal/domain"
)

const table = "notifications"

type db interface {
	Select(ctx context.Context, q *postgrest.Query, out any) error
	Count(ctx context.Context, q *postgrest.Query) (int, error)
	Update(ctx context.Context, q *postgrest.Query, patch any, out any) error
	Delete(ctx context.Context, q *postgrest.Query) error
}

// Repo provides notification persistence through the data API.
type Repo struct {
	db db
}

// New creates a new notification repository.
func New(client db) *Repo {
	return &Repo{db: client}
}

type row struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   *string        `json:"message"`
	Data      map[string]any `json:"data"`
	ReadAt    *time.Time     `json:"read_at"`
	CreatedAt time.Time      `json:"created_at"`
}

func (r row) toDomain() domain.Notification {
	n := domain.Notification{
		ID:        r.ID,
		UserID:    r.UserID,
		Type:      domain.NotificationType(r.Type),
		Title:     r.Title,
		Message:   r.Message,
		Data:      r.Data,
		ReadAt:    r.ReadAt,
		CreatedAt: r.CreatedAt,
	}
	if n.Data == nil {
		n.Data = map[string]any{}
	}
	return n
}

// List returns the user's notifications, newest first. With unreadOnly only
// notifications without read_at are returned.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]domain.Notification, error) {
	q := postgrest.From(table).Select("*").Eq("user_id", userID)
	if unreadOnly {
		q = q.Is("read_at", "null")
	}
	q = q.Order("created_at", false).Limit(limit)

	var rows []row
	if err := r.db.Select(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("notification.List: %w", err)
	}
	out := make([]domain.Notification, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// CountUnread returns the number of unread notifications of the user.
func (r *Repo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := r.db.Count(ctx, postgrest.From(table).Eq("user_id", userID).Is("read_at", "null"))
	if err != nil {
		return 0, fmt.Errorf("notification.CountUnread: %w", err)
	}
	return n, nil
}

// MarkRead sets read_at on one unread notification. Already read
// notifications keep their first read time.
func (r *Repo) MarkRead(ctx context.Context, userID, id uuid.UUID, at time.Time) error {
	q := postgrest.From(table).Eq("id", id).Eq("user_id", userID).Is("read_at", "null")
	if err := r.db.Update(ctx, q, map[string]any{"read_at": at.UTC()}, nil); err != nil {
		return fmt.Errorf("notification.MarkRead: %w", err)
	}
	return nil
}

// MarkAllRead sets read_at on every unread notification of the user.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) error {
	q := postgrest.From(table).Eq("user_id", userID).Is("read_at", "null")
	if err := r.db.Update(ctx, q, map[string]any{"read_at": at.UTC()}, nil); err != nil {
		return fmt.Errorf("notification.MarkAllRead: %w", err)
	}
	return nil
}

// Delete removes one notification of the user.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := r.db.Delete(ctx, postgrest.From(table).Eq("id", id).Eq("user_id", userID)); err != nil {
		return fmt.Errorf("notification.Delete: %w", err)
	}
	return nil
}
