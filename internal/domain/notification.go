package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is created by backend triggers and owned by UserID.
// Only ReadAt changes after creation.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      NotificationType
	Title     string
	Message   *string
	Data      map[string]any
	ReadAt    *time.Time
	CreatedAt time.Time
}

// IsRead reports whether the notification was marked read.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

// MarkRead sets ReadAt once; later calls keep the first timestamp.
func (n *Notification) MarkRead(at time.Time) {
	if n.ReadAt != nil {
		return
	}
	t := at.UTC()
	n.ReadAt = &t
}
