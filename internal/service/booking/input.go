package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/domain"
)

// CreateBookingInput holds the parameters for reserving a room.
type CreateBookingInput struct {
	RoomID   uuid.UUID `json:"room_id" validate:"required"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
	EndsAt   time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
	Purpose  string    `json:"purpose" validate:"max=200"`
}

// ListAllInput filters the admin booking list.
type ListAllInput struct {
	Status domain.BookingStatus `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
	From   time.Time            `json:"from"`
	Limit  int                  `json:"limit" validate:"gte=0,lte=200"`
	Offset int                  `json:"offset" validate:"gte=0"`
}
