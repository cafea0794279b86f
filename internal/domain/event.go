package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a calendar entry.
type Event struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description *string
	Location    *string
	StartsAt    time.Time
	EndsAt      time.Time
	AllDay      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Clone returns a deep copy of the event.
func (e Event) Clone() Event {
	c := e
	c.Description = cloneString(e.Description)
	c.Location = cloneString(e.Location)
	return c
}
