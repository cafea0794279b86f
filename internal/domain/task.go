package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single to-do item.
type Task struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Notes       *string
	Priority    TaskPriority
	DueAt       *time.Time
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	c := t
	c.Notes = cloneString(t.Notes)
	c.DueAt = cloneTime(t.DueAt)
	c.CompletedAt = cloneTime(t.CompletedAt)
	return c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
