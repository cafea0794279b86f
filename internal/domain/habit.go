package domain

import (
	"time"

	"github.com/google/uuid"
)

// Habit is a recurring behaviour the user tracks.
type Habit struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Description     *string
	Frequency       HabitFrequency
	TargetPerPeriod int
	Color           *string
	ReminderTime    *string // "HH:MM" local time, nil when no reminder
	Archived        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Clone returns a deep copy of the habit.
func (h Habit) Clone() Habit {
	c := h
	c.Description = cloneString(h.Description)
	c.Color = cloneString(h.Color)
	c.ReminderTime = cloneString(h.ReminderTime)
	return c
}

// HabitLog records whether a habit was completed on a given day.
// Date is truncated to midnight UTC.
type HabitLog struct {
	ID        uuid.UUID
	HabitID   uuid.UUID
	Date      time.Time
	Completed bool
	Notes     *string
	CreatedAt time.Time
}

// Clone returns a deep copy of the log.
func (l HabitLog) Clone() HabitLog {
	c := l
	c.Notes = cloneString(l.Notes)
	return c
}

// LogDate truncates t to the calendar day it falls on, in UTC.
func LogDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
