package habit

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dayflow-backend/internal/domain"
)

// CompletionInput identifies a habit on a calendar day.
type CompletionInput struct {
	HabitID uuid.UUID
	Date    time.Time
}

// Validate checks all fields and collects all errors.
// Dates later than today are rejected.
func (i CompletionInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	if i.HabitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "habit_id", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	} else if domain.LogDate(i.Date).After(domain.LogDate(now)) {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must not be in the future"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CompletionState is the completion of a habit on a day as the user sees it.
type CompletionState struct {
	HabitID   uuid.UUID
	Date      time.Time
	Completed bool
	Syncing   bool
}
