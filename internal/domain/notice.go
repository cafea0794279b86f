package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// NoticeLevel distinguishes confirmations from failure alerts.
type NoticeLevel string

const (
	NoticeLevelInfo  NoticeLevel = "INFO"
	NoticeLevelError NoticeLevel = "ERROR"
)

func (l NoticeLevel) String() string { return string(l) }

// Notice is a dismissible, auto-expiring message for one user.
type Notice struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Level    NoticeLevel
	Message  string
	Duration time.Duration
	Action   *NoticeAction
	ShownAt  time.Time
}

// ExpiresAt is the moment the notice stops being displayed.
func (n Notice) ExpiresAt() time.Time {
	return n.ShownAt.Add(n.Duration)
}

// NoticeAction is the single affordance a notice can carry.
// UndoKey identifies the pending undo the action restores. Run reports
// whether it restored anything.
type NoticeAction struct {
	Label   string
	UndoKey string
	Run     func(ctx context.Context) (bool, error)
}

// FeedbackAction names what a feedback signal reports on.
type FeedbackAction string

const (
	FeedbackDelete FeedbackAction = "delete"
	FeedbackUndo   FeedbackAction = "undo"
	FeedbackExpire FeedbackAction = "expire"
	FeedbackToggle FeedbackAction = "toggle"
)

func (a FeedbackAction) String() string { return string(a) }
