package undo

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dayflow-backend/internal/domain"
)

// DeleteResult describes a completed delete and how to undo it.
type DeleteResult struct {
	Key       string
	Kind      domain.EntityKind
	Message   string
	ExpiresAt time.Time
}

// UndoResult describes the outcome of an undo request. Restored is false when
// the window had already closed; that is not an error.
type UndoResult struct {
	Key        string
	Kind       domain.EntityKind
	RestoredID uuid.UUID
	Restored   bool
}

// PendingUndo is an undo the caller can still trigger.
type PendingUndo struct {
	Key       string
	Kind      domain.EntityKind
	EntityID  uuid.UUID
	Label     string
	ExpiresAt time.Time
}
