package undo

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/dayflow-backend/internal/domain"
)

// DeleteInput identifies the entity to delete.
type DeleteInput struct {
	ID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

// DeleteOption customises a single delete.
type DeleteOption func(*deleteOptions)

type deleteOptions struct {
	onDeleted func(ctx context.Context, snap domain.Snapshot)
	onUndone  func(ctx context.Context, restoredID uuid.UUID)
}

// WithOnDeleted runs fn once the entity is deleted and its undo registered.
func WithOnDeleted(fn func(ctx context.Context, snap domain.Snapshot)) DeleteOption {
	return func(o *deleteOptions) { o.onDeleted = fn }
}

// WithOnUndone runs fn after a successful undo with the recreated entity's ID.
func WithOnUndone(fn func(ctx context.Context, restoredID uuid.UUID)) DeleteOption {
	return func(o *deleteOptions) { o.onUndone = fn }
}
