package undo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/heartmarshall/dayflow-backend/internal/domain"
	"github.com/heartmarshall/dayflow-backend/pkg/ctxutil"
)

// Undo restores the entity parked under key. A key whose window already
// closed yields Restored=false and no error. A key owned by another user
// gets the same answer and stays pending for its owner.
func (s *Service) Undo(ctx context.Context, key string) (*UndoResult, error) {
	kind, entityID, err := ParseKey(key)
	if err != nil {
		return nil, err
	}

	ctx, span := s.startSpan(ctx, "undo.Undo", kind, entityID)
	defer span.End()

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entry, ok := s.queue.Get(key)
	if !ok || entry.Payload.Snapshot.OwnerID() != userID {
		span.SetAttributes(attribute.Bool("undo.restored", false))
		return &UndoResult{Key: key, Kind: kind}, nil
	}

	pending, ok := s.queue.Undo(key)
	if !ok {
		// Expired between the ownership check and the pop.
		span.SetAttributes(attribute.Bool("undo.restored", false))
		return &UndoResult{Key: key, Kind: kind}, nil
	}

	snap := pending.Snapshot
	restoredID, err := s.recreate(ctx, snap)
	if err != nil {
		s.log.ErrorContext(ctx, "undo failed",
			slog.String("user_id", userID.String()),
			slog.String("undo_key", key),
			slog.String("error", err.Error()),
		)
		s.notices.Show(ctx, domain.Notice{
			ID:       uuid.New(),
			UserID:   userID,
			Level:    domain.NoticeLevelError,
			Message:  "Could not restore " + kind.String() + ", please try again later",
			Duration: s.cfg.noticeDuration(),
			ShownAt:  s.clock.Now(),
		})
		s.signals.Signal(ctx, kind, domain.FeedbackUndo, false)
		return nil, spanError(span, domain.NewWriteError("recreate", kind, err))
	}

	if pending.onUndone != nil {
		pending.onUndone(ctx, restoredID)
	}

	s.notices.Show(ctx, domain.Notice{
		ID:       uuid.New(),
		UserID:   userID,
		Level:    domain.NoticeLevelInfo,
		Message:  describe(snap) + " restored",
		Duration: s.cfg.noticeDuration(),
		ShownAt:  s.clock.Now(),
	})
	s.signals.Signal(ctx, kind, domain.FeedbackUndo, true)

	s.log.InfoContext(ctx, "entity restored",
		slog.String("user_id", userID.String()),
		slog.String("undo_key", key),
		slog.String("restored_id", restoredID.String()),
	)
	span.SetAttributes(attribute.Bool("undo.restored", true))

	return &UndoResult{Key: key, Kind: kind, RestoredID: restoredID, Restored: true}, nil
}

// recreate replays a snapshot against the durable store under a fresh
// identity and returns that identity.
func (s *Service) recreate(ctx context.Context, snap domain.Snapshot) (uuid.UUID, error) {
	switch v := snap.(type) {
	case domain.TaskSnapshot:
		t := v.Task.Clone()
		t.ID = uuid.New()
		created, err := s.tasks.Create(ctx, &t)
		if err != nil {
			return uuid.Nil, fmt.Errorf("create task: %w", err)
		}
		return created.ID, nil

	case domain.HabitSnapshot:
		return s.recreateHabit(ctx, v)

	case domain.EventSnapshot:
		e := v.Event.Clone()
		e.ID = uuid.New()
		created, err := s.events.Create(ctx, &e)
		if err != nil {
			return uuid.Nil, fmt.Errorf("create event: %w", err)
		}
		return created.ID, nil

	case domain.TransactionSnapshot:
		t := v.Transaction.Clone()
		t.ID = uuid.New()
		created, err := s.txns.Create(ctx, &t)
		if err != nil {
			return uuid.Nil, fmt.Errorf("create transaction: %w", err)
		}
		return created.ID, nil

	default:
		return uuid.Nil, fmt.Errorf("unsupported snapshot %T", snap)
	}
}

// recreateHabit inserts the parent first, then every log in chronological
// order against the new parent, all in one transaction.
func (s *Service) recreateHabit(ctx context.Context, snap domain.HabitSnapshot) (uuid.UUID, error) {
	var restoredID uuid.UUID

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		h := snap.Habit.Clone()
		h.ID = uuid.New()

		created, err := s.habits.Create(txCtx, &h)
		if err != nil {
			return fmt.Errorf("create habit: %w", err)
		}

		for i, l := range snap.Logs {
			hl := l.Clone()
			hl.ID = uuid.New()
			hl.HabitID = created.ID
			if _, err := s.habits.CreateLog(txCtx, created.ID, &hl); err != nil {
				return fmt.Errorf("create habit log %d: %w", i, err)
			}
		}

		restoredID = created.ID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return restoredID, nil
}

// ListPending returns the caller's undos that are still open, ordered by key.
func (s *Service) ListPending(ctx context.Context) ([]PendingUndo, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var out []PendingUndo
	for _, key := range s.queue.Keys() {
		entry, ok := s.queue.Get(key)
		if !ok {
			continue
		}
		snap := entry.Payload.Snapshot
		if snap.OwnerID() != userID {
			continue
		}
		out = append(out, PendingUndo{
			Key:       key,
			Kind:      snap.Kind(),
			EntityID:  snap.EntityID(),
			Label:     describe(snap),
			ExpiresAt: entry.ExpiresAt(),
		})
	}
	return out, nil
}
