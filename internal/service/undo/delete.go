package undo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/dayflow-backend/internal/domain"
	"github.com/heartmarshall/dayflow-backend/internal/undoqueue"
	"github.com/heartmarshall/dayflow-backend/pkg/ctxutil"
)

// DeleteTask deletes a task of the authenticated user and registers its undo.
func (s *Service) DeleteTask(ctx context.Context, input DeleteInput, opts ...DeleteOption) (*DeleteResult, error) {
	ctx, span := s.startSpan(ctx, "undo.DeleteTask", domain.EntityKindTask, input.ID)
	defer span.End()

	userID, err := s.authorize(ctx, input)
	if err != nil {
		return nil, spanError(span, err)
	}

	task, err := s.tasks.GetByID(ctx, input.ID)
	if err != nil {
		return nil, spanError(span, fmt.Errorf("get task: %w", err))
	}
	if task.UserID != userID {
		return nil, spanError(span, fmt.Errorf("task %s: %w", input.ID, domain.ErrNotFound))
	}

	snap := domain.NewTaskSnapshot(*task)
	if err := s.tasks.Delete(ctx, task.ID); err != nil {
		return nil, spanError(span, s.deleteFailed(ctx, snap, err))
	}

	return s.register(ctx, userID, snap, opts)
}

// DeleteHabit deletes a habit and its whole log history. The snapshot is
// taken in the same transaction as the delete because logs cascade with
// their parent.
func (s *Service) DeleteHabit(ctx context.Context, input DeleteInput, opts ...DeleteOption) (*DeleteResult, error) {
	ctx, span := s.startSpan(ctx, "undo.DeleteHabit", domain.EntityKindHabit, input.ID)
	defer span.End()

	userID, err := s.authorize(ctx, input)
	if err != nil {
		return nil, spanError(span, err)
	}

	var snap domain.HabitSnapshot
	var deleteErr error

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		habit, getErr := s.habits.GetByID(txCtx, input.ID)
		if getErr != nil {
			return fmt.Errorf("get habit: %w", getErr)
		}
		if habit.UserID != userID {
			return fmt.Errorf("habit %s: %w", input.ID, domain.ErrNotFound)
		}

		logs, logsErr := s.habits.ListLogs(txCtx, habit.ID, time.Time{}, time.Time{})
		if logsErr != nil {
			return fmt.Errorf("list habit logs: %w", logsErr)
		}

		snap = domain.NewHabitSnapshot(*habit, logs)

		if err := s.habits.Delete(txCtx, habit.ID); err != nil {
			deleteErr = err
			return err
		}
		return nil
	})
	if err != nil {
		if deleteErr != nil {
			return nil, spanError(span, s.deleteFailed(ctx, snap, err))
		}
		return nil, spanError(span, err)
	}

	span.SetAttributes(attribute.Int("undo.habit_logs", len(snap.Logs)))

	return s.register(ctx, userID, snap, opts)
}

// DeleteEvent deletes a calendar event of the authenticated user and registers its undo.
func (s *Service) DeleteEvent(ctx context.Context, input DeleteInput, opts ...DeleteOption) (*DeleteResult, error) {
	ctx, span := s.startSpan(ctx, "undo.DeleteEvent", domain.EntityKindEvent, input.ID)
	defer span.End()

	userID, err := s.authorize(ctx, input)
	if err != nil {
		return nil, spanError(span, err)
	}

	event, err := s.events.GetByID(ctx, input.ID)
	if err != nil {
		return nil, spanError(span, fmt.Errorf("get event: %w", err))
	}
	if event.UserID != userID {
		return nil, spanError(span, fmt.Errorf("event %s: %w", input.ID, domain.ErrNotFound))
	}

	snap := domain.NewEventSnapshot(*event)
	if err := s.events.Delete(ctx, event.ID); err != nil {
		return nil, spanError(span, s.deleteFailed(ctx, snap, err))
	}

	return s.register(ctx, userID, snap, opts)
}

// DeleteTransaction deletes a finance transaction of the authenticated user and registers its undo.
func (s *Service) DeleteTransaction(ctx context.Context, input DeleteInput, opts ...DeleteOption) (*DeleteResult, error) {
	ctx, span := s.startSpan(ctx, "undo.DeleteTransaction", domain.EntityKindTransaction, input.ID)
	defer span.End()

	userID, err := s.authorize(ctx, input)
	if err != nil {
		return nil, spanError(span, err)
	}

	txn, err := s.txns.GetByID(ctx, input.ID)
	if err != nil {
		return nil, spanError(span, fmt.Errorf("get transaction: %w", err))
	}
	if txn.UserID != userID {
		return nil, spanError(span, fmt.Errorf("transaction %s: %w", input.ID, domain.ErrNotFound))
	}

	snap := domain.NewTransactionSnapshot(*txn)
	if err := s.txns.Delete(ctx, txn.ID); err != nil {
		return nil, spanError(span, s.deleteFailed(ctx, snap, err))
	}

	return s.register(ctx, userID, snap, opts)
}

func (s *Service) authorize(ctx context.Context, input DeleteInput) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}
	return userID, nil
}

func (s *Service) deleteFailed(ctx context.Context, snap domain.Snapshot, err error) error {
	s.log.ErrorContext(ctx, "delete failed",
		slog.String("kind", snap.Kind().String()),
		slog.String("entity_id", snap.EntityID().String()),
		slog.String("error", err.Error()),
	)
	return domain.NewWriteError("delete", snap.Kind(), err)
}

// register parks the snapshot in the queue and tells the user how to undo.
// The entity is already gone from the store at this point.
func (s *Service) register(ctx context.Context, userID uuid.UUID, snap domain.Snapshot, opts []DeleteOption) (*DeleteResult, error) {
	var o deleteOptions
	for _, opt := range opts {
		opt(&o)
	}

	key := Key(snap.Kind(), snap.EntityID())
	now := s.clock.Now()

	pending := Pending{Snapshot: snap, onUndone: o.onUndone}
	if err := s.queue.Add(key, snap.Kind().String(), pending, s.expired, s.cfg.Timeout); err != nil {
		return nil, fmt.Errorf("register undo: %w", err)
	}

	if o.onDeleted != nil {
		o.onDeleted(ctx, snap)
	}

	message := describe(snap) + " deleted"
	s.notices.Show(ctx, domain.Notice{
		ID:       uuid.New(),
		UserID:   userID,
		Level:    domain.NoticeLevelInfo,
		Message:  message,
		Duration: s.cfg.noticeDuration(),
		Action: &domain.NoticeAction{
			Label:   "Undo",
			UndoKey: key,
			Run: func(ctx context.Context) (bool, error) {
				res, err := s.Undo(ctx, key)
				if err != nil {
					return false, err
				}
				return res.Restored, nil
			},
		},
		ShownAt: now,
	})
	s.signals.Signal(ctx, snap.Kind(), domain.FeedbackDelete, true)

	s.log.InfoContext(ctx, "entity deleted",
		slog.String("user_id", userID.String()),
		slog.String("kind", snap.Kind().String()),
		slog.String("entity_id", snap.EntityID().String()),
		slog.String("undo_key", key),
	)

	return &DeleteResult{
		Key:       key,
		Kind:      snap.Kind(),
		Message:   message,
		ExpiresAt: now.Add(s.cfg.Timeout),
	}, nil
}

// expired runs on the queue's timer goroutine once an undo window closes.
// The delete already happened; this only records that it is now final.
func (s *Service) expired(e undoqueue.Entry[Pending]) {
	snap := e.Payload.Snapshot
	ctx := context.Background()

	s.log.InfoContext(ctx, "undo window closed",
		slog.String("undo_key", e.Key),
		slog.String("kind", e.Kind),
		slog.Duration("window", e.ExpiresAfter),
	)
	s.signals.Signal(ctx, snap.Kind(), domain.FeedbackExpire, true)
}

func (s *Service) startSpan(ctx context.Context, name string, kind domain.EntityKind, id uuid.UUID) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("undo.kind", kind.String()),
		attribute.String("undo.entity_id", id.String()),
	))
}

func spanError(span trace.Span, err error) error {
	if err == nil || errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
		return err
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
