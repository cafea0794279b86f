package habit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dayflow-backend/internal/domain"
	"github.com/heartmarshall/dayflow-backend/internal/optimistic"
	"github.com/heartmarshall/dayflow-backend/pkg/ctxutil"
)

// CompletionStatus returns whether the habit is marked done on the given day.
func (s *Service) CompletionStatus(ctx context.Context, input CompletionInput) (*CompletionState, error) {
	key, err := s.authorize(ctx, input)
	if err != nil {
		return nil, err
	}

	done, err := s.current(ctx, key)
	if err != nil {
		return nil, err
	}

	return &CompletionState{
		HabitID:   key.HabitID,
		Date:      key.Date,
		Completed: done,
		Syncing:   s.guard.InFlight(key),
	}, nil
}

// ToggleCompletion flips the day's completion. The new state is visible to
// CompletionStatus before the write finishes and reverted if it fails.
// A toggle while another one for the same day is pending fails with
// domain.ErrConflict.
func (s *Service) ToggleCompletion(ctx context.Context, input CompletionInput) (*CompletionState, error) {
	key, err := s.authorize(ctx, input)
	if err != nil {
		return nil, err
	}

	var t toggle
	err = s.guard.Run(ctx, key, s.prepareToggle(key, &t))
	if err = s.toggleError(ctx, key, &t, err); err != nil {
		return nil, err
	}

	s.signals.Signal(ctx, domain.EntityKindHabit, domain.FeedbackToggle, true)

	return &CompletionState{HabitID: key.HabitID, Date: key.Date, Completed: t.next}, nil
}

// StartToggleCompletion flips the day's completion and returns as soon as
// the new state is cached. The write finishes in the background, outliving
// ctx; a failure rolls the cached state back.
func (s *Service) StartToggleCompletion(ctx context.Context, input CompletionInput) (*CompletionState, error) {
	key, err := s.authorize(ctx, input)
	if err != nil {
		return nil, err
	}

	bg := context.WithoutCancel(ctx)
	var t toggle
	done, err := s.guard.Start(bg, key, s.prepareToggle(key, &t))
	if err = s.toggleError(ctx, key, &t, err); err != nil {
		return nil, err
	}

	s.background.Add(1)
	go func() {
		defer s.background.Done()
		ok := <-done == nil
		s.signals.Signal(bg, domain.EntityKindHabit, domain.FeedbackToggle, ok)
	}()

	return &CompletionState{HabitID: key.HabitID, Date: key.Date, Completed: t.next, Syncing: true}, nil
}

// toggle carries one toggle's states between its steps.
type toggle struct {
	prev, next bool
	applied    bool
}

// prepareToggle reads the current state with the day's key held, so a
// concurrent toggle can neither change it nor be overwritten by it.
func (s *Service) prepareToggle(key stateKey, t *toggle) optimistic.PrepareFunc {
	return func(ctx context.Context) (optimistic.Steps, error) {
		prev, err := s.current(ctx, key)
		if err != nil {
			return optimistic.Steps{}, err
		}
		t.prev, t.next = prev, !prev

		return optimistic.Steps{
			Apply: func() {
				s.cacheState(key, t.next)
				t.applied = true
			},
			Write: func(ctx context.Context) error {
				_, err := s.habits.UpsertLog(ctx, &domain.HabitLog{
					ID:        uuid.New(),
					HabitID:   key.HabitID,
					Date:      key.Date,
					Completed: t.next,
					CreatedAt: s.clock.Now(),
				})
				return err
			},
			Rollback: func(werr error) {
				s.cacheState(key, t.prev)
				s.log.ErrorContext(ctx, "completion toggle rolled back",
					slog.String("habit_id", key.HabitID.String()),
					slog.String("date", key.Date.Format("2006-01-02")),
					slog.String("error", werr.Error()),
				)
			},
		}, nil
	}
}

// toggleError classifies the outcome of a guarded toggle. Errors before the
// apply step are read errors and pass through unchanged.
func (s *Service) toggleError(ctx context.Context, key stateKey, t *toggle, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, optimistic.ErrInFlight):
		return fmt.Errorf("habit %s: %w: %w", key.HabitID, domain.ErrConflict, err)
	case !t.applied:
		return err
	}
	s.signals.Signal(ctx, domain.EntityKindHabit, domain.FeedbackToggle, false)
	return domain.NewWriteError("toggle", domain.EntityKindHabit, err)
}

func (s *Service) authorize(ctx context.Context, input CompletionInput) (stateKey, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return stateKey{}, domain.ErrUnauthorized
	}
	if err := input.Validate(s.clock.Now()); err != nil {
		return stateKey{}, err
	}

	h, err := s.habits.GetByID(ctx, input.HabitID)
	if err != nil {
		return stateKey{}, fmt.Errorf("get habit: %w", err)
	}
	if h.UserID != userID {
		return stateKey{}, fmt.Errorf("habit %s: %w", input.HabitID, domain.ErrNotFound)
	}

	return stateKey{HabitID: h.ID, Date: domain.LogDate(input.Date)}, nil
}

// cacheState records an optimistic or rolled-back value.
func (s *Service) cacheState(key stateKey, done bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.state.Add(key, done)
}

// current reads the cached state, falling back to the store. A missing log
// means not completed. A store read is cached only if no toggle touched the
// cache while it ran and none is pending for the key.
func (s *Service) current(ctx context.Context, key stateKey) (bool, error) {
	if done, ok := s.state.Get(key); ok {
		return done, nil
	}

	s.mu.Lock()
	epoch := s.epoch
	s.mu.Unlock()

	var done bool
	l, err := s.habits.GetLog(ctx, key.HabitID, key.Date)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return false, fmt.Errorf("get habit log: %w", err)
	default:
		done = l.Completed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch || s.guard.InFlight(key) {
		if cached, ok := s.state.Peek(key); ok {
			return cached, nil
		}
		return done, nil
	}
	if found, _ := s.state.ContainsOrAdd(key, done); found {
		if cached, ok := s.state.Peek(key); ok {
			return cached, nil
		}
	}
	return done, nil
}
