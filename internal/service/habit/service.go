// Package habit tracks per-day habit completion with optimistic toggles.
package habit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/dayflow-backend/internal/domain"
	"github.com/heartmarshall/dayflow-backend/internal/optimistic"
)

type habitRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error)
	GetLog(ctx context.Context, habitID uuid.UUID, date time.Time) (*domain.HabitLog, error)
	UpsertLog(ctx context.Context, l *domain.HabitLog) (*domain.HabitLog, error)
}

type feedback interface {
	Signal(ctx context.Context, kind domain.EntityKind, action domain.FeedbackAction, ok bool)
}

// stateKey identifies one habit on one calendar day.
type stateKey struct {
	HabitID uuid.UUID
	Date    time.Time
}

// Service serves completion state from an in-memory cache that toggles
// update before the durable write lands.
type Service struct {
	habits  habitRepo
	signals feedback
	state   *lru.Cache[stateKey, bool]
	guard   *optimistic.Guard[stateKey]
	clock   clockwork.Clock
	log     *slog.Logger

	// mu orders cache fills from store reads against toggles. epoch counts
	// every optimistic write to the cache.
	mu    sync.Mutex
	epoch uint64

	background sync.WaitGroup
}

// NewService creates a new habit service caching up to cacheSize day states.
func NewService(log *slog.Logger, habits habitRepo, signals feedback, clock clockwork.Clock, cacheSize int) (*Service, error) {
	state, err := lru.New[stateKey, bool](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create completion cache: %w", err)
	}
	return &Service{
		habits:  habits,
		signals: signals,
		state:   state,
		guard:   optimistic.NewGuard[stateKey](),
		clock:   clock,
		log:     log.With("service", "habit"),
	}, nil
}

// Evict drops every cached day state of a habit.
func (s *Service) Evict(habitID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	for _, k := range s.state.Keys() {
		if k.HabitID == habitID {
			s.state.Remove(k)
		}
	}
}

// Syncing reports whether any completion write is still in flight.
func (s *Service) Syncing() bool {
	return s.guard.AnyInFlight()
}

// Wait blocks until every toggle started with StartToggleCompletion has
// settled.
func (s *Service) Wait() {
	s.background.Wait()
}
