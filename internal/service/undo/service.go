// Package undo wraps entity deletes with a time-boxed chance to restore them.
//
// A delete runs immediately against the durable store; the service keeps a
// snapshot of the removed entity in an undoqueue.Queue for the undo window.
// Undo pops the snapshot and recreates the entity under a new identity.
package undo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/dayflow-backend/internal/domain"
	"github.com/heartmarshall/dayflow-backend/internal/undoqueue"
)

type taskRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type habitRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error)
	Create(ctx context.Context, h *domain.Habit) (*domain.Habit, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListLogs(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]domain.HabitLog, error)
	CreateLog(ctx context.Context, habitID uuid.UUID, l *domain.HabitLog) (*domain.HabitLog, error)
}

type eventRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type transactionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type notifier interface {
	Show(ctx context.Context, n domain.Notice)
}

// feedback implementations must not block.
type feedback interface {
	Signal(ctx context.Context, kind domain.EntityKind, action domain.FeedbackAction, ok bool)
}

// Pending is the queue payload for one deleted entity.
type Pending struct {
	Snapshot domain.Snapshot
	onUndone func(ctx context.Context, restoredID uuid.UUID)
}

// Queue is the undo queue the service parks snapshots in.
type Queue = undoqueue.Queue[Pending]

// Config holds the undo window settings.
type Config struct {
	// Timeout is how long a delete stays undoable.
	Timeout time.Duration
	// NoticeDuration is how long notices are displayed. Zero means Timeout.
	NoticeDuration time.Duration
}

func (c Config) noticeDuration() time.Duration {
	if c.NoticeDuration > 0 {
		return c.NoticeDuration
	}
	return c.Timeout
}

// Service coordinates deletes and undos for tasks, habits, events and transactions.
type Service struct {
	queue   *Queue
	tasks   taskRepo
	habits  habitRepo
	events  eventRepo
	txns    transactionRepo
	tx      txManager
	notices notifier
	signals feedback
	cfg     Config
	clock   clockwork.Clock
	tracer  trace.Tracer
	log     *slog.Logger
}

// NewService creates a new undo service. A non-positive cfg.Timeout falls
// back to undoqueue.DefaultTimeout.
func NewService(
	log *slog.Logger,
	cfg Config,
	queue *Queue,
	tasks taskRepo,
	habits habitRepo,
	events eventRepo,
	txns transactionRepo,
	tx txManager,
	notices notifier,
	signals feedback,
	clock clockwork.Clock,
) *Service {
	if cfg.Timeout <= 0 {
		cfg.Timeout = undoqueue.DefaultTimeout
	}
	return &Service{
		queue:   queue,
		tasks:   tasks,
		habits:  habits,
		events:  events,
		txns:    txns,
		tx:      tx,
		notices: notices,
		signals: signals,
		cfg:     cfg,
		clock:   clock,
		tracer:  otel.Tracer("github.com/heartmarshall/dayflow-backend/internal/service/undo"),
		log:     log.With("service", "undo"),
	}
}

// describe renders the user-facing name of a snapshot's entity.
func describe(snap domain.Snapshot) string {
	switch s := snap.(type) {
	case domain.TaskSnapshot:
		return fmt.Sprintf("Task %q", s.Task.Title)
	case domain.HabitSnapshot:
		return fmt.Sprintf("Habit %q", s.Habit.Name)
	case domain.EventSnapshot:
		return fmt.Sprintf("Event %q", s.Event.Title)
	case domain.TransactionSnapshot:
		t := s.Transaction
		label := "Income"
		if t.Type == domain.TransactionTypeExpense {
			label = "Expense"
		}
		return fmt.Sprintf("%s of %s %s", label, t.Amount.StringFixed(2), t.Currency)
	default:
		return "Item"
	}
}
