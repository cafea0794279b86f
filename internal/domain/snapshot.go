package domain

import (
	"slices"

	"github.com/google/uuid"
)

// Snapshot is an immutable copy of a deleted entity, sufficient to recreate it.
// The set of implementations is closed: TaskSnapshot, HabitSnapshot,
// EventSnapshot and TransactionSnapshot.
type Snapshot interface {
	Kind() EntityKind
	EntityID() uuid.UUID
	OwnerID() uuid.UUID
	isSnapshot()
}

// TaskSnapshot captures a deleted task.
type TaskSnapshot struct {
	Task Task
}

// NewTaskSnapshot deep-copies t into a snapshot.
func NewTaskSnapshot(t Task) TaskSnapshot {
	return TaskSnapshot{Task: t.Clone()}
}

func (s TaskSnapshot) Kind() EntityKind    { return EntityKindTask }
func (s TaskSnapshot) EntityID() uuid.UUID { return s.Task.ID }
func (s TaskSnapshot) OwnerID() uuid.UUID  { return s.Task.UserID }
func (TaskSnapshot) isSnapshot()           {}

// HabitSnapshot captures a deleted habit together with its full log history.
// Logs are kept in chronological order.
type HabitSnapshot struct {
	Habit Habit
	Logs  []HabitLog
}

// NewHabitSnapshot deep-copies h and logs into a snapshot, ordering logs by date.
// Logs sharing a date keep their relative order.
func NewHabitSnapshot(h Habit, logs []HabitLog) HabitSnapshot {
	copied := make([]HabitLog, len(logs))
	for i, l := range logs {
		copied[i] = l.Clone()
	}
	slices.SortStableFunc(copied, func(a, b HabitLog) int {
		return a.Date.Compare(b.Date)
	})
	return HabitSnapshot{Habit: h.Clone(), Logs: copied}
}

func (s HabitSnapshot) Kind() EntityKind    { return EntityKindHabit }
func (s HabitSnapshot) EntityID() uuid.UUID { return s.Habit.ID }
func (s HabitSnapshot) OwnerID() uuid.UUID  { return s.Habit.UserID }
func (HabitSnapshot) isSnapshot()           {}

// EventSnapshot captures a deleted calendar event.
type EventSnapshot struct {
	Event Event
}

// NewEventSnapshot deep-copies e into a snapshot.
func NewEventSnapshot(e Event) EventSnapshot {
	return EventSnapshot{Event: e.Clone()}
}

func (s EventSnapshot) Kind() EntityKind    { return EntityKindEvent }
func (s EventSnapshot) EntityID() uuid.UUID { return s.Event.ID }
func (s EventSnapshot) OwnerID() uuid.UUID  { return s.Event.UserID }
func (EventSnapshot) isSnapshot()           {}

// TransactionSnapshot captures a deleted finance transaction.
type TransactionSnapshot struct {
	Transaction Transaction
}

// NewTransactionSnapshot deep-copies t into a snapshot.
func NewTransactionSnapshot(t Transaction) TransactionSnapshot {
	return TransactionSnapshot{Transaction: t.Clone()}
}

func (s TransactionSnapshot) Kind() EntityKind    { return EntityKindTransaction }
func (s TransactionSnapshot) EntityID() uuid.UUID { return s.Transaction.ID }
func (s TransactionSnapshot) OwnerID() uuid.UUID  { return s.Transaction.UserID }
func (TransactionSnapshot) isSnapshot()           {}
