// Package optimistic applies local state changes ahead of their durable writes
// and rolls them back when the write fails.
package optimistic

import (
	"context"
	"sync/atomic"
)

// ApplyFunc performs the local state transition. It must not fail.
type ApplyFunc func()

// WriteFunc performs the durable write backing an optimistic transition.
type WriteFunc func(ctx context.Context) error

// RollbackFunc receives the write error; callers restore their captured
// previous state here.
type RollbackFunc func(err error)

// Mutation runs optimistic updates and reports whether any durable write is
// still pending. Overlapping Run calls are not serialised; use Guard when two
// mutations on the same entity must not interleave.
// The zero value is ready to use.
type Mutation struct {
	pending atomic.Int64
}

// InFlight reports whether at least one durable write is pending.
func (m *Mutation) InFlight() bool {
	return m.pending.Load() > 0
}

// Run applies the optimistic change, then performs the durable write. If the
// write fails, onError is called with the error (the caller rolls back there)
// and the error is returned. Run never retries.
func (m *Mutation) Run(ctx context.Context, apply ApplyFunc, write WriteFunc, onError RollbackFunc) error {
	m.pending.Add(1)
	defer m.pending.Add(-1)

	apply()

	if err := write(ctx); err != nil {
		if onError != nil {
			onError(err)
		}
		return err
	}
	return nil
}

// Start applies the optimistic change before returning and performs the
// durable write on a new goroutine. The returned channel receives the write
// result (nil on success) and is then closed. InFlight no longer counts the
// mutation by the time the result is received.
func (m *Mutation) Start(ctx context.Context, apply ApplyFunc, write WriteFunc, onError RollbackFunc) <-chan error {
	m.pending.Add(1)
	apply()

	done := make(chan error, 1)
	go func() {
		err := write(ctx)
		if err != nil && onError != nil {
			onError(err)
		}
		m.pending.Add(-1)
		done <- err
		close(done)
	}()
	return done
}
