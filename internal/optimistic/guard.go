package optimistic

import (
	"context"
	"errors"
	"sync"
)

// ErrInFlight is returned when a mutation for the same key is still pending.
var ErrInFlight = errors.New("mutation already in flight")

// Steps are the parts of one optimistic mutation.
type Steps struct {
	Apply    ApplyFunc
	Write    WriteFunc
	Rollback RollbackFunc
}

// PrepareFunc runs once the key is held. It reads the state the mutation
// starts from and returns the steps that move it on. An error aborts the
// mutation before anything is applied.
type PrepareFunc func(ctx context.Context) (Steps, error)

// Guard serialises optimistic mutations per key: while one is pending for a
// key, further mutations for that key are rejected without being applied.
type Guard[K comparable] struct {
	mu       sync.Mutex
	inFlight map[K]struct{}
	m        Mutation
}

// NewGuard creates an empty guard.
func NewGuard[K comparable]() *Guard[K] {
	return &Guard[K]{inFlight: make(map[K]struct{})}
}

// InFlight reports whether a mutation for key is pending.
func (g *Guard[K]) InFlight(key K) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.inFlight[key]
	return ok
}

// AnyInFlight reports whether any key is held.
func (g *Guard[K]) AnyInFlight() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.inFlight) > 0
}

// Run holds key, calls prepare and runs the returned steps like Mutation.Run.
// If a mutation for key is already pending it returns ErrInFlight without
// calling prepare.
func (g *Guard[K]) Run(ctx context.Context, key K, prepare PrepareFunc) error {
	if !g.acquire(key) {
		return ErrInFlight
	}
	defer g.release(key)

	steps, err := prepare(ctx)
	if err != nil {
		return err
	}
	return g.m.Run(ctx, steps.Apply, steps.Write, steps.Rollback)
}

// Start is the asynchronous Run. prepare and the apply step complete before
// Start returns; the write continues on its own goroutine. The key is
// released before the result is delivered on the returned channel.
func (g *Guard[K]) Start(ctx context.Context, key K, prepare PrepareFunc) (<-chan error, error) {
	if !g.acquire(key) {
		return nil, ErrInFlight
	}

	steps, err := prepare(ctx)
	if err != nil {
		g.release(key)
		return nil, err
	}

	written := g.m.Start(ctx, steps.Apply, steps.Write, steps.Rollback)
	done := make(chan error, 1)
	go func() {
		err := <-written
		g.release(key)
		done <- err
		close(done)
	}()
	return done, nil
}

func (g *Guard[K]) acquire(key K) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[key]; busy {
		return false
	}
	g.inFlight[key] = struct{}{}
	return true
}

func (g *Guard[K]) release(key K) {
	g.mu.Lock()
	delete(g.inFlight, key)
	g.mu.Unlock()
}
