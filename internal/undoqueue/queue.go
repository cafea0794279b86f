// Package undoqueue holds soft-deleted records for a bounded grace window.
//
// Each pending entry owns a cancellable expiry timer. An entry leaves the queue
// through exactly one of Undo, expiry or Clear; expiry callbacks run at most
// once and never for an entry that was undone or cleared first.
package undoqueue

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/dayflow-backend/internal/domain"
)

// DefaultTimeout is the undo window used when Add is given a non-positive timeout.
const DefaultTimeout = 4 * time.Second

// Entry is a pending soft-deleted record.
type Entry[T any] struct {
	Key          string
	Kind         string // diagnostics only
	Payload      T
	CapturedAt   time.Time
	ExpiresAfter time.Duration
}

// ExpiresAt returns the moment the entry stops being undoable.
func (e Entry[T]) ExpiresAt() time.Time {
	return e.CapturedAt.Add(e.ExpiresAfter)
}

// ExpireFunc is invoked after an entry's window elapsed without an undo.
// The entry is already gone from the queue when it runs.
type ExpireFunc[T any] func(Entry[T])

type pending[T any] struct {
	entry    Entry[T]
	gen      uint64
	timer    clockwork.Timer
	onExpire ExpireFunc[T]
}

// Queue is a keyed store of pending soft-deleted records. It is safe for
// concurrent use; timers fire on their own goroutines.
type Queue[T any] struct {
	mu      sync.Mutex
	entries map[string]*pending[T]
	nextGen uint64

	clock   clockwork.Clock
	timeout time.Duration
	log     *slog.Logger
}

// Option configures a Queue.
type Option func(*options)

type options struct {
	clock   clockwork.Clock
	timeout time.Duration
	log     *slog.Logger
}

// WithClock sets the clock used for timestamps and expiry timers.
func WithClock(c clockwork.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithDefaultTimeout overrides DefaultTimeout for this queue.
func WithDefaultTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// New creates an empty queue. Without options it uses the real clock,
// DefaultTimeout and slog.Default().
func New[T any](opts ...Option) *Queue[T] {
	o := options{
		clock:   clockwork.NewRealClock(),
		timeout: DefaultTimeout,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Queue[T]{
		entries: make(map[string]*pending[T]),
		clock:   o.clock,
		timeout: o.timeout,
		log:     o.log.With("component", "undoqueue"),
	}
}

// Add registers payload under key and starts its expiry timer. A live entry
// already stored under key is cancelled and replaced; its onExpire is not called.
// A non-positive timeout selects the queue default. onExpire may be nil.
func (q *Queue[T]) Add(key, kind string, payload T, onExpire ExpireFunc[T], timeout time.Duration) error {
	if key == "" {
		return domain.ErrInvalidKey
	}
	if timeout <= 0 {
		timeout = q.timeout
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if old, ok := q.entries[key]; ok {
		old.timer.Stop()
		delete(q.entries, key)
		q.log.Debug("undo entry replaced",
			slog.String("key", key),
			slog.String("kind", old.entry.Kind),
		)
	}

	q.nextGen++
	gen := q.nextGen
	p := &pending[T]{
		entry: Entry[T]{
			Key:          key,
			Kind:         kind,
			Payload:      payload,
			CapturedAt:   q.clock.Now(),
			ExpiresAfter: timeout,
		},
		gen:      gen,
		onExpire: onExpire,
	}
	p.timer = q.clock.AfterFunc(timeout, func() { q.expire(key, gen) })
	q.entries[key] = p

	return nil
}

// expire removes the entry for key if it is still the generation the timer
// was armed for, then runs its callback outside the lock.
func (q *Queue[T]) expire(key string, gen uint64) {
	q.mu.Lock()
	p, ok := q.entries[key]
	if !ok || p.gen != gen {
		q.mu.Unlock()
		return
	}
	delete(q.entries, key)
	q.mu.Unlock()

	q.log.Debug("undo entry expired",
		slog.String("key", key),
		slog.String("kind", p.entry.Kind),
	)

	if p.onExpire != nil {
		p.onExpire(p.entry)
	}
}

// Undo cancels the timer for key, removes the entry and returns its payload.
// It returns false when nothing is pending under key: never added, already
// undone, expired or cleared.
func (q *Queue[T]) Undo(key string) (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	p, ok := q.entries[key]
	if !ok {
		var zero T
		return zero, false
	}
	p.timer.Stop()
	delete(q.entries, key)

	q.log.Debug("undo entry taken",
		slog.String("key", key),
		slog.String("kind", p.entry.Kind),
	)

	return p.entry.Payload, true
}

// Has reports whether an entry is pending under key.
func (q *Queue[T]) Has(key string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, ok := q.entries[key]
	return ok
}

// Get returns the pending entry for key without cancelling or removing it.
func (q *Queue[T]) Get(key string) (Entry[T], bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	p, ok := q.entries[key]
	if !ok {
		return Entry[T]{}, false
	}
	return p.entry, true
}

// Clear cancels every pending timer and empties the queue. No expiry
// callbacks are invoked. It returns the number of discarded entries.
func (q *Queue[T]) Clear() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := len(q.entries)
	for _, p := range q.entries {
		p.timer.Stop()
	}
	q.entries = make(map[string]*pending[T])

	if n > 0 {
		q.log.Info("undo queue cleared", slog.Int("discarded", n))
	}
	return n
}

// Size returns the number of pending entries.
func (q *Queue[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Keys returns the keys of all pending entries in lexical order.
func (q *Queue[T]) Keys() []string {
	q.mu.Lock()
	defer q.mu.Unlock()

	keys := make([]string, 0, len(q.entries))
	for k := range q.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
