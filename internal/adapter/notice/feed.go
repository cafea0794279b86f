// Package notice keeps the per-user notices shown after deletes and undos.
package notice

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/dayflow-backend/internal/domain"
)

// maxPerUser caps how many notices one user can have stacked.
const maxPerUser = 20

// Feed stores recent notices per user. Users idle for longer than the
// retention period are evicted as a whole.
type Feed struct {
	log   *slog.Logger
	clock clockwork.Clock

	mu    sync.Mutex
	users *expirable.LRU[uuid.UUID, []domain.Notice]
}

// NewFeed creates a Feed tracking up to maxUsers users. retention should be at
// least the longest notice duration.
func NewFeed(log *slog.Logger, clock clockwork.Clock, maxUsers int, retention time.Duration) *Feed {
	return &Feed{
		log:   log.With("adapter", "notice"),
		clock: clock,
		users: expirable.NewLRU[uuid.UUID, []domain.Notice](maxUsers, nil, retention),
	}
}

// Show records n for its user.
func (f *Feed) Show(ctx context.Context, n domain.Notice) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.ShownAt.IsZero() {
		n.ShownAt = f.clock.Now()
	}

	f.mu.Lock()
	list := f.active(n.UserID)
	list = append(list, n)
	if len(list) > maxPerUser {
		list = list[len(list)-maxPerUser:]
	}
	f.users.Add(n.UserID, list)
	f.mu.Unlock()

	level := slog.LevelInfo
	if n.Level == domain.NoticeLevelError {
		level = slog.LevelWarn
	}
	f.log.Log(ctx, level, "notice shown",
		slog.String("user_id", n.UserID.String()),
		slog.String("notice_id", n.ID.String()),
		slog.String("message", n.Message),
		slog.Bool("has_action", n.Action != nil),
	)
}

// Active returns the user's notices that have not yet expired, oldest first.
func (f *Feed) Active(userID uuid.UUID) []domain.Notice {
	f.mu.Lock()
	defer f.mu.Unlock()

	list := f.active(userID)
	out := make([]domain.Notice, len(list))
	copy(out, list)
	return out
}

// Dismiss removes one notice. It reports whether the notice was present.
func (f *Feed) Dismiss(userID, noticeID uuid.UUID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.take(userID, noticeID)
	return ok
}

// RunAction runs the action attached to a notice, dismisses it and reports
// whether the action restored anything.
// A missing, expired or action-less notice yields domain.ErrNotFound.
func (f *Feed) RunAction(ctx context.Context, userID, noticeID uuid.UUID) (bool, error) {
	f.mu.Lock()
	n, ok := f.take(userID, noticeID)
	f.mu.Unlock()

	if !ok || n.Action == nil || n.Action.Run == nil {
		return false, fmt.Errorf("notice %s: %w", noticeID, domain.ErrNotFound)
	}
	return n.Action.Run(ctx)
}

// active drops expired entries for userID and returns the rest. Caller holds mu.
func (f *Feed) active(userID uuid.UUID) []domain.Notice {
	list, ok := f.users.Get(userID)
	if !ok {
		return nil
	}

	now := f.clock.Now()
	kept := list[:0:0]
	for _, n := range list {
		if now.Before(n.ExpiresAt()) {
			kept = append(kept, n)
		}
	}
	if len(kept) != len(list) {
		if len(kept) == 0 {
			f.users.Remove(userID)
		} else {
			f.users.Add(userID, kept)
		}
	}
	return kept
}

// take removes and returns one active notice. Caller holds mu.
func (f *Feed) take(userID, noticeID uuid.UUID) (domain.Notice, bool) {
	list := f.active(userID)
	for i, n := range list {
		if n.ID != noticeID {
			continue
		}
		rest := make([]domain.Notice, 0, len(list)-1)
		rest = append(rest, list[:i]...)
		rest = append(rest, list[i+1:]...)
		if len(rest) == 0 {
			f.users.Remove(userID)
		} else {
			f.users.Add(userID, rest)
		}
		return n, true
	}
	return domain.Notice{}, false
}
