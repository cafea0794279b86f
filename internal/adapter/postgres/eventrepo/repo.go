// Package eventrepo implements the calendar event store using PostgreSQL.
package eventrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/dayflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dayflow-backend/internal/domain"
)

const table = "events"

var columns = []string{
	"id", "user_id", "title", "description", "location",
	"starts_at", "ends_at", "all_day", "created_at", "updated_at",
}

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	Location    *string   `db:"location"`
	StartsAt    time.Time `db:"starts_at"`
	EndsAt      time.Time `db:"ends_at"`
	AllDay      bool      `db:"all_day"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Event {
	return domain.Event{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
		AllDay:      r.AllDay,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// GetByID returns an event by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get event query: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, query, args...); err != nil {
		return nil, postgres.MapError(err, "event", id)
	}

	e := res.toDomain()
	return &e, nil
}

// ListByUser returns the user's events in chronological order.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Event, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("starts_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "events of user", userID)
	}

	events := make([]domain.Event, len(rows))
	for i, rw := range rows {
		events[i] = rw.toDomain()
	}
	return events, nil
}

// Create inserts an event and returns the persisted row.
func (r *Repo) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(e.ID, e.UserID, e.Title, e.Description, e.Location,
			e.StartsAt, e.EndsAt, e.AllDay, e.CreatedAt, e.UpdatedAt).
		Suffix(postgres.Returning(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create event query: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, query, args...); err != nil {
		return nil, postgres.MapError(err, "event", e.ID)
	}

	created := res.toDomain()
	return &created, nil
}

// Delete removes an event. Returns domain.ErrNotFound when no row matched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete event query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "event", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
