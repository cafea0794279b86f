// Package taskrepo implements the task store using PostgreSQL.
package taskrepo

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

const table = "tasks"

var columns = []string{
	"id", "user_id", "title", "notes", "priority", "due_at",
	"completed", "completed_at", "created_at", "updated_at",
}

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new task repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID  `db:"id"`
	UserID      uuid.UUID  `db:"user_id"`
	Title       string     `db:"title"`
	Notes       *string    `db:"notes"`
	Priority    string     `db:"priority"`
	DueAt       *time.Time `db:"due_at"`
	Completed   bool       `db:"completed"`
	CompletedAt *time.Time `db:"completed_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.Task {
	return domain.Task{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Notes:       r.Notes,
		Priority:    domain.TaskPriority(r.Priority),
		DueAt:       r.DueAt,
		Completed:   r.Completed,
		CompletedAt: r.CompletedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// GetByID returns a task by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get task query: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, query, args...); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}

	t := res.toDomain()
	return &t, nil
}

// ListByUser returns the user's tasks, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Task, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tasks query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "tasks of user", userID)
	}

	tasks := make([]domain.Task, len(rows))
	for i, rw := range rows {
		tasks[i] = rw.toDomain()
	}
	return tasks, nil
}

// Create inserts a task and returns the persisted row.
func (r *Repo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(t.ID, t.UserID, t.Title, t.Notes, string(t.Priority), t.DueAt,
			t.Completed, t.CompletedAt, t.CreatedAt, t.UpdatedAt).
		Suffix(postgres.Returning(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create task query: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, query, args...); err != nil {
		return nil, postgres.MapError(err, "task", t.ID)
	}

	created := res.toDomain()
	return &created, nil
}

// Delete removes a task. Returns domain.ErrNotFound when no row matched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete task query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "task", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
