// Package habitrepo implements the habit and habit-log stores using PostgreSQL.
package habitrepo

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

const (
	habitsTable = "habits"
	logsTable   = "habit_logs"
)

var (
	habitColumns = []string{
		"id", "user_id", "name", "description", "frequency", "target_per_period",
		"color", "reminder_time", "archived", "created_at", "updated_at",
	}
	logColumns = []string{"id", "habit_id", "log_date", "completed", "notes", "created_at"}
)

// Repo provides habit and habit-log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new habit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type habitRow struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	Name            string    `db:"name"`
	Description     *string   `db:"description"`
	Frequency       string    `db:"frequency"`
	TargetPerPeriod int32     `db:"target_per_period"`
	Color           *string   `db:"color"`
	ReminderTime    *string   `db:"reminder_time"`
	Archived        bool      `db:"archived"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r habitRow) toDomain() domain.Habit {
	return domain.Habit{
		ID:              r.ID,
		UserID:          r.UserID,
		Name:            r.Name,
		Description:     r.Description,
		Frequency:       domain.HabitFrequency(r.Frequency),
		TargetPerPeriod: int(r.TargetPerPeriod),
		Color:           r.Color,
		ReminderTime:    r.ReminderTime,
		Archived:        r.Archived,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

type logRow struct {
	ID        uuid.UUID `db:"id"`
	HabitID   uuid.UUID `db:"habit_id"`
	LogDate   time.Time `db:"log_date"`
	Completed bool      `db:"completed"`
	Notes     *string   `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
}

func (r logRow) toDomain() domain.HabitLog {
	return domain.HabitLog{
		ID:        r.ID,
		HabitID:   r.HabitID,
		Date:      domain.LogDate(r.LogDate),
		Completed: r.Completed,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Habits
// ---------------------------------------------------------------------------

// GetByID returns a habit by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error) {
	query, args, err := postgres.Builder().
		Select(habitColumns...).
		From(habitsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get habit query: %w", err)
	}

	var res habitRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, query, args...); err != nil {
		return nil, postgres.MapError(err, "habit", id)
	}

	h := res.toDomain()
	return &h, nil
}

// ListByUser returns the user's habits, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error) {
	query, args, err := postgres.Builder().
		Select(habitColumns...).
		From(habitsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list habits query: %w", err)
	}

	var rows []habitRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "habits of user", userID)
	}

	habits := make([]domain.Habit, len(rows))
	for i, rw := range rows {
		habits[i] = rw.toDomain()
	}
	return habits, nil
}

// Create inserts a habit and returns the persisted row.
func (r *Repo) Create(ctx context.Context, h *domain.Habit) (*domain.Habit, error) {
	query, args, err := postgres.Builder().
		Insert(habitsTable).
		Columns(habitColumns...).
		Values(h.ID, h.UserID, h.Name, h.Description, string(h.Frequency), h.TargetPerPeriod,
			h.Color, h.ReminderTime, h.Archived, h.CreatedAt, h.UpdatedAt).
		Suffix(postgres.Returning(habitColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create habit query: %w", err)
	}

	var res habitRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, query, args...); err != nil {
		return nil, postgres.MapError(err, "habit", h.ID)
	}

	created := res.toDomain()
	return &created, nil
}

// Delete removes a habit. Its logs go with it (ON DELETE CASCADE).
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(habitsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete habit query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "habit", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("habit %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Habit logs
// ---------------------------------------------------------------------------

// ListLogs returns the habit's logs with from <= date <= to, oldest first.
// A zero from or to leaves that side of the range open.
func (r *Repo) ListLogs(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]domain.HabitLog, error) {
	where := sq.And{sq.Eq{"habit_id": habitID}}
	if !from.IsZero() {
		where = append(where, sq.GtOrEq{"log_date": domain.LogDate(from)})
	}
	if !to.IsZero() {
		where = append(where, sq.LtOrEq{"log_date": domain.LogDate(to)})
	}

	query, args, err := postgres.Builder().
		Select(logColumns...).
		From(logsTable).
		Where(where).
		OrderBy("log_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list habit logs query: %w", err)
	}

	var rows []logRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "logs of habit", habitID)
	}

	logs := make([]domain.HabitLog, len(rows))
	for i, rw := range rows {
		logs[i] = rw.toDomain()
	}
	return logs, nil
}

// GetLog returns the log of a habit for one calendar day.
func (r *Repo) GetLog(ctx context.Context, habitID uuid.UUID, date time.Time) (*domain.HabitLog, error) {
	query, args, err := postgres.Builder().
		Select(logColumns...).
		From(logsTable).
		Where(sq.Eq{"habit_id": habitID, "log_date": domain.LogDate(date)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get habit log query: %w", err)
	}

	var res logRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, query, args...); err != nil {
		return nil, postgres.MapError(err, "log of habit", habitID)
	}

	l := res.toDomain()
	return &l, nil
}

// CreateLog inserts a log for habitID. The log's own HabitID is ignored so
// that a snapshot can be replayed against a recreated parent.
func (r *Repo) CreateLog(ctx context.Context, habitID uuid.UUID, l *domain.HabitLog) (*domain.HabitLog, error) {
	query, args, err := postgres.Builder().
		Insert(logsTable).
		Columns(logColumns...).
		Values(l.ID, habitID, domain.LogDate(l.Date), l.Completed, l.Notes, l.CreatedAt).
		Suffix(postgres.Returning(logColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create habit log query: %w", err)
	}

	var res logRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, query, args...); err != nil {
		return nil, postgres.MapError(err, "log of habit", habitID)
	}

	created := res.toDomain()
	return &created, nil
}

// UpsertLog writes the completion state of a habit for one day, creating the
// row when it does not exist yet.
func (r *Repo) UpsertLog(ctx context.Context, l *domain.HabitLog) (*domain.HabitLog, error) {
	query, args, err := postgres.Builder().
		Insert(logsTable).
		Columns(logColumns...).
		Values(l.ID, l.HabitID, domain.LogDate(l.Date), l.Completed, l.Notes, l.CreatedAt).
		Suffix("ON CONFLICT (habit_id, log_date) DO UPDATE SET completed = EXCLUDED.completed " +
			postgres.Returning(logColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert habit log query: %w", err)
	}

	var res logRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, query, args...); err != nil {
		return nil, postgres.MapError(err, "log of habit", l.HabitID)
	}

	saved := res.toDomain()
	return &saved, nil
}
