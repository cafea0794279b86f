// Package txnrepo implements the finance transaction store using PostgreSQL.
package txnrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/dayflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dayflow-backend/internal/domain"
)

const table = "transactions"

var columns = []string{
	"id", "user_id", "type", "amount", "currency",
	"category", "note", "occurred_at", "created_at",
}

// Repo provides transaction persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new transaction repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID       `db:"id"`
	UserID     uuid.UUID       `db:"user_id"`
	Type       string          `db:"type"`
	Amount     decimal.Decimal `db:"amount"`
	Currency   string          `db:"currency"`
	Category   string          `db:"category"`
	Note       *string         `db:"note"`
	OccurredAt time.Time       `db:"occurred_at"`
	CreatedAt  time.Time       `db:"created_at"`
}

func (r row) toDomain() domain.Transaction {
	return domain.Transaction{
		ID:         r.ID,
		UserID:     r.UserID,
		Type:       domain.TransactionType(r.Type),
		Amount:     r.Amount,
		Currency:   r.Currency,
		Category:   r.Category,
		Note:       r.Note,
		OccurredAt: r.OccurredAt,
		CreatedAt:  r.CreatedAt,
	}
}

// GetByID returns a transaction by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get transaction query: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, query, args...); err != nil {
		return nil, postgres.MapError(err, "transaction", id)
	}

	t := res.toDomain()
	return &t, nil
}

// ListByUser returns the user's transactions, most recent first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("occurred_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list transactions query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "transactions of user", userID)
	}

	txns := make([]domain.Transaction, len(rows))
	for i, rw := range rows {
		txns[i] = rw.toDomain()
	}
	return txns, nil
}

// Create inserts a transaction and returns the persisted row.
func (r *Repo) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(t.ID, t.UserID, string(t.Type), t.Amount, t.Currency,
			t.Category, t.Note, t.OccurredAt, t.CreatedAt).
		Suffix(postgres.Returning(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create transaction query: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, query, args...); err != nil {
		return nil, postgres.MapError(err, "transaction", t.ID)
	}

	created := res.toDomain()
	return &created, nil
}

// Delete removes a transaction. Returns domain.ErrNotFound when no row matched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete transaction query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "transaction", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
