package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a single finance record.
type Transaction struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Type       TransactionType
	Amount     decimal.Decimal
	Currency   string // ISO 4217
	Category   string
	Note       *string
	OccurredAt time.Time
	CreatedAt  time.Time
}

// Clone returns a deep copy of the transaction.
func (t Transaction) Clone() Transaction {
	c := t
	c.Note = cloneString(t.Note)
	return c
}
