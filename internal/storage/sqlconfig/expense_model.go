package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Expense represents a single expense record. ExpenseDate carries only the
// calendar day (UTC midnight); CreatedAt is the row insertion instant.
type Expense struct {
	ID            uuid.UUID       `db:"id"`
	UserID        uuid.UUID       `db:"user_id"`
	CategoryID    uuid.UUID       `db:"category_id"`
	Amount        decimal.Decimal `db:"amount"`
	ExpenseDate   time.Time       `db:"expense_date"`
	Description   string          `db:"description"`
	PaymentMethod sql.NullString  `db:"payment_method"`
	Notes         sql.NullString  `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
}

// ExpenseFilter specifies filters for listing expenses.
// DateFrom is inclusive and DateTo exclusive, matching the half-open
// period convention used by the reporting core.
type ExpenseFilter struct {
	UserID      uuid.UUID
	DateFrom    *time.Time
	DateTo      *time.Time
	CategoryID  *uuid.UUID
	Limit       int
	NewestFirst bool
}

// ExpenseStats is an aggregate over all of a user's expenses.
type ExpenseStats struct {
	Total decimal.Decimal `db:"total"`
	Count int64           `db:"count"`
}

// IExpenseTable defines the interface for expense reads.
// The reporting core never writes; inserts belong to the CRUD surface.
type IExpenseTable interface {
	List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error)
	Stats(ctx context.Context, userID uuid.UUID) (*ExpenseStats, error)
}
