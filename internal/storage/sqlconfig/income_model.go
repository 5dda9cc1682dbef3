package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Income represents a single income record. Incomes have a free-form source
// instead of a category and are aggregated independently of expenses.
type Income struct {
	ID                 uuid.UUID       `db:"id"`
	UserID             uuid.UUID       `db:"user_id"`
	Amount             decimal.Decimal `db:"amount"`
	Source             string          `db:"source"`
	IncomeDate         time.Time       `db:"income_date"`
	IsRecurring        bool            `db:"is_recurring"`
	RecurringFrequency sql.NullString  `db:"recurring_frequency"`
	Notes              sql.NullString  `db:"notes"`
	CreatedAt          time.Time       `db:"created_at"`
}

// IncomeFilter specifies filters for listing incomes.
// DateFrom is inclusive, DateTo exclusive.
type IncomeFilter struct {
	UserID      uuid.UUID
	DateFrom    *time.Time
	DateTo      *time.Time
	Limit       int
	NewestFirst bool
}

// IncomeStats is an aggregate over a user's incomes in a date range.
type IncomeStats struct {
	Total decimal.Decimal `db:"total"`
	Count int64           `db:"count"`
}

// IIncomeTable defines the interface for income reads.
type IIncomeTable interface {
	List(ctx context.Context, filter *IncomeFilter) ([]*Income, error)
	Stats(ctx context.Context, filter *IncomeFilter) (*IncomeStats, error)
}
