package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget represents a monthly budget. An invalid (NULL) CategoryID marks the
// overall budget for the month. The schema enforces at most one row per
// (user_id, category_id, month, year).
type Budget struct {
	ID         uuid.UUID       `db:"id"`
	UserID     uuid.UUID       `db:"user_id"`
	CategoryID uuid.NullUUID   `db:"category_id"`
	Amount     decimal.Decimal `db:"amount"`
	Month      int             `db:"month"`
	Year       int             `db:"year"`
}

// IBudgetTable defines the interface for budget reads.
type IBudgetTable interface {
	// Find returns the budget for the period, or nil when none is set.
	// A nil categoryID selects the overall budget.
	Find(ctx context.Context, userID uuid.UUID, month, year int, categoryID *uuid.UUID) (*Budget, error)
	// ListCategoryBudgets returns every per-category budget for the period.
	ListCategoryBudgets(ctx context.Context, userID uuid.UUID, month, year int) ([]*Budget, error)
}
