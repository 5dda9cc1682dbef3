package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// Category represents an expense category. A category with an invalid
// (NULL) UserID is a global default visible to every user.
type Category struct {
	ID        uuid.UUID     `db:"id"`
	UserID    uuid.NullUUID `db:"user_id"`
	Name      string        `db:"name"`
	Icon      string        `db:"icon"`
	Color     string        `db:"color"`
	IsDefault bool          `db:"is_default"`
}

// ICategoryTable defines the interface for category reads.
type ICategoryTable interface {
	// ListForUser returns the union of the user's own categories and the
	// global defaults, name ascending.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*Category, error)
}
