package item

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for items. Implementations must
// map their driver errors onto ErrStoreUnavailable / ErrQueryFailed so
// callers can distinguish "no rows" (empty slice, nil error) from a failed
// query.
type Repository interface {
	// List returns up to limit rows ordered by creation time descending.
	List(ctx context.Context, limit int) ([]Row, error)

	// Insert writes (id, name) as a single statement.
	Insert(ctx context.Context, id uuid.UUID, name string) error
}
