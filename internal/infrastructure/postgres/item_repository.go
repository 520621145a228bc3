package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"vigil/internal/domain/item"
)

type ItemRepository struct {
	db *DB
}

func NewItemRepository(db *DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) List(ctx context.Context, limit int) ([]item.Row, error) {
	query := `
		SELECT id, name
		FROM items
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, classifyStoreError("list items", err)
	}
	defer rows.Close()

	var result []item.Row
	for rows.Next() {
		var row item.Row
		if err := rows.Scan(&row.ID, &row.Name); err != nil {
			return nil, classifyStoreError("scan item", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyStoreError("iterate items", err)
	}

	return result, nil
}

func (r *ItemRepository) Insert(ctx context.Context, id uuid.UUID, name string) error {
	query := `INSERT INTO items (id, name) VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, id, name); err != nil {
		return classifyStoreError("insert item", err)
	}
	return nil
}

// classifyStoreError maps driver errors onto the domain error taxonomy.
// A *pq.Error means the server was reached and rejected the statement;
// anything else (dial failure, pool timeout, cancelled context) means the
// store was unavailable for this operation.
func classifyStoreError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%s: %w: %s (%s)", op, item.ErrQueryFailed, pqErr.Message, pqErr.Code)
	}
	return fmt.Errorf("%s: %w: %v", op, item.ErrStoreUnavailable, err)
}
