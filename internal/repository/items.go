package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fullstacklab/itemsvc/internal/errs"
	"github.com/fullstacklab/itemsvc/internal/model"
	"github.com/fullstacklab/itemsvc/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ItemsRepository persists items. Timestamps and ids are assigned by the
// database, never by callers.
type ItemsRepository struct {
	pool *pgxpool.Pool
}

// NewItemsRepository constructs an ItemsRepository on the shared pool.
func NewItemsRepository(s *server.Server) *ItemsRepository {
	return &ItemsRepository{pool: s.DB.Pool}
}

const itemColumns = "id, name, description, created_at, updated_at"

func scanItem(row pgx.Row) (*model.Item, error) {
	var item model.Item
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a new item and returns it with the assigned id and
// timestamps.
func (r *ItemsRepository) Create(ctx context.Context, name, description string) (*model.Item, error) {
	item, err := scanItem(r.pool.QueryRow(ctx,
		`INSERT INTO items (name, description)
		 VALUES ($1, $2)
		 RETURNING `+itemColumns,
		name, description,
	))
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}
	return item, nil
}

// List returns all items, newest first. Ties on created_at fall back to
// id descending so the order is stable under sub-second inserts.
func (r *ItemsRepository) List(ctx context.Context) ([]model.Item, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+itemColumns+`
		 FROM items
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.Item])
	if err != nil {
		return nil, fmt.Errorf("scanning items: %w", err)
	}
	return items, nil
}

// GetByID returns the item with the given id, or a NotFound error.
func (r *ItemsRepository) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	item, err := scanItem(r.pool.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1`,
		id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NewNotFoundError("Item not found", true, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("getting item %d: %w", id, err)
	}
	return item, nil
}

// Update applies a partial update: nil fields keep their current value.
// updated_at is refreshed in the same statement, so the change is
// all-or-nothing. Returns NotFound when no row matches.
func (r *ItemsRepository) Update(ctx context.Context, id int64, name, description *string) (*model.Item, error) {
	item, err := scanItem(r.pool.QueryRow(ctx,
		`UPDATE items
		 SET name = COALESCE($2, name),
		     description = COALESCE($3, description),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING `+itemColumns,
		id, name, description,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NewNotFoundError("Item not found", true, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("updating item %d: %w", id, err)
	}
	return item, nil
}

// Delete removes the item and reports whether a row was actually
// deleted. Deleting a missing id is not an error.
func (r *ItemsRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("deleting item %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
