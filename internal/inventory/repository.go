package inventory

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/pagination"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateItem(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	var item ItemResponse
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO inventory (item_name, quantity, unit)
		VALUES ($1, $2, $3)
		RETURNING id, item_name, quantity, unit
	`, req.ItemName, req.Quantity, req.Unit).Scan(
		&item.ID,
		&item.ItemName,
		&item.Quantity,
		&item.Unit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert item: %w", err)
	}

	return &item, nil
}

// ListItems returns a page of stock items, optionally filtered by a
// case-insensitive substring match on item_name.
func (r *Repository) ListItems(ctx context.Context, search string, params pagination.Params) ([]ItemResponse, int, error) {
	where := ""
	args := []interface{}{}
	if search != "" {
		where = "WHERE item_name ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM inventory %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, item_name, quantity, unit
		FROM inventory
		%s
		ORDER BY id
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.CalculateOffset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []ItemResponse
	for rows.Next() {
		var item ItemResponse
		if err := rows.Scan(&item.ID, &item.ItemName, &item.Quantity, &item.Unit); err != nil {
			return nil, 0, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating items: %w", err)
	}

	return items, total, nil
}

func (r *Repository) UpdateItem(ctx context.Context, id int, req UpdateItemRequest) (*ItemResponse, error) {
	var updates []string
	var args []interface{}
	argIndex := 1

	if req.ItemName != nil {
		updates = append(updates, fmt.Sprintf("item_name = $%d", argIndex))
		args = append(args, *req.ItemName)
		argIndex++
	}
	if req.Quantity != nil {
		updates = append(updates, fmt.Sprintf("quantity = $%d", argIndex))
		args = append(args, *req.Quantity)
		argIndex++
	}
	if req.Unit != nil {
		updates = append(updates, fmt.Sprintf("unit = $%d", argIndex))
		args = append(args, *req.Unit)
		argIndex++
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE inventory
		SET %s
		WHERE id = $%d
		RETURNING id, item_name, quantity, unit
	`, strings.Join(updates, ", "), argIndex)

	var item ItemResponse
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&item.ID,
		&item.ItemName,
		&item.Quantity,
		&item.Unit,
	)
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return &item, nil
}

func (r *Repository) DeleteItem(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrItemNotFound
	}

	return nil
}
