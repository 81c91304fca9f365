package bed

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateBed(ctx context.Context, req CreateBedRequest) (*BedResponse, error) {
	var bed BedResponse
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO beds (bed_id, ward, room, status)
		VALUES ($1, $2, $3, $4)
		RETURNING bed_id, ward, room, status
	`, req.BedID, req.Ward, req.Room, req.Status).Scan(
		&bed.BedID,
		&bed.Ward,
		&bed.Room,
		&bed.Status,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return nil, ErrDuplicateBed
			}
		}
		return nil, fmt.Errorf("failed to insert bed: %w", err)
	}

	return &bed, nil
}

// ListBeds returns beds ordered by bed_id, optionally filtered by status
// and ward. The ward filter is a case-insensitive exact match.
func (r *Repository) ListBeds(ctx context.Context, status, ward string) ([]BedResponse, error) {
	var conditions []string
	var args []interface{}

	if status != "" {
		args = append(args, status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if ward != "" {
		args = append(args, ward)
		conditions = append(conditions, fmt.Sprintf("LOWER(ward) = LOWER($%d)", len(args)))
	}

	query := "SELECT bed_id, ward, room, status FROM beds"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY bed_id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query beds: %w", err)
	}
	defer rows.Close()

	var beds []BedResponse
	for rows.Next() {
		var bed BedResponse
		if err := rows.Scan(&bed.BedID, &bed.Ward, &bed.Room, &bed.Status); err != nil {
			return nil, fmt.Errorf("failed to scan bed: %w", err)
		}
		beds = append(beds, bed)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating beds: %w", err)
	}

	return beds, nil
}

func (r *Repository) CountVacant(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM beds WHERE status = $1`, StatusVacant).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count vacant beds: %w", err)
	}
	return count, nil
}

func (r *Repository) UpdateBed(ctx context.Context, id int, req UpdateBedRequest) (*BedResponse, error) {
	var updates []string
	var args []interface{}
	argIndex := 1

	if req.Ward != nil {
		updates = append(updates, fmt.Sprintf("ward = $%d", argIndex))
		args = append(args, *req.Ward)
		argIndex++
	}
	if req.Room != nil {
		updates = append(updates, fmt.Sprintf("room = $%d", argIndex))
		args = append(args, *req.Room)
		argIndex++
	}
	if req.Status != nil {
		updates = append(updates, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *req.Status)
		argIndex++
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE beds
		SET %s
		WHERE bed_id = $%d
		RETURNING bed_id, ward, room, status
	`, strings.Join(updates, ", "), argIndex)

	var bed BedResponse
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&bed.BedID,
		&bed.Ward,
		&bed.Room,
		&bed.Status,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBedNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update bed: %w", err)
	}

	return &bed, nil
}
