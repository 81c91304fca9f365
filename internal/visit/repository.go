package visit

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

func (r *Repository) CreateVisit(ctx context.Context, req CreateVisitRequest) (*VisitResponse, error) {
	var visit VisitResponse
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO patient_inflow (name, age, gender, visit_date, department, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING inflow_id, name, age, gender, visit_date, department, notes
	`, req.Name, req.Age, req.Gender, req.VisitDate, req.Department, req.Notes).Scan(
		&visit.InflowID,
		&visit.Name,
		&visit.Age,
		&visit.Gender,
		&visit.VisitDate,
		&visit.Department,
		&visit.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert visit: %w", err)
	}

	return &visit, nil
}

// ListVisits returns a page of visit records, most recent visit date first.
func (r *Repository) ListVisits(ctx context.Context, params pagination.Params) ([]VisitResponse, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM patient_inflow").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count visits: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT inflow_id, name, age, gender, visit_date, department, notes
		FROM patient_inflow
		ORDER BY visit_date DESC
		LIMIT $1 OFFSET $2
	`, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	var visits []VisitResponse
	for rows.Next() {
		var visit VisitResponse
		err := rows.Scan(
			&visit.InflowID,
			&visit.Name,
			&visit.Age,
			&visit.Gender,
			&visit.VisitDate,
			&visit.Department,
			&visit.Notes,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, visit)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating visits: %w", err)
	}

	return visits, total, nil
}

func (r *Repository) GetVisit(ctx context.Context, id int) (*VisitResponse, error) {
	var visit VisitResponse
	err := r.db.QueryRowContext(ctx, `
		SELECT inflow_id, name, age, gender, visit_date, department, notes
		FROM patient_inflow
		WHERE inflow_id = $1
	`, id).Scan(
		&visit.InflowID,
		&visit.Name,
		&visit.Age,
		&visit.Gender,
		&visit.VisitDate,
		&visit.Department,
		&visit.Notes,
	)
	if err == sql.ErrNoRows {
		return nil, ErrVisitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query visit: %w", err)
	}

	return &visit, nil
}

func (r *Repository) UpdateVisit(ctx context.Context, id int, req UpdateVisitRequest) (*VisitResponse, error) {
	var updates []string
	var args []interface{}
	argIndex := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIndex))
		args = append(args, *req.Name)
		argIndex++
	}
	if req.Age != nil {
		updates = append(updates, fmt.Sprintf("age = $%d", argIndex))
		args = append(args, *req.Age)
		argIndex++
	}
	if req.Gender != nil {
		updates = append(updates, fmt.Sprintf("gender = $%d", argIndex))
		args = append(args, *req.Gender)
		argIndex++
	}
	if req.VisitDate != nil {
		updates = append(updates, fmt.Sprintf("visit_date = $%d", argIndex))
		args = append(args, *req.VisitDate)
		argIndex++
	}
	if req.Department != nil {
		updates = append(updates, fmt.Sprintf("department = $%d", argIndex))
		args = append(args, *req.Department)
		argIndex++
	}
	if req.Notes != nil {
		updates = append(updates, fmt.Sprintf("notes = $%d", argIndex))
		args = append(args, *req.Notes)
		argIndex++
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE patient_inflow
		SET %s
		WHERE inflow_id = $%d
		RETURNING inflow_id, name, age, gender, visit_date, department, notes
	`, strings.Join(updates, ", "), argIndex)

	var visit VisitResponse
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&visit.InflowID,
		&visit.Name,
		&visit.Age,
		&visit.Gender,
		&visit.VisitDate,
		&visit.Department,
		&visit.Notes,
	)
	if err == sql.ErrNoRows {
		return nil, ErrVisitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update visit: %w", err)
	}

	return &visit, nil
}

func (r *Repository) DeleteVisit(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM patient_inflow WHERE inflow_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete visit: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrVisitNotFound
	}

	return nil
}
