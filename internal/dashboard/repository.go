package dashboard

import (
	"context"
	"database/sql"
	"fmt"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CountAdmissions returns the number of admissions recorded for the given day.
func (r *Repository) CountAdmissions(ctx context.Context, date string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM admissions WHERE admit_date = $1", date,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count admissions: %w", err)
	}
	return count, nil
}

// CountVisits returns the number of walk-in visits recorded for the given day.
func (r *Repository) CountVisits(ctx context.Context, date string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM patient_inflow WHERE visit_date = $1", date,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count visits: %w", err)
	}
	return count, nil
}

// CountTests returns the number of diagnostic tests recorded for the given day.
func (r *Repository) CountTests(ctx context.Context, date string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM patient_tests WHERE test_date = $1", date,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tests: %w", err)
	}
	return count, nil
}

// CountTestsByType returns the number of tests of a single type on the given day.
func (r *Repository) CountTestsByType(ctx context.Context, date, testType string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM patient_tests WHERE test_date = $1 AND test_type = $2",
		date, testType,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tests by type: %w", err)
	}
	return count, nil
}
