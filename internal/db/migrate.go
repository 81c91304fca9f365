package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// createStatements holds the idempotent DDL for every table the service
// owns. Dates are stored as YYYY-MM-DD text, matching how every query
// filters on them. patient_tests.patient_id deliberately carries no foreign
// key constraint: a test whose patient was deleted stays stored and is only
// hidden from join-based listings.
var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS patients (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		age INTEGER,
		gender TEXT,
		admission_date TEXT,
		discharge_date TEXT,
		status TEXT,
		bed_id INTEGER,
		department TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS beds (
		bed_id INTEGER PRIMARY KEY,
		ward TEXT,
		room TEXT,
		status TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS admissions (
		admission_id SERIAL PRIMARY KEY,
		patient_name TEXT,
		admit_date TEXT,
		discharge_date TEXT,
		bed_number INTEGER,
		notes TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS patient_inflow (
		inflow_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		age INTEGER,
		gender TEXT,
		visit_date TEXT,
		department TEXT,
		notes TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS patient_tests (
		test_id SERIAL PRIMARY KEY,
		patient_id INTEGER,
		test_type TEXT NOT NULL,
		test_date TEXT,
		result TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		id SERIAL PRIMARY KEY,
		item_name TEXT NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 0,
		unit TEXT NOT NULL
	)`,
}

// Migrate creates any missing tables and self-heals older databases that
// predate the patient_tests.patient_id column. Safe to call any number of
// times: beyond the first run per missing table/column it performs no writes.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range createStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	if err := ensureColumn(ctx, db, "patient_tests", "patient_id", "INTEGER"); err != nil {
		return err
	}

	log.Println("✓ Database schema is up to date")
	return nil
}

// ensureColumn adds a column when an existing table is missing it.
func ensureColumn(ctx context.Context, db *sql.DB, table, column, columnType string) error {
	var exists bool
	err := db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_name = $1 AND column_name = $2
		)
	`, table, column).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to inspect columns of %s: %w", table, err)
	}
	if exists {
		return nil
	}

	_, err = db.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, columnType))
	if err != nil {
		return fmt.Errorf("failed to add column %s.%s: %w", table, column, err)
	}

	log.Printf("Added missing column %s.%s", table, column)
	return nil
}

// defaultBeds is the reference ward layout seeded into an empty database.
var defaultBeds = []struct {
	BedID int
	Ward  string
	Room  string
}{
	{1, "Ward A", "Room 101"},
	{2, "Ward A", "Room 102"},
	{3, "Ward B", "Room 201"},
	{4, "Ward B", "Room 202"},
	{5, "ICU", "ICU 1"},
}

// SeedBeds inserts the default beds, skipping any bed_id that already
// exists so re-running never clobbers live occupancy state.
func SeedBeds(ctx context.Context, db *sql.DB) error {
	for _, b := range defaultBeds {
		_, err := db.ExecContext(ctx, `
			INSERT INTO beds (bed_id, ward, room, status)
			VALUES ($1, $2, $3, 'Vacant')
			ON CONFLICT (bed_id) DO NOTHING
		`, b.BedID, b.Ward, b.Room)
		if err != nil {
			return fmt.Errorf("failed to seed bed %d: %w", b.BedID, err)
		}
	}
	return nil
}
