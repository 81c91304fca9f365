package testutil

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
)

// SetupTestDB creates a connection to the test database
// This connects to the local hospital_test database; override the DSN
// with TEST_DATABASE_DSN
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	connStr := os.Getenv("TEST_DATABASE_DSN")
	if connStr == "" {
		connStr = "host=localhost port=5432 user=postgres password=postgres dbname=hospital_test sslmode=disable"
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	return db
}

// CleanupTestDB cleans up test data from the database
// The test tables are shared, so every integration test should call this
// before writing and defer it after
func CleanupTestDB(t *testing.T, db *sql.DB) {
	t.Helper()

	_, err := db.Exec(`
		TRUNCATE TABLE patients, beds, admissions, patient_inflow, patient_tests, inventory
		RESTART IDENTITY
	`)
	if err != nil {
		t.Logf("Warning: Failed to clean up test tables: %v", err)
	}
}
