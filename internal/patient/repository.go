package patient

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/pagination"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// AdmitPatient inserts a patient and occupies a vacant bed in a single
// transaction. The bed is chosen as the lowest vacant bed_id; FOR UPDATE
// SKIP LOCKED keeps two concurrent admissions from racing onto the same bed.
func (r *Repository) AdmitPatient(ctx context.Context, req AdmitPatientRequest) (*PatientResponse, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var bedID int
	err = tx.QueryRowContext(ctx, `
		SELECT bed_id FROM beds
		WHERE status = 'Vacant'
		ORDER BY bed_id
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`).Scan(&bedID)
	if err == sql.ErrNoRows {
		return nil, ErrNoVacantBed
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vacant bed: %w", err)
	}

	var patient PatientResponse
	err = tx.QueryRowContext(ctx, `
		INSERT INTO patients (name, age, gender, admission_date, status, bed_id, department)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, age, gender, admission_date, status, bed_id, department
	`, req.Name, req.Age, req.Gender, req.AdmissionDate, StatusAdmitted, bedID, req.Department).Scan(
		&patient.ID,
		&patient.Name,
		&patient.Age,
		&patient.Gender,
		&patient.AdmissionDate,
		&patient.Status,
		&patient.BedID,
		&patient.Department,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert patient: %w", err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE beds SET status = 'Occupied' WHERE bed_id = $1`, bedID)
	if err != nil {
		return nil, fmt.Errorf("failed to occupy bed %d: %w", bedID, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO admissions (patient_name, admit_date, bed_number)
		VALUES ($1, $2, $3)
	`, req.Name, req.AdmissionDate, bedID)
	if err != nil {
		return nil, fmt.Errorf("failed to record admission: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &patient, nil
}

// ListPatients returns a page of patients, optionally filtered by status,
// newest admissions first.
func (r *Repository) ListPatients(ctx context.Context, status string, params pagination.Params) ([]PatientResponse, int, error) {
	where := ""
	args := []interface{}{}
	if status != "" {
		where = "WHERE status = $1"
		args = append(args, status)
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM patients %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count patients: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, age, gender, admission_date, discharge_date, status, bed_id, department
		FROM patients
		%s
		ORDER BY id DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.CalculateOffset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query patients: %w", err)
	}
	defer rows.Close()

	var patients []PatientResponse
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, *p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating patients: %w", err)
	}

	return patients, total, nil
}

// ListAllPatients returns every patient regardless of status, for the
// diagnostic test dropdown. Discharged patients remain selectable.
func (r *Repository) ListAllPatients(ctx context.Context) ([]PatientResponse, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, age, gender, admission_date, discharge_date, status, bed_id, department
		FROM patients
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query patients: %w", err)
	}
	defer rows.Close()

	var patients []PatientResponse
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, *p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating patients: %w", err)
	}

	return patients, nil
}

func (r *Repository) GetPatient(ctx context.Context, id int) (*PatientResponse, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, age, gender, admission_date, discharge_date, status, bed_id, department
		FROM patients
		WHERE id = $1
	`, id)

	p, err := scanPatient(row)
	if err == sql.ErrNoRows {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query patient: %w", err)
	}
	return p, nil
}

// DischargePatient flips the patient to Discharged and frees the bed in the
// same transaction. The reference behavior left the bed Occupied forever;
// freeing it here is the documented fix.
func (r *Repository) DischargePatient(ctx context.Context, id int) (*PatientResponse, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var status string
	var bedID sql.NullInt64
	var name string
	err = tx.QueryRowContext(ctx, `
		SELECT name, status, bed_id FROM patients WHERE id = $1 FOR UPDATE
	`, id).Scan(&name, &status, &bedID)
	if err == sql.ErrNoRows {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query patient: %w", err)
	}
	if status == StatusDischarged {
		return nil, ErrAlreadyDischarged
	}

	dischargeDate := time.Now().Format("2006-01-02")

	var patient PatientResponse
	err = tx.QueryRowContext(ctx, `
		UPDATE patients
		SET status = $1, discharge_date = $2
		WHERE id = $3
		RETURNING id, name, age, gender, admission_date, discharge_date, status, bed_id, department
	`, StatusDischarged, dischargeDate, id).Scan(
		&patient.ID,
		&patient.Name,
		&patient.Age,
		&patient.Gender,
		&patient.AdmissionDate,
		&patient.DischargeDate,
		&patient.Status,
		&patient.BedID,
		&patient.Department,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to discharge patient: %w", err)
	}

	if bedID.Valid {
		_, err = tx.ExecContext(ctx, `UPDATE beds SET status = 'Vacant' WHERE bed_id = $1`, bedID.Int64)
		if err != nil {
			return nil, fmt.Errorf("failed to free bed %d: %w", bedID.Int64, err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE admissions
			SET discharge_date = $1
			WHERE patient_name = $2 AND bed_number = $3 AND discharge_date IS NULL
		`, dischargeDate, name, bedID.Int64)
		if err != nil {
			return nil, fmt.Errorf("failed to stamp admission record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &patient, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPatient(row rowScanner) (*PatientResponse, error) {
	var p PatientResponse
	var dischargeDate sql.NullString
	var bedID sql.NullInt64

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Age,
		&p.Gender,
		&p.AdmissionDate,
		&dischargeDate,
		&p.Status,
		&bedID,
		&p.Department,
	)
	if err != nil {
		return nil, err
	}

	if dischargeDate.Valid {
		p.DischargeDate = &dischargeDate.String
	}
	if bedID.Valid {
		v := int(bedID.Int64)
		p.BedID = &v
	}

	return &p, nil
}
