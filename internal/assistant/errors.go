package assistant

import "errors"

var (
	// ErrMissingMedicine is returned when a dosage request has no medicine name.
	ErrMissingMedicine = errors.New("medicine name is required")

	// ErrInvalidAge is returned when the patient age is outside 0-120.
	ErrInvalidAge = errors.New("age must be between 0 and 120")

	// ErrMissingSymptoms is returned when a recommendation request has no symptoms.
	ErrMissingSymptoms = errors.New("symptoms are required")

	// ErrMissingNotes is returned when a summarize request has no notes.
	ErrMissingNotes = errors.New("notes are required")
)
