package patient

import "errors"

var (
	ErrMissingName       = errors.New("patient name is required")
	ErrNoVacantBed       = errors.New("no vacant beds available")
	ErrPatientNotFound   = errors.New("patient not found")
	ErrAlreadyDischarged = errors.New("patient is already discharged")
)
