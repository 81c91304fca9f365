package diagnostic

import "errors"

var (
	ErrInvalidTestType = errors.New("test type is not one of the fixed categories")
	ErrPatientNotFound = errors.New("patient not found")
	ErrTestNotFound    = errors.New("test record not found")
)
