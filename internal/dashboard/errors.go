package dashboard

import "errors"

var (
	// ErrInvalidDate is returned when the date filter is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")

	// ErrInvalidTestType is returned when the test_type filter is not one of
	// the supported diagnostic test types.
	ErrInvalidTestType = errors.New("unknown test type")
)
