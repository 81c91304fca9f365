package visit

import "errors"

var (
	ErrMissingName   = errors.New("patient name is required")
	ErrVisitNotFound = errors.New("visit record not found")
)
