package bed

import "errors"

var (
	ErrDuplicateBed  = errors.New("bed id already exists")
	ErrBedNotFound   = errors.New("bed not found")
	ErrInvalidBedID  = errors.New("bed id must be a positive integer")
	ErrInvalidStatus = errors.New("status must be Vacant or Occupied")
)
