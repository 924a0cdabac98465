package recommend

import "errors"

var (
	ErrInvalidRequest = errors.New("missing track identifier or scores")
	ErrInvalidTrack   = errors.New("track not found in catalog")
)

const (
	ErrorCodeValidation   = "validation_error"
	ErrorCodeInvalidTrack = "invalid_track"
	ErrorCodeInternal     = "internal_error"
)
