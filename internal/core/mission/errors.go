package mission

import "errors"

// Sentinel kinds for mission rule violations. Callers match with errors.Is.
var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidDate  = errors.New("invalid date; expected YYYY-MM-DD")
)
