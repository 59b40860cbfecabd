package shift

import "errors"

var (
	// ErrInvalidShiftTiming covers malformed HH:MM strings and shifts whose
	// end does not fall after their start (overnight shifts are not
	// supported).
	ErrInvalidShiftTiming = errors.New("invalid shift timing")
)
