package shift

import "errors"

var (
	// ErrRosterUnavailable marks an upstream roster failure. It is never
	// interpreted as "no shift data".
	ErrRosterUnavailable = errors.New("shift roster service unavailable")

	ErrShiftNotFound = errors.New("shift not found")
)
