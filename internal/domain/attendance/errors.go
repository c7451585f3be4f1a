package attendance

import "errors"

// Attendance domain errors
var (
	// Precondition failures, surfaced before any network call is attempted.
	ErrMissingEmployeeRecord = errors.New("no employee profile is loaded yet")
	ErrNoActiveSession       = errors.New("no attendance entry exists for today")
	ErrAlreadyCheckedIn      = errors.New("you have already checked in today")
	ErrAlreadyCheckedOut     = errors.New("you have already checked out today")
	ErrOperationInProgress   = errors.New("a check-in or check-out is already in flight")

	ErrEntryNotFound = errors.New("attendance entry not found")
)
