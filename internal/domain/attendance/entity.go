package attendance

import (
	"time"
)

// Status is the derived standing of one day's entry.
type Status string

const (
	StatusPresent        Status = "present"
	StatusLate           Status = "late"
	StatusAbsent         Status = "absent"
	StatusEarlyDeparture Status = "early_departure"
)

// Statuses lists every known status value, in display order.
var Statuses = []string{
	string(StatusPresent),
	string(StatusLate),
	string(StatusAbsent),
	string(StatusEarlyDeparture),
}

// Entry is one employee's one day of attendance as the backend returns it.
// The backend owns the durable record; the client holds at most today's
// entry plus a short rolling history, both fetched, never persisted.
type Entry struct {
	ID                string     `json:"id"`
	EmployeeID        string     `json:"employeeId"`
	EmployeeName      string     `json:"employeeName,omitempty"`
	Date              string     `json:"date"` // YYYY-MM-DD
	CheckInTime       *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime      *time.Time `json:"checkOutTime,omitempty"`
	Status            Status     `json:"status"`
	Location          *string    `json:"location,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	CheckInLatitude   *float64   `json:"checkInLatitude,omitempty"`
	CheckInLongitude  *float64   `json:"checkInLongitude,omitempty"`
	CheckOutLatitude  *float64   `json:"checkOutLatitude,omitempty"`
	CheckOutLongitude *float64   `json:"checkOutLongitude,omitempty"`
	WorkHours         *float64   `json:"workHours,omitempty"`
}

// SessionState is derived from today's entry, never stored.
type SessionState string

const (
	NotStarted SessionState = "not_started"
	CheckedIn  SessionState = "checked_in"
	CheckedOut SessionState = "checked_out"
)

// DeriveState computes the session state from today's entry: checked in when
// the entry exists without a check-out timestamp, checked out when it has
// one, not started when no entry exists.
func DeriveState(today *Entry) SessionState {
	switch {
	case today == nil:
		return NotStarted
	case today.CheckOutTime == nil:
		return CheckedIn
	default:
		return CheckedOut
	}
}
