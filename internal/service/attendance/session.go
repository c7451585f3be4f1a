// Package attendance mediates the check-in/check-out lifecycle for one
// employee for the current calendar day.
package attendance

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/geo"
)

// API is the slice of the backend client the session needs.
type API interface {
	CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.Entry, error)
	CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.Entry, error)
	TodayAttendance(ctx context.Context, employeeID string) (*attendance.Entry, error)
	ListAttendance(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.Entry, error)
}

// Session tracks whether the employee is checked in today and mediates the
// two transitions. State is only ever advanced from an entry the backend
// returned; a failed call leaves it untouched, so a retry is always safe.
type Session struct {
	api     API
	locator geo.Locator

	mu         sync.Mutex
	employeeID string
	today      *attendance.Entry

	processing atomic.Bool
}

func NewSession(api API, locator geo.Locator, employeeID string) *Session {
	return &Session{
		api:        api,
		locator:    locator,
		employeeID: employeeID,
	}
}

// SetEmployeeID installs the employee identity once the profile has loaded.
// Until then every transition fails with ErrMissingEmployeeRecord.
func (s *Session) SetEmployeeID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employeeID = id
}

// IsProcessing reports whether a transition is in flight. Callers must check
// it before invoking another transition; the session also rejects the second
// call itself, so a rapid double-click cannot create two backend entries.
func (s *Session) IsProcessing() bool {
	return s.processing.Load()
}

// State derives the current state from today's entry.
func (s *Session) State() attendance.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return attendance.DeriveState(s.today)
}

// Today returns a copy of today's entry, or nil when none exists.
func (s *Session) Today() *attendance.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.today == nil {
		return nil
	}
	entry := *s.today
	return &entry
}

// Refresh re-fetches today's entry. A new calendar day naturally yields no
// entry, resetting the cycle to NotStarted.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	employeeID := s.employeeID
	s.mu.Unlock()

	if employeeID == "" {
		return attendance.ErrMissingEmployeeRecord
	}

	today, err := s.api.TodayAttendance(ctx, employeeID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.today = today
	s.mu.Unlock()
	return nil
}

// CheckIn performs NotStarted -> CheckedIn: acquires the device position,
// then calls the backend. Every precondition is verified before any network
// or location request is issued.
func (s *Session) CheckIn(ctx context.Context, locationLabel, notes string) (attendance.Entry, error) {
	if !s.processing.CompareAndSwap(false, true) {
		return attendance.Entry{}, attendance.ErrOperationInProgress
	}
	defer s.processing.Store(false)

	s.mu.Lock()
	employeeID := s.employeeID
	today := s.today
	s.mu.Unlock()

	if employeeID == "" {
		return attendance.Entry{}, attendance.ErrMissingEmployeeRecord
	}
	switch attendance.DeriveState(today) {
	case attendance.CheckedIn:
		return attendance.Entry{}, attendance.ErrAlreadyCheckedIn
	case attendance.CheckedOut:
		return attendance.Entry{}, attendance.ErrAlreadyCheckedOut
	}

	point, err := s.locator.Locate(ctx)
	if err != nil {
		return attendance.Entry{}, err
	}

	req := attendance.CheckInRequest{
		EmployeeID: employeeID,
		Location:   locationLabel,
		Notes:      notes,
		Latitude:   &point.Latitude,
		Longitude:  &point.Longitude,
	}
	if err := req.Validate(); err != nil {
		return attendance.Entry{}, err
	}

	entry, err := s.api.CheckIn(ctx, req)
	if err != nil {
		return attendance.Entry{}, err
	}

	s.mu.Lock()
	s.today = &entry
	s.mu.Unlock()
	return entry, nil
}

// CheckOut performs CheckedIn -> CheckedOut. CheckedOut is terminal for the
// day; corrections to a completed entry are an admin concern, not this
// component's.
func (s *Session) CheckOut(ctx context.Context, notes string) (attendance.Entry, error) {
	if !s.processing.CompareAndSwap(false, true) {
		return attendance.Entry{}, attendance.ErrOperationInProgress
	}
	defer s.processing.Store(false)

	s.mu.Lock()
	today := s.today
	s.mu.Unlock()

	if today == nil {
		return attendance.Entry{}, attendance.ErrNoActiveSession
	}
	if today.CheckOutTime != nil {
		return attendance.Entry{}, attendance.ErrAlreadyCheckedOut
	}

	point, err := s.locator.Locate(ctx)
	if err != nil {
		return attendance.Entry{}, err
	}

	req := attendance.CheckOutRequest{
		AttendanceID: today.ID,
		Notes:        notes,
		Latitude:     &point.Latitude,
		Longitude:    &point.Longitude,
	}
	if err := req.Validate(); err != nil {
		return attendance.Entry{}, err
	}

	entry, err := s.api.CheckOut(ctx, req)
	if err != nil {
		return attendance.Entry{}, err
	}

	s.mu.Lock()
	s.today = &entry
	s.mu.Unlock()
	return entry, nil
}

// History fetches the rolling history for the session's employee.
func (s *Session) History(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.Entry, error) {
	s.mu.Lock()
	employeeID := s.employeeID
	s.mu.Unlock()

	if employeeID == "" {
		return nil, attendance.ErrMissingEmployeeRecord
	}
	filter.EmployeeID = employeeID
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.api.ListAttendance(ctx, filter)
}
