package api

import (
	"errors"
	"fmt"
)

// ErrSessionExpired maps a 401 from any endpoint; callers prompt for a fresh
// sign-in instead of retrying.
var ErrSessionExpired = errors.New("session expired, sign in again")

// Error is a failure reported by the backend. Message carries the backend's
// own text when it sent one, so the console can show it verbatim.
type Error struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return fmt.Sprintf("request failed: %s", e.Code)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}
