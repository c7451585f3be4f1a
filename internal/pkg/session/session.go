// Package session holds the authenticated user's context for the lifetime of
// a console run. It replaces ambient global auth state: the session is built
// once at startup from the configured access token and injected into every
// component that needs identity, with an explicit Close at shutdown.
package session

import (
	"errors"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
)

var (
	ErrNoToken      = errors.New("no access token configured")
	ErrTokenExpired = errors.New("access token expired")
	ErrInvalidToken = errors.New("access token could not be parsed")
)

// Session carries the identity claims read from the access token. The token
// is not signature-verified client-side; the backend is the authority and
// rejects a forged token with a 401 anyway.
type Session struct {
	token      string
	UserID     string
	EmployeeID string
	CompanyID  string
	Email      string
	ExpiresAt  time.Time
}

// New parses the access token and builds the session.
func New(accessToken string) (*Session, error) {
	if accessToken == "" {
		return nil, ErrNoToken
	}

	tok, err := jwt.ParseString(accessToken, jwt.WithVerify(false), jwt.WithValidate(false))
	if err != nil {
		return nil, ErrInvalidToken
	}

	s := &Session{
		token:     accessToken,
		ExpiresAt: tok.Expiration(),
	}
	s.UserID = stringClaim(tok, "user_id")
	s.EmployeeID = stringClaim(tok, "employee_id")
	s.CompanyID = stringClaim(tok, "company_id")
	s.Email = stringClaim(tok, "email")

	return s, nil
}

func stringClaim(tok jwt.Token, name string) string {
	v, ok := tok.Get(name)
	if !ok {
		return ""
	}
	str, _ := v.(string)
	return str
}

// Token returns the raw access token for the HTTP client.
func (s *Session) Token() string {
	return s.token
}

// Valid reports whether the session can still be used, with the same
// 30-second clock skew the backend accepts.
func (s *Session) Valid() bool {
	if s == nil || s.token == "" {
		return false
	}
	if s.ExpiresAt.IsZero() {
		return true
	}
	return time.Now().Add(-30 * time.Second).Before(s.ExpiresAt)
}

// Check returns a typed error describing why the session is unusable.
func (s *Session) Check() error {
	if s == nil || s.token == "" {
		return ErrNoToken
	}
	if !s.Valid() {
		return ErrTokenExpired
	}
	return nil
}

// Close clears the in-memory identity. Called on logout or shutdown.
func (s *Session) Close() {
	s.token = ""
	s.UserID = ""
	s.EmployeeID = ""
	s.CompanyID = ""
	s.Email = ""
	s.ExpiresAt = time.Time{}
}
