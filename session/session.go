// Package session holds the operator's credentials for the lifetime of a
// console run. It replaces the ambient token/role storage of earlier console
// builds with an explicit object: set at login, cleared at logout or on the
// first 401 from the backend.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Session struct {
	token string
	role  string
	email string
}

func New() *Session {
	return &Session{}
}

// Set records the credentials returned by a successful login.
func (s *Session) Set(token, role, email string) {
	s.token = token
	s.role = role
	s.email = email
}

// Clear wipes the session. The transport calls this on 401, and logout calls
// it directly.
func (s *Session) Clear() {
	*s = Session{}
}

func (s *Session) Token() string { return s.token }
func (s *Session) Role() string  { return s.role }
func (s *Session) Email() string { return s.email }

func (s *Session) Authenticated() bool {
	return s.token != ""
}

// Expired reports whether the stored token carries an exp claim in the past.
// The signature is not checked here; only the server can do that. Tokens that
// do not parse as JWTs, or carry no exp claim, are never locally expired.
func (s *Session) Expired(now time.Time) bool {
	if s.token == "" {
		return false
	}

	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(s.token, jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
