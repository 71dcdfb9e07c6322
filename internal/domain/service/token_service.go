package service

import (
	"errors"
	"time"
)

// Token verification failures. Callers must tell them apart: an expired
// token asks the user to log in again, a malformed one is a bad request.
var (
	ErrTokenMalformed = errors.New("token is malformed or its signature is invalid")
	ErrTokenExpired   = errors.New("token is expired")
)

// TokenService issues and verifies signed, expiring identity tokens.
// Both operations are pure functions of their input, the signing secret and now.
type TokenService interface {
	// Issue creates a token for subject that expires at now plus the configured TTL.
	// Token timestamps have second granularity: now is truncated to the second
	// before the TTL is added, and the returned expiresAt is that instant.
	Issue(subject string, now time.Time) (token string, expiresAt time.Time, err error)

	// Verify checks the signature and expiry of token at instant now and returns its subject.
	// It fails with ErrTokenMalformed or ErrTokenExpired.
	Verify(token string, now time.Time) (subject string, err error)

	// TTL returns the lifetime of issued tokens.
	TTL() time.Duration
}
