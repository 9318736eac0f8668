// Package common defines shared constants and sentinel errors used across
// the FitTrack server. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Authorization outcomes surfaced by services.
	ErrorUnauthenticated = errors.New("unauthenticated")
	ErrorForbidden       = errors.New("forbidden")

	// Validation failures and unresolvable payload-supplied references.
	ErrorInvalid = errors.New("invalid")

	// Generic server fault. Must never be conflated with ErrorInvalid.
	ErrorInternal = errors.New("internal error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// AuthTokenHeader is the HTTP header that carries the access token.
const AuthTokenHeader = "x-auth-token"
