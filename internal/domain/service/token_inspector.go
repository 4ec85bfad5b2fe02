package service

import "time"

// TokenInspector reads stored tokens without verifying their signature.
// The backend remains the authority; inspection only decides whether a token
// is worth sending.
type TokenInspector interface {
	// IsValid reports whether the token parses and has not expired.
	IsValid(token string) bool

	// ExpiresAt returns the token expiry. ok is false when the token carries none.
	ExpiresAt(token string) (expiresAt time.Time, ok bool, err error)
}
