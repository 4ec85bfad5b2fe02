// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"curator/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtInspector is a concrete implementation of the TokenInspector interface.
// Signatures are never checked; the client does not hold the signing key.
type jwtInspector struct {
	parser *jwt.Parser
	now    func() time.Time
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{
		parser: jwt.NewParser(),
		now:    time.Now,
	}
}

// IsValid reports whether the token parses and is not past its exp claim.
// A token without exp never expires; a token that does not parse is invalid.
func (i *jwtInspector) IsValid(token string) bool {
	if token == "" {
		return false
	}

	expiresAt, ok, err := i.ExpiresAt(token)
	if err != nil {
		return false
	}
	if !ok {
		return true
	}

	return i.now().Before(expiresAt)
}

// ExpiresAt returns the exp claim of the token.
func (i *jwtInspector) ExpiresAt(token string) (time.Time, bool, error) {
	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false, errors.Wrap(err, "parse token")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, false, errors.Wrap(err, "read exp claim")
	}
	if exp == nil {
		return time.Time{}, false, nil
	}

	return exp.Time, true, nil
}
