// Package repository defines the interfaces for the remote data layer.
// These interfaces act as a contract between the application layers and the REST client.
package repository

import (
	"context"

	"curator/internal/domain/entity"
)

// LoginParams are the credentials for an email/password login.
type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterParams is the payload for creating an account.
type RegisterParams struct {
	Email        string `json:"email"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	AgreeToTerms bool   `json:"agree_to_terms"`
}

// AuthRepository defines the /auth endpoints.
type AuthRepository interface {
	// Login exchanges credentials for a session.
	Login(ctx context.Context, params LoginParams) (*entity.AuthSession, error)

	// Register creates an account and returns its first session.
	Register(ctx context.Context, params RegisterParams) (*entity.AuthSession, error)

	// LoginWithOAuth exchanges a provider credential (Google ID token or Facebook access token) for a session.
	LoginWithOAuth(ctx context.Context, provider entity.ProviderType, credential string) (*entity.AuthSession, error)

	// Logout revokes the refresh token on the backend.
	Logout(ctx context.Context, refreshToken string) error

	// RefreshToken exchanges a refresh token for a new token pair.
	RefreshToken(ctx context.Context, refreshToken string) (*entity.TokenPair, error)

	// GetCurrentUser returns the user owning the current access token.
	GetCurrentUser(ctx context.Context) (*entity.User, error)

	// VerifyEmail confirms an email address with the token sent by mail.
	VerifyEmail(ctx context.Context, token string) error

	// RequestPasswordReset sends a reset mail.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword sets a new password using a reset token.
	ResetPassword(ctx context.Context, token, newPassword string) error
}
