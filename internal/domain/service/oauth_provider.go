package service

import (
	"context"

	"curator/internal/domain/entity"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string              // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string              // User's email address
	Name          string              // User's display name
	Provider      entity.ProviderType // The OAuth provider
	AvatarURL     string              // URL to user's profile picture
	EmailVerified bool                // Whether the email is verified by the provider
}

// OAuthProvider is a social login provider enabled at startup.
type OAuthProvider interface {
	// Provider returns the provider type
	Provider() entity.ProviderType

	// AuthCodeURL returns the URL the user is sent to for consent.
	AuthCodeURL(state string) string

	// VerifyCredential checks a provider credential locally before it is
	// exchanged with the backend. Providers that cannot verify locally
	// return a user carrying only the provider.
	VerifyCredential(ctx context.Context, credential string) (*OAuthUser, error)
}

// OAuthRegistry looks up enabled providers.
type OAuthRegistry interface {
	// Get returns the provider, or false when it is not configured.
	Get(provider entity.ProviderType) (OAuthProvider, bool)

	// Enabled lists the configured providers.
	Enabled() []entity.ProviderType
}
