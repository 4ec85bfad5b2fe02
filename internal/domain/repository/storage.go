package repository

import (
	"context"

	"curator/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrNotStored is returned when a durable key has never been written.
var ErrNotStored = errors.New("value not stored")

// TokenStorage persists the session tokens across restarts.
type TokenStorage interface {
	// LoadTokens returns the stored pair. Missing tokens come back as empty strings.
	LoadTokens(ctx context.Context) (entity.TokenPair, error)

	// SaveTokens overwrites both tokens.
	SaveTokens(ctx context.Context, tokens entity.TokenPair) error

	// ClearTokens removes both tokens. Clearing absent tokens is not an error.
	ClearTokens(ctx context.Context) error
}

// PreferenceStorage persists UI preferences.
type PreferenceStorage interface {
	// LoadSidebarCollapsed returns ErrNotStored when the flag was never saved.
	LoadSidebarCollapsed(ctx context.Context) (bool, error)
	SaveSidebarCollapsed(ctx context.Context, collapsed bool) error
}
