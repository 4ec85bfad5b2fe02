package usecase

import "context"

// SessionUsecase owns the token lifecycle of the signed-in user.
type SessionUsecase interface {
	// Start recovers the session, then re-checks it periodically until Stop.
	Start(ctx context.Context) error
	Stop()

	// Recover loads the current user when valid tokens are stored and no
	// user is loaded. Failure clears the tokens.
	Recover(ctx context.Context) error

	// CheckSession refreshes an invalid access token once; when that fails
	// the session is dropped silently.
	CheckSession(ctx context.Context) error

	// Refresh exchanges the stored refresh token. Failure clears both tokens.
	Refresh(ctx context.Context) error

	// Logout ends the session on the backend (best effort), clears the
	// tokens and resets all client state.
	Logout(ctx context.Context) error
}

// RealtimeUsecase keeps the push channel in step with the session and feeds
// its events into client state.
type RealtimeUsecase interface {
	Start(ctx context.Context) error
	Stop() error
}
