package state

import (
	"context"
	"log/slog"

	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"
	"curator/internal/domain/service"
	"curator/internal/usecase"

	"github.com/pkg/errors"
)

// AuthState is the signed-in session.
type AuthState struct {
	Status
	User            *entity.User        `json:"user"`
	IsAuthenticated bool                `json:"is_authenticated"`
	SessionStatus   entity.AuthStatus   `json:"status"`
	Provider        entity.ProviderType `json:"provider,omitempty"`
}

func initialAuthState() AuthState {
	return AuthState{SessionStatus: entity.AuthStatusAnonymous}
}

// AuthSlice drives the anonymous -> authenticating -> authenticated -> expired
// lifecycle.
type AuthSlice struct {
	*Slice[AuthState]

	repo     repository.AuthRepository
	register usecase.RegisterUseCase
	tokens   repository.TokenStorage
	oauth    service.OAuthRegistry
	logger   *slog.Logger
}

// NewAuthSlice creates the auth slice. oauth may be nil when no provider is configured.
func NewAuthSlice(
	repo repository.AuthRepository,
	register usecase.RegisterUseCase,
	tokens repository.TokenStorage,
	oauth service.OAuthRegistry,
	logger *slog.Logger,
) *AuthSlice {
	return &AuthSlice{
		Slice: NewSlice("auth", initialAuthState, func(s *AuthState) *Status {
			return &s.Status
		}),
		repo:     repo,
		register: register,
		tokens:   tokens,
		oauth:    oauth,
		logger:   logger,
	}
}

// UserID returns the signed-in user's ID, or "".
func (s *AuthSlice) UserID() string {
	st := s.State()
	if st.User == nil {
		return ""
	}

	return st.User.ID
}

// Login signs in with email and password.
func (s *AuthSlice) Login(ctx context.Context, params repository.LoginParams) (*entity.AuthSession, error) {
	return s.authenticate(ctx, entity.ProviderTypeEmail, "Login failed", func(ctx context.Context) (*entity.AuthSession, error) {
		return s.repo.Login(ctx, params)
	})
}

// Register creates an account and signs in.
func (s *AuthSlice) Register(ctx context.Context, input usecase.RegisterInput) (*entity.AuthSession, error) {
	return s.authenticate(ctx, entity.ProviderTypeEmail, "Registration failed", func(ctx context.Context) (*entity.AuthSession, error) {
		return s.register.Execute(ctx, input)
	})
}

// LoginWithOAuth signs in with a provider credential. The credential is
// checked locally by the provider before it is sent to the backend.
func (s *AuthSlice) LoginWithOAuth(ctx context.Context, provider entity.ProviderType, credential string) (*entity.AuthSession, error) {
	return s.authenticate(ctx, provider, "Social login failed", func(ctx context.Context) (*entity.AuthSession, error) {
		if s.oauth == nil {
			return nil, domainerrors.ErrOAuthProviderUnavailable.WithDetails(provider.String())
		}
		p, ok := s.oauth.Get(provider)
		if !ok {
			return nil, domainerrors.ErrOAuthProviderUnavailable.WithDetails(provider.String())
		}
		if _, err := p.VerifyCredential(ctx, credential); err != nil {
			return nil, err
		}

		return s.repo.LoginWithOAuth(ctx, provider, credential)
	})
}

// authenticate persists the tokens before the session is committed; a
// rejected attempt never writes tokens. Tokens saved for an attempt whose
// context ends before the commit are cleared again.
func (s *AuthSlice) authenticate(
	ctx context.Context,
	provider entity.ProviderType,
	fallback string,
	call func(context.Context) (*entity.AuthSession, error),
) (*entity.AuthSession, error) {
	var (
		previous entity.AuthStatus
		saved    bool
	)

	session, err := Run(ctx, s.Slice, Reducers[AuthState, *entity.AuthSession]{
		Pending: func(st *AuthState) {
			previous = st.SessionStatus
			st.SessionStatus = entity.AuthStatusAuthenticating
		},
		Fulfilled: func(st *AuthState, session *entity.AuthSession) {
			st.User = session.User
			st.IsAuthenticated = true
			st.SessionStatus = entity.AuthStatusAuthenticated
			st.Provider = provider
		},
		Rollback: func(st *AuthState) {
			if st.SessionStatus == entity.AuthStatusAuthenticating {
				st.SessionStatus = previous
			}
		},
		Rejected: func(st *AuthState, _ string) {
			st.IsAuthenticated = false
			st.User = nil
			st.SessionStatus = entity.AuthStatusAnonymous
		},
		Fallback: fallback,
	}, func(ctx context.Context) (*entity.AuthSession, error) {
		session, err := call(ctx)
		if err != nil {
			return nil, err
		}
		if session == nil || !session.Tokens.IsComplete() {
			return nil, domainerrors.ErrNotAuthenticated.WithDetails("backend returned no tokens")
		}
		if err := s.tokens.SaveTokens(ctx, session.Tokens); err != nil {
			return nil, errors.Wrap(err, "save tokens")
		}
		saved = true

		return session, nil
	})
	if err != nil && saved {
		if clearErr := s.tokens.ClearTokens(context.WithoutCancel(ctx)); clearErr != nil {
			s.logger.WarnContext(ctx, "Failed to clear tokens of an abandoned sign-in", slog.Any("error", clearErr))
		}
	}

	return session, err
}

// FetchCurrentUser loads the owner of the stored access token.
func (s *AuthSlice) FetchCurrentUser(ctx context.Context) (*entity.User, error) {
	return s.fetchCurrentUser(ctx, false)
}

// RecoverUser is FetchCurrentUser without surfacing an error; session
// recovery failures are silent.
func (s *AuthSlice) RecoverUser(ctx context.Context) (*entity.User, error) {
	return s.fetchCurrentUser(ctx, true)
}

func (s *AuthSlice) fetchCurrentUser(ctx context.Context, silent bool) (*entity.User, error) {
	return Run(ctx, s.Slice, Reducers[AuthState, *entity.User]{
		Fulfilled: func(st *AuthState, user *entity.User) {
			st.User = user
			st.IsAuthenticated = true
			st.SessionStatus = entity.AuthStatusAuthenticated
		},
		Rejected: func(st *AuthState, _ string) {
			st.User = nil
			st.IsAuthenticated = false
			st.SessionStatus = entity.AuthStatusAnonymous
		},
		Fallback: "Failed to load user",
		Silent:   silent,
	}, s.repo.GetCurrentUser)
}

// Logout revokes the refresh token (best effort), clears the stored tokens
// and returns the slice to anonymous.
func (s *AuthSlice) Logout(ctx context.Context) error {
	tokens, err := s.tokens.LoadTokens(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to load tokens for logout", slog.Any("error", err))
	}
	if tokens.RefreshToken != "" {
		if err := s.repo.Logout(ctx, tokens.RefreshToken); err != nil {
			s.logger.WarnContext(ctx, "Backend logout failed", slog.Any("error", err))
		}
	}

	clearErr := s.tokens.ClearTokens(ctx)
	s.Reset()

	return errors.Wrap(clearErr, "clear tokens")
}

// VerifyEmail confirms the signed-in user's email.
func (s *AuthSlice) VerifyEmail(ctx context.Context, token string) error {
	return Exec(ctx, s.Slice, Reducers[AuthState, none]{
		Fulfilled: func(st *AuthState, _ none) {
			if st.User != nil {
				u := *st.User
				u.IsEmailVerified = true
				st.User = &u
			}
		},
		Fallback: "Email verification failed",
	}, func(ctx context.Context) error {
		return s.repo.VerifyEmail(ctx, token)
	})
}

// RequestPasswordReset mails a reset link.
func (s *AuthSlice) RequestPasswordReset(ctx context.Context, email string) error {
	return Exec(ctx, s.Slice, Reducers[AuthState, none]{Fallback: "Password reset request failed"},
		func(ctx context.Context) error {
			return s.repo.RequestPasswordReset(ctx, email)
		})
}

// ResetPassword sets a new password with a reset token.
func (s *AuthSlice) ResetPassword(ctx context.Context, token, newPassword string) error {
	return Exec(ctx, s.Slice, Reducers[AuthState, none]{Fallback: "Password reset failed"},
		func(ctx context.Context) error {
			return s.repo.ResetPassword(ctx, token, newPassword)
		})
}

// Resync aligns the slice with token validity. Invalid tokens expire the
// session without surfacing an error.
func (s *AuthSlice) Resync(tokensValid bool) {
	s.Update(func(st *AuthState) {
		if tokensValid {
			return
		}
		wasAuthenticated := st.IsAuthenticated
		st.IsAuthenticated = false
		st.User = nil
		st.Error = ""
		if wasAuthenticated {
			st.SessionStatus = entity.AuthStatusExpired
		} else {
			st.SessionStatus = entity.AuthStatusAnonymous
		}
	})
}

// SetUser replaces the signed-in user, e.g. after a profile update.
func (s *AuthSlice) SetUser(user *entity.User) {
	s.Update(func(st *AuthState) {
		st.User = user
	})
}

// ClearError clears the stored error.
func (s *AuthSlice) ClearError() {
	s.Update(func(st *AuthState) {
		st.Error = ""
	})
}
