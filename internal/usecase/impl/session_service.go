package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"curator/config"
	deliverycontext "curator/internal/delivery/context"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"
	"curator/internal/domain/service"
	"curator/internal/state"
	"curator/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultCheckInterval = time.Minute

// SessionServiceParams holds dependencies for the session manager, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Store     *state.Store
	AuthRepo  repository.AuthRepository
	Tokens    repository.TokenStorage
	Inspector service.TokenInspector
	Config    *config.Config `optional:"true"`
	Logger    *slog.Logger
}

// sessionService keeps stored tokens and the auth slice consistent.
type sessionService struct {
	store     *state.Store
	authRepo  repository.AuthRepository
	tokens    repository.TokenStorage
	inspector service.TokenInspector
	interval  time.Duration
	logger    *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSessionService is the constructor for the session manager.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	interval := defaultCheckInterval
	if params.Config != nil && params.Config.Session.CheckInterval > 0 {
		interval = params.Config.Session.CheckInterval
	}

	return &sessionService{
		store:     params.Store,
		authRepo:  params.AuthRepo,
		tokens:    params.Tokens,
		inspector: params.Inspector,
		interval:  interval,
		logger:    params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Start recovers the session and begins periodic checks. Calling Start twice
// restarts the loop.
func (srv *sessionService) Start(ctx context.Context) error {
	if err := srv.Recover(ctx); err != nil {
		srv.log(ctx).Warn("Session recovery failed", slog.Any("error", err))
	}

	srv.Stop()

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})

	srv.mu.Lock()
	srv.cancel = cancel
	srv.done = done
	srv.mu.Unlock()

	go srv.loop(loopCtx, done)

	return nil
}

func (srv *sessionService) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(srv.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := srv.CheckSession(ctx); err != nil && ctx.Err() == nil {
				srv.logger.Warn("Session check failed", slog.Any("error", err))
			}
		}
	}
}

// Stop ends the periodic checks and waits for the loop to exit.
func (srv *sessionService) Stop() {
	srv.mu.Lock()
	cancel, done := srv.cancel, srv.done
	srv.cancel, srv.done = nil, nil
	srv.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (srv *sessionService) Recover(ctx context.Context) error {
	tokens, err := srv.tokens.LoadTokens(ctx)
	if err != nil {
		return errors.Wrap(err, "load tokens")
	}
	if tokens.AccessToken == "" && tokens.RefreshToken == "" {
		return nil
	}

	if !srv.inspector.IsValid(tokens.AccessToken) {
		if err := srv.Refresh(ctx); err != nil {
			srv.log(ctx).Info("Stored session could not be refreshed", slog.Any("error", err))
			srv.store.Auth.Resync(false)

			return nil
		}
	}

	if srv.store.Auth.State().User != nil {
		return nil
	}

	if _, err := srv.store.Auth.RecoverUser(ctx); err != nil {
		if ctx.Err() != nil {
			return errors.WithStack(ctx.Err())
		}
		srv.log(ctx).Info("Stored session is no longer accepted", slog.Any("error", err))
		if clearErr := srv.tokens.ClearTokens(ctx); clearErr != nil {
			return errors.Wrap(clearErr, "clear tokens")
		}
	}

	return nil
}

func (srv *sessionService) CheckSession(ctx context.Context) error {
	tokens, err := srv.tokens.LoadTokens(ctx)
	if err != nil {
		return errors.Wrap(err, "load tokens")
	}

	if tokens.AccessToken == "" && tokens.RefreshToken == "" {
		srv.store.Auth.Resync(false)

		return nil
	}

	if srv.inspector.IsValid(tokens.AccessToken) {
		srv.store.Auth.Resync(true)

		return nil
	}

	if err := srv.Refresh(ctx); err != nil {
		if ctx.Err() != nil {
			return errors.WithStack(ctx.Err())
		}
		srv.log(ctx).Info("Session expired", slog.Any("error", err))
		srv.store.Auth.Resync(false)
	}

	return nil
}

func (srv *sessionService) Refresh(ctx context.Context) error {
	tokens, err := srv.tokens.LoadTokens(ctx)
	if err != nil {
		return errors.Wrap(err, "load tokens")
	}

	if tokens.RefreshToken == "" {
		if clearErr := srv.tokens.ClearTokens(ctx); clearErr != nil {
			srv.log(ctx).Warn("Failed to clear tokens", slog.Any("error", clearErr))
		}

		return errors.WithStack(domainerrors.ErrRefreshTokenMissing)
	}

	pair, err := srv.authRepo.RefreshToken(ctx, tokens.RefreshToken)
	if err != nil {
		if ctx.Err() != nil {
			return errors.WithStack(ctx.Err())
		}
		if clearErr := srv.tokens.ClearTokens(ctx); clearErr != nil {
			srv.log(ctx).Warn("Failed to clear tokens", slog.Any("error", clearErr))
		}

		return errors.Wrap(err, "refresh token")
	}

	if pair.RefreshToken == "" {
		pair.RefreshToken = tokens.RefreshToken
	}

	return errors.Wrap(srv.tokens.SaveTokens(ctx, *pair), "save tokens")
}

func (srv *sessionService) Logout(ctx context.Context) error {
	err := srv.store.Auth.Logout(ctx)
	srv.store.Reset()

	return err
}
