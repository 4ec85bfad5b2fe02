package impl

import (
	"context"
	"log/slog"

	"curator/config"
	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"
	"curator/internal/domain/service"
	"curator/internal/usecase"

	"go.uber.org/fx"
)

// RegisterServiceParams holds dependencies for the register use case, injected by Fx.
type RegisterServiceParams struct {
	fx.In

	AuthRepo  repository.AuthRepository
	Publisher service.EventPublisher `optional:"true"`
	Config    *config.Config         `optional:"true"`
	Logger    *slog.Logger
}

type registerService struct {
	authRepo repository.AuthRepository
	tracker  tracker
}

// NewRegisterService is the constructor for the register use case.
func NewRegisterService(params RegisterServiceParams) usecase.RegisterUseCase {
	return &registerService{
		authRepo: params.AuthRepo,
		tracker:  newTracker(params.Publisher, params.Config, params.Logger),
	}
}

// Execute rejects registrations without accepted terms or with a short
// password; anything else goes to the backend unchanged.
func (srv *registerService) Execute(ctx context.Context, input usecase.RegisterInput) (*entity.AuthSession, error) {
	if !input.AgreeToTerms {
		return nil, domainerrors.NewValidationError("You must agree to the terms and conditions")
	}
	if err := validateInput(input, map[string]string{
		"Password.min": "Password must be at least 8 characters",
	}); err != nil {
		return nil, err
	}

	session, err := srv.authRepo.Register(ctx, repository.RegisterParams{
		Email:        input.Email,
		Username:     input.Username,
		Password:     input.Password,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		AgreeToTerms: input.AgreeToTerms,
	})
	if err != nil {
		return nil, err
	}

	var userID string
	if session != nil && session.User != nil {
		userID = session.User.ID
	}
	srv.tracker.track(ctx, service.EventUserRegistered, userID, nil)

	return session, nil
}
