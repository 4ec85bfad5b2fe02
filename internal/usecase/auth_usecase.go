// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"curator/internal/domain/entity"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Email        string
	Username     string
	Password     string `validate:"min=8"`
	FirstName    string
	LastName     string
	AgreeToTerms bool
}

// RegisterUseCase validates a registration before it reaches the backend.
type RegisterUseCase interface {
	Execute(ctx context.Context, input RegisterInput) (*entity.AuthSession, error)
}
