package api

import (
	"log/slog"

	"curator/config"
	"curator/internal/domain/repository"

	"go.uber.org/fx"
)

// ClientParams holds dependencies for Client, injected by Fx
type ClientParams struct {
	fx.In

	Config *config.Config
	Tokens repository.TokenStorage
	Logger *slog.Logger
}

// NewClientFromConfig builds the shared backend client.
func NewClientFromConfig(params ClientParams) *Client {
	return NewClient(params.Config.API.BaseURL, params.Config.API.Timeout, params.Tokens, params.Logger)
}

// Module provides the REST repositories FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClientFromConfig,
		NewAuthRepository,
		NewUserRepository,
		NewWardrobeRepository,
		NewOutfitRepository,
		NewSocialRepository,
		NewSearchRepository,
		NewCartRepository,
		NewNotificationRepository,
		NewLookbookRepository,
	),
)
