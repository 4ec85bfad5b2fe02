package auth

import (
	"context"
	"log/slog"
	"net/http"
	"sort"

	"curator/config"
	"curator/internal/domain/entity"
	"curator/internal/domain/service"
	"curator/internal/infra/auth/facebook"
	"curator/internal/infra/auth/google"

	"go.uber.org/fx"
)

// registry implements service.OAuthRegistry.
type registry struct {
	providers map[entity.ProviderType]service.OAuthProvider
}

// NewRegistry builds a registry from already constructed providers.
func NewRegistry(providers ...service.OAuthProvider) service.OAuthRegistry {
	r := &registry{providers: make(map[entity.ProviderType]service.OAuthProvider, len(providers))}
	for _, p := range providers {
		r.providers[p.Provider()] = p
	}

	return r
}

// Get returns the provider, or false when it is not configured.
func (r *registry) Get(provider entity.ProviderType) (service.OAuthProvider, bool) {
	p, ok := r.providers[provider]

	return p, ok
}

// Enabled lists the configured providers in a stable order.
func (r *registry) Enabled() []entity.ProviderType {
	out := make([]entity.ProviderType, 0, len(r.providers))
	for t := range r.providers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// RegistryParams holds dependencies for the OAuth registry, injected by Fx
type RegistryParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewOAuthRegistry initializes every configured provider. A provider that
// fails to initialize is logged and skipped; the application keeps running
// without it.
func NewOAuthRegistry(params RegistryParams) service.OAuthRegistry {
	cfg := params.Config.OAuth
	logger := params.Logger

	if cfg == nil {
		logger.Info("OAuth not configured, social login disabled")

		return NewRegistry()
	}

	httpClient := &http.Client{Timeout: params.Config.API.Timeout}
	var providers []service.OAuthProvider

	if cfg.Google.ClientID != "" {
		p, err := google.NewProvider(params.Ctx, cfg.Google.ClientID, cfg.Google.RedirectURL, httpClient, logger)
		if err != nil {
			logger.Error("Google sign-in unavailable", slog.Any("error", err))
		} else {
			providers = append(providers, p)
		}
	}

	if cfg.Facebook.AppID != "" {
		p, err := facebook.NewProvider(cfg.Facebook.AppID, cfg.Facebook.RedirectURL, "", httpClient, logger)
		if err != nil {
			logger.Error("Facebook login unavailable", slog.Any("error", err))
		} else {
			providers = append(providers, p)
		}
	}

	r := NewRegistry(providers...)
	logger.Info("OAuth providers initialized", slog.Any("providers", r.Enabled()))

	return r
}

// Module provides the auth FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewJWTInspector,
		NewOAuthRegistry,
	),
)
