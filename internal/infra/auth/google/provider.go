// Package google implements Google sign-in. The browser obtains an ID token
// from Google Identity Services; the client checks it before handing it to
// the backend.
package google

import (
	"context"
	"log/slog"
	"net/http"

	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"
)

var defaultScopes = []string{"openid", "email", "profile"}

// tokenValidator is satisfied by *idtoken.Validator.
type tokenValidator interface {
	Validate(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)
}

// Provider implements service.OAuthProvider for Google.
type Provider struct {
	clientID  string
	config    *oauth2.Config
	validator tokenValidator
	logger    *slog.Logger
}

// NewProvider creates the Google provider. It fails when the ID token
// validator cannot be built (certificate fetcher setup).
func NewProvider(ctx context.Context, clientID, redirectURL string, httpClient *http.Client, logger *slog.Logger) (*Provider, error) {
	if clientID == "" {
		return nil, errors.New("google client ID is required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	validator, err := idtoken.NewValidator(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, errors.Wrap(err, "create google id token validator")
	}

	return newProvider(clientID, redirectURL, validator, logger), nil
}

func newProvider(clientID, redirectURL string, validator tokenValidator, logger *slog.Logger) *Provider {
	return &Provider{
		clientID: clientID,
		config: &oauth2.Config{
			ClientID:    clientID,
			RedirectURL: redirectURL,
			Scopes:      defaultScopes,
			Endpoint:    googleoauth.Endpoint,
		},
		validator: validator,
		logger:    logger,
	}
}

// Provider returns the OAuth provider type
func (p *Provider) Provider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

// AuthCodeURL builds the consent URL for the redirect flow.
func (p *Provider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// VerifyCredential validates a Google ID token for this client ID.
func (p *Provider) VerifyCredential(ctx context.Context, credential string) (*service.OAuthUser, error) {
	if credential == "" {
		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails("empty google credential")
	}

	payload, err := p.validator.Validate(ctx, credential, p.clientID)
	if err != nil {
		p.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid.WithDetails(err.Error()), "google id token")
	}

	user := &service.OAuthUser{
		ID:       payload.Subject,
		Provider: entity.ProviderTypeGoogle,
	}
	if email, ok := payload.Claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		user.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		user.AvatarURL = picture
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		user.EmailVerified = verified
	}

	p.logger.Debug("Google ID token verified", slog.String("subject", user.ID))

	return user, nil
}
