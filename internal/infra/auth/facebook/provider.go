// Package facebook implements Facebook Login. The SDK hands the browser a
// user access token which the backend exchanges for a session.
package facebook

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	facebookoauth "golang.org/x/oauth2/facebook"
)

// DefaultGraphURL is the Graph API profile endpoint.
const DefaultGraphURL = "https://graph.facebook.com/me"

var defaultScopes = []string{"email", "public_profile"}

// Provider implements service.OAuthProvider for Facebook.
type Provider struct {
	config     *oauth2.Config
	graphURL   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewProvider creates the Facebook provider.
func NewProvider(appID, redirectURL, graphURL string, httpClient *http.Client, logger *slog.Logger) (*Provider, error) {
	if appID == "" {
		return nil, errors.New("facebook app ID is required")
	}
	if graphURL == "" {
		graphURL = DefaultGraphURL
	}
	if _, err := url.Parse(graphURL); err != nil {
		return nil, errors.Wrap(err, "invalid graph URL")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Provider{
		config: &oauth2.Config{
			ClientID:    appID,
			RedirectURL: redirectURL,
			Scopes:      defaultScopes,
			Endpoint:    facebookoauth.Endpoint,
		},
		graphURL:   graphURL,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Provider returns the OAuth provider type
func (p *Provider) Provider() entity.ProviderType {
	return entity.ProviderTypeFacebook
}

// AuthCodeURL builds the Facebook Login dialog URL.
func (p *Provider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// VerifyCredential checks the access token against the Graph API.
func (p *Provider) VerifyCredential(ctx context.Context, credential string) (*service.OAuthUser, error) {
	if credential == "" {
		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails("empty facebook credential")
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	client := p.config.Client(ctx, &oauth2.Token{AccessToken: credential, TokenType: "Bearer"})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.graphURL+"?fields=id,name,email,picture", nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrNetwork.WithDetails(err.Error()), "facebook graph")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.logger.Warn("Facebook access token rejected", slog.Int("status", resp.StatusCode))

		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails(http.StatusText(resp.StatusCode))
	}

	var me struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Picture struct {
			Data struct {
				URL string `json:"url"`
			} `json:"data"`
		} `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&me); err != nil {
		return nil, errors.Wrap(err, "decode facebook profile")
	}

	return &service.OAuthUser{
		ID:            me.ID,
		Email:         me.Email,
		Name:          me.Name,
		Provider:      entity.ProviderTypeFacebook,
		AvatarURL:     me.Picture.Data.URL,
		EmailVerified: me.Email != "",
	}, nil
}
