package api

import (
	"context"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"

	"github.com/pkg/errors"
)

type authRepository struct {
	client *Client
}

// NewAuthRepository creates the /auth repository.
func NewAuthRepository(client *Client) repository.AuthRepository {
	return &authRepository{client: client}
}

// authResponse accepts both {"user","tokens":{"access","refresh"}} and the
// flattened {"user","access","refresh"} shape.
type authResponse struct {
	User    *entity.User     `json:"user"`
	Tokens  entity.TokenPair `json:"tokens"`
	Access  string           `json:"access"`
	Refresh string           `json:"refresh"`
}

func (r authResponse) session() (*entity.AuthSession, error) {
	tokens := r.Tokens
	if tokens.AccessToken == "" {
		tokens.AccessToken = r.Access
	}
	if tokens.RefreshToken == "" {
		tokens.RefreshToken = r.Refresh
	}
	if !tokens.IsComplete() {
		return nil, errors.New("auth response is missing tokens")
	}

	return &entity.AuthSession{User: r.User, Tokens: tokens}, nil
}

func (r *authRepository) Login(ctx context.Context, params repository.LoginParams) (*entity.AuthSession, error) {
	var resp authResponse
	if err := r.client.post(ctx, "/auth/login/", params, &resp); err != nil {
		return nil, err
	}

	return resp.session()
}

func (r *authRepository) Register(ctx context.Context, params repository.RegisterParams) (*entity.AuthSession, error) {
	var resp authResponse
	if err := r.client.post(ctx, "/auth/register/", params, &resp); err != nil {
		return nil, err
	}

	return resp.session()
}

func (r *authRepository) LoginWithOAuth(ctx context.Context, provider entity.ProviderType, credential string) (*entity.AuthSession, error) {
	var body any
	switch provider {
	case entity.ProviderTypeGoogle:
		body = map[string]string{"id_token": credential}
	case entity.ProviderTypeFacebook:
		body = map[string]string{"access_token": credential}
	default:
		return nil, errors.Errorf("unsupported oauth provider %q", provider)
	}

	var resp authResponse
	if err := r.client.post(ctx, "/auth/"+provider.String()+"/", body, &resp); err != nil {
		return nil, err
	}

	return resp.session()
}

func (r *authRepository) Logout(ctx context.Context, refreshToken string) error {
	return r.client.post(ctx, "/auth/logout/", map[string]string{"refresh": refreshToken}, nil)
}

func (r *authRepository) RefreshToken(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	var pair entity.TokenPair
	if err := r.client.post(ctx, "/auth/token/refresh/", map[string]string{"refresh": refreshToken}, &pair); err != nil {
		return nil, err
	}
	if pair.AccessToken == "" {
		return nil, errors.New("refresh response is missing the access token")
	}
	// Backends without refresh rotation only return a new access token.
	if pair.RefreshToken == "" {
		pair.RefreshToken = refreshToken
	}

	return &pair, nil
}

func (r *authRepository) GetCurrentUser(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := r.client.get(ctx, "/auth/me/", nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *authRepository) VerifyEmail(ctx context.Context, token string) error {
	return r.client.post(ctx, "/auth/verify-email/", map[string]string{"token": token}, nil)
}

func (r *authRepository) RequestPasswordReset(ctx context.Context, email string) error {
	return r.client.post(ctx, "/auth/password-reset/", map[string]string{"email": email}, nil)
}

func (r *authRepository) ResetPassword(ctx context.Context, token, newPassword string) error {
	return r.client.post(ctx, "/auth/password-reset/confirm/", map[string]string{
		"token":        token,
		"new_password": newPassword,
	}, nil)
}
