package handler

import (
	"net/http"

	"curator/internal/delivery/http/response"
	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"
	"curator/internal/domain/service"
	"curator/internal/state"
	"curator/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Store   *state.Store
	Session usecase.SessionUsecase
	OAuth   service.OAuthRegistry `optional:"true"`
}

// AuthHandler drives the auth slice and the session manager.
type AuthHandler struct {
	auth    *state.AuthSlice
	session usecase.SessionUsecase
	oauth   service.OAuthRegistry
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		auth:    params.Store.Auth,
		session: params.Session,
		oauth:   params.OAuth,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Username     string `json:"username" validate:"required"`
	Password     string `json:"password"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	AgreeToTerms bool   `json:"agree_to_terms"`
}

type oauthLoginRequest struct {
	Provider   entity.ProviderType `param:"provider" json:"-"`
	Credential string              `json:"credential" validate:"required"`
}

type tokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type passwordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type passwordResetConfirmRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *AuthHandler) State(c echo.Context) error {
	return response.OK(c, h.auth.State())
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if _, err := h.auth.Login(c.Request().Context(), repository.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.auth.State(), "Login successful")
}

// Register leaves password and terms checks to the register use case so the
// user sees its messages.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if _, err := h.auth.Register(c.Request().Context(), usecase.RegisterInput{
		Email:        req.Email,
		Username:     req.Username,
		Password:     req.Password,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		AgreeToTerms: req.AgreeToTerms,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.auth.State(), "Registration successful")
}

func (h *AuthHandler) LoginWithOAuth(c echo.Context) error {
	var req oauthLoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if _, err := h.auth.LoginWithOAuth(c.Request().Context(), req.Provider, req.Credential); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.auth.State(), "Login successful")
}

// OAuthURL returns the provider consent URL with a fresh state value.
func (h *AuthHandler) OAuthURL(c echo.Context) error {
	providerType := entity.ProviderType(c.Param("provider"))
	if h.oauth == nil {
		return domainerrors.ErrOAuthProviderUnavailable.WithDetails(providerType.String())
	}
	provider, ok := h.oauth.Get(providerType)
	if !ok {
		return domainerrors.ErrOAuthProviderUnavailable.WithDetails(providerType.String())
	}

	oauthState := c.QueryParam("state")
	if oauthState == "" {
		oauthState = uuid.NewString()
	}

	return response.OK(c, map[string]string{
		"provider": providerType.String(),
		"url":      provider.AuthCodeURL(oauthState),
		"state":    oauthState,
	})
}

// Providers lists the enabled social login providers.
func (h *AuthHandler) Providers(c echo.Context) error {
	providers := []entity.ProviderType{}
	if h.oauth != nil {
		providers = h.oauth.Enabled()
	}

	return response.OK(c, providers)
}

func (h *AuthHandler) Me(c echo.Context) error {
	if _, err := h.auth.FetchCurrentUser(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.auth.State())
}

// Refresh exchanges the stored refresh token. A rejected refresh expires the
// session.
func (h *AuthHandler) Refresh(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.session.Refresh(ctx); err != nil {
		if ctx.Err() != nil {
			return errors.WithStack(ctx.Err())
		}
		h.auth.Resync(false)

		return domainerrors.ErrSessionExpired.WithDetails(domainerrors.ExtractMessage(err, ""))
	}

	return response.OK(c, h.auth.State())
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.session.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.auth.State(), "Logout successful")
}

func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req tokenRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.auth.VerifyEmail(c.Request().Context(), req.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.auth.State())
}

func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req passwordResetRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.auth.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Password reset email sent")
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req passwordResetConfirmRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.auth.ResetPassword(c.Request().Context(), req.Token, req.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated")
}
