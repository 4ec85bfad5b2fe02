package handler

import (
	"curator/internal/delivery/http/response"
	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
	"curator/internal/state"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type UserHandler struct {
	users *state.UserSlice
}

func NewUserHandler(store *state.Store) *UserHandler {
	return &UserHandler{users: store.User}
}

type userPageRequest struct {
	pageQuery
	ID string `param:"id" json:"-"`
}

func (h *UserHandler) Get(c echo.Context) error {
	if _, err := h.users.FetchUser(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.users.State())
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var params repository.UpdateProfileParams
	if err := bind(c, &params); err != nil {
		return err
	}
	if _, err := h.users.UpdateProfile(c.Request().Context(), c.Param("id"), params); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.users.State())
}

func (h *UserHandler) UpdatePreferences(c echo.Context) error {
	var prefs entity.UserPreferences
	if err := bind(c, &prefs); err != nil {
		return err
	}
	if _, err := h.users.UpdatePreferences(c.Request().Context(), c.Param("id"), prefs); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.users.State())
}

func (h *UserHandler) Follow(c echo.Context) error {
	if err := h.users.Follow(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.users.State())
}

func (h *UserHandler) Unfollow(c echo.Context) error {
	if err := h.users.Unfollow(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.users.State())
}

func (h *UserHandler) Followers(c echo.Context) error {
	var req userPageRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if _, err := h.users.FetchFollowers(c.Request().Context(), req.ID, req.pagination()); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.users.State())
}

func (h *UserHandler) Following(c echo.Context) error {
	var req userPageRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if _, err := h.users.FetchFollowing(c.Request().Context(), req.ID, req.pagination()); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.users.State())
}

func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.DeleteAccount(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.users.State())
}
