package handler

import (
	"net/http"

	"curator/internal/delivery/http/response"
	"curator/internal/state"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type UIHandler struct {
	ui *state.UISlice
}

func NewUIHandler(store *state.Store) *UIHandler {
	return &UIHandler{ui: store.UI}
}

type sidebarRequest struct {
	Collapsed *bool `json:"collapsed" validate:"required"`
}

type toastRequest struct {
	Kind    state.ToastKind `json:"kind" validate:"omitempty,oneof=info success error"`
	Message string          `json:"message" validate:"required"`
}

type modalRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *UIHandler) Get(c echo.Context) error {
	return response.OK(c, h.ui.State())
}

func (h *UIHandler) ToggleSidebar(c echo.Context) error {
	if _, err := h.ui.ToggleSidebar(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.ui.State())
}

func (h *UIHandler) SetSidebar(c echo.Context) error {
	var req sidebarRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.ui.SetSidebarCollapsed(c.Request().Context(), *req.Collapsed); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.ui.State())
}

func (h *UIHandler) ShowToast(c echo.Context) error {
	var req toastRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.Kind == "" {
		req.Kind = state.ToastInfo
	}
	id := h.ui.ShowToast(req.Kind, req.Message)

	return response.Success(c, http.StatusCreated, map[string]string{"id": id}, "")
}

func (h *UIHandler) DismissToast(c echo.Context) error {
	h.ui.DismissToast(c.Param("id"))

	return response.OK(c, h.ui.State())
}

func (h *UIHandler) OpenModal(c echo.Context) error {
	var req modalRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	h.ui.OpenModal(req.Name)

	return response.OK(c, h.ui.State())
}

func (h *UIHandler) CloseModal(c echo.Context) error {
	h.ui.CloseModal()

	return response.OK(c, h.ui.State())
}
